package handlers

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/duwiantor-dev/price-shopee/services"
)

// runTTL is how long a finished run stays downloadable.
const runTTL = 30 * time.Minute

// RunStore keeps finished reconciliation runs in memory so the download
// links rendered after a run can fetch its artifacts. Runs hold immutable
// results only; each request builds its own run from scratch. Expired
// entries are pruned whenever a new run is stored.
type RunStore struct {
	mu   sync.Mutex
	runs map[string]storedRun
}

type storedRun struct {
	result  *services.RunResult
	expires time.Time
}

// NewRunStore creates an empty run store.
func NewRunStore() *RunStore {
	return &RunStore{runs: make(map[string]storedRun)}
}

// Put stores a finished run and returns its download ID.
func (s *RunStore) Put(result *services.RunResult) string {
	id := uuid.NewString()
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	for k, r := range s.runs {
		if now.After(r.expires) {
			delete(s.runs, k)
		}
	}
	s.runs[id] = storedRun{result: result, expires: now.Add(runTTL)}
	return id
}

// Get returns the stored run for id, or false when it is unknown or expired.
func (s *RunStore) Get(id string) (*services.RunResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.runs[id]
	if !ok || time.Now().After(r.expires) {
		return nil, false
	}
	return r.result, true
}
