package handlers

import (
	"testing"

	"github.com/duwiantor-dev/price-shopee/services"
)

func TestRunStorePutGet(t *testing.T) {
	store := NewRunStore()

	result := &services.RunResult{UpdatedRows: 5}
	id := store.Put(result)
	if id == "" {
		t.Fatal("Put returned an empty run ID")
	}

	got, ok := store.Get(id)
	if !ok {
		t.Fatal("stored run not found")
	}
	if got != result {
		t.Error("Get returned a different result than was stored")
	}
}

func TestRunStoreUnknownID(t *testing.T) {
	store := NewRunStore()
	if _, ok := store.Get("does-not-exist"); ok {
		t.Error("expected lookup of an unknown run to fail")
	}
}

func TestRunStoreDistinctIDs(t *testing.T) {
	store := NewRunStore()
	a := store.Put(&services.RunResult{})
	b := store.Put(&services.RunResult{})
	if a == b {
		t.Error("two runs received the same ID")
	}
}
