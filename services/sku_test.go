package services

import (
	"reflect"
	"testing"
)

func TestSplitSKU(t *testing.T) {
	tests := []struct {
		name       string
		sku        string
		wantBase   string
		wantAddons []string
	}{
		{"base only", "BASE1", "BASE1", nil},
		{"base with addons in order", "A+B+C", "A", []string{"B", "C"}},
		{"consecutive separators dropped", "A++B", "A", []string{"B"}},
		{"trailing separator dropped", "A+", "A", nil},
		{"empty string", "", "", nil},
		{"separators only", "++", "", nil},
		{"segments are trimmed", " A + B ", "A", []string{"B"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base, addons := SplitSKU(tt.sku)
			if base != tt.wantBase {
				t.Errorf("SplitSKU(%q) base = %q, want %q", tt.sku, base, tt.wantBase)
			}
			if !reflect.DeepEqual(addons, tt.wantAddons) {
				t.Errorf("SplitSKU(%q) addons = %v, want %v", tt.sku, addons, tt.wantAddons)
			}
		})
	}
}
