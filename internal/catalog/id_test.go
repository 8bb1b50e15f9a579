package catalog_test

import (
	"testing"

	"github.com/aulamath/aulamath/internal/catalog"
)

func TestValidID(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want bool
	}{
		{"lowercase hex", "507f1f77bcf86cd799439011", true},
		{"uppercase hex", "507F1F77BCF86CD799439011", true},
		{"all digits", "123456789012345678901234", true},
		{"empty", "", false},
		{"too short", "507f1f77bcf86cd79943901", false},
		{"too long", "507f1f77bcf86cd7994390111", false},
		{"non-hex char", "507f1f77bcf86cd79943901g", false},
		{"whitespace", "507f1f77bcf86cd79943901 ", false},
		{"plain word", "not-an-id", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := catalog.ValidID(tt.id); got != tt.want {
				t.Errorf("ValidID(%q) = %v, want %v", tt.id, got, tt.want)
			}
		})
	}
}

func TestNewID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := catalog.NewID()
		if len(id) != 24 {
			t.Fatalf("NewID() length = %d, want 24", len(id))
		}
		if !catalog.ValidID(id) {
			t.Fatalf("NewID() = %q is not a valid identifier", id)
		}
		if seen[id] {
			t.Fatalf("NewID() returned duplicate %q", id)
		}
		seen[id] = true
	}
}
