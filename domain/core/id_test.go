package core

import (
	"strings"
	"testing"
)

func TestNewID_Unique(t *testing.T) {
	seen := make(map[ID]bool)
	for i := 0; i < 1000; i++ {
		id := NewID()
		if id.IsEmpty() {
			t.Fatal("NewID returned an empty ID")
		}
		if seen[id] {
			t.Fatalf("NewID returned duplicate ID %s", id)
		}
		seen[id] = true
	}
}

func TestNewID_Sortable(t *testing.T) {
	// UUID v7 is time-ordered; consecutive IDs should not sort backwards
	a := NewID()
	b := NewID()
	if strings.Compare(a.String(), b.String()) > 0 {
		t.Errorf("expected time-ordered IDs, got %s before %s", a, b)
	}
}

func TestParseExperimentID(t *testing.T) {
	if _, err := ParseExperimentID(""); err == nil {
		t.Error("expected error for empty experiment ID")
	}
	if _, err := ParseExperimentID("   "); err == nil {
		t.Error("expected error for whitespace experiment ID")
	}
	id, err := ParseExperimentID("exp-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id.String() != "exp-1" {
		t.Errorf("expected exp-1, got %s", id)
	}
}
