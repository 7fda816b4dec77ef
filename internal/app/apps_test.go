package app

import (
	"testing"

	"github.com/blackwell-systems/brewscan/internal/match"
)

func TestFilterRecords(t *testing.T) {
	records := []match.Record{
		{Name: "Firefox", Owned: true, OwnedType: match.Cask},
		{Name: "Code", Equivalence: match.EquivalenceFound, Equivalent: "visual-studio-code"},
		{Name: "RandomTool", Equivalence: match.EquivalenceNone},
	}

	owned := filterRecords(records, func(r match.Record) bool { return r.Owned })
	if len(owned) != 1 || owned[0].Name != "Firefox" {
		t.Errorf("owned filter = %+v, want only Firefox", owned)
	}

	nonBrew := filterRecords(records, func(r match.Record) bool { return !r.Owned })
	if len(nonBrew) != 2 {
		t.Errorf("non-brew filter returned %d records, want 2", len(nonBrew))
	}

	withEq := filterRecords(records, func(r match.Record) bool {
		return !r.Owned && r.Equivalence == match.EquivalenceFound
	})
	if len(withEq) != 1 || withEq[0].Name != "Code" {
		t.Errorf("equivalent filter = %+v, want only Code", withEq)
	}
}
