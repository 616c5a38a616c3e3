package league

import (
	"reflect"
	"testing"
)

func TestAggregate(t *testing.T) {
	rows := []Row{
		matchRow("Mike O'Neil", "70", "Ann", "70", "Bo", "75"),
		matchRow("Mike ONeil", "68", "Ann", "72"),
		matchRow("Solo", "60"),
		matchRow("Bo", "x", "Ann", ""),
	}

	agg := Aggregate(rows)

	if !reflect.DeepEqual(agg.Points, ComputePoints(rows)) {
		t.Errorf("Points = %v, want %v", agg.Points, ComputePoints(rows))
	}
	if !reflect.DeepEqual(agg.Stats, ComputeStats(rows)) {
		t.Errorf("Stats = %v, want %v", agg.Stats, ComputeStats(rows))
	}
	if agg.Matches != 2 {
		t.Errorf("Matches = %d, want 2", agg.Matches)
	}
	if agg.Skipped != 2 {
		t.Errorf("Skipped = %d, want 2", agg.Skipped)
	}
	if agg.Names["MikeONeil"] != "Mike O'Neil" {
		t.Errorf("expected first seen display name, got %q", agg.Names["MikeONeil"])
	}
	if _, ok := agg.Names["Solo"]; ok {
		t.Error("players from invalid rows should not be named")
	}
}
