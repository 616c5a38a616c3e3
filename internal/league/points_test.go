package league

import (
	"reflect"
	"testing"
)

func TestPointsForPosition(t *testing.T) {
	tests := []struct {
		position int
		want     int
	}{
		{0, 0},
		{1, 10},
		{2, 5},
		{3, 3},
		{4, 1},
		{9, 1},
	}

	for _, tt := range tests {
		if got := PointsForPosition(tt.position); got != tt.want {
			t.Errorf("PointsForPosition(%d) = %d, want %d", tt.position, got, tt.want)
		}
	}
}

func TestMatchPoints(t *testing.T) {
	tests := []struct {
		name  string
		row   Row
		want  map[PlayerID]int
		total int
	}{
		{
			name:  "tie for first skips second place",
			row:   matchRow("P1", "70", "P2", "70", "P3", "75"),
			want:  map[PlayerID]int{"P1": 10, "P2": 10, "P3": 3},
			total: 23,
		},
		{
			name:  "tie for second",
			row:   matchRow("P1", "68", "P2", "72", "P3", "72", "P4", "80"),
			want:  map[PlayerID]int{"P1": 10, "P2": 5, "P3": 5, "P4": 1},
			total: 21,
		},
		{
			name:  "no ties",
			row:   matchRow("P1", "-3", "P2", "1", "P3", "0", "P4", "4"),
			want:  map[PlayerID]int{"P1": 10, "P3": 5, "P2": 3, "P4": 1},
			total: 19,
		},
		{
			name:  "head to head",
			row:   matchRow("P1", "72", "P2", "70"),
			want:  map[PlayerID]int{"P2": 10, "P1": 5},
			total: 15,
		},
		{
			name:  "everyone tied",
			row:   matchRow("P1", "70", "P2", "70", "P3", "70"),
			want:  map[PlayerID]int{"P1": 10, "P2": 10, "P3": 10},
			total: 30,
		},
		{
			name:  "three way tie for second",
			row:   matchRow("P1", "60", "P2", "65", "P3", "65", "P4", "65"),
			want:  map[PlayerID]int{"P1": 10, "P2": 5, "P3": 5, "P4": 5},
			total: 25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ok := MatchFromRow(tt.row)
			if !ok {
				t.Fatal("expected valid match")
			}

			got := MatchPoints(m)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("MatchPoints() = %v, want %v", got, tt.want)
			}

			total := 0
			for _, p := range got {
				total += p
			}
			if total != tt.total {
				t.Errorf("total points = %d, want %d", total, tt.total)
			}
		})
	}
}

func TestComputePoints(t *testing.T) {
	rows := []Row{
		matchRow("P1", "70", "P2", "70", "P3", "75"),
		matchRow("P1", "68", "P2", "72", "P3", "72", "P4", "80"),
		matchRow("P4", "65", "", "", "", ""), // single player, ignored
		matchRow("P4", "abc", "P1", "70"),    // only one parseable score, ignored
	}

	got := ComputePoints(rows)
	want := PlayerPoints{"P1": 20, "P2": 15, "P3": 8, "P4": 1}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ComputePoints() = %v, want %v", got, want)
	}
}

func TestComputePoints_JoinsOnNormalizedName(t *testing.T) {
	rows := []Row{
		matchRow("Mike O'Neil", "70", "Ann", "71"),
		matchRow("Mike ONeil", "69", "Ann", "71"),
	}

	got := ComputePoints(rows)
	if got["MikeONeil"] != 20 {
		t.Errorf("expected both spellings to accumulate 20 points, got %v", got)
	}
	if len(got) != 2 {
		t.Errorf("expected 2 players, got %d", len(got))
	}
}

func TestComputePoints_SingleParticipantRowChangesNothing(t *testing.T) {
	base := []Row{matchRow("P1", "70", "P2", "71")}
	withSingle := append([]Row{matchRow("P3", "60", "", "", "", "")}, base...)

	if !reflect.DeepEqual(ComputePoints(base), ComputePoints(withSingle)) {
		t.Error("a single-player row should not change points")
	}
	if !reflect.DeepEqual(ComputeStats(base), ComputeStats(withSingle)) {
		t.Error("a single-player row should not change stats")
	}
}

func TestComputePoints_Idempotent(t *testing.T) {
	rows := []Row{
		matchRow("P1", "70", "P2", "70", "P3", "75"),
		matchRow("P2", "66", "P3", "71"),
	}

	first := ComputePoints(rows)
	second := ComputePoints(rows)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("ComputePoints not idempotent: %v vs %v", first, second)
	}

	// Mutating a result must not leak into the next call
	first["P1"] = 1000
	if third := ComputePoints(rows); third["P1"] != 10 {
		t.Errorf("expected fresh map, got P1 = %d", third["P1"])
	}
}
