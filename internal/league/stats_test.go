package league

import (
	"reflect"
	"testing"
)

func TestComputeStats(t *testing.T) {
	rows := []Row{
		matchRow("P1", "70", "P2", "70", "P3", "75"),
		matchRow("P1", "68", "P2", "72", "P3", "72", "P4", "80"),
	}

	got := ComputeStats(rows)
	want := StatsTable{
		"P1": {GamesPlayed: 2, Wins: 2, TotalScore: 138, AverageScore: 69},
		"P2": {GamesPlayed: 2, Wins: 1, TotalScore: 142, AverageScore: 71},
		"P3": {GamesPlayed: 2, Wins: 0, TotalScore: 147, AverageScore: 73.5},
		"P4": {GamesPlayed: 1, Wins: 0, TotalScore: 80, AverageScore: 80},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ComputeStats() = %+v, want %+v", got, want)
	}
}

func TestComputeStats_TiedWinners(t *testing.T) {
	got := ComputeStats([]Row{matchRow("P1", "70", "P2", "70", "P3", "75")})

	if got["P1"].Wins != 1 || got["P2"].Wins != 1 {
		t.Errorf("tied winners should both get a win: P1=%d P2=%d", got["P1"].Wins, got["P2"].Wins)
	}
	if got["P3"].Wins != 0 {
		t.Errorf("P3 wins = %d, want 0", got["P3"].Wins)
	}
}

func TestComputeStats_AverageRounding(t *testing.T) {
	tests := []struct {
		name   string
		scores []string
		want   float64
	}{
		{"whole", []string{"70", "72"}, 71},
		{"one third", []string{"70", "70", "71"}, 70.3},
		{"two thirds", []string{"70", "71", "71"}, 70.7},
		{"half up", []string{"-2", "-2", "-3", "-2"}, -2.2},
		{"relative", []string{"-3", "-3"}, -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := make([]Row, 0, len(tt.scores))
			for _, s := range tt.scores {
				rows = append(rows, matchRow("Me", s, "Other", "100"))
			}

			got := ComputeStats(rows)["Me"].AverageScore
			if got != tt.want {
				t.Errorf("AverageScore = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestComputeStats_OutOfRangeScoreDropped(t *testing.T) {
	got := ComputeStats([]Row{
		matchRow("A", "9223372036854775807", "B", "1"),
		matchRow("A", "1", "B", "2"),
	})

	a := got["A"]
	if a.GamesPlayed != 1 || a.TotalScore != 1 || a.AverageScore != 1 {
		t.Errorf("A = %+v, want only the in-range game counted", a)
	}
	if got["B"].GamesPlayed != 1 {
		t.Errorf("B games = %d, want 1 (first row has one valid participant)", got["B"].GamesPlayed)
	}
}

func TestStatsTable_LookupMissing(t *testing.T) {
	stats := ComputeStats(nil)
	got := stats.Lookup("Nobody")
	if got != (PlayerStats{}) {
		t.Errorf("Lookup(missing) = %+v, want zero stats", got)
	}
}

func TestComputeStats_Idempotent(t *testing.T) {
	rows := []Row{
		matchRow("P1", "70", "P2", "70", "P3", "75"),
		matchRow("P2", "66", "P3", "71"),
	}
	if !reflect.DeepEqual(ComputeStats(rows), ComputeStats(rows)) {
		t.Error("ComputeStats should be idempotent")
	}
}
