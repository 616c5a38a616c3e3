package league

import "testing"

func TestParseScore(t *testing.T) {
	tests := []struct {
		text   string
		want   int
		wantOK bool
	}{
		{"72", 72, true},
		{" 68 ", 68, true},
		{"-3", -3, true},
		{"+2", 2, true},
		{"0", 0, true},
		{"71 (net)", 71, true},
		{"7.5", 7, true},
		{"", 0, false},
		{"   ", 0, false},
		{"DNF", 0, false},
		{"-", 0, false},
		{"+-3", 0, false},
		{"99999999999999999999999", 0, false},
		{"9223372036854775807", 0, false},
		{"999", 999, true},
		{"-999", -999, true},
		{"1000", 0, false},
		{"-1000", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, ok := ParseScore(tt.text)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ParseScore(%q) = (%d, %v), want (%d, %v)", tt.text, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestIDFor(t *testing.T) {
	tests := []struct {
		name string
		want PlayerID
	}{
		{"Alex Johnson", "AlexJohnson"},
		{"  Alex   Johnson  ", "AlexJohnson"},
		{"Mike O'Neil", "MikeONeil"},
		{`Mike "The Hammer" ONeil`, "MikeTheHammerONeil"},
		{"José Núñez", "JoséNúñez"},
		{"player_1", "player_1"},
		{"Mia-Rodriguez!", "MiaRodriguez"},
		{"!!!", "!!!"},
		{" - ", "-"},
		{"   ", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IDFor(tt.name); got != tt.want {
				t.Errorf("IDFor(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestIDFor_CaseSensitive(t *testing.T) {
	if IDFor("alex") == IDFor("Alex") {
		t.Error("IDFor should preserve case")
	}
}
