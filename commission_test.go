package clinicbook

import "testing"

func TestComputeSplit(t *testing.T) {
	tests := []struct {
		name         string
		gross        Money
		p            Percent
		professional Money
		clinic       Money
	}{
		{"thirty percent", M(200), 30, M(60), M(140)},
		{"zero percent", M(150), 0, M(0), M(150)},
		{"full percent sentinel", M(500), 100, M(0), M(500)},
		{"fractional gross", M(99.90), 50, M(49.95), M(49.95)},
		{"zero gross", M(0), 30, M(0), M(0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			professional, clinic := ComputeSplit(tt.gross, tt.p)
			if !professional.Equal(tt.professional) {
				t.Errorf("professional share = %v, want %v", professional, tt.professional)
			}
			if !clinic.Equal(tt.clinic) {
				t.Errorf("clinic share = %v, want %v", clinic, tt.clinic)
			}
		})
	}
}

// The two shares must always reassemble the gross exactly, whatever the
// rounding of the professional share.
func TestComputeSplitSumsToGross(t *testing.T) {
	grosses := []Money{M(0.01), M(1), M(33.33), M(99.99), M(1234.56)}
	for _, gross := range grosses {
		for p := Percent(0); p <= 100; p++ {
			professional, clinic := ComputeSplit(gross, p)
			if !professional.Add(clinic).Equal(gross) {
				t.Fatalf("split of %v at %v: %v + %v != gross", gross, p, professional, clinic)
			}
		}
	}
}

func TestParsePercent(t *testing.T) {
	tests := []struct {
		input string
		want  Percent
		err   bool
	}{
		{"0", 0, false},
		{"30", 30, false},
		{"100", 100, false},
		{"101", 0, true},
		{"-1", 0, true},
		{"abc", 0, true},
		{"30.5", 0, true},
	}
	for _, tt := range tests {
		got, err := ParsePercent(tt.input)
		if (err != nil) != tt.err {
			t.Errorf("ParsePercent(%q) error = %v, wantErr %v", tt.input, err, tt.err)
			continue
		}
		if !tt.err && got != tt.want {
			t.Errorf("ParsePercent(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
