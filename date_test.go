package clinicbook

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	today := Today()

	tests := []struct {
		input    string
		expected Date
		err      bool
	}{
		// ISO format, lenient about leading zeros
		{"2025-01-15", NewDate(2025, time.January, 15), false},
		{"2025-7-1", NewDate(2025, time.July, 1), false},
		{"invalid-date", Date{}, true},

		// Relative offsets from today
		{"-1d", today.Add(-1), false},
		{"+1d", today.Add(1), false},
		{"+1m", today.AddMonth(1), false},
		{"-2m", today.AddMonth(-2), false},
		{"0d", today, false},
		{"", today, false},
		{"1d", Date{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if (err != nil) != tt.err {
				t.Errorf("ParseDate(%q) error = %v, wantErr %v", tt.input, err, tt.err)
				return
			}
			if !tt.err && got != tt.expected {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSameMonth(t *testing.T) {
	tests := []struct {
		a, b Date
		want bool
	}{
		{NewDate(2024, time.May, 1), NewDate(2024, time.May, 31), true},
		{NewDate(2024, time.May, 31), NewDate(2024, time.June, 1), false},
		{NewDate(2023, time.May, 1), NewDate(2024, time.May, 1), false},
	}
	for _, tt := range tests {
		if got := tt.a.SameMonth(tt.b); got != tt.want {
			t.Errorf("%v.SameMonth(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestEndOfMonth(t *testing.T) {
	if got := NewDate(2024, time.February, 10).EndOfMonth(); got != NewDate(2024, time.February, 29) {
		t.Errorf("EndOfMonth() = %v, want 2024-02-29", got)
	}
	if got := NewDate(2023, time.February, 10).EndOfMonth(); got != NewDate(2023, time.February, 28) {
		t.Errorf("EndOfMonth() = %v, want 2023-02-28", got)
	}
}

func TestDateJSON(t *testing.T) {
	d := NewDate(2024, time.May, 1)
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != `"2024-05-01"` {
		t.Errorf("Marshal() = %s, want %q", data, "2024-05-01")
	}

	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if back != d {
		t.Errorf("round trip = %v, want %v", back, d)
	}

	// Blobs written by hand sometimes skip leading zeros.
	if err := json.Unmarshal([]byte(`"2024-5-1"`), &back); err != nil {
		t.Fatalf("Unmarshal lenient date error = %v", err)
	}
	if back != d {
		t.Errorf("lenient round trip = %v, want %v", back, d)
	}
}
