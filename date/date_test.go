package date

import (
	"testing"
	"time"
)

func TestNewNormalizes(t *testing.T) {
	// Day overflow rolls into the next month.
	d := New(2025, time.January, 32)
	if d.String() != "2025-02-01" {
		t.Errorf("New(2025, January, 32) = %s, want 2025-02-01", d)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want string
		err  bool
	}{
		{in: "2025-07-01", want: "2025-07-01"},
		{in: "2025-7-1", want: "2025-07-01"},
		{in: "not-a-date", err: true},
	}
	for _, tc := range tests {
		got, err := Parse(tc.in)
		if tc.err != (err != nil) {
			t.Errorf("Parse(%q) error = %v, want error = %v", tc.in, err, tc.err)
			continue
		}
		if err == nil && got.String() != tc.want {
			t.Errorf("Parse(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestRangeContains(t *testing.T) {
	r := NewRange(New(2025, time.March, 1), New(2025, time.March, 31))
	if !r.Contains(New(2025, time.March, 1)) || !r.Contains(New(2025, time.March, 31)) {
		t.Error("range boundaries should be included")
	}
	if r.Contains(New(2025, time.April, 1)) {
		t.Error("2025-04-01 should be outside the range")
	}
}
