package date

import (
	"testing"
	"time"
)

func TestHistoryAppendKeepsOrder(t *testing.T) {
	h := &History[float64]{}
	h.Append(New(2025, time.March, 1), 3)
	h.Append(New(2025, time.January, 1), 1)
	h.Append(New(2025, time.February, 1), 2)

	var got []float64
	for _, v := range h.Values() {
		got = append(got, v)
	}
	want := []float64{1, 2, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("values in order = %v, want %v", got, want)
		}
	}
}

func TestHistoryAppendOverwrites(t *testing.T) {
	h := &History[float64]{}
	on := New(2025, time.June, 15)
	h.Append(on, 100).Append(on, 200)
	if h.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", h.Len())
	}
	if _, v := h.Latest(); v != 200 {
		t.Errorf("Latest() = %v, want 200 (last write wins)", v)
	}
}

func TestHistoryValueAsOf(t *testing.T) {
	h := &History[float64]{}
	h.Append(New(2025, time.January, 10), 10)
	h.Append(New(2025, time.March, 10), 30)

	if _, ok := h.ValueAsOf(New(2025, time.January, 9)); ok {
		t.Error("no value should exist before the first point")
	}
	if v, ok := h.ValueAsOf(New(2025, time.February, 1)); !ok || v != 10 {
		t.Errorf("ValueAsOf(2025-02-01) = %v, %v; want 10, true", v, ok)
	}
	if v, ok := h.ValueAsOf(New(2025, time.December, 31)); !ok || v != 30 {
		t.Errorf("ValueAsOf(2025-12-31) = %v, %v; want 30, true", v, ok)
	}
}

func TestHistoryDelete(t *testing.T) {
	h := &History[float64]{}
	on := New(2025, time.May, 1)
	h.Append(on, 1)
	if !h.Delete(on) {
		t.Fatal("Delete should report true for an existing point")
	}
	if h.Delete(on) {
		t.Fatal("Delete should report false for a missing point")
	}
	if h.Len() != 0 {
		t.Errorf("Len() = %d, want 0", h.Len())
	}
}
