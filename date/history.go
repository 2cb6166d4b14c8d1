package date

import (
	"iter"
	"slices"
	"sort"
)

// History stores a chronological series of values, each associated with a
// specific date. Dates are unique and the series is always sorted.
type History[T any] struct {
	days   []Date
	values []T
}

// Len returns the number of items in the history.
func (h *History[T]) Len() int { return len(h.days) }

// Latest returns the latest date and value in the history.
// If the history is empty, it returns zero values.
func (h *History[T]) Latest() (day Date, value T) {
	last := len(h.days) - 1
	if last < 0 {
		return Date{}, *new(T)
	}
	return h.days[last], h.values[last]
}

// sort keeps the history in chronological order.
func (h *History[T]) sort() {
	sort.Sort(chronological[T]{h})
}

type chronological[T any] struct{ *History[T] }

func (s chronological[T]) Less(i, j int) bool { return s.days[i].Before(s.days[j]) }
func (s chronological[T]) Swap(i, j int) {
	s.days[i], s.days[j] = s.days[j], s.days[i]
	s.values[i], s.values[j] = s.values[j], s.values[i]
}

// Append adds a point to the history. An existing value at that date is
// overwritten: the last data has the higher priority.
func (h *History[T]) Append(on Date, v T) *History[T] {
	if i := slices.Index(h.days, on); i >= 0 {
		h.values[i] = v
		return h
	}
	h.days, h.values = append(h.days, on), append(h.values, v)
	h.sort()
	return h
}

// ValueAsOf returns the latest value recorded on or before the given date,
// and false when the history has no point on or before it.
func (h *History[T]) ValueAsOf(on Date) (T, bool) {
	// binary search for the first day strictly after `on`.
	i := sort.Search(len(h.days), func(i int) bool { return h.days[i].After(on) })
	if i == 0 {
		return *new(T), false
	}
	return h.values[i-1], true
}

// Delete removes the point recorded at exactly the given date, reporting
// whether a point was removed.
func (h *History[T]) Delete(on Date) bool {
	i := slices.Index(h.days, on)
	if i < 0 {
		return false
	}
	h.days = slices.Delete(h.days, i, i+1)
	h.values = slices.Delete(h.values, i, i+1)
	return true
}

// Values returns an iterator over all date/value pairs in chronological order.
func (h *History[T]) Values() iter.Seq2[Date, T] {
	return func(yield func(Date, T) bool) {
		for i, day := range h.days {
			if !yield(day, h.values[i]) {
				return
			}
		}
	}
}

// Days returns all dates present in the history, in chronological order.
func (h *History[T]) Days() []Date { return slices.Clone(h.days) }
