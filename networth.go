package networth

import (
	"fmt"

	"github.com/tessier/networth/date"
)

// Converter converts an amount between two ISO 4217 currencies. The fx
// package provides one backed by a live rate feed; tests inject fixed rates.
type Converter func(amount float64, from, to string) (float64, error)

// SameCurrency is a Converter that only accepts conversions where both
// currencies match. It is the fallback when no rate feed is available.
func SameCurrency(amount float64, from, to string) (float64, error) {
	if from != to {
		return 0, fmt.Errorf("no exchange rate available for %s to %s", from, to)
	}
	return amount, nil
}

// GroupBy selects the grouping axis of a Distribution.
type GroupBy int

const (
	ByCategory GroupBy = iota
	ByAccount
)

// Summary is the state of the ledger on a given day, with every account
// valued at its latest record on or before that day and converted into a
// single reporting currency.
type Summary struct {
	On       date.Date
	Currency string
	Total    float64
	// ByCategory and ByAccount partition Total along each axis. An account
	// with no record on or before On contributes nothing and is absent.
	ByCategory map[string]float64
	ByAccount  map[string]float64
}

// NetWorth values every account at the given date and returns the total in
// the reporting currency.
func (l *Ledger) NetWorth(on date.Date, currency string, convert Converter) (float64, error) {
	s, err := l.Summarize(on, currency, convert)
	if err != nil {
		return 0, err
	}
	return s.Total, nil
}

// Summarize builds the full per-category and per-account breakdown of the
// ledger at the given date.
func (l *Ledger) Summarize(on date.Date, currency string, convert Converter) (*Summary, error) {
	if convert == nil {
		convert = SameCurrency
	}
	s := &Summary{
		On:         on,
		Currency:   currency,
		ByCategory: make(map[string]float64),
		ByAccount:  make(map[string]float64),
	}
	for _, a := range l.Accounts() {
		v, ok := l.Value(a.Name, on)
		if !ok {
			continue
		}
		amount, err := convert(v.AsFloat(), a.Currency, currency)
		if err != nil {
			return nil, fmt.Errorf("valuing account %q: %w", a.Name, err)
		}
		s.Total += amount
		s.ByAccount[a.Name] += amount
		s.ByCategory[a.Category] += amount
	}
	return s, nil
}

// Distribution returns the share of net worth per group at the given date.
// Shares are percentages summing to 100 when the total is positive.
func (l *Ledger) Distribution(on date.Date, by GroupBy, currency string, convert Converter) (map[string]Percent, error) {
	s, err := l.Summarize(on, currency, convert)
	if err != nil {
		return nil, err
	}
	groups := s.ByCategory
	if by == ByAccount {
		groups = s.ByAccount
	}
	dist := make(map[string]Percent, len(groups))
	for name, amount := range groups {
		if s.Total == 0 {
			dist[name] = 0
			continue
		}
		dist[name] = Percent(100 * amount / s.Total)
	}
	return dist, nil
}

// NetWorthHistory computes the net worth at every date the ledger has a
// record for, in chronological order.
func (l *Ledger) NetWorthHistory(currency string, convert Converter) (*date.History[float64], error) {
	h := &date.History[float64]{}
	for _, day := range l.Days() {
		total, err := l.NetWorth(day, currency, convert)
		if err != nil {
			return nil, err
		}
		h.Append(day, total)
	}
	return h, nil
}
