package networth

import (
	"math"
	"testing"

	"github.com/tessier/networth/date"
)

// fixedRates converts through GBP with a small fixed table.
func fixedRates(amount float64, from, to string) (float64, error) {
	rates := map[string]float64{"GBP": 1, "EUR": 0.85, "USD": 0.78}
	return amount * rates[from] / rates[to], nil
}

func TestNetWorth(t *testing.T) {
	l := newTestLedger(t)
	on := date.New(2026, 6, 30)
	l.SetValue("Cash ISA", on, M(10_000, "GBP"))
	l.SetValue("SIPP", on, M(80_000, "GBP"))
	l.SetValue("Flat 12b", on, M(250_000, "GBP"))

	total, err := l.NetWorth(on, "GBP", SameCurrency)
	if err != nil {
		t.Fatalf("NetWorth: %v", err)
	}
	if total != 340_000 {
		t.Errorf("NetWorth = %.2f, want 340000", total)
	}
}

func TestNetWorthIgnoresUnvaluedAccounts(t *testing.T) {
	l := newTestLedger(t)
	l.SetValue("Cash ISA", date.New(2026, 6, 30), M(10_000, "GBP"))

	total, err := l.NetWorth(date.New(2026, 12, 31), "GBP", nil)
	if err != nil {
		t.Fatalf("NetWorth: %v", err)
	}
	if total != 10_000 {
		t.Errorf("NetWorth = %.2f, want only the valued account", total)
	}
}

func TestNetWorthConvertsCurrencies(t *testing.T) {
	l := newTestLedger(t)
	if err := l.DeclareAccount(Account{Name: "US Broker", Category: "Savings", Currency: "USD"}); err != nil {
		t.Fatal(err)
	}
	on := date.New(2026, 6, 30)
	l.SetValue("Cash ISA", on, M(1000, "GBP"))
	l.SetValue("US Broker", on, M(1000, "USD"))

	total, err := l.NetWorth(on, "GBP", fixedRates)
	if err != nil {
		t.Fatalf("NetWorth: %v", err)
	}
	if math.Abs(total-1780) > 0.01 {
		t.Errorf("NetWorth = %.2f, want 1780.00", total)
	}

	// Without a converter, mixing currencies must fail loudly.
	if _, err := l.NetWorth(on, "GBP", SameCurrency); err == nil {
		t.Error("NetWorth across currencies without rates should fail")
	}
}

func TestSummarize(t *testing.T) {
	l := newTestLedger(t)
	on := date.New(2026, 6, 30)
	l.SetValue("Cash ISA", on, M(10_000, "GBP"))
	l.SetValue("SIPP", on, M(90_000, "GBP"))

	s, err := l.Summarize(on, "GBP", nil)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if s.Total != 100_000 {
		t.Errorf("Total = %.2f, want 100000", s.Total)
	}
	if s.ByCategory["Savings"] != 10_000 || s.ByCategory["Pension"] != 90_000 {
		t.Errorf("ByCategory = %v", s.ByCategory)
	}
	if _, ok := s.ByCategory["Property"]; ok {
		t.Error("unvalued category should be absent from the breakdown")
	}
}

func TestDistribution(t *testing.T) {
	l := newTestLedger(t)
	on := date.New(2026, 6, 30)
	l.SetValue("Cash ISA", on, M(25_000, "GBP"))
	l.SetValue("SIPP", on, M(75_000, "GBP"))

	dist, err := l.Distribution(on, ByCategory, "GBP", nil)
	if err != nil {
		t.Fatalf("Distribution: %v", err)
	}
	if !dist["Savings"].Equal(Percent(25)) || !dist["Pension"].Equal(Percent(75)) {
		t.Errorf("Distribution = %v, want 25%%/75%%", dist)
	}
	var sum Percent
	for _, p := range dist {
		sum += p
	}
	if !sum.Equal(Percent(100)) {
		t.Errorf("shares sum to %v, want 100%%", sum)
	}
}

func TestNetWorthHistory(t *testing.T) {
	l := newTestLedger(t)
	l.SetValue("Cash ISA", date.New(2026, 1, 31), M(1000, "GBP"))
	l.SetValue("SIPP", date.New(2026, 2, 28), M(50_000, "GBP"))
	l.SetValue("Cash ISA", date.New(2026, 3, 31), M(1200, "GBP"))

	h, err := l.NetWorthHistory("GBP", nil)
	if err != nil {
		t.Fatalf("NetWorthHistory: %v", err)
	}
	if h.Len() != 3 {
		t.Fatalf("history has %d points, want 3", h.Len())
	}
	// Each point carries forward the latest value of every account.
	wants := []float64{1000, 51_000, 51_200}
	i := 0
	for _, total := range h.Values() {
		if total != wants[i] {
			t.Errorf("point %d = %.2f, want %.2f", i, total, wants[i])
		}
		i++
	}
}
