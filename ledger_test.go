package networth

import (
	"testing"

	"github.com/tessier/networth/date"
)

func newTestLedger(t *testing.T) *Ledger {
	t.Helper()
	l := NewLedger()
	for _, c := range []string{"Savings", "Pension", "Property"} {
		if err := l.DeclareCategory(c); err != nil {
			t.Fatalf("DeclareCategory(%q): %v", c, err)
		}
	}
	accounts := []Account{
		{Name: "Cash ISA", Category: "Savings", Currency: "GBP"},
		{Name: "SIPP", Category: "Pension", Currency: "GBP"},
		{Name: "Flat 12b", Category: "Property", Currency: "GBP"},
	}
	for _, a := range accounts {
		if err := l.DeclareAccount(a); err != nil {
			t.Fatalf("DeclareAccount(%q): %v", a.Name, err)
		}
	}
	return l
}

func TestDeclareCategory(t *testing.T) {
	l := newTestLedger(t)
	if err := l.DeclareCategory("Savings"); err == nil {
		t.Error("declaring a duplicate category should fail")
	}
	if err := l.DeclareCategory(""); err == nil {
		t.Error("declaring an empty category should fail")
	}
	got := l.Categories()
	want := []string{"Pension", "Property", "Savings"}
	if len(got) != len(want) {
		t.Fatalf("Categories() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Categories()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestDeclareAccount(t *testing.T) {
	l := newTestLedger(t)
	if err := l.DeclareAccount(Account{Name: "Cash ISA", Category: "Savings"}); err == nil {
		t.Error("declaring a duplicate account should fail")
	}
	if err := l.DeclareAccount(Account{Name: "Misc", Category: "Nope"}); err == nil {
		t.Error("declaring an account under an unknown category should fail")
	}
	// Currency defaults to GBP.
	if err := l.DeclareAccount(Account{Name: "Premium Bonds", Category: "Savings"}); err != nil {
		t.Fatalf("DeclareAccount: %v", err)
	}
	a, ok := l.Account("Premium Bonds")
	if !ok || a.Currency != "GBP" {
		t.Errorf("Account(Premium Bonds) = %+v, %v, want GBP default currency", a, ok)
	}
}

func TestRenameCategory(t *testing.T) {
	l := newTestLedger(t)
	if err := l.RenameCategory("Savings", "Liquid"); err != nil {
		t.Fatalf("RenameCategory: %v", err)
	}
	if l.HasCategory("Savings") {
		t.Error("old category name should be gone")
	}
	a, _ := l.Account("Cash ISA")
	if a.Category != "Liquid" {
		t.Errorf("account category = %q, want Liquid", a.Category)
	}
	if err := l.RenameCategory("Liquid", "Pension"); err == nil {
		t.Error("renaming onto an existing category should fail")
	}
}

func TestRenameAccountKeepsHistory(t *testing.T) {
	l := newTestLedger(t)
	on := date.New(2026, 1, 31)
	if err := l.SetValue("Cash ISA", on, M(1000, "GBP")); err != nil {
		t.Fatalf("SetValue: %v", err)
	}
	if err := l.RenameAccount("Cash ISA", "Stocks ISA"); err != nil {
		t.Fatalf("RenameAccount: %v", err)
	}
	if _, ok := l.Value("Cash ISA", on); ok {
		t.Error("old account name should have no values")
	}
	v, ok := l.Value("Stocks ISA", on)
	if !ok || !v.Equal(M(1000, "GBP")) {
		t.Errorf("Value after rename = %v, %v, want £1000", v, ok)
	}
}

func TestDeleteCategoryRefusesWhileInUse(t *testing.T) {
	l := newTestLedger(t)
	if err := l.DeleteCategory("Savings"); err == nil {
		t.Error("deleting a category with accounts should fail")
	}
	if err := l.DeleteAccount("Cash ISA"); err != nil {
		t.Fatalf("DeleteAccount: %v", err)
	}
	if err := l.DeleteCategory("Savings"); err != nil {
		t.Errorf("deleting an emptied category should succeed, got %v", err)
	}
}

func TestSetValueCurrencyMismatch(t *testing.T) {
	l := newTestLedger(t)
	err := l.SetValue("Cash ISA", date.New(2026, 1, 31), M(1000, "USD"))
	if err == nil {
		t.Error("recording a USD value on a GBP account should fail")
	}
}

func TestValueAsOf(t *testing.T) {
	l := newTestLedger(t)
	l.SetValue("Cash ISA", date.New(2026, 1, 31), M(1000, "GBP"))
	l.SetValue("Cash ISA", date.New(2026, 3, 31), M(1200, "GBP"))

	if _, ok := l.Value("Cash ISA", date.New(2026, 1, 1)); ok {
		t.Error("no value should exist before the first record")
	}
	v, ok := l.Value("Cash ISA", date.New(2026, 2, 15))
	if !ok || !v.Equal(M(1000, "GBP")) {
		t.Errorf("Value mid-range = %v, want the January record", v)
	}
	v, _ = l.Value("Cash ISA", date.New(2026, 12, 31))
	if !v.Equal(M(1200, "GBP")) {
		t.Errorf("latest value = %v, want £1200", v)
	}
}

func TestDeleteByDate(t *testing.T) {
	l := newTestLedger(t)
	on := date.New(2026, 1, 31)
	l.SetValue("Cash ISA", on, M(1000, "GBP"))
	l.SetValue("SIPP", on, M(50000, "GBP"))
	l.SetValue("SIPP", date.New(2026, 2, 28), M(51000, "GBP"))

	if n := l.DeleteByDate(on); n != 2 {
		t.Errorf("DeleteByDate removed %d records, want 2", n)
	}
	if _, ok := l.Value("Cash ISA", on); ok {
		t.Error("Cash ISA record should be gone")
	}
	if _, ok := l.Value("SIPP", date.New(2026, 2, 28)); !ok {
		t.Error("later SIPP record should survive")
	}
}

func TestRecordsCanonicalOrder(t *testing.T) {
	l := newTestLedger(t)
	// Insert out of order, across accounts.
	l.SetValue("SIPP", date.New(2026, 2, 28), M(51000, "GBP"))
	l.SetValue("Cash ISA", date.New(2026, 1, 31), M(1000, "GBP"))
	l.SetValue("SIPP", date.New(2026, 1, 31), M(50000, "GBP"))

	records := l.Records()
	if len(records) != 3 {
		t.Fatalf("Records() returned %d records, want 3", len(records))
	}
	// Chronological, then alphabetical by account within a day.
	wantAccounts := []string{"Cash ISA", "SIPP", "SIPP"}
	for i, rec := range records {
		if rec.Account != wantAccounts[i] {
			t.Errorf("Records()[%d].Account = %q, want %q", i, rec.Account, wantAccounts[i])
		}
	}
	if !records[2].On.After(records[1].On) {
		t.Error("records should be in chronological order")
	}
}
