package networth

import (
	"fmt"
	"slices"
	"sort"

	"github.com/tessier/networth/date"
)

// Account identifies one tracked account: a bank account, an ISA, a
// pension pot, a property. Accounts are grouped into user-defined
// categories and carry the currency of their recorded values.
type Account struct {
	Name     string
	Category string
	Currency string
}

// ValueRecord is a dated observation of an account's value. For a given
// (date, account) pair the last record wins.
type ValueRecord struct {
	On      date.Date
	Account string
	Amount  Money
}

// Ledger holds all declared categories and accounts, and the chronological
// value histories of each account.
//
// A Ledger is not safe for concurrent mutation; the surrounding CLI loads,
// mutates, and saves it within one short-lived process.
type Ledger struct {
	categories []string // sorted, unique
	accounts   map[string]Account
	values     map[string]*date.History[Money]
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		accounts: make(map[string]Account),
		values:   make(map[string]*date.History[Money]),
	}
}

// Categories returns all declared category names in alphabetical order.
func (l *Ledger) Categories() []string { return slices.Clone(l.categories) }

// Accounts returns all declared accounts sorted by name.
func (l *Ledger) Accounts() []Account {
	accounts := make([]Account, 0, len(l.accounts))
	for _, a := range l.accounts {
		accounts = append(accounts, a)
	}
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].Name < accounts[j].Name })
	return accounts
}

// Account returns the account declared with this name, or false if unknown.
func (l *Ledger) Account(name string) (Account, bool) {
	a, ok := l.accounts[name]
	return a, ok
}

// HasCategory reports whether the category is declared.
func (l *Ledger) HasCategory(name string) bool {
	_, found := slices.BinarySearch(l.categories, name)
	return found
}

// DeclareCategory declares a new category.
func (l *Ledger) DeclareCategory(name string) error {
	if name == "" {
		return fmt.Errorf("category name cannot be empty")
	}
	i, found := slices.BinarySearch(l.categories, name)
	if found {
		return fmt.Errorf("category %q is already declared", name)
	}
	l.categories = slices.Insert(l.categories, i, name)
	return nil
}

// DeclareAccount declares a new account under an existing category.
func (l *Ledger) DeclareAccount(a Account) error {
	if a.Name == "" {
		return fmt.Errorf("account name cannot be empty")
	}
	if _, ok := l.accounts[a.Name]; ok {
		return fmt.Errorf("account %q is already declared", a.Name)
	}
	if !l.HasCategory(a.Category) {
		return fmt.Errorf("unknown category %q for account %q", a.Category, a.Name)
	}
	if a.Currency == "" {
		a.Currency = "GBP"
	}
	l.accounts[a.Name] = a
	l.values[a.Name] = &date.History[Money]{}
	return nil
}

// RenameCategory renames a category and updates every account referring to it.
func (l *Ledger) RenameCategory(old, new string) error {
	if !l.HasCategory(old) {
		return fmt.Errorf("unknown category %q", old)
	}
	if l.HasCategory(new) {
		return fmt.Errorf("category %q already exists", new)
	}
	i, _ := slices.BinarySearch(l.categories, old)
	l.categories = slices.Delete(l.categories, i, i+1)
	j, _ := slices.BinarySearch(l.categories, new)
	l.categories = slices.Insert(l.categories, j, new)
	for name, a := range l.accounts {
		if a.Category == old {
			a.Category = new
			l.accounts[name] = a
		}
	}
	return nil
}

// RenameAccount renames an account, carrying its value history over.
func (l *Ledger) RenameAccount(old, new string) error {
	a, ok := l.accounts[old]
	if !ok {
		return fmt.Errorf("unknown account %q", old)
	}
	if _, ok := l.accounts[new]; ok {
		return fmt.Errorf("account %q already exists", new)
	}
	if new == "" {
		return fmt.Errorf("account name cannot be empty")
	}
	a.Name = new
	l.accounts[new] = a
	l.values[new] = l.values[old]
	delete(l.accounts, old)
	delete(l.values, old)
	return nil
}

// DeleteAccount removes an account and all its recorded values.
func (l *Ledger) DeleteAccount(name string) error {
	if _, ok := l.accounts[name]; !ok {
		return fmt.Errorf("unknown account %q", name)
	}
	delete(l.accounts, name)
	delete(l.values, name)
	return nil
}

// DeleteCategory removes a category. It refuses while accounts still refer
// to it, to avoid silently orphaning their histories.
func (l *Ledger) DeleteCategory(name string) error {
	if !l.HasCategory(name) {
		return fmt.Errorf("unknown category %q", name)
	}
	for _, a := range l.accounts {
		if a.Category == name {
			return fmt.Errorf("category %q still has account %q; delete or move it first", name, a.Name)
		}
	}
	i, _ := slices.BinarySearch(l.categories, name)
	l.categories = slices.Delete(l.categories, i, i+1)
	return nil
}

// SetValue records (or overwrites) the value of an account on a date.
func (l *Ledger) SetValue(account string, on date.Date, amount Money) error {
	a, ok := l.accounts[account]
	if !ok {
		return fmt.Errorf("unknown account %q", account)
	}
	if amount.Currency() != "" && amount.Currency() != a.Currency {
		return fmt.Errorf("account %q is held in %s, cannot record a %s value", account, a.Currency, amount.Currency())
	}
	l.values[account].Append(on, moneyFromDecimal(amount.Decimal(), a.Currency))
	return nil
}

// Append records a value from its record form, as read from the ledger file.
func (l *Ledger) Append(rec ValueRecord) error {
	return l.SetValue(rec.Account, rec.On, rec.Amount)
}

// DeleteByDate removes every value recorded at exactly this date, across
// all accounts, and returns how many records were removed.
func (l *Ledger) DeleteByDate(on date.Date) int {
	var removed int
	for _, h := range l.values {
		if h.Delete(on) {
			removed++
		}
	}
	return removed
}

// Value returns the latest value of an account on or before the given date.
func (l *Ledger) Value(account string, on date.Date) (Money, bool) {
	h, ok := l.values[account]
	if !ok {
		return Money{}, false
	}
	return h.ValueAsOf(on)
}

// Days returns every date with at least one value record, sorted and unique.
func (l *Ledger) Days() []date.Date {
	var days []date.Date
	for _, h := range l.values {
		for _, d := range h.Days() {
			if !slices.Contains(days, d) {
				days = append(days, d)
			}
		}
	}
	slices.SortFunc(days, func(a, b date.Date) int {
		switch {
		case a.Before(b):
			return -1
		case a.After(b):
			return 1
		default:
			return 0
		}
	})
	return days
}

// Records returns every value record in chronological order, accounts in
// alphabetical order within a day. This is the canonical order used by the
// JSONL encoding.
func (l *Ledger) Records() []ValueRecord {
	var records []ValueRecord
	for _, day := range l.Days() {
		for _, a := range l.Accounts() {
			h := l.values[a.Name]
			for on, v := range h.Values() {
				if on == day {
					records = append(records, ValueRecord{On: on, Account: a.Name, Amount: v})
				}
			}
		}
	}
	return records
}
