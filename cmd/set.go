package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/tessier/networth"
	"github.com/tessier/networth/date"
)

// setCmd records the value of an account on a date.
type setCmd struct {
	account  string
	amount   float64
	currency string
	on       string
}

func (*setCmd) Name() string     { return "set" }
func (*setCmd) Synopsis() string { return "record the value of an account" }
func (*setCmd) Usage() string {
	return `nwt set -account <name> -amount <value> [-on <date>] [-currency <code>]

  Records the value of an account on a date. Recording again on the same
  date overwrites the previous value.
`
}

func (c *setCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "account", "", "Account to record a value for.")
	f.Float64Var(&c.amount, "amount", 0, "The account's value.")
	f.StringVar(&c.currency, "currency", "", "Currency of the amount. Defaults to the account's currency.")
	f.StringVar(&c.on, "on", date.Today().String(), "Date of the record (YYYY-MM-DD).")
}

func (c *setCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.account == "" {
		return errorf("missing -account")
	}
	on, err := date.Parse(c.on)
	if err != nil {
		return errorf("invalid -on date: %v", err)
	}
	ledger, err := DecodeLedger()
	if err != nil {
		return errorf("%v", err)
	}
	currency := c.currency
	if currency == "" {
		if a, ok := ledger.Account(c.account); ok {
			currency = a.Currency
		}
	}
	if err := ledger.SetValue(c.account, on, networth.M(c.amount, currency)); err != nil {
		return errorf("%v", err)
	}
	if err := SaveLedger(ledger); err != nil {
		return errorf("%v", err)
	}
	fmt.Printf("Recorded %s = %.2f %s on %s\n", c.account, c.amount, currency, on)
	return subcommands.ExitSuccess
}
