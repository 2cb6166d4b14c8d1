package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/tessier/networth"
)

// declareCmd declares a new category or account.
type declareCmd struct {
	category string
	account  string
	currency string
}

func (*declareCmd) Name() string     { return "declare" }
func (*declareCmd) Synopsis() string { return "declare a new category or account" }
func (*declareCmd) Usage() string {
	return `nwt declare -category <name>
nwt declare -account <name> -category <name> [-currency <code>]

  Declares a category, or an account under an existing category.
`
}

func (c *declareCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.category, "category", "", "Category to declare, or the category of the new account.")
	f.StringVar(&c.account, "account", "", "Account to declare.")
	f.StringVar(&c.currency, "currency", "GBP", "Currency of the new account.")
}

func (c *declareCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.category == "" && c.account == "" {
		return errorf("nothing to declare, use -category or -account")
	}
	ledger, err := DecodeLedger()
	if err != nil {
		return errorf("%v", err)
	}
	if c.account == "" {
		if err := ledger.DeclareCategory(c.category); err != nil {
			return errorf("%v", err)
		}
		fmt.Printf("Declared category %q\n", c.category)
	} else {
		a := networth.Account{Name: c.account, Category: c.category, Currency: c.currency}
		if err := ledger.DeclareAccount(a); err != nil {
			return errorf("%v", err)
		}
		fmt.Printf("Declared account %q under %q in %s\n", c.account, c.category, c.currency)
	}
	if err := SaveLedger(ledger); err != nil {
		return errorf("%v", err)
	}
	return subcommands.ExitSuccess
}
