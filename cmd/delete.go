package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

// deleteCmd deletes a category or an account.
type deleteCmd struct {
	category string
	account  string
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete a category or account" }
func (*deleteCmd) Usage() string {
	return `nwt delete -account <name>
nwt delete -category <name>

  Deletes an account and its value history, or an empty category.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.category, "category", "", "Category to delete. Must have no accounts.")
	f.StringVar(&c.account, "account", "", "Account to delete, with its whole history.")
}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if (c.category == "") == (c.account == "") {
		return errorf("use exactly one of -category or -account")
	}
	ledger, err := DecodeLedger()
	if err != nil {
		return errorf("%v", err)
	}
	if c.account != "" {
		err = ledger.DeleteAccount(c.account)
	} else {
		err = ledger.DeleteCategory(c.category)
	}
	if err != nil {
		return errorf("%v", err)
	}
	if err := SaveLedger(ledger); err != nil {
		return errorf("%v", err)
	}
	fmt.Println("Deleted")
	return subcommands.ExitSuccess
}
