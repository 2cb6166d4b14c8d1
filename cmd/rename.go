package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

// renameCmd renames a category or an account.
type renameCmd struct {
	category string
	account  string
	to       string
}

func (*renameCmd) Name() string     { return "rename" }
func (*renameCmd) Synopsis() string { return "rename a category or account" }
func (*renameCmd) Usage() string {
	return `nwt rename -account <name> -to <new name>
nwt rename -category <name> -to <new name>

  Renames an account (keeping its value history) or a category (updating
  every account under it).
`
}

func (c *renameCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.category, "category", "", "Category to rename.")
	f.StringVar(&c.account, "account", "", "Account to rename.")
	f.StringVar(&c.to, "to", "", "The new name.")
}

func (c *renameCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.to == "" {
		return errorf("missing -to")
	}
	if (c.category == "") == (c.account == "") {
		return errorf("use exactly one of -category or -account")
	}
	ledger, err := DecodeLedger()
	if err != nil {
		return errorf("%v", err)
	}
	if c.account != "" {
		err = ledger.RenameAccount(c.account, c.to)
	} else {
		err = ledger.RenameCategory(c.category, c.to)
	}
	if err != nil {
		return errorf("%v", err)
	}
	if err := SaveLedger(ledger); err != nil {
		return errorf("%v", err)
	}
	fmt.Printf("Renamed to %q\n", c.to)
	return subcommands.ExitSuccess
}
