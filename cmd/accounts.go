package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"
)

// accountsCmd lists the declared categories and accounts.
type accountsCmd struct{}

func (*accountsCmd) Name() string     { return "accounts" }
func (*accountsCmd) Synopsis() string { return "list declared categories and accounts" }
func (*accountsCmd) Usage() string {
	return `nwt accounts

  Lists every declared category and the accounts under it.
`
}

func (c *accountsCmd) SetFlags(f *flag.FlagSet) {}

func (c *accountsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		return errorf("%v", err)
	}

	var b strings.Builder
	b.WriteString("# Accounts\n\n")
	for _, category := range ledger.Categories() {
		fmt.Fprintf(&b, "## %s\n\n", category)
		for _, a := range ledger.Accounts() {
			if a.Category == category {
				fmt.Fprintf(&b, "* %s (%s)\n", a.Name, a.Currency)
			}
		}
		b.WriteString("\n")
	}
	if len(ledger.Categories()) == 0 {
		b.WriteString("No categories yet. Start with `nwt declare -category <name>`.\n")
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
