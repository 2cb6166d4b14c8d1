package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/tessier/networth/date"
)

// rmCmd removes every value recorded on a date.
type rmCmd struct {
	on string
}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "remove all values recorded on a date" }
func (*rmCmd) Usage() string {
	return `nwt rm -on <date>

  Removes every value recorded on the given date, across all accounts.
`
}

func (c *rmCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.on, "on", "", "Date to remove records for (YYYY-MM-DD).")
}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.on == "" {
		return errorf("missing -on")
	}
	on, err := date.Parse(c.on)
	if err != nil {
		return errorf("invalid -on date: %v", err)
	}
	ledger, err := DecodeLedger()
	if err != nil {
		return errorf("%v", err)
	}
	removed := ledger.DeleteByDate(on)
	if removed == 0 {
		fmt.Printf("No records on %s\n", on)
		return subcommands.ExitSuccess
	}
	if err := SaveLedger(ledger); err != nil {
		return errorf("%v", err)
	}
	fmt.Printf("Removed %d record(s) on %s\n", removed, on)
	return subcommands.ExitSuccess
}
