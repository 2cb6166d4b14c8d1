package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/tessier/networth/fx"
	"github.com/tessier/networth/renderer"
)

// historyCmd displays the net worth over time.
type historyCmd struct {
	currency string
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "display the net worth over time" }
func (*historyCmd) Usage() string {
	return `nwt history [-currency <code>]

  Computes the net worth at every date the ledger has a record for,
  with the change between consecutive points.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "currency", "GBP", "Reporting currency.")
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		return errorf("%v", err)
	}
	h, err := ledger.NetWorthHistory(c.currency, fx.NewService().Convert)
	if err != nil {
		return errorf("%v", err)
	}
	printMarkdown(renderer.HistoryMarkdown(h, c.currency))
	return subcommands.ExitSuccess
}
