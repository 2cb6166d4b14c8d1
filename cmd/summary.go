package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/tessier/networth"
	"github.com/tessier/networth/date"
	"github.com/tessier/networth/fx"
	"github.com/tessier/networth/renderer"
)

// summaryCmd displays the net worth on a date.
type summaryCmd struct {
	on       string
	currency string
	by       string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display a net worth summary" }
func (*summaryCmd) Usage() string {
	return `nwt summary [-on <date>] [-currency <code>] [-by category|account]

  Values every account at its latest record on or before the date and
  displays the total with breakdowns. With -by, displays the distribution
  of net worth instead.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.on, "on", date.Today().String(), "Date to value the accounts on (YYYY-MM-DD).")
	f.StringVar(&c.currency, "currency", "GBP", "Reporting currency.")
	f.StringVar(&c.by, "by", "", "Display the distribution by 'category' or 'account'.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := date.Parse(c.on)
	if err != nil {
		return errorf("invalid -on date: %v", err)
	}
	ledger, err := DecodeLedger()
	if err != nil {
		return errorf("%v", err)
	}
	convert := networth.Converter(fx.NewService().Convert)

	switch c.by {
	case "":
		s, err := ledger.Summarize(on, c.currency, convert)
		if err != nil {
			return errorf("%v", err)
		}
		printMarkdown(renderer.SummaryMarkdown(s))
	case "category", "account":
		axis := networth.ByCategory
		label := "Category"
		if c.by == "account" {
			axis, label = networth.ByAccount, "Account"
		}
		dist, err := ledger.Distribution(on, axis, c.currency, convert)
		if err != nil {
			return errorf("%v", err)
		}
		printMarkdown(renderer.DistributionMarkdown(on, label, dist))
	default:
		return errorf("invalid -by %q, want 'category' or 'account'", c.by)
	}
	return subcommands.ExitSuccess
}
