package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/tessier/networth"
	"github.com/tessier/networth/renderer"
)

// simulateCmd projects a savings pot forward.
type simulateCmd struct {
	name         string
	initial      float64
	contribution float64
	cadence      string
	rate         float64
	years        int
}

func (*simulateCmd) Name() string     { return "simulate" }
func (*simulateCmd) Synopsis() string { return "project a savings pot forward" }
func (*simulateCmd) Usage() string {
	return `nwt simulate -initial <value> -contribution <value> [-cadence monthly|yearly] [-rate <percent>] [-years <n>]

  Projects a pot forward under a flat annual growth rate, compounding
  monthly, and displays the year-by-year schedule.
`
}

func (c *simulateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the pot, for the report title.")
	f.Float64Var(&c.initial, "initial", 0, "Starting balance.")
	f.Float64Var(&c.contribution, "contribution", 0, "Recurring contribution.")
	f.StringVar(&c.cadence, "cadence", "monthly", "Contribution cadence: monthly or yearly.")
	f.Float64Var(&c.rate, "rate", 5, "Annual growth rate in percent.")
	f.IntVar(&c.years, "years", 20, "Number of years to project.")
}

func (c *simulateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cadence, err := networth.ParseCadence(c.cadence)
	if err != nil {
		return errorf("%v", err)
	}
	p := networth.Pot{
		Name:              c.name,
		Initial:           c.initial,
		Contribution:      c.contribution,
		Cadence:           cadence,
		AnnualRatePercent: c.rate,
	}
	printMarkdown(renderer.SimulationMarkdown(p, p.Simulate(c.years)))
	return subcommands.ExitSuccess
}
