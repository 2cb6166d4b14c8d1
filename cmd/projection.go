package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/tessier/networth/property"
	"github.com/tessier/networth/renderer"
)

// projectionCmd walks the amortization schedule for a purchase.
type projectionCmd struct {
	assumptionFlags
	price float64
}

func (*projectionCmd) Name() string     { return "projection" }
func (*projectionCmd) Synopsis() string { return "project a buy-to-let over the mortgage term" }
func (*projectionCmd) Usage() string {
	return `nwt projection -price <value> -rent <monthly rent> [assumption flags]

  Walks the amortization schedule year by year for a purchase at the given
  price: property value, mortgage balance, equity, cumulative rent and
  costs, and the net return on cash invested.
`
}

func (c *projectionCmd) SetFlags(f *flag.FlagSet) {
	c.assumptionFlags.SetFlags(f)
	f.Float64Var(&c.price, "price", 0, "Purchase price to project.")
}

func (c *projectionCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.price <= 0 {
		return errorf("missing -price")
	}
	a, err := c.Assumptions()
	if err != nil {
		return errorf("%v", err)
	}
	printMarkdown(renderer.ProjectionMarkdown(c.price, property.Project(c.price, a)))
	return subcommands.ExitSuccess
}
