package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/tessier/networth/property"
	"github.com/tessier/networth/renderer"
)

// fairpriceCmd finds the maximum purchase price meeting a target return.
type fairpriceCmd struct {
	assumptionFlags
	yield       float64
	coc         float64
	maxCashFlow float64
}

func (*fairpriceCmd) Name() string     { return "fairprice" }
func (*fairpriceCmd) Synopsis() string { return "find the fair purchase price for a buy-to-let" }
func (*fairpriceCmd) Usage() string {
	return `nwt fairprice -rent <monthly rent> [-yield <percent> | -coc <percent>] [-max-cash-flow <monthly>] [assumption flags]

  Finds the maximum purchase price that achieves the target return, for a
  limited company purchase at 75% loan-to-value. Use -yield for a net
  yield target (default 3.0) or -coc for a cash-on-cash target. With
  -max-cash-flow, the monthly out-of-pocket cost is capped too.
`
}

func (c *fairpriceCmd) SetFlags(f *flag.FlagSet) {
	c.assumptionFlags.SetFlags(f)
	f.Float64Var(&c.yield, "yield", 0, "Target net yield in percent.")
	f.Float64Var(&c.coc, "coc", 0, "Target cash-on-cash return in percent.")
	f.Float64Var(&c.maxCashFlow, "max-cash-flow", 0, "Maximum acceptable monthly cash outflow.")
}

func (c *fairpriceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.rent <= 0 {
		return errorf("missing -rent")
	}
	if c.yield != 0 && c.coc != 0 {
		return errorf("use only one of -yield or -coc")
	}
	a, err := c.Assumptions()
	if err != nil {
		return errorf("%v", err)
	}

	target := property.YieldTarget(3.0)
	if c.yield != 0 {
		target = property.YieldTarget(c.yield)
	}
	if c.coc != 0 {
		target = property.CashOnCashTarget(c.coc)
	}
	if c.maxCashFlow != 0 {
		target = target.WithMaxMonthlyCashFlow(c.maxCashFlow)
	}

	result := property.FindFairPrice(a, target)
	var eval property.PriceEvaluation
	if result.Viable() {
		eval = property.Evaluate(result.Price, a)
	}
	printMarkdown(renderer.FairPriceMarkdown(target, result, eval))
	return subcommands.ExitSuccess
}
