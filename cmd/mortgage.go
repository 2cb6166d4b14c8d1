package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/tessier/networth/property"
	"github.com/tessier/networth/renderer"
)

// mortgageCmd is a plain mortgage repayment calculator.
type mortgageCmd struct {
	value     float64
	deposit   float64
	rate      float64
	years     int
	outgoings float64
}

func (*mortgageCmd) Name() string     { return "mortgage" }
func (*mortgageCmd) Synopsis() string { return "compute monthly mortgage repayments" }
func (*mortgageCmd) Usage() string {
	return `nwt mortgage -value <property value> [-deposit <percent>] [-rate <percent>] [-years <n>] [-outgoings <annual>]

  Computes the monthly repayment for the loan left after the deposit, and
  the all-in monthly cost once annual outgoings are spread over the year.
`
}

func (c *mortgageCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.value, "value", 0, "Property value.")
	f.Float64Var(&c.deposit, "deposit", 25, "Deposit as a percent of the value.")
	f.Float64Var(&c.rate, "rate", 4.5, "Annual mortgage rate in percent.")
	f.IntVar(&c.years, "years", 25, "Mortgage term in years.")
	f.Float64Var(&c.outgoings, "outgoings", 0, "Recurring annual outgoings (insurance, service charge...).")
}

func (c *mortgageCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.value <= 0 {
		return errorf("missing -value")
	}
	mortgage, total := property.MonthlyRepayment(c.value, c.deposit, c.rate, c.years, c.outgoings)
	printMarkdown(renderer.MortgageMarkdown(c.value, c.deposit, c.rate, c.years, mortgage, total))
	return subcommands.ExitSuccess
}
