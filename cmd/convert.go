package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/tessier/networth/fx"
)

// convertCmd converts an amount between currencies at today's spot rate.
type convertCmd struct {
	amount float64
	from   string
	to     string
}

func (*convertCmd) Name() string     { return "convert" }
func (*convertCmd) Synopsis() string { return "convert an amount between currencies" }
func (*convertCmd) Usage() string {
	return `nwt convert -amount <value> -from <code> -to <code>

  Converts an amount at today's spot rate. Rates are cached for the day.
`
}

func (c *convertCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.amount, "amount", 1, "Amount to convert.")
	f.StringVar(&c.from, "from", "GBP", "Source currency code.")
	f.StringVar(&c.to, "to", "EUR", "Target currency code.")
}

func (c *convertCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	got, err := fx.NewService().Convert(c.amount, c.from, c.to)
	if err != nil {
		return errorf("%v", err)
	}
	fmt.Printf("%s%.2f = %s%.2f\n", fx.Symbol(c.from), c.amount, fx.Symbol(c.to), got)
	return subcommands.ExitSuccess
}
