package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/tessier/networth"
)

// fmtCmd rewrites the ledger file in canonical form.
type fmtCmd struct{}

func (*fmtCmd) Name() string     { return "fmt" }
func (*fmtCmd) Synopsis() string { return "rewrite the ledger file in canonical form" }
func (*fmtCmd) Usage() string {
	return `nwt fmt

  Rewrites the ledger file in canonical order: categories, then accounts,
  then values chronologically. Keeps diffs small under version control.
`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	content, err := os.ReadFile(*ledgerFile)
	if err != nil {
		return errorf("cannot read ledger file %q: %v", *ledgerFile, err)
	}
	var out bytes.Buffer
	if err := networth.Fmt(&out, bytes.NewReader(content)); err != nil {
		return errorf("%v", err)
	}
	if bytes.Equal(content, out.Bytes()) {
		fmt.Println("Already canonical")
		return subcommands.ExitSuccess
	}
	if err := os.WriteFile(*ledgerFile, out.Bytes(), 0644); err != nil {
		return errorf("cannot write ledger file %q: %v", *ledgerFile, err)
	}
	fmt.Printf("Rewrote %s\n", *ledgerFile)
	return subcommands.ExitSuccess
}
