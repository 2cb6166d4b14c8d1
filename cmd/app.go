// Package cmd implements the CLI application to track a net worth ledger
// and evaluate property investments.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/tessier/networth"
)

// Commands lists every subcommand. A main package registers them all and
// executes the user-selected one.
var Commands = []subcommands.Command{
	&setCmd{},
	&rmCmd{},
	&declareCmd{},
	&renameCmd{},
	&deleteCmd{},
	&accountsCmd{},
	&summaryCmd{},
	&historyCmd{},
	&simulateCmd{},
	&fairpriceCmd{},
	&projectionCmd{},
	&mortgageCmd{},
	&convertCmd{},
	&fmtCmd{},
	&topicCmd{},
	&assistCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", "networth.jsonl", "Path to the ledger file (JSONL format)")

// DecodeLedger reads the app ledger file. A missing file is an empty ledger.
func DecodeLedger() (*networth.Ledger, error) {
	f, err := os.Open(*ledgerFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return networth.NewLedger(), nil
		}
		return nil, fmt.Errorf("cannot open ledger file %q: %w", *ledgerFile, err)
	}
	defer f.Close()
	return networth.DecodeLedger(f)
}

// SaveLedger writes the ledger back to the app ledger file in canonical form.
func SaveLedger(ledger *networth.Ledger) error {
	f, err := os.Create(*ledgerFile)
	if err != nil {
		return fmt.Errorf("cannot write ledger file %q: %w", *ledgerFile, err)
	}
	defer f.Close()
	return networth.EncodeLedger(f, ledger)
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when rendering fails (e.g. output is not a terminal).
func printMarkdown(markdown string) {
	out, err := glamour.Render(markdown, "auto")
	if err != nil {
		fmt.Print(markdown)
		return
	}
	fmt.Print(out)
}

// errorf reports a command error on stderr and returns the failure status.
func errorf(format string, args ...any) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	return subcommands.ExitFailure
}
