package cmd

import (
	"context"
	"flag"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/tessier/networth/agent"
	"google.golang.org/genai"
)

// assistCmd is the subcommand for the AI assistant.
type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "start an interactive session with the AI assistant" }
func (*assistCmd) Usage() string {
	return `nwt assist [initial question]

  Start an interactive session with the AI assistant. It can read the
  ledger, compute net worth figures, evaluate property purchases, and
  search for current rates.
`
}

func (*assistCmd) SetFlags(_ *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
	}
	agent.LedgerFile = *ledgerFile

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return errorf("Error initializing Gemini's client: %v", err)
	}

	advisor := agent.NewAdvisor()
	bookkeeper := agent.NewBookkeeper()
	surveyor := agent.NewSurveyor()
	a := agent.New(os.Stdout, os.Stdin, advisor, bookkeeper, surveyor)

	if err := a.Run(ctx, client, initialPrompt); err != nil {
		return errorf("Agent failed: %v", err)
	}

	return subcommands.ExitSuccess
}
