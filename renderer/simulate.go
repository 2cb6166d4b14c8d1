package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/tessier/networth"
)

func SimulationMarkdown(p networth.Pot, schedule []networth.PotYear) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	name := p.Name
	if name == "" {
		name = "Savings Pot"
	}
	doc.H1(fmt.Sprintf("Projection for %s", name))
	doc.PlainText(fmt.Sprintf("Starting at %.2f, contributing %.2f %s, growing at %.2f%% a year.",
		p.Initial, p.Contribution, p.Cadence, p.AnnualRatePercent))

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Year", "Balance", "Contributed", "Growth"},
		Rows:      [][]string{},
	}
	for _, y := range schedule {
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("%d", y.Year),
			fmt.Sprintf("%.2f", y.Balance),
			fmt.Sprintf("%.2f", y.Contributed),
			fmt.Sprintf("%.2f", y.Growth),
		})
	}
	doc.Table(table)

	return doc.String()
}
