// Package renderer turns reports into markdown strings, ready to print raw
// or through a terminal renderer.
package renderer

import (
	"bytes"
	"fmt"
	"sort"

	md "github.com/nao1215/markdown"
	"github.com/tessier/networth"
)

func SummaryMarkdown(s *networth.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Net Worth on %s", s.On))
	doc.PlainText(fmt.Sprintf("Total: %.2f %s", s.Total, s.Currency))

	doc.H2("By Category")
	doc.Table(breakdownTable(s.ByCategory, s.Total, s.Currency))

	doc.H2("By Account")
	doc.Table(breakdownTable(s.ByAccount, s.Total, s.Currency))

	return doc.String()
}

// breakdownTable renders one axis of the summary, largest amount first.
func breakdownTable(groups map[string]float64, total float64, currency string) md.TableSet {
	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if groups[names[i]] != groups[names[j]] {
			return groups[names[i]] > groups[names[j]]
		}
		return names[i] < names[j]
	})

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"Name", fmt.Sprintf("Value (%s)", currency), "Share"},
		Rows:      [][]string{},
	}
	for _, name := range names {
		amount := groups[name]
		share := "-"
		if total != 0 {
			share = networth.Percent(100 * amount / total).String()
		}
		table.Rows = append(table.Rows, []string{name, fmt.Sprintf("%.2f", amount), share})
	}
	return table
}
