package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/tessier/networth/date"
)

func HistoryMarkdown(h *date.History[float64], currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Net Worth History (%s)", currency))

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"Date", "Total", "Change"},
		Rows:      [][]string{},
	}
	var prev float64
	var first = true
	for on, total := range h.Values() {
		change := "-"
		if !first {
			change = fmt.Sprintf("%+.2f", total-prev)
		}
		table.Rows = append(table.Rows, []string{on.String(), fmt.Sprintf("%.2f", total), change})
		prev, first = total, false
	}
	doc.Table(table)

	return doc.String()
}
