package renderer

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	md "github.com/nao1215/markdown"
	"github.com/tessier/networth"
	"github.com/tessier/networth/date"
)

// barWidth is the width of the ascii share bar, one cell per 2%.
const barWidth = 50

func DistributionMarkdown(on date.Date, axis string, dist map[string]networth.Percent) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Net Worth Distribution by %s on %s", axis, on))

	names := make([]string, 0, len(dist))
	for name := range dist {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if dist[names[i]] != dist[names[j]] {
			return dist[names[i]] > dist[names[j]]
		}
		return names[i] < names[j]
	})

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignLeft},
		Header:    []string{axis, "Share", ""},
		Rows:      [][]string{},
	}
	for _, name := range names {
		share := dist[name]
		cells := int(float64(share) / 100 * barWidth)
		if cells < 0 {
			cells = 0
		}
		table.Rows = append(table.Rows, []string{name, share.String(), strings.Repeat("█", cells)})
	}
	doc.Table(table)

	return doc.String()
}
