package dataset

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

const maxCellWidth = 48

// Preview writes the dataset as an aligned text table with a leading row
// index. Wide cells are truncated; limit <= 0 prints every row.
func Preview(w io.Writer, d *Dataset, limit int) error {
	records := d.Records()
	shown := records
	if limit > 0 && len(records) > limit {
		shown = records[:limit]
	}

	header := append([]string{""}, d.ColumnNames()...)
	table := make([][]string, 0, len(shown)+1)
	table = append(table, header)
	for i, record := range shown {
		table = append(table, append([]string{strconv.Itoa(i)}, record...))
	}

	widths := make([]int, len(header))
	for _, row := range table {
		for j, cell := range row {
			cell = runewidth.Truncate(cell, maxCellWidth, "...")
			row[j] = cell
			if cw := runewidth.StringWidth(cell); cw > widths[j] {
				widths[j] = cw
			}
		}
	}

	var b strings.Builder
	for _, row := range table {
		for j, cell := range row {
			if j > 0 {
				b.WriteString("  ")
			}
			if j == 0 {
				b.WriteString(runewidth.FillLeft(cell, widths[j]))
			} else {
				b.WriteString(runewidth.FillRight(cell, widths[j]))
			}
		}
		b.WriteString("\n")
	}
	if len(shown) < len(records) {
		fmt.Fprintf(&b, "... %d more rows\n", len(records)-len(shown))
	}
	fmt.Fprintf(&b, "[%d rows x %d columns]\n", len(records), len(d.Columns))

	_, err := io.WriteString(w, b.String())
	return err
}
