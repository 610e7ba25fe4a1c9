package table

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// Column names and aligns one column of a listing.
type Column struct {
	Header string
	Align  Alignment
}

// Format returns the rows padded according to the widest entry in each
// column. A header row is emitted first when any column has a header.
// Widths are measured in terminal cells so glyphs and styled text line up.
func Format(columns []Column, rows [][]string) []string {
	if len(columns) == 0 {
		return nil
	}
	all := make([][]string, 0, len(rows)+1)
	if hasHeader(columns) {
		header := make([]string, len(columns))
		for i, col := range columns {
			header[i] = col.Header
		}
		all = append(all, header)
	}
	all = append(all, rows...)
	if len(all) == 0 {
		return nil
	}

	widths := make([]int, len(columns))
	for _, row := range all {
		for c := 0; c < len(columns) && c < len(row); c++ {
			if w := lipgloss.Width(row[c]); w > widths[c] {
				widths[c] = w
			}
		}
	}
	out := make([]string, len(all))
	for i, row := range all {
		var b strings.Builder
		for c, col := range columns {
			cell := ""
			if c < len(row) {
				cell = row[c]
			}
			if c > 0 {
				b.WriteString("  ")
			}
			pad := widths[c] - lipgloss.Width(cell)
			if col.Align == AlignRight {
				writeSpaces(&b, pad)
				b.WriteString(cell)
			} else {
				b.WriteString(cell)
				if c < len(columns)-1 {
					writeSpaces(&b, pad)
				}
			}
		}
		out[i] = b.String()
	}
	return out
}

func hasHeader(columns []Column) bool {
	for _, col := range columns {
		if col.Header != "" {
			return true
		}
	}
	return false
}

func writeSpaces(b *strings.Builder, count int) {
	if count <= 0 {
		return
	}
	b.WriteString(strings.Repeat(" ", count))
}
