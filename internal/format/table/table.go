// Package table lays out labelled rows as padded text columns for list
// panes.
package table

import "strings"

// Column names one column of a listing. Numeric columns right-align so
// digits line up; everything else is flush left.
type Column struct {
	Title   string
	Numeric bool
}

// Format renders a header line followed by one line per row, each cell
// padded to the widest entry in its column. Short rows are padded with
// empty cells; cells beyond the column set are dropped. Trailing padding
// on the last column is trimmed.
func Format(columns []Column, rows [][]string) []string {
	if len(columns) == 0 {
		return nil
	}
	widths := make([]int, len(columns))
	for i, col := range columns {
		widths[i] = runeLen(col.Title)
	}
	for _, row := range rows {
		for i := 0; i < len(columns) && i < len(row); i++ {
			if w := runeLen(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}
	header := make([]string, len(columns))
	for i, col := range columns {
		header[i] = col.Title
	}
	out := make([]string, 0, len(rows)+1)
	out = append(out, renderRow(columns, widths, header))
	for _, row := range rows {
		out = append(out, renderRow(columns, widths, row))
	}
	return out
}

func renderRow(columns []Column, widths []int, row []string) string {
	var b strings.Builder
	for i, col := range columns {
		if i > 0 {
			b.WriteString("  ")
		}
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		pad := widths[i] - runeLen(cell)
		if pad < 0 {
			pad = 0
		}
		if col.Numeric {
			writeSpaces(&b, pad)
			b.WriteString(cell)
			continue
		}
		b.WriteString(cell)
		if i < len(columns)-1 {
			writeSpaces(&b, pad)
		}
	}
	return b.String()
}

func runeLen(text string) int {
	return len([]rune(text))
}

func writeSpaces(b *strings.Builder, count int) {
	for i := 0; i < count; i++ {
		b.WriteByte(' ')
	}
}
