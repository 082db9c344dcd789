package tabyl

import (
	"fmt"
	"io"
	"strings"
)

// WriteMarkdown renders t as a GitHub-flavored Markdown table. Numeric
// columns get right-alignment markers.
func WriteMarkdown(w io.Writer, t *Table) error {
	header, rows := tableStrings(t)
	widths := computeWidths(header, rows)
	// Minimum 3 so alignment markers fit.
	for i := range widths {
		if widths[i] < 3 {
			widths[i] = 3
		}
	}
	aligns := columnAlignments(t)

	if err := writeMarkdownRow(w, header, widths, aligns); err != nil {
		return err
	}
	sep := make([]string, len(widths))
	for i, width := range widths {
		if aligns[i] == AlignRight {
			sep[i] = strings.Repeat("-", width-1) + ":"
		} else {
			sep[i] = strings.Repeat("-", width)
		}
	}
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(sep, " | ")); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writeMarkdownRow(w, row, widths, aligns); err != nil {
			return err
		}
	}
	return nil
}

func writeMarkdownRow(w io.Writer, cells []string, widths []int, aligns []Alignment) error {
	padded := make([]string, len(widths))
	for i, width := range widths {
		padded[i] = alignCell(cells[i], width, aligns[i])
	}
	_, err := fmt.Fprintf(w, "| %s |\n", strings.Join(padded, " | "))
	return err
}
