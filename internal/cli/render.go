package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

const columnGap = "  "

// palette holds the colors of one run. With color off every entry prints
// plain text.
type palette struct {
	title *color.Color
	hero  *color.Color
	score *color.Color
	muted *color.Color
	warn  *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		title: color.New(color.Bold),
		hero:  color.New(color.FgCyan, color.Bold),
		score: color.New(color.FgGreen),
		muted: color.New(color.Faint),
		warn:  color.New(color.FgYellow),
	}
	for _, c := range []*color.Color{p.title, p.hero, p.score, p.muted, p.warn} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// column is one table column. paint colors a cell after padding.
type column struct {
	header string
	paint  *color.Color
}

// table writes rows aligned by display width, so names with wide runes
// line up.
type table struct {
	cols []column
	rows [][]string
}

func newTable(cols ...column) *table {
	return &table{cols: cols}
}

func (t *table) add(cells ...string) {
	t.rows = append(t.rows, cells)
}

func (t *table) render(w io.Writer, pal palette) {
	widths := make([]int, len(t.cols))
	for i, c := range t.cols {
		widths[i] = runewidth.StringWidth(c.header)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], runewidth.StringWidth(cell))
			}
		}
	}

	cells := make([]string, len(t.cols))
	for i, c := range t.cols {
		cells[i] = pal.title.Sprint(pad(c.header, widths[i], i == len(t.cols)-1))
	}
	fmt.Fprintln(w, strings.Join(cells, columnGap))

	for _, row := range t.rows {
		for i, c := range t.cols {
			var cell string
			if i < len(row) {
				cell = row[i]
			}
			cell = pad(cell, widths[i], i == len(t.cols)-1)
			if c.paint != nil {
				cell = c.paint.Sprint(cell)
			}
			cells[i] = cell
		}
		fmt.Fprintln(w, strings.Join(cells, columnGap))
	}
}

// pad right-fills s to width; the last column is left ragged.
func pad(s string, width int, last bool) string {
	if last {
		return s
	}
	return runewidth.FillRight(s, width)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func formatScore(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
