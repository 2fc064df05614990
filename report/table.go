// Package report lays out ledger data as fixed-width tables.
//
// The layout engine is backend-agnostic: it consumes an ordered sequence
// of rows and a page geometry, measures (never renders) wrapped text, and
// produces pages of positioned cells. A PDF, image or terminal backend
// draws those cells verbatim; the engine itself never touches encoding
// bytes.
package report

import (
	"errors"
	"fmt"
	"strings"
)

// ErrGeometry reports an unusable page geometry. It is fatal to the
// render call that received it, and nothing else.
var ErrGeometry = errors.New("invalid table geometry")

// Style tags a cell so backends can emphasize headers and totals.
type Style int

const (
	Body Style = iota
	Header
	Totals
)

// IsEmphasized reports whether a backend should render the cell in a
// visually distinct (bold) face.
func (s Style) IsEmphasized() bool { return s != Body }

// Geometry describes the drawable area of one page, in whatever unit the
// backend uses (the PDF backend works in millimeters).
type Geometry struct {
	Left         float64 // horizontal offset of the first column
	Top          float64 // vertical offset of the first row
	UsableHeight float64 // vertical space available for rows, excluding margins and titles
	MinRowHeight float64 // a row is never shorter than this
}

func (g Geometry) validate() error {
	if g.UsableHeight <= 0 {
		return fmt.Errorf("usable page height %g must be positive: %w", g.UsableHeight, ErrGeometry)
	}
	if g.MinRowHeight <= 0 {
		return fmt.Errorf("minimum row height %g must be positive: %w", g.MinRowHeight, ErrGeometry)
	}
	return nil
}

// Column is one fixed-width table column.
type Column struct {
	Title string
	Width float64
}

// Cell is one positioned cell of a laid-out page. X and Y locate its
// top-left corner; Width and Height are its border rectangle. All cells
// of one row share the row's height, so wrapped text never overflows its
// border.
type Cell struct {
	Text   string
	X      float64
	Y      float64
	Width  float64
	Height float64
	Style  Style
}

// Page is an ordered sequence of placed cells.
type Page struct {
	Cells []Cell
}

// Measurer reports the height of text wrapped to a width. Layout only
// measures; drawing is the backend's business. Measurements must be
// consistent with how the backend will eventually wrap the same text,
// which is why the cell's style is part of the question: an emphasized
// face wraps differently than the body face.
type Measurer interface {
	// TextHeight returns the total height of text wrapped to fit width
	// when set in the face the style selects. Empty text still occupies
	// one line.
	TextHeight(text string, width float64, style Style) float64
}

// Options tune the pagination behavior.
type Options struct {
	// RepeatHeader re-emits the header row at the top of every page.
	RepeatHeader bool
	// CarrySubtotals re-emits a running-subtotal footer at the bottom of
	// each page before a page break. Subtotal supplies the footer for the
	// first n data rows; it is required when CarrySubtotals is set.
	CarrySubtotals bool
	Subtotal       func(n int) []string
}

// Table is one logical table to lay out: a header row, data rows and a
// totals row over a fixed set of columns. The layout does not mutate the
// table or its rows.
type Table struct {
	Title    string // drawn by the backend outside the row area
	Columns  []Column
	Rows     [][]string
	Totals   []string
	Geometry Geometry
	Options  Options
}

// layout walks the table rows top to bottom, breaking pages as they
// fill. It is the state machine of a render call: laying out rows, then
// on a full page flushing it and resetting the cursor, then laying out
// the totals row, then done.
type layout struct {
	table    *Table
	measurer Measurer
	pages    []Page
	current  Page
	cursor   float64 // next row's Y
	placed   int     // data rows placed so far, for running subtotals
}

// Layout computes the paginated placement of the table. It terminates
// for any finite row set and positive usable height: a row too tall for
// an empty page is placed alone on its own page instead of looping.
func (t *Table) Layout(m Measurer) ([]Page, error) {
	if err := t.Geometry.validate(); err != nil {
		return nil, err
	}
	if len(t.Columns) == 0 {
		return nil, fmt.Errorf("table has no columns: %w", ErrGeometry)
	}

	l := &layout{table: t, measurer: m, cursor: t.Geometry.Top}
	l.placeHeader()
	for _, row := range t.Rows {
		l.placeRow(row, Body, true)
	}
	if t.Totals != nil {
		// The grand totals break pages like any other row, but carrying a
		// subtotal right before them would print two footers back to back.
		l.placeRow(t.Totals, Totals, false)
	}
	l.flush()
	return l.pages, nil
}

func (l *layout) placeHeader() {
	header := make([]string, len(l.table.Columns))
	for i, col := range l.table.Columns {
		header[i] = col.Title
	}
	l.placeRow(header, Header, false)
}

// rowHeight is the shared vertical extent of all cells in the row: at
// least the geometry's minimum, and at least every column's own wrapped
// text height, measured in the face the row will be drawn in.
func (l *layout) rowHeight(row []string, style Style) float64 {
	h := l.table.Geometry.MinRowHeight
	for i, col := range l.table.Columns {
		if i >= len(row) {
			break
		}
		if th := l.measurer.TextHeight(row[i], col.Width, style); th > h {
			h = th
		}
	}
	return h
}

// placeRow places one logical row, breaking the page first if the row
// does not fit. carry selects whether a running-subtotal footer may be
// emitted at that break.
func (l *layout) placeRow(row []string, style Style, carry bool) {
	g := l.table.Geometry
	h := l.rowHeight(row, style)

	limit := g.Top + g.UsableHeight
	if carry && l.table.Options.CarrySubtotals && l.table.Options.Subtotal != nil {
		// Reserve room for the footer that would precede the break.
		limit -= l.rowHeight(l.table.Options.Subtotal(l.placed), Totals)
	}

	// Break only if the current page already holds something: a row too
	// tall for any page still gets placed, alone, and may overflow. That
	// guarantees termination.
	if l.cursor+h > limit && len(l.current.Cells) > 0 {
		l.pageBreak(carry)
	}

	x := g.Left
	for i, col := range l.table.Columns {
		text := ""
		if i < len(row) {
			text = row[i]
		}
		l.current.Cells = append(l.current.Cells, Cell{
			Text:   text,
			X:      x,
			Y:      l.cursor,
			Width:  col.Width,
			Height: h,
			Style:  style,
		})
		x += col.Width
	}
	l.cursor += h
	if style == Body {
		l.placed++
	}
}

// pageBreak closes the current page, optionally emitting the running
// subtotal footer first, and opens a fresh one.
func (l *layout) pageBreak(carry bool) {
	if carry && l.table.Options.CarrySubtotals && l.table.Options.Subtotal != nil {
		footer := l.table.Options.Subtotal(l.placed)
		h := l.rowHeight(footer, Totals)
		x := l.table.Geometry.Left
		for i, col := range l.table.Columns {
			text := ""
			if i < len(footer) {
				text = footer[i]
			}
			l.current.Cells = append(l.current.Cells, Cell{
				Text: text, X: x, Y: l.cursor, Width: col.Width, Height: h, Style: Totals,
			})
			x += col.Width
		}
	}
	l.flush()
	l.cursor = l.table.Geometry.Top
	if l.table.Options.RepeatHeader {
		l.placeHeader()
	}
}

// flush records the current page if it holds anything.
func (l *layout) flush() {
	if len(l.current.Cells) == 0 {
		return
	}
	l.pages = append(l.pages, l.current)
	l.current = Page{}
}

// RuneMeasurer measures text as a monospace grid: so many characters per
// line, so much height per line, regardless of style. It is exact for
// terminal backends and a sound approximation anywhere a
// proportional-font measurer is not available.
type RuneMeasurer struct {
	CharWidth  float64
	LineHeight float64
}

func (m RuneMeasurer) TextHeight(text string, width float64, _ Style) float64 {
	perLine := int(width / m.CharWidth)
	if perLine < 1 {
		perLine = 1
	}
	lines := 0
	for _, part := range strings.Split(text, "\n") {
		n := len([]rune(part))
		if n == 0 {
			lines++ // an empty part still occupies its line
			continue
		}
		lines += (n + perLine - 1) / perLine
	}
	if lines < 1 {
		lines = 1
	}
	return float64(lines) * m.LineHeight
}
