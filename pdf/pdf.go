// Package pdf draws laid-out report tables into PDF byte streams.
//
// It is a dumb backend by contract: the report package decides where
// every cell goes; this package renders the placed cells verbatim on A4
// pages and supplies the font-accurate text measurer the layout needs.
package pdf

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
	"github.com/hourbook/hourbook/report"
)

const (
	fontFamily = "Helvetica"
	bodySize   = 10
	boldSize   = 11
	titleSize  = 16

	lineHeight = 6 // mm per wrapped text line
	padX       = 1 // mm between a cell border and its text
)

// measurer wraps text with the document's own font metrics, so the
// layout's measured heights match what gets drawn. The face is selected
// per style: emphasized cells wrap in bold, and bold is wider.
type measurer struct {
	doc *fpdf.Fpdf
}

func (m measurer) TextHeight(text string, width float64, style report.Style) float64 {
	setFont(m.doc, style)
	inner := width - 2*padX
	if inner <= 0 {
		inner = width
	}
	lines := m.doc.SplitText(text, inner)
	if len(lines) < 1 {
		return lineHeight
	}
	return float64(len(lines)) * lineHeight
}

// setFont selects the face a cell of the given style is set in. Both
// measuring and drawing go through here, so they can never disagree on
// how text wraps.
func setFont(doc *fpdf.Fpdf, style report.Style) {
	if style.IsEmphasized() {
		doc.SetFont(fontFamily, "B", boldSize)
	} else {
		doc.SetFont(fontFamily, "", bodySize)
	}
}

// Render lays the table out and writes the finished PDF to w.
func Render(w io.Writer, t *report.Table) error {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetTitle(t.Title, true)
	// The layout owns all page breaks; fpdf must never add its own.
	doc.SetAutoPageBreak(false, 0)
	doc.SetFont(fontFamily, "", bodySize)

	pages, err := t.Layout(measurer{doc})
	if err != nil {
		return err
	}

	if len(pages) == 0 {
		doc.AddPage()
		drawTitle(doc, t)
	}
	for i, page := range pages {
		doc.AddPage()
		if i == 0 {
			drawTitle(doc, t)
		}
		for _, cell := range page.Cells {
			drawCell(doc, cell)
		}
	}

	if doc.Err() {
		return fmt.Errorf("could not render %q: %w", t.Title, doc.Error())
	}
	return doc.Output(w)
}

func drawTitle(doc *fpdf.Fpdf, t *report.Table) {
	doc.SetFont(fontFamily, "B", titleSize)
	doc.SetXY(t.Geometry.Left, 15)
	doc.CellFormat(0, 10, t.Title, "", 1, "L", false, 0, "")
}

func drawCell(doc *fpdf.Fpdf, c report.Cell) {
	setFont(doc, c.Style)

	// One border rectangle per cell, drawn with the row's shared height.
	doc.Rect(c.X, c.Y, c.Width, c.Height, "D")

	inner := c.Width - 2*padX
	if inner <= 0 {
		inner = c.Width
	}
	y := c.Y
	for _, line := range doc.SplitText(c.Text, inner) {
		doc.SetXY(c.X+padX, y)
		doc.CellFormat(inner, lineHeight, line, "", 0, "L", false, 0, "")
		y += lineHeight
	}
}
