// Package pdfkit lays out the single-page-flow report PDFs: a centered
// heading, a chart image, and a fixed-offset table. Column positions and row
// height are carried over from the previous backend's layout.
package pdfkit

import (
	"bytes"
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
)

const (
	pageWidth = 595.28 // A4 portrait, points
	tableEdge = 550.0  // right edge of header/separator rules
	rowHeight = 20.0
)

type Document struct {
	pdf      *gofpdf.Fpdf
	imgCount int
}

func New() *Document {
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(30, 30, 30)
	pdf.AddPage()
	return &Document{pdf: pdf}
}

// Title writes a centered 20pt heading followed by a gap.
func (d *Document) Title(text string) {
	d.pdf.SetFont("Helvetica", "B", 20)
	d.pdf.CellFormat(0, 28, text, "", 1, "C", false, 0, "")
	d.pdf.Ln(10)
}

// ChartImage embeds a PNG, scaled to fit maxW x maxH and centered.
func (d *Document) ChartImage(png []byte, maxW, maxH float64) {
	d.imgCount++
	name := fmt.Sprintf("chart-%d", d.imgCount)
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	info := d.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(png))
	if info == nil {
		return
	}

	w, h := info.Width(), info.Height()
	scale := maxW / w
	if s := maxH / h; s < scale {
		scale = s
	}
	if scale < 1 {
		w *= scale
		h *= scale
	}

	x := (pageWidth - w) / 2
	y := d.pdf.GetY()
	d.pdf.ImageOptions(name, x, y, w, h, false, opts, 0, "")
	d.pdf.SetY(y + h + 15)
}

// Table writes a header row, a solid rule, then data rows separated by dashed
// rules at fixed column x-offsets. Rows past the page bottom run off the page;
// there is no pagination.
func (d *Document) Table(headers []string, rows [][]string, colX []float64) {
	tableTop := d.pdf.GetY()

	d.pdf.SetFont("Helvetica", "B", 12)
	for i, h := range headers {
		if i < len(colX) {
			d.pdf.Text(colX[i], tableTop+12, h)
		}
	}
	d.pdf.Line(colX[0], tableTop+15, tableEdge, tableTop+15)

	d.pdf.SetFont("Helvetica", "", 11)
	y := tableTop + 25
	for _, row := range rows {
		for i, cell := range row {
			if i < len(colX) {
				d.pdf.Text(colX[i], y+11, cell)
			}
		}
		d.pdf.SetDashPattern([]float64{1, 2}, 0)
		d.pdf.Line(colX[0], y+15, tableEdge, y+15)
		d.pdf.SetDashPattern([]float64{}, 0)
		y += rowHeight
	}
	d.pdf.SetY(y)
}

func (d *Document) Output(w io.Writer) error {
	return d.pdf.Output(w)
}
