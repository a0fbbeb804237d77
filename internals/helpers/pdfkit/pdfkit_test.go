package pdfkit

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func samplePNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 60, 40))
	for x := 0; x < 60; x++ {
		for y := 0; y < 40; y++ {
			img.Set(x, y, color.RGBA{R: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode sample png: %v", err)
	}
	return buf.Bytes()
}

func TestDocumentOutputIsPDF(t *testing.T) {
	doc := New()
	doc.Title("Appointments Report")
	doc.ChartImage(samplePNG(t), 500, 300)
	doc.Table(
		[]string{"Month", "Bookings", "Emergencies"},
		[][]string{
			{"January", "3", "1"},
			{"February", "7", "0"},
		},
		[]float64{50, 250, 400},
	)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		t.Fatalf("output: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Errorf("output does not start with %%PDF: %q", buf.Bytes()[:8])
	}
}

func TestDocumentTableOnly(t *testing.T) {
	doc := New()
	doc.Title("Emergencies Report")
	doc.Table([]string{"Parktown", "Main", "Total"}, [][]string{{"4", "2", "6"}}, []float64{50, 250, 400})

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		t.Fatalf("output: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("empty document")
	}
}
