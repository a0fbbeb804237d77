package chart

import (
	"bytes"
	"fmt"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

// Chart canvas size, same as the previous backend's chartjs-node-canvas setup.
const (
	Width  = 600
	Height = 400
)

type Series struct {
	Label  string
	Color  color.Color
	Values []float64
}

type Slice struct {
	Label string
	Color color.Color
	Value float64
}

// RenderLine draws a multi-series line chart (x labels, y starting at zero)
// and returns it PNG-encoded.
func RenderLine(labels []string, series []Series) ([]byte, error) {
	dc := gg.NewContext(Width, Height)
	dc.SetFontFace(basicfont.Face7x13)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	const (
		left   = 55.0
		right  = Width - 20.0
		top    = 30.0
		bottom = Height - 40.0
	)

	maxVal := 1.0
	for _, s := range series {
		for _, v := range s.Values {
			if v > maxVal {
				maxVal = v
			}
		}
	}
	maxVal = niceCeil(maxVal)

	// axes
	dc.SetColor(color.Gray{Y: 60})
	dc.SetLineWidth(1)
	dc.DrawLine(left, top, left, bottom)
	dc.DrawLine(left, bottom, right, bottom)
	dc.Stroke()

	// y gridlines + tick labels
	const ticks = 5
	for i := 0; i <= ticks; i++ {
		v := maxVal * float64(i) / ticks
		y := bottom - (bottom-top)*float64(i)/ticks
		dc.SetColor(color.Gray{Y: 220})
		dc.DrawLine(left, y, right, y)
		dc.Stroke()
		dc.SetColor(color.Gray{Y: 60})
		dc.DrawStringAnchored(fmt.Sprintf("%g", v), left-6, y, 1, 0.4)
	}

	xAt := func(i int) float64 {
		if len(labels) <= 1 {
			return (left + right) / 2
		}
		return left + (right-left)*float64(i)/float64(len(labels)-1)
	}
	yAt := func(v float64) float64 {
		return bottom - (bottom-top)*(v/maxVal)
	}

	// x labels
	dc.SetColor(color.Gray{Y: 60})
	for i, l := range labels {
		dc.DrawStringAnchored(l, xAt(i), bottom+14, 0.5, 0.5)
	}

	// series polylines with point markers
	for _, s := range series {
		dc.SetColor(s.Color)
		dc.SetLineWidth(2)
		for i := 1; i < len(s.Values) && i < len(labels); i++ {
			dc.DrawLine(xAt(i-1), yAt(s.Values[i-1]), xAt(i), yAt(s.Values[i]))
			dc.Stroke()
		}
		for i := 0; i < len(s.Values) && i < len(labels); i++ {
			dc.DrawCircle(xAt(i), yAt(s.Values[i]), 3)
			dc.Fill()
		}
	}

	drawLegend(dc, legendEntries(series))
	return encodePNG(dc)
}

// RenderPie draws a pie chart with a legend and returns it PNG-encoded.
// Zero or all-zero slices still produce a valid (empty) chart.
func RenderPie(slices []Slice) ([]byte, error) {
	dc := gg.NewContext(Width, Height)
	dc.SetFontFace(basicfont.Face7x13)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	total := 0.0
	for _, s := range slices {
		total += s.Value
	}

	const (
		cx = Width / 2.0
		cy = Height/2.0 + 10
		r  = 140.0
	)

	if total > 0 {
		angle := -math.Pi / 2
		for _, s := range slices {
			if s.Value <= 0 {
				continue
			}
			span := 2 * math.Pi * (s.Value / total)
			dc.SetColor(s.Color)
			dc.MoveTo(cx, cy)
			dc.DrawArc(cx, cy, r, angle, angle+span)
			dc.ClosePath()
			dc.Fill()
			angle += span
		}
	} else {
		dc.SetColor(color.Gray{Y: 220})
		dc.DrawCircle(cx, cy, r)
		dc.Fill()
	}

	entries := make([]legendEntry, 0, len(slices))
	for _, s := range slices {
		entries = append(entries, legendEntry{label: s.Label, color: s.Color})
	}
	drawLegend(dc, entries)
	return encodePNG(dc)
}

type legendEntry struct {
	label string
	color color.Color
}

func legendEntries(series []Series) []legendEntry {
	out := make([]legendEntry, 0, len(series))
	for _, s := range series {
		out = append(out, legendEntry{label: s.Label, color: s.Color})
	}
	return out
}

func drawLegend(dc *gg.Context, entries []legendEntry) {
	y := 12.0
	for _, e := range entries {
		dc.SetColor(e.color)
		dc.DrawRectangle(Width-130, y-6, 12, 12)
		dc.Fill()
		dc.SetColor(color.Gray{Y: 40})
		dc.DrawStringAnchored(e.label, Width-112, y, 0, 0.4)
		y += 18
	}
}

func niceCeil(v float64) float64 {
	if v <= 5 {
		return 5
	}
	mag := math.Pow(10, math.Floor(math.Log10(v)))
	return math.Ceil(v/mag) * mag
}

func encodePNG(dc *gg.Context) ([]byte, error) {
	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
