// Package render lays out the scatter chart and draws it as SVG and HTML.
//
// Layout is pure: it turns records and scales into a Plot holding every pixel
// position. Draw, DrawLegend and DrawPage only write a Plot out.
package render

import (
	"math"
	"strconv"

	"github.com/okian/racechart/internal/adapters/interaction"
	"github.com/okian/racechart/internal/domain/model"
	"github.com/okian/racechart/internal/domain/racetime"
	"github.com/okian/racechart/internal/domain/scale"
)

const (
	tickSize       = 6
	legendSwatchX  = 20
	legendTextX    = 40
	legendFirstY   = 20
	legendRowGap   = 20
	legendTextDY   = 5
	legendFontSize = 12
)

// Legend labels.
const (
	LabelAllegation = "Riders with doping allegations"
	LabelClean      = "No doping allegations"
)

// Margin is the space around the plotting area.
type Margin struct {
	Top, Right, Bottom, Left float64
}

// Options controls surface size and styling.
type Options struct {
	Width        float64 // outer surface width
	Height       float64 // outer surface height
	Margin       Margin
	Radius       float64
	DopingColor  string
	CleanColor   string
	LegendWidth  float64
	LegendHeight float64
	Title        string
	TickCount    int
}

// DefaultOptions returns the 800x500 surface with 60px margins.
func DefaultOptions() Options {
	return Options{
		Width:        800,
		Height:       500,
		Margin:       Margin{Top: 60, Right: 60, Bottom: 60, Left: 60},
		Radius:       6,
		DopingColor:  "#ff4444",
		CleanColor:   "#4444ff",
		LegendWidth:  200,
		LegendHeight: 50,
		Title:        "Doping in Professional Bicycle Racing",
		TickCount:    scale.DefaultTickCount,
	}
}

// InnerWidth is the plotting width inside the margins.
func (o Options) InnerWidth() float64 { return o.Width - o.Margin.Left - o.Margin.Right }

// InnerHeight is the plotting height inside the margins.
func (o Options) InnerHeight() float64 { return o.Height - o.Margin.Top - o.Margin.Bottom }

// Fill picks the mark color for r.
func (o Options) Fill(r model.Record) string {
	if r.HasAllegation() {
		return o.DopingColor
	}
	return o.CleanColor
}

// Tick is one labeled axis position, relative to the plotting area.
type Tick struct {
	Pos   float64
	Label string
}

// Mark is one rendered data point.
type Mark struct {
	Index   int
	CX, CY  float64
	R       float64
	Fill    string
	XValue  int    // data-xvalue
	YValue  string // data-yvalue, ISO-8601
	Doping  bool
	Tooltip interaction.Binding
}

// LegendEntry is a swatch and its label.
type LegendEntry struct {
	CX, CY       float64
	R            float64
	Fill         string
	TextX, TextY float64
	Label        string
	FontSize     int
}

// Legend is the auxiliary color key surface.
type Legend struct {
	Width, Height float64
	Entries       []LegendEntry
}

// Plot is a fully positioned chart.
type Plot struct {
	Width, Height           float64
	Margin                  Margin
	InnerWidth, InnerHeight float64
	TickSize                float64
	Title                   string
	RenderID                string
	XTicks                  []Tick
	YTicks                  []Tick
	Marks                   []Mark
	Legend                  Legend
}

// Binder supplies the hover payload for a record.
type Binder interface {
	Binding(r model.Record) interaction.Binding
}

// Layout positions every axis tick, mark and legend entry.
func Layout(records []model.Record, scales scale.Scales, opts Options, binder Binder) Plot {
	count := opts.TickCount
	if count <= 0 {
		count = scale.DefaultTickCount
	}

	p := Plot{
		Width:       opts.Width,
		Height:      opts.Height,
		Margin:      opts.Margin,
		InnerWidth:  opts.InnerWidth(),
		InnerHeight: opts.InnerHeight(),
		TickSize:    tickSize,
		Title:       opts.Title,
	}

	for _, v := range scales.X.Ticks(count) {
		if v != math.Trunc(v) {
			continue // years only
		}
		p.XTicks = append(p.XTicks, Tick{Pos: scales.X.Map(v), Label: strconv.Itoa(int(v))})
	}
	for _, t := range scales.Y.Ticks(count) {
		p.YTicks = append(p.YTicks, Tick{Pos: scales.Y.Map(t), Label: racetime.Format(t)})
	}

	p.Marks = make([]Mark, len(records))
	for i, r := range records {
		m := Mark{
			Index:  i,
			CX:     scales.X.Map(float64(r.Year)),
			CY:     scales.Y.Map(r.Time),
			R:      opts.Radius,
			Fill:   opts.Fill(r),
			XValue: r.Year,
			YValue: racetime.ISO(r.Time),
			Doping: r.HasAllegation(),
		}
		if binder != nil {
			m.Tooltip = binder.Binding(r)
		}
		p.Marks[i] = m
	}

	p.Legend = layoutLegend(opts)
	return p
}

func layoutLegend(opts Options) Legend {
	rows := []struct {
		fill, label string
	}{
		{opts.DopingColor, LabelAllegation},
		{opts.CleanColor, LabelClean},
	}

	l := Legend{Width: opts.LegendWidth, Height: opts.LegendHeight}
	for i, row := range rows {
		y := float64(legendFirstY + i*legendRowGap)
		l.Entries = append(l.Entries, LegendEntry{
			CX:       legendSwatchX,
			CY:       y,
			R:        opts.Radius,
			Fill:     row.fill,
			TextX:    legendTextX,
			TextY:    y + legendTextDY,
			Label:    row.label,
			FontSize: legendFontSize,
		})
	}
	return l
}

// Counts returns how many marks fall in each color category.
func (p Plot) Counts() (doping, clean int) {
	for _, m := range p.Marks {
		if m.Doping {
			doping++
		} else {
			clean++
		}
	}
	return doping, clean
}
