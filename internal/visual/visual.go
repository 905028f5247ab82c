// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package visual builds interactive HTML charts of trip measurements:
// density histograms with kernel density overlays, box and violin plots,
// empirical CDFs and histograms marked with Tukey fences.
//
// Every builder drops missing and infinite values before plotting.
package visual

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
	"github.com/taxi-eda/taxistat/internal/scale"
	"github.com/taxi-eda/taxistat/internal/stats"
)

// DefaultAdjusts are the bandwidth multipliers drawn by HistKDE when
// none are given.
var DefaultAdjusts = []float64{0.7, 1.0, 1.8}

// Style is the look shared by all charts of a Plotter.
type Style struct {
	// Theme is a go-echarts theme name such as "westeros".
	Theme string

	// Width and Height are CSS sizes of each chart.
	Width, Height string

	// PageTitle is the title of the rendered HTML page.
	PageTitle string
}

// DefaultStyle returns the style used when none is configured.
func DefaultStyle() Style {
	return Style{
		Theme:     types.ThemeWesteros,
		Width:     "900px",
		Height:    "500px",
		PageTitle: "Trip data report",
	}
}

// A Plotter builds charts in one Style.
type Plotter struct {
	style Style
}

// New returns a Plotter drawing in style. Empty fields of style take
// their value from DefaultStyle.
func New(style Style) *Plotter {
	def := DefaultStyle()
	if style.Theme == "" {
		style.Theme = def.Theme
	}
	if style.Width == "" {
		style.Width = def.Width
	}
	if style.Height == "" {
		style.Height = def.Height
	}
	if style.PageTitle == "" {
		style.PageTitle = def.PageTitle
	}
	return &Plotter{style: style}
}

// Style returns p's style.
func (p *Plotter) Style() Style {
	return p.style
}

// global returns the options every chart carries.
func (p *Plotter) global(title, subtitle string) []charts.GlobalOpts {
	return []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{
			Theme:     p.style.Theme,
			Width:     p.style.Width,
			Height:    p.style.Height,
			PageTitle: p.style.PageTitle,
		}),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: opts.Bool(true),
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{
					Show:  opts.Bool(true),
					Title: "Save",
				},
				DataZoom: &opts.ToolBoxFeatureDataZoom{
					Show: opts.Bool(true),
				},
			},
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "bottom"}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: subtitle,
		}),
	}
}

// valueAxis returns a numeric X axis over [lo, hi] widened to nice
// tick values.
func valueAxis(name string, lo, hi float64) opts.XAxis {
	s := scale.Linear{Min: lo, Max: hi}
	s.Nice(8)
	return opts.XAxis{Type: "value", Name: name, Min: s.Min, Max: s.Max}
}

func axisName(unit string) string {
	if unit == "" {
		return "value"
	}
	return fmt.Sprintf("value (%s)", unit)
}

func densityBars(h stats.Hist) []opts.BarData {
	items := make([]opts.BarData, 0, len(h.Counts))
	centers := h.Centers()
	for i, d := range h.Density() {
		items = append(items, opts.BarData{Value: [2]float64{centers[i], d}})
	}
	return items
}

func convertPairs(xs, ys []float64) []opts.LineData {
	items := make([]opts.LineData, 0, len(xs))
	for i := range xs {
		items = append(items, opts.LineData{Value: [2]float64{xs[i], ys[i]}})
	}
	return items
}

func histBar(p *Plotter, title, unit string, h stats.Hist) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(append(p.global(title, fmt.Sprintf("n=%d, %d bins", h.N, len(h.Counts))),
		charts.WithXAxisOpts(valueAxis(axisName(unit), h.Edges[0], h.Edges[len(h.Edges)-1])),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Name: "density"}),
	)...)
	bar.AddSeries("histogram", densityBars(h),
		charts.WithBarChartOpts(opts.BarChart{BarCategoryGap: "0%", BarWidth: "90%"}))
	return bar
}

// HistKDE returns a density histogram of xs with Freedman–Diaconis bins,
// overlaid with one Gaussian kernel density estimate per bandwidth
// adjustment. If adjusts is empty, DefaultAdjusts is used. It returns
// nil if xs has no observations.
func (p *Plotter) HistKDE(xs []float64, title, unit string, adjusts []float64) *charts.Bar {
	h := stats.Histogram(xs, 0)
	if h.N == 0 {
		return nil
	}
	if len(adjusts) == 0 {
		adjusts = DefaultAdjusts
	}
	bar := histBar(p, title, unit, h)

	lo, hi := h.Edges[0], h.Edges[len(h.Edges)-1]
	line := charts.NewLine()
	for _, adjust := range adjusts {
		kde := stats.KDE{Adjust: adjust}.FromSample(stats.Sample{Xs: xs})
		if kde == nil {
			continue
		}
		plot := &stats.Plot{F: kde, X: stats.Axis{Low: lo, High: hi}, Samples: 200}
		kxs, kys := plot.Values()
		line.AddSeries(fmt.Sprintf("KDE adjust=%g", adjust), convertPairs(kxs, kys),
			charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true), ShowSymbol: opts.Bool(false)}))
	}
	bar.Overlap(line)
	return bar
}

// Box returns a box plot of xs: the quartile box with whiskers reaching
// the most extreme observations within the 1.5·IQR Tukey fences, and the
// observations beyond the whiskers drawn as points. It returns nil if xs
// has no observations.
func (p *Plotter) Box(xs []float64, title string) *charts.BoxPlot {
	s := stats.Sample{Xs: xs}
	obs := s.Observations()
	if len(obs) == 0 {
		return nil
	}
	fences, _ := stats.TukeyFences(obs, stats.MildFence)

	lo, hi := stats.Bounds(obs)
	whiskerLo, whiskerHi := hi, lo
	var outliers []opts.ScatterData
	for _, x := range obs {
		if fences.Contains(x) {
			whiskerLo = min(whiskerLo, x)
			whiskerHi = max(whiskerHi, x)
		} else {
			outliers = append(outliers, opts.ScatterData{Value: []interface{}{title, x}, SymbolSize: 6})
		}
	}
	q1, q3 := s.Quartiles()

	box := charts.NewBoxPlot()
	box.SetGlobalOptions(append(p.global(title, fmt.Sprintf("n=%d, %d beyond fences", len(obs), len(outliers))),
		charts.WithXAxisOpts(opts.XAxis{Type: "category"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Scale: opts.Bool(true)}),
	)...)
	box.SetXAxis([]string{title})
	box.AddSeries("box", []opts.BoxPlotData{{
		Name:  title,
		Value: []float64{whiskerLo, q1, s.Median(), q3, whiskerHi},
	}})

	scatter := charts.NewScatter()
	scatter.AddSeries("outliers", outliers)
	box.Overlap(scatter)
	return box
}

// Violin returns a violin plot of xs: the Gaussian kernel density
// estimate drawn above and mirrored below the value axis, cut at the
// smallest and largest observations, with lines at the quartiles and
// the median. It returns nil if xs has no observations or no spread.
func (p *Plotter) Violin(xs []float64, title, unit string) *charts.Line {
	s := stats.Sample{Xs: xs}
	kde := stats.KDE{}.FromSample(s)
	if kde == nil {
		return nil
	}
	lo, hi := s.Bounds()
	plot := &stats.Plot{F: kde, X: stats.Axis{Low: lo, High: hi}, Samples: 200}
	vxs, vys := plot.Values()
	mirrored := make([]float64, len(vys))
	for i, y := range vys {
		mirrored[i] = -y
	}

	line := charts.NewLine()
	line.SetGlobalOptions(append(p.global(title, fmt.Sprintf("n=%d", s.N())),
		charts.WithXAxisOpts(valueAxis(axisName(unit), lo, hi)),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Name: "density"}),
	)...)

	area := []charts.SeriesOpts{
		charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true), ShowSymbol: opts.Bool(false)}),
		charts.WithAreaStyleOpts(opts.AreaStyle{Opacity: opts.Float(0.4)}),
	}
	q1, q3 := s.Quartiles()
	med := s.Median()
	line.AddSeries("density", convertPairs(vxs, vys), append(area,
		charts.WithMarkLineNameXAxisItemOpts(
			opts.MarkLineNameXAxisItem{Name: fmt.Sprintf("Q1 %.4g", q1), XAxis: q1},
			opts.MarkLineNameXAxisItem{Name: fmt.Sprintf("median %.4g", med), XAxis: med},
			opts.MarkLineNameXAxisItem{Name: fmt.Sprintf("Q3 %.4g", q3), XAxis: q3},
		),
		charts.WithMarkLineStyleOpts(opts.MarkLineStyle{
			Symbol:    []string{"none", "none"},
			LineStyle: &opts.LineStyle{Type: "dotted"},
			Label:     &opts.Label{Show: opts.Bool(true), Formatter: "{b}"},
		}),
	)...)
	line.AddSeries("density (mirrored)", convertPairs(vxs, mirrored), area...)
	return line
}

// ECDF returns a step plot of the empirical distribution function of
// xs, overlaid with the CDF of the normal distribution fitted to xs. It
// returns nil if xs has no observations.
func (p *Plotter) ECDF(xs []float64, title, unit string) *charts.Line {
	values, probs := stats.ECDF(xs)
	if len(values) == 0 {
		return nil
	}

	line := charts.NewLine()
	line.SetGlobalOptions(append(p.global(title, fmt.Sprintf("n=%d", len(values))),
		charts.WithXAxisOpts(valueAxis(axisName(unit), values[0], values[len(values)-1])),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Name: "proportion", Min: 0, Max: 1}),
	)...)

	steps := append([]opts.LineData{{Value: [2]float64{values[0], 0}}}, convertPairs(values, probs)...)
	line.AddSeries("eCDF", steps,
		charts.WithLineChartOpts(opts.LineChart{Step: "end", ShowSymbol: opts.Bool(false)}))

	if fit, ok := stats.FitNormal(xs); ok {
		nxs := stats.Linspace(values[0], values[len(values)-1], 200)
		line.AddSeries(fmt.Sprintf("normal CDF, μ=%.3g σ=%.3g", fit.Mu, fit.Sigma), convertPairs(nxs, fit.CDFEach(nxs)),
			charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true), ShowSymbol: opts.Bool(false)}))
	}
	return line
}

// HistWithFences returns a density histogram of xs with vertical lines
// at the Tukey fences for multiplier k. It returns nil and no error if
// xs has no observations, and an error wrapping
// stats.ErrInvalidParameter for an invalid k.
func (p *Plotter) HistWithFences(xs []float64, title, unit string, k float64) (*charts.Bar, error) {
	fences, err := stats.TukeyFences(xs, k)
	if err != nil {
		return nil, err
	}
	h := stats.Histogram(xs, 0)
	if h.N == 0 {
		return nil, nil
	}

	bar := histBar(p, title, unit, h)
	lo, hi := min(h.Edges[0], fences.Lower), max(h.Edges[len(h.Edges)-1], fences.Upper)
	bar.SetGlobalOptions(charts.WithXAxisOpts(valueAxis(axisName(unit), lo, hi)))
	bar.SetSeriesOptions(
		charts.WithMarkLineNameXAxisItemOpts(
			opts.MarkLineNameXAxisItem{Name: fmt.Sprintf("lower fence %.4g", fences.Lower), XAxis: fences.Lower},
			opts.MarkLineNameXAxisItem{Name: fmt.Sprintf("upper fence %.4g", fences.Upper), XAxis: fences.Upper},
		),
		charts.WithMarkLineStyleOpts(opts.MarkLineStyle{
			Symbol:    []string{"none", "none"},
			LineStyle: &opts.LineStyle{Type: "dashed"},
			Label:     &opts.Label{Show: opts.Bool(true), Formatter: "{b}"},
		}),
	)
	return bar, nil
}

// Render writes charts to w as one HTML page. nil charts are skipped.
func (p *Plotter) Render(w io.Writer, cs ...components.Charter) error {
	page := components.NewPage()
	page.SetPageTitle(p.style.PageTitle)
	for _, c := range cs {
		if c == nil || isNilChart(c) {
			continue
		}
		page.AddCharts(c)
	}
	return page.Render(w)
}

func isNilChart(c components.Charter) bool {
	switch c := c.(type) {
	case *charts.Bar:
		return c == nil
	case *charts.BoxPlot:
		return c == nil
	case *charts.Line:
		return c == nil
	}
	return false
}
