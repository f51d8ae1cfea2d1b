package charts

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

const defaultChartHeight = "320px"

var (
	ErrUnsupportedKind = errors.New("unsupported chart kind")
	ErrEmptyChart      = errors.New("chart has no data")
)

// Kind selects the chart type rendered for a Spec.
type Kind string

const (
	KindPie  Kind = "pie"
	KindLine Kind = "line"
	KindBar  Kind = "bar"
	// KindHBar is a bar chart with the category axis on the left.
	KindHBar Kind = "hbar"
)

// Slice is one labeled value of a pie or horizontal bar chart.
type Slice struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Color string  `json:"color,omitempty"`
}

// Series is one legend entry of a line or bar chart, aligned with Spec.Labels.
type Series struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
	Color  string    `json:"color,omitempty"`
}

// Spec describes a chart. ID doubles as the DOM id of the chart container so
// identical specs render identical HTML.
type Spec struct {
	ID     string   `json:"id"`
	Kind   Kind     `json:"kind"`
	Title  string   `json:"title,omitempty"`
	Height string   `json:"height,omitempty"`
	Labels []string `json:"labels,omitempty"`
	Slices []Slice  `json:"slices,omitempty"`
	Series []Series `json:"series,omitempty"`
}

// Renderer turns chart specs into standalone go-echarts HTML documents.
type Renderer struct {
	cache      RenderCache
	theme      string
	assetsHost string
}

// Option customizes a Renderer.
type Option func(*Renderer)

// WithCache injects a render cache. A nil cache disables caching.
func WithCache(cache RenderCache) Option {
	return func(r *Renderer) {
		r.cache = cache
	}
}

// WithTheme sets the ECharts theme (defaults to chalk, a dark theme).
func WithTheme(theme string) Option {
	return func(r *Renderer) {
		r.theme = theme
	}
}

// WithAssetsHost rewrites the host ECharts JS is loaded from.
func WithAssetsHost(host string) Option {
	return func(r *Renderer) {
		r.assetsHost = host
	}
}

// NewRenderer builds a renderer with a five minute cache.
func NewRenderer(options ...Option) *Renderer {
	r := &Renderer{
		cache: NewCache(5 * time.Minute),
		theme: types.ThemeChalk,
	}
	for _, opt := range options {
		opt(r)
	}
	return r
}

// Render returns the chart HTML for spec.
func (r *Renderer) Render(spec Spec) (string, error) {
	if err := validate(spec); err != nil {
		return "", fmt.Errorf("charts: %s: %w", spec.ID, err)
	}
	renderFn := func() (string, error) {
		return r.render(spec)
	}
	if r.cache == nil {
		return renderFn()
	}
	key := fmt.Sprintf("%s:%s:%s", spec.ID, spec.Kind, specHash(spec))
	return r.cache.GetOrRender(key, renderFn)
}

func validate(spec Spec) error {
	switch spec.Kind {
	case KindPie, KindHBar:
		if len(spec.Slices) == 0 {
			return ErrEmptyChart
		}
	case KindLine, KindBar:
		if len(spec.Series) == 0 || len(spec.Labels) == 0 {
			return ErrEmptyChart
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedKind, spec.Kind)
	}
	return nil
}

func (r *Renderer) render(spec Spec) (string, error) {
	switch spec.Kind {
	case KindPie:
		pie := charts.NewPie()
		pie.SetGlobalOptions(r.globalOptions(spec)...)
		pie.AddSeries(spec.Title, toPieData(spec.Slices),
			charts.WithPieChartOpts(opts.PieChart{Radius: []string{"45%", "70%"}}))
		return renderChart(pie)
	case KindHBar:
		names := make([]string, len(spec.Slices))
		for i, s := range spec.Slices {
			names[i] = s.Name
		}
		bar := charts.NewBar()
		bar.SetGlobalOptions(r.globalOptions(spec)...)
		bar.SetXAxis(names).AddSeries(spec.Title, toSliceBarData(spec.Slices))
		bar.XYReversal()
		return renderChart(bar)
	case KindLine:
		line := charts.NewLine()
		line.SetGlobalOptions(r.globalOptions(spec)...)
		line.SetXAxis(spec.Labels)
		for _, s := range spec.Series {
			line.AddSeries(s.Name, toLineData(s.Values), charts.WithItemStyleOpts(itemStyle(s.Color)))
		}
		line.SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))
		return renderChart(line)
	case KindBar:
		bar := charts.NewBar()
		bar.SetGlobalOptions(r.globalOptions(spec)...)
		bar.SetXAxis(spec.Labels)
		for _, s := range spec.Series {
			bar.AddSeries(s.Name, toBarData(s.Values), charts.WithItemStyleOpts(itemStyle(s.Color)))
		}
		return renderChart(bar)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedKind, spec.Kind)
	}
}

func renderChart(renderable interface{ Render(io.Writer) error }) (string, error) {
	var buf bytes.Buffer
	if err := renderable.Render(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (r *Renderer) globalOptions(spec Spec) []charts.GlobalOpts {
	height := spec.Height
	if height == "" {
		height = defaultChartHeight
	}
	initOpts := opts.Initialization{
		Theme:           r.theme,
		Width:           "100%",
		Height:          height,
		ChartID:         spec.ID,
		BackgroundColor: "transparent",
	}
	if r.assetsHost != "" {
		initOpts.AssetsHost = r.assetsHost
	}
	return []charts.GlobalOpts{
		charts.WithTitleOpts(opts.Title{Title: spec.Title}),
		charts.WithInitializationOpts(initOpts),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(spec.Kind != KindHBar)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	}
}

func itemStyle(color string) opts.ItemStyle {
	return opts.ItemStyle{Color: color}
}

func toPieData(slices []Slice) []opts.PieData {
	data := make([]opts.PieData, len(slices))
	for i, s := range slices {
		data[i] = opts.PieData{
			Name:      s.Name,
			Value:     s.Value,
			ItemStyle: &opts.ItemStyle{Color: s.Color},
		}
	}
	return data
}

func toSliceBarData(slices []Slice) []opts.BarData {
	data := make([]opts.BarData, len(slices))
	for i, s := range slices {
		data[i] = opts.BarData{
			Name:      s.Name,
			Value:     s.Value,
			ItemStyle: &opts.ItemStyle{Color: s.Color},
		}
	}
	return data
}

func toBarData(values []float64) []opts.BarData {
	data := make([]opts.BarData, len(values))
	for i, v := range values {
		data[i] = opts.BarData{Value: v}
	}
	return data
}

func toLineData(values []float64) []opts.LineData {
	data := make([]opts.LineData, len(values))
	for i, v := range values {
		data[i] = opts.LineData{Value: v}
	}
	return data
}
