// Package chart defines the data contracts consumed by the dashboard charts. It does
// not render anything.
package chart

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrLengthMismatch = errors.New("labels and values differ in length")
	ErrUnknownSegment = errors.New("unknown pie segment")
)

// Kind is the visual chart type a series is meant for.
type Kind string

const (
	KindArea Kind = "area"
	KindBar  Kind = "bar"
	KindLine Kind = "line"
	KindPie  Kind = "pie"
)

// Point is one {x, y} tuple.
type Point struct {
	X string  `json:"x"`
	Y float64 `json:"y"`
}

// Series is an ordered list of points.
type Series struct {
	Name   string  `json:"name"`
	Points []Point `json:"points"`
}

// NewSeries zips labels with values.
func NewSeries(name string, labels []string, values []float64) (Series, error) {
	if len(labels) != len(values) {
		return Series{}, fmt.Errorf("%s: %d labels, %d values: %w", name, len(labels), len(values), ErrLengthMismatch)
	}
	points := make([]Point, len(labels))
	for i := range labels {
		points[i] = Point{X: labels[i], Y: values[i]}
	}
	return Series{Name: name, Points: points}, nil
}

// Total sums the series.
func (s Series) Total() float64 {
	var sum float64
	for _, p := range s.Points {
		sum += p.Y
	}
	return sum
}

// Chart is the payload of one area, bar or line chart.
type Chart struct {
	ID     string   `json:"id"`
	Title  string   `json:"title"`
	Kind   Kind     `json:"kind"`
	Series []Series `json:"series"`
}

// Slice is one {label, value} tuple of a pie ring.
type Slice struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Segment is an outer-ring slice with its inner-ring breakdown.
type Segment struct {
	Label     string  `json:"label"`
	Value     float64 `json:"value"`
	Breakdown []Slice `json:"breakdown,omitempty"`
}

// Pie is a two-ring pie whose inner ring shows the breakdown of the selected segment.
type Pie struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Segments []Segment `json:"segments"`
}

// PieSelection is the drill-down state: the selected segment label or empty.
type PieSelection struct {
	Segment string `json:"segment,omitempty"`
}

// Toggle selects label, or clears the selection when label is already selected.
func (s PieSelection) Toggle(label string) PieSelection {
	if s.Segment == label {
		return PieSelection{}
	}
	return PieSelection{Segment: label}
}

// Has reports whether label is one of the pie's segments.
func (p Pie) Has(label string) bool {
	_, ok := p.segment(label)
	return ok
}

func (p Pie) segment(label string) (Segment, bool) {
	for _, s := range p.Segments {
		if s.Label == label {
			return s, true
		}
	}
	return Segment{}, false
}

// RingSlice is a slice of a rendered ring.
type RingSlice struct {
	Label    string  `json:"label"`
	Value    float64 `json:"value"`
	Percent  float64 `json:"percent"`
	Selected bool    `json:"selected,omitempty"`
}

// PieView is what the client draws for a selection.
type PieView struct {
	ID       string      `json:"id"`
	Title    string      `json:"title"`
	Kind     Kind        `json:"kind"`
	Selected string      `json:"selected,omitempty"`
	Outer    []RingSlice `json:"outer"`
	Inner    []RingSlice `json:"inner,omitempty"`
}

// View renders both rings for sel. Percentages are rounded to one decimal. A selection
// naming an unknown segment is an error.
func (p Pie) View(sel PieSelection) (PieView, error) {
	view := PieView{ID: p.ID, Title: p.Title, Kind: KindPie, Selected: sel.Segment}

	outer := make([]Slice, len(p.Segments))
	for i, s := range p.Segments {
		outer[i] = Slice{Label: s.Label, Value: s.Value}
	}
	view.Outer = ring(outer, sel.Segment)

	if sel.Segment == "" {
		return view, nil
	}
	seg, ok := p.segment(sel.Segment)
	if !ok {
		return PieView{}, fmt.Errorf("%q: %w", sel.Segment, ErrUnknownSegment)
	}
	view.Inner = ring(seg.Breakdown, "")
	return view, nil
}

func ring(slices []Slice, selected string) []RingSlice {
	var total float64
	for _, s := range slices {
		total += s.Value
	}
	out := make([]RingSlice, len(slices))
	for i, s := range slices {
		out[i] = RingSlice{Label: s.Label, Value: s.Value, Selected: selected != "" && s.Label == selected}
		if total > 0 {
			out[i].Percent = math.Round(s.Value/total*1000) / 10
		}
	}
	return out
}
