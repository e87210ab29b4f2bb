// Package models defines the visualization models derived from sheets.
package models

import "fmt"

// Point is a single x/y pairing on a line.
type Point[X, Y comparable] struct {
	X X `json:"x"`
	Y Y `json:"y"`
}

// NewPoint creates a new point.
func NewPoint[X, Y comparable](x X, y Y) Point[X, Y] {
	return Point[X, Y]{X: x, Y: y}
}

// Line is an ordered series of points with an optional label. An empty label
// marks an unlabeled line.
type Line[X, Y comparable] struct {
	Points []Point[X, Y] `json:"points"`
	Label  string        `json:"label,omitempty"`
}

// NewLine creates a line from its points.
func NewLine[X, Y comparable](label string, points ...Point[X, Y]) Line[X, Y] {
	return Line[X, Y]{Points: points, Label: label}
}

// Scale is the ordered set of values an axis can take.
type Scale[T comparable] []T

// Points returns a copy of the scale values.
func (s Scale[T]) Points() []T {
	out := make([]T, len(s))
	copy(out, s)
	return out
}

// Contains reports whether v lies on the scale.
func (s Scale[T]) Contains(v T) bool {
	for _, p := range s {
		if p == v {
			return true
		}
	}
	return false
}

// LineGraph is a set of lines plotted against labeled, scaled axes.
type LineGraph[X, Y comparable] struct {
	Lines  []Line[X, Y] `json:"lines"`
	XLabel string       `json:"x_label"`
	YLabel string       `json:"y_label"`
	XScale Scale[X]     `json:"x_scale"`
	YScale Scale[Y]     `json:"y_scale"`
}

// LineGraphError reports an invalid graph construction.
type LineGraphError struct {
	Context string
}

func (e *LineGraphError) Error() string {
	return fmt.Sprintf("line graph error: %s", e.Context)
}

// NewLineGraph assembles a graph from its lines and axis scales. Every
// point must lie on both scales; a point off either axis fails with a
// LineGraphError.
func NewLineGraph[X, Y comparable](lines []Line[X, Y], xLabel, yLabel string, xScale Scale[X], yScale Scale[Y]) (*LineGraph[X, Y], error) {
	for _, ln := range lines {
		for _, pnt := range ln.Points {
			if !xScale.Contains(pnt.X) {
				return nil, &LineGraphError{Context: fmt.Sprintf("point x value %v is not on the x scale", pnt.X)}
			}
			if !yScale.Contains(pnt.Y) {
				return nil, &LineGraphError{Context: fmt.Sprintf("point y value %v is not on the y scale", pnt.Y)}
			}
		}
	}

	return &LineGraph[X, Y]{
		Lines:  lines,
		XLabel: xLabel,
		YLabel: yLabel,
		XScale: xScale,
		YScale: yScale,
	}, nil
}

// ToLineGraph is implemented by models that can render themselves as a
// line graph.
type ToLineGraph[X, Y comparable] interface {
	ToLineGraph(xLabel, yLabel string) (*LineGraph[X, Y], error)
}
