package models

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPoint(t *testing.T) {
	p1 := NewPoint(2, 3)
	if p1.X != 2 || p1.Y != 3 {
		t.Errorf("point = (%v, %v), expected (2, 3)", p1.X, p1.Y)
	}

	p2 := NewPoint("something", "else")
	if p2.X != "something" || p2.Y != "else" {
		t.Errorf("point = (%v, %v), expected (something, else)", p2.X, p2.Y)
	}
}

func TestLine(t *testing.T) {
	ln := NewLine("Line 1",
		NewPoint("one", 1),
		NewPoint("two", 2),
		NewPoint("three", 3),
	)

	if ln.Label != "Line 1" {
		t.Errorf("label = %q, expected Line 1", ln.Label)
	}
	xs := make([]string, 0, len(ln.Points))
	for _, p := range ln.Points {
		xs = append(xs, p.X)
	}
	if diff := cmp.Diff([]string{"one", "two", "three"}, xs); diff != "" {
		t.Errorf("x values mismatch (-want +got):\n%s", diff)
	}
}

func TestScale(t *testing.T) {
	s := Scale[int]{1, 2, 3}
	if !s.Contains(2) {
		t.Error("expected scale to contain 2")
	}
	if s.Contains(9) {
		t.Error("expected scale not to contain 9")
	}

	points := s.Points()
	points[0] = 42
	if s[0] != 1 {
		t.Error("Points must return a copy")
	}
}

func TestNewLineGraph(t *testing.T) {
	lines := []Line[string, int]{
		NewLine("deutsch", NewPoint("eins", 1), NewPoint("zwei", 2)),
		NewLine("english", NewPoint("one", 1), NewPoint("two", 2)),
	}
	xScale := Scale[string]{"eins", "zwei", "one", "two"}
	yScale := Scale[int]{1, 2}

	lg, err := NewLineGraph(lines, "Language", "Number", xScale, yScale)
	if err != nil {
		t.Fatalf("NewLineGraph failed: %v", err)
	}
	if lg.XLabel != "Language" || lg.YLabel != "Number" {
		t.Errorf("axis labels = %q, %q, expected Language, Number", lg.XLabel, lg.YLabel)
	}
	if len(lg.Lines) != 2 {
		t.Errorf("line count = %d, expected 2", len(lg.Lines))
	}
}

func TestNewLineGraphRejectsPointOffScale(t *testing.T) {
	lines := []Line[string, int]{
		NewLine("", NewPoint("one", 1), NewPoint("missing", 2)),
	}

	_, err := NewLineGraph(lines, "", "", Scale[string]{"one"}, Scale[int]{1, 2})
	var lgErr *LineGraphError
	if !errors.As(err, &lgErr) {
		t.Fatalf("error = %v, expected a LineGraphError", err)
	}

	_, err = NewLineGraph(lines, "", "", Scale[string]{"one", "missing"}, Scale[int]{1})
	if !errors.As(err, &lgErr) {
		t.Fatalf("error = %v, expected a LineGraphError", err)
	}
}
