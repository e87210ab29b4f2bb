package sheet

import (
	"sort"

	"github.com/ukaji3/flatsheet-go/pkg/flatsheet/models"
)

// createLine builds a line whose x values come from the given labels and
// whose y values are the data of each corresponding cell in the row. Any
// unpaired x or y values are ignored. idx is the position of the line within
// the graph, used to pick provided labels.
func (r *Row) createLine(strat LineLabelStrategy, xValues []string, exclude map[int]bool, idx int) models.Line[string, Data] {
	n := min(len(xValues), len(r.cells))
	var points []models.Point[string, Data]
	for i := 0; i < n; i++ {
		if exclude[i] {
			continue
		}
		if strat.mode == lineLabelFromCell && i == strat.column {
			continue
		}
		points = append(points, models.NewPoint(xValues[i], r.cells[i].data))
	}

	label := ""
	switch strat.mode {
	case lineLabelProvided:
		if idx < len(strat.labels) {
			label = strat.labels[idx]
		}
	case lineLabelFromCell:
		if c, ok := r.Cell(strat.column); ok {
			label = c.data.String()
		}
	}
	return models.NewLine(label, points...)
}

func (s *Sheet) validateToLineGraph(strat LineLabelStrategy) error {
	for _, hdr := range s.headers {
		if hdr.Kind == TypeNone {
			return newError(ErrLineGraphConversion, "cannot convert non uniform type column %q", hdr.Label)
		}
	}

	if strat.mode == lineLabelFromCell && (strat.column < 0 || strat.column >= len(s.headers)) {
		return newError(ErrLineGraphConversion, "tried to assign invalid column %d as label", strat.column)
	}

	// Every plotted column must share one type.
	uniform := TypeNone
	for i, hdr := range s.headers {
		if strat.mode == lineLabelFromCell && i == strat.column {
			continue
		}
		if uniform == TypeNone {
			uniform = hdr.Kind
		} else if uniform != hdr.Kind {
			return newError(ErrLineGraphConversion, "cannot convert different column types %v and %v", uniform, hdr.Kind)
		}
	}
	return nil
}

// CreateLineGraph converts the sheet into a line graph: each row becomes a
// line whose x values are the header labels and whose y values are the row's
// cells. excludeRows and excludeCols hold row and column positions left out
// of the conversion. Every plotted column must carry one uniform non-None
// type.
func (s *Sheet) CreateLineGraph(xLabel, yLabel string, strat LineLabelStrategy, excludeRows, excludeCols map[int]bool) (*models.LineGraph[string, Data], error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if err := s.validateToLineGraph(strat); err != nil {
		return nil, err
	}

	xValues := make([]string, len(s.headers))
	for i, hdr := range s.headers {
		xValues[i] = hdr.Label
	}

	var lines []models.Line[string, Data]
	for i := range s.rows {
		if excludeRows[i] {
			continue
		}
		lines = append(lines, s.rows[i].createLine(strat, xValues, excludeCols, len(lines)))
	}

	ySet := make(map[Data]bool)
	for _, ln := range lines {
		for _, pnt := range ln.Points {
			ySet[pnt.Y] = true
		}
	}
	yScale := make(models.Scale[Data], 0, len(ySet))
	for v := range ySet {
		yScale = append(yScale, v)
	}
	sort.Slice(yScale, func(i, j int) bool { return yScale[i].Compare(yScale[j]) < 0 })

	xSet := make(map[string]bool)
	for i, lbl := range xValues {
		if excludeCols[i] {
			continue
		}
		if strat.mode == lineLabelFromCell && i == strat.column {
			continue
		}
		xSet[lbl] = true
	}
	xScale := make(models.Scale[string], 0, len(xSet))
	for v := range xSet {
		xScale = append(xScale, v)
	}
	sort.Strings(xScale)

	lg, err := models.NewLineGraph(lines, xLabel, yLabel, xScale, yScale)
	if err != nil {
		return nil, wrapLineGraph(err)
	}
	return lg, nil
}

// ToLineGraph converts the sheet into a line graph with default strategies
// and no exclusions.
func (s *Sheet) ToLineGraph(xLabel, yLabel string) (*models.LineGraph[string, Data], error) {
	return s.CreateLineGraph(xLabel, yLabel, NoLineLabels(), nil, nil)
}
