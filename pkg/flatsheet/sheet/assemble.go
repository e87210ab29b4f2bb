package sheet

// Definition carries everything a format decoder produced for assembly into
// a sheet. It is the single construction path shared by every builder.
type Definition struct {
	// Records are the decoded data records, one per row.
	Records [][]Data
	// HeaderRecord is the first decoded record when labels are read from the
	// source, nil otherwise.
	HeaderRecord []string
	// Primary is the primary column index.
	Primary int
	// Flexible pads short rows with empty cells instead of rejecting ragged
	// input.
	Flexible bool
	// Labels selects how column labels are derived.
	Labels HeaderLabelStrategy
	// Types selects how column types are derived.
	Types TypesStrategy
}

// New assembles and validates a sheet from decoded records: rows and cells
// receive monotonic ids, ragged input is padded or rejected per the flexible
// flag, labels and types are resolved per their strategies, and the finished
// sheet is validated against all invariants.
func New(def Definition) (*Sheet, error) {
	rows := make([]Row, len(def.Records))
	longest := 0
	for i, rec := range def.Records {
		rows[i] = NewRowFromData(rec, i, def.Primary)
		if len(rec) > longest {
			longest = len(rec)
		}
	}

	if def.Flexible {
		for i := range rows {
			rows[i].pad(longest)
		}
	} else {
		// A row count reference: the header record when labels were read
		// from the source, the longest row otherwise.
		ref := longest
		if def.Labels.ReadsLabels() && def.HeaderRecord != nil {
			ref = len(def.HeaderRecord)
		}
		for i := range rows {
			if rows[i].Len() != ref {
				return nil, newError(ErrInvalidColumnLength, "row with id %d has %d fields, expected %d", rows[i].id, rows[i].Len(), ref)
			}
		}
		longest = ref
	}

	var labels []string
	switch def.Labels.mode {
	case labelProvided:
		labels = balanceVector(def.Labels.labels, longest)
	case labelRead:
		labels = balanceVector(def.HeaderRecord, longest)
	default:
		labels = make([]string, longest)
	}

	var types []ColumnType
	if def.Types.mode == typesProvided {
		types = balanceVector(def.Types.types, longest)
	} else {
		types = make([]ColumnType, longest)
	}

	headers := make([]ColumnHeader, longest)
	for i := range headers {
		headers[i] = ColumnHeader{Label: labels[i], Kind: types[i]}
	}

	sh := &Sheet{
		headers:   headers,
		rows:      rows,
		idCounter: len(rows),
		primary:   def.Primary,
		flexible:  def.Flexible,
	}
	if def.Types.mode == typesInfer {
		sh.inferColumnTypes()
	}
	if err := sh.Validate(); err != nil {
		return nil, err
	}
	return sh, nil
}

// balanceVector returns lst resized to size, padding with the zero value and
// trimming any excess.
func balanceVector[T any](lst []T, size int) []T {
	out := make([]T, size)
	copy(out, lst)
	return out
}
