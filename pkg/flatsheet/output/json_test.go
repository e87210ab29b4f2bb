package output

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ukaji3/flatsheet-go/pkg/flatsheet/sheet"
)

func buildSheet(t *testing.T) *sheet.Sheet {
	t.Helper()
	sh, err := sheet.New(sheet.Definition{
		Records: [][]sheet.Data{
			{sheet.Text("apple"), sheet.Integer(3)},
			{sheet.Text("banana"), sheet.None()},
		},
		Labels: sheet.ProvidedLabels("fruit", "count"),
		Types:  sheet.InferTypes(),
	})
	if err != nil {
		t.Fatalf("failed to build sheet: %v", err)
	}
	return sh
}

func TestNewDocument(t *testing.T) {
	doc := NewDocument(buildSheet(t))

	want := Document{
		Headers: []Header{
			{Label: "fruit", Kind: "text"},
			{Label: "count", Kind: "integer"},
		},
		Rows: [][]sheet.Data{
			{sheet.Text("apple"), sheet.Integer(3)},
			{sheet.Text("banana"), sheet.None()},
		},
	}
	if diff := cmp.Diff(want, doc, cmp.AllowUnexported(sheet.Data{})); diff != "" {
		t.Errorf("document mismatch (-want +got):\n%s", diff)
	}
}

func TestToJSON(t *testing.T) {
	raw, err := ToJSON(buildSheet(t), false)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}

	want := `{"headers":[{"label":"fruit","kind":"text"},{"label":"count","kind":"integer"}],"rows":[["apple",3],["banana",null]],"primary":0}`
	if string(raw) != want {
		t.Errorf("ToJSON = %s, expected %s", raw, want)
	}
}

func TestToJSONPretty(t *testing.T) {
	raw, err := ToJSON(buildSheet(t), true)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}

	// Pretty output must decode back to the same document.
	var compact, pretty any
	flat, err := ToJSON(buildSheet(t), false)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	if err := json.Unmarshal(flat, &compact); err != nil {
		t.Fatalf("failed to decode compact output: %v", err)
	}
	if err := json.Unmarshal(raw, &pretty); err != nil {
		t.Fatalf("failed to decode pretty output: %v", err)
	}
	if diff := cmp.Diff(compact, pretty); diff != "" {
		t.Errorf("pretty output mismatch (-compact +pretty):\n%s", diff)
	}
}
