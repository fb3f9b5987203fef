package fill

import "strings"

// Template layout facts for the grading-tool workbooks. Headers live in the
// first row of the Inputs sheet; data starts on the row below.
const (
	InputsSheet  = "Inputs"
	HeaderRow    = 1
	FirstDataRow = 2
)

// FieldKey identifies a logical column of the Inputs sheet
type FieldKey string

const (
	FieldPoints      FieldKey = "points"
	FieldEasting     FieldKey = "easting"
	FieldNorthing    FieldKey = "northing"
	FieldElevation   FieldKey = "elevation"
	FieldDescription FieldKey = "description"
)

// Field describes one logical column: the label used in operator-facing
// messages and the header spellings that map to it. Synonyms are stored
// normalized and checked in order.
type Field struct {
	Key      FieldKey
	Label    string
	Synonyms []string
}

// InputFields is the Inputs-sheet schema. Order matters twice over: missing
// headers are reported in this order, and earlier synonyms win when a header
// could match more than one spelling of the same field.
var InputFields = []Field{
	{Key: FieldPoints, Label: "Points", Synonyms: []string{"points", "point"}},
	{Key: FieldEasting, Label: "Easting", Synonyms: []string{"easting", "x", "eastings"}},
	{Key: FieldNorthing, Label: "Northing", Synonyms: []string{"northing", "y", "northings"}},
	{Key: FieldElevation, Label: "Elevation", Synonyms: []string{"elevation", "z", "rl", "level"}},
	{Key: FieldDescription, Label: "Description", Synonyms: []string{"description", "pole", "id", "name"}},
}

// NormalizeHeader folds a raw header cell into the form synonyms are stored in
func NormalizeHeader(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ResolveColumn picks this field's column from a header-text index, trying
// synonyms in order and taking the first present. headers maps normalized
// header text to a 1-based column.
func (f Field) ResolveColumn(headers map[string]int) (int, bool) {
	for _, synonym := range f.Synonyms {
		if col, ok := headers[synonym]; ok {
			return col, true
		}
	}
	return 0, false
}

// CellValue returns the row's value for this field
func (f Field) CellValue(row Row) any {
	switch f.Key {
	case FieldPoints:
		return row.Point
	case FieldEasting:
		return row.Easting
	case FieldNorthing:
		return row.Northing
	case FieldElevation:
		return row.Elevation
	case FieldDescription:
		return row.Description
	}
	return nil
}
