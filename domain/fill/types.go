package fill

import (
	"errors"
	"fmt"
	"strings"
)

// TrackerType identifies which grading-tool template a fill targets
type TrackerType string

const (
	TrackerFlat TrackerType = "flat"
	TrackerXTR  TrackerType = "xtr"
)

// ErrUnknownTracker is returned when a tracker type cannot be parsed
var ErrUnknownTracker = errors.New("unknown tracker type")

// ParseTrackerType normalizes raw client input (whitespace and case are
// ignored) into a TrackerType
func ParseTrackerType(s string) (TrackerType, error) {
	switch TrackerType(strings.ToLower(strings.TrimSpace(s))) {
	case TrackerFlat:
		return TrackerFlat, nil
	case TrackerXTR:
		return TrackerXTR, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTracker, s)
}

// String returns the string representation
func (t TrackerType) String() string {
	return string(t)
}

// FilledWorkbookName is the download filename for a filled template
func (t TrackerType) FilledWorkbookName() string {
	return fmt.Sprintf("GradingTool_Filled_%s.xlsm", strings.ToUpper(string(t)))
}

// MacroWorkbookContentType is the media type for macro-enabled workbooks
const MacroWorkbookContentType = "application/vnd.ms-excel.sheet.macroEnabled.12"

// Request is a decoded fill payload. The coordinate arrays carry untyped JSON
// scalars that pass through to the workbook unmodified.
type Request struct {
	TrackerType string `json:"tracker_type"`
	X           []any  `json:"x"`
	Y           []any  `json:"y"`
	Z           []any  `json:"z"`
	Pole        []any  `json:"pole"`
}

// RowCount returns the number of complete rows across the four arrays.
// Ragged arrays are truncated to the shortest one.
func (r Request) RowCount() int {
	n := len(r.X)
	for _, l := range [3]int{len(r.Y), len(r.Z), len(r.Pole)} {
		if l < n {
			n = l
		}
	}
	return n
}

// Row is one surveyed point destined for the Inputs sheet
type Row struct {
	Point       int
	Easting     any
	Northing    any
	Elevation   any
	Description any
}

// Rows assembles the complete rows of the request. Point numbers are
// synthetic and 1-based regardless of what the client sent.
func (r Request) Rows() []Row {
	n := r.RowCount()
	rows := make([]Row, 0, n)
	for i := 0; i < n; i++ {
		rows = append(rows, Row{
			Point:       i + 1,
			Easting:     r.X[i],
			Northing:    r.Y[i],
			Elevation:   r.Z[i],
			Description: r.Pole[i],
		})
	}
	return rows
}

// Result is a completed fill ready to stream back to the client
type Result struct {
	FillID      FillID
	Tracker     TrackerType
	Filename    string
	ContentType string
	Content     []byte
	RowsWritten int
}
