package testkit

import (
	"bytes"

	"github.com/xuri/excelize/v2"

	"gradefill/domain/fill"
)

// DefaultHeaders is the canonical Inputs header row
func DefaultHeaders() []string {
	return []string{"Points", "Easting", "Northing", "Elevation", "Description"}
}

// TemplateSpec describes a fixture grading-tool template workbook
type TemplateSpec struct {
	// Sheet defaults to the Inputs sheet name
	Sheet string
	// Headers is row 1. Nil means DefaultHeaders; empty means no header row.
	Headers []string
	// Stale rows are written starting at the first data row, standing in for
	// leftovers from an earlier fill of the template.
	Stale [][]any
}

// WriteTemplate builds a fixture template at path. Use an .xlsm path so the
// workbook matches what the catalog serves in production.
func WriteTemplate(path string, spec TemplateSpec) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := spec.Sheet
	if sheet == "" {
		sheet = fill.InputsSheet
	}
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	headers := spec.Headers
	if headers == nil {
		headers = DefaultHeaders()
	}
	if len(headers) > 0 {
		if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
			return err
		}
	}

	for i, row := range spec.Stale {
		cell, err := excelize.CoordinatesToCellName(1, fill.FirstDataRow+i)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}

// OpenResult reopens serialized workbook bytes for assertions
func OpenResult(content []byte) (*excelize.File, error) {
	return excelize.OpenReader(bytes.NewReader(content))
}
