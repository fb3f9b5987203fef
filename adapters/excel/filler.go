package excel

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"gradefill/domain/fill"
	"gradefill/internal/errors"
	"gradefill/ports"
)

// WorkbookFiller writes survey rows into grading-tool templates. The template
// is opened fresh per fill and never written back to disk, so the workbook's
// macros and all untouched cells survive the round trip.
type WorkbookFiller struct{}

// NewWorkbookFiller creates a workbook filler
func NewWorkbookFiller() *WorkbookFiller {
	return &WorkbookFiller{}
}

// Fill opens the template, writes the rows into the Inputs sheet and
// serializes the whole workbook
func (w *WorkbookFiller) Fill(ctx context.Context, req ports.FillWorkbookRequest) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	startTime := time.Now()
	f, err := excelize.OpenFile(req.Template.Path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open template workbook %s", req.Template.Filename)
	}
	defer f.Close()

	sheet, err := resolveInputsSheet(f)
	if err != nil {
		return nil, err
	}

	columns, err := resolveColumns(f, sheet)
	if err != nil {
		return nil, err
	}

	// Rows land at FirstDataRow and down. Anything already on the sheet
	// below the written block stays as-is.
	for i, row := range req.Rows {
		rowNum := fill.FirstDataRow + i
		for _, field := range fill.InputFields {
			cell, err := excelize.CoordinatesToCellName(columns[field.Key], rowNum)
			if err != nil {
				return nil, errors.Wrap(err, "failed to address cell")
			}
			if err := f.SetCellValue(sheet, cell, field.CellValue(row)); err != nil {
				return nil, errors.Wrap(err, "failed to write cell %s", cell)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "failed to serialize workbook")
	}

	log.Printf("[WorkbookFiller] %s: %d rows written to %q in %.2fms",
		req.Template.Filename, len(req.Rows), sheet, float64(time.Since(startTime).Nanoseconds())/1e6)

	return buf.Bytes(), nil
}

// InspectTemplate opens a template workbook and verifies it can take a fill:
// the Inputs sheet is present and every logical column resolves. Returns the
// resolved sheet name.
func InspectTemplate(path string) (string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return "", errors.Wrap(err, "failed to open template workbook")
	}
	defer f.Close()

	sheet, err := resolveInputsSheet(f)
	if err != nil {
		return "", err
	}
	if _, err := resolveColumns(f, sheet); err != nil {
		return "", err
	}
	return sheet, nil
}

// resolveInputsSheet finds the Inputs sheet, preferring an exact name match
// and falling back to a case-insensitive trimmed one
func resolveInputsSheet(f *excelize.File) (string, error) {
	sheets := f.GetSheetList()
	for _, name := range sheets {
		if name == fill.InputsSheet {
			return name, nil
		}
	}
	want := strings.ToLower(fill.InputsSheet)
	for _, name := range sheets {
		if strings.ToLower(strings.TrimSpace(name)) == want {
			return name, nil
		}
	}
	return "", errors.TemplateInvalid("Could not find 'Inputs' sheet in template")
}

// resolveColumns maps each logical field to a 1-based column index. The
// header row is indexed by normalized text (a repeated header keeps its
// rightmost column), then each field tries its synonyms in priority order.
func resolveColumns(f *excelize.File, sheet string) (map[fill.FieldKey]int, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read sheet %q", sheet)
	}

	var headerRow []string
	if len(rows) >= fill.HeaderRow {
		headerRow = rows[fill.HeaderRow-1]
	}

	headers := make(map[string]int, len(headerRow))
	for idx, cell := range headerRow {
		if text := fill.NormalizeHeader(cell); text != "" {
			headers[text] = idx + 1
		}
	}

	columns := make(map[fill.FieldKey]int, len(fill.InputFields))
	var missing []string
	for _, field := range fill.InputFields {
		col, ok := field.ResolveColumn(headers)
		if !ok {
			missing = append(missing, field.Label)
			continue
		}
		columns[field.Key] = col
	}
	if len(missing) > 0 {
		return nil, errors.TemplateInvalid(
			"Inputs sheet missing expected header(s): %s. Please check template headers.",
			strings.Join(missing, ", "))
	}

	return columns, nil
}
