package ports

import (
	"context"

	"gradefill/domain/fill"
)

// FillWorkbookRequest carries everything one workbook fill needs
type FillWorkbookRequest struct {
	Template TemplateRef
	Rows     []fill.Row
}

// WorkbookFillerPort writes rows into a template's Inputs sheet and
// serializes the whole workbook, macros included. Implementations never
// modify the template on disk.
type WorkbookFillerPort interface {
	Fill(ctx context.Context, req FillWorkbookRequest) ([]byte, error)
}
