package ports

import (
	"context"

	"gradefill/domain/fill"
)

// TemplateRef locates one grading-tool template workbook on disk
type TemplateRef struct {
	Tracker  fill.TrackerType
	Filename string
	Path     string
}

// TemplateEntry is a catalog listing row for inspection endpoints
type TemplateEntry struct {
	Tracker   fill.TrackerType `json:"tracker_type"`
	Filename  string           `json:"filename"`
	Available bool             `json:"available"`
}

// TemplateCatalogPort maps tracker types to template workbooks.
// Resolve fails when the configured file is absent, so a fill surfaces
// deployment problems before any workbook is opened.
type TemplateCatalogPort interface {
	Resolve(ctx context.Context, tracker fill.TrackerType) (TemplateRef, error)

	// List reports every configured template and whether its file exists
	List(ctx context.Context) []TemplateEntry
}
