package excel

import (
	"context"
	"os"
	"path/filepath"

	"gradefill/domain/fill"
	"gradefill/internal/errors"
	"gradefill/ports"
)

// CatalogConfig locates the template workbooks on disk
type CatalogConfig struct {
	Dir      string
	FlatFile string
	XTRFile  string
}

// TemplateCatalog maps tracker types to template workbooks under a single
// directory. The mapping is fixed at construction; existence is checked per
// resolve so a template dropped in after startup is picked up without a
// restart.
type TemplateCatalog struct {
	order []fill.TrackerType
	refs  map[fill.TrackerType]ports.TemplateRef
}

// NewTemplateCatalog creates a catalog from the configured directory and filenames
func NewTemplateCatalog(cfg CatalogConfig) *TemplateCatalog {
	catalog := &TemplateCatalog{
		order: []fill.TrackerType{fill.TrackerFlat, fill.TrackerXTR},
		refs:  make(map[fill.TrackerType]ports.TemplateRef, 2),
	}
	catalog.refs[fill.TrackerFlat] = ports.TemplateRef{
		Tracker:  fill.TrackerFlat,
		Filename: cfg.FlatFile,
		Path:     filepath.Join(cfg.Dir, cfg.FlatFile),
	}
	catalog.refs[fill.TrackerXTR] = ports.TemplateRef{
		Tracker:  fill.TrackerXTR,
		Filename: cfg.XTRFile,
		Path:     filepath.Join(cfg.Dir, cfg.XTRFile),
	}
	return catalog
}

// Resolve returns the template ref for a tracker, failing when the file is absent
func (c *TemplateCatalog) Resolve(ctx context.Context, tracker fill.TrackerType) (ports.TemplateRef, error) {
	ref, ok := c.refs[tracker]
	if !ok {
		return ports.TemplateRef{}, errors.InternalError("no template configured for tracker %q", tracker)
	}
	if _, err := os.Stat(ref.Path); err != nil {
		return ports.TemplateRef{}, errors.TemplateMissing("Template not found: %s", ref.Filename)
	}
	return ref, nil
}

// List reports every configured template and whether its file exists
func (c *TemplateCatalog) List(ctx context.Context) []ports.TemplateEntry {
	entries := make([]ports.TemplateEntry, 0, len(c.order))
	for _, tracker := range c.order {
		ref := c.refs[tracker]
		_, err := os.Stat(ref.Path)
		entries = append(entries, ports.TemplateEntry{
			Tracker:   tracker,
			Filename:  ref.Filename,
			Available: err == nil,
		})
	}
	return entries
}
