package app

import (
	"context"
	"errors"
	"log"
	"time"

	"golang.org/x/sync/semaphore"

	"gradefill/domain/fill"
	apperrors "gradefill/internal/errors"
	"gradefill/internal/survey"
	"gradefill/ports"
)

// FillService orchestrates one grading-tool fill: validate the request,
// resolve the template, write the rows, package the download
type FillService struct {
	catalog ports.TemplateCatalogPort
	filler  ports.WorkbookFillerPort

	// fillSem bounds concurrent workbook fills when configured; nil means
	// every request proceeds immediately
	fillSem *semaphore.Weighted
}

// NewFillService creates a fill service. maxConcurrent bounds simultaneous
// fills; zero or negative disables the bound.
func NewFillService(catalog ports.TemplateCatalogPort, filler ports.WorkbookFillerPort, maxConcurrent int) *FillService {
	service := &FillService{
		catalog: catalog,
		filler:  filler,
	}
	if maxConcurrent > 0 {
		service.fillSem = semaphore.NewWeighted(int64(maxConcurrent))
	}
	return service
}

// Fill runs one fill end to end. The fill ID ties the response and the log
// line for this request together.
func (s *FillService) Fill(ctx context.Context, fillID fill.FillID, req fill.Request) (*fill.Result, error) {
	startTime := time.Now()

	tracker, err := fill.ParseTrackerType(req.TrackerType)
	if err != nil {
		if errors.Is(err, fill.ErrUnknownTracker) {
			return nil, apperrors.InvalidInput("tracker_type must be 'flat' or 'xtr'")
		}
		return nil, err
	}

	rows := req.Rows()
	if len(rows) == 0 {
		return nil, apperrors.InvalidInput("No rows provided")
	}

	template, err := s.catalog.Resolve(ctx, tracker)
	if err != nil {
		return nil, err
	}

	if s.fillSem != nil {
		if err := s.fillSem.Acquire(ctx, 1); err != nil {
			return nil, err
		}
		defer s.fillSem.Release(1)
	}

	content, err := s.filler.Fill(ctx, ports.FillWorkbookRequest{
		Template: template,
		Rows:     rows,
	})
	if err != nil {
		return nil, err
	}

	extent := survey.Summarize(rows)
	log.Printf("[Fill] %s: %s tracker, %d rows, %d bytes, %s in %.2fms",
		fillID, tracker, len(rows), len(content), extent,
		float64(time.Since(startTime).Nanoseconds())/1e6)

	return &fill.Result{
		FillID:      fillID,
		Tracker:     tracker,
		Filename:    tracker.FilledWorkbookName(),
		ContentType: fill.MacroWorkbookContentType,
		Content:     content,
		RowsWritten: len(rows),
	}, nil
}

// Templates lists the configured templates and their availability
func (s *FillService) Templates(ctx context.Context) []ports.TemplateEntry {
	return s.catalog.List(ctx)
}
