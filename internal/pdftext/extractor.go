package pdftext

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/joseph-ayodele/labreport-extractor/constants"
	"github.com/joseph-ayodele/labreport-extractor/internal/common"
	"github.com/joseph-ayodele/labreport-extractor/internal/entity"
)

type Config struct {
	Pdftotext   string        // binary name or absolute path; if empty -> "pdftotext"
	MaxPages    int           // 0 = no limit
	PageTimeout time.Duration // per pdftotext call, default 30s
}

// Extractor turns a PDF into page records by running pdftotext once per page.
type Extractor struct {
	cfg       Config
	runner    Runner
	pageCount func(path string) (int, error)
	logger    *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftotext == "" {
		cfg.Pdftotext = "pdftotext"
	}
	if cfg.PageTimeout <= 0 {
		cfg.PageTimeout = 30 * time.Second
	}
	return &Extractor{cfg: cfg, runner: execRunner{}, pageCount: pdfPageCount, logger: logger}
}

// WithRunner replaces the command runner used to invoke pdftotext.
func (e *Extractor) WithRunner(r Runner) *Extractor {
	e.runner = r
	return e
}

// WithPageCounter replaces the function that reads a document's page count.
func (e *Extractor) WithPageCounter(fn func(path string) (int, error)) *Extractor {
	e.pageCount = fn
	return e
}

// Document is the result of one extraction: the pages that were read and
// the page count of the whole file, which is larger when MaxPages applies.
type Document struct {
	PageCount int
	Pages     []entity.PageRecord
}

// Pages extracts text and tables for every page of the PDF at path. A page
// whose extraction fails comes back with empty text and no tables; only
// document-level failures are returned as errors.
func (e *Extractor) Pages(ctx context.Context, path string) ([]entity.PageRecord, error) {
	doc, err := e.Extract(ctx, path)
	if err != nil {
		return nil, err
	}
	return doc.Pages, nil
}

// Extract is Pages plus the document's total page count, read once.
func (e *Extractor) Extract(ctx context.Context, path string) (Document, error) {
	start := time.Now()
	if constants.MapExtToFormat(filepath.Ext(path)) == "" {
		return Document{}, common.NewAppError(common.CodeUnsupported, fmt.Sprintf("unsupported extension: %q", filepath.Ext(path)), common.ErrUnsupported)
	}
	if _, err := os.Stat(path); err != nil {
		return Document{}, common.NewAppError(common.CodeIngest, "stat source", fmt.Errorf("%w: %w", common.ErrIngest, err))
	}

	total, err := e.pageCount(path)
	if err != nil {
		e.logger.Warn("pdf page count failed, extracting whole document", "path", path, "error", err)
		doc, derr := e.pagesFromDocument(ctx, path)
		if derr != nil {
			return Document{}, common.NewAppError(common.CodeIngest, "extract document text", fmt.Errorf("%w: %w", common.ErrIngest, derr))
		}
		e.logDone(path, doc.Pages, start)
		return doc, nil
	}
	count := total
	if e.cfg.MaxPages > 0 && count > e.cfg.MaxPages {
		count = e.cfg.MaxPages
	}

	pages := make([]entity.PageRecord, 0, count)
	for n := 1; n <= count; n++ {
		if err := ctx.Err(); err != nil {
			return Document{}, err
		}
		layout, err := e.pageLayout(ctx, path, n)
		if err != nil {
			e.logger.Warn("page extraction failed", "path", path, "page", n, "error", err)
			pages = append(pages, emptyPage(n))
			continue
		}
		pages = append(pages, recordFromLayout(n, layout))
	}
	e.logDone(path, pages, start)
	return Document{PageCount: total, Pages: pages}, nil
}

func (e *Extractor) logDone(path string, pages []entity.PageRecord, start time.Time) {
	e.logger.Debug("pdftext.pages.ok",
		"path", path,
		"pages", len(pages),
		"duration_ms", time.Since(start).Milliseconds(),
	)
}

func recordFromLayout(n int, layout string) entity.PageRecord {
	return entity.PageRecord{
		PageNumber: n,
		Text:       Normalize(layout),
		Tables:     DetectTables(layout),
	}
}

func emptyPage(n int) entity.PageRecord {
	return entity.PageRecord{PageNumber: n, Text: "", Tables: []entity.RawTable{}}
}
