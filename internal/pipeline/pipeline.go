package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/joseph-ayodele/labreport-extractor/internal/common"
	"github.com/joseph-ayodele/labreport-extractor/internal/entity"
	"github.com/joseph-ayodele/labreport-extractor/internal/extract"
	"github.com/joseph-ayodele/labreport-extractor/internal/parse"
)

// Pipeline coordinates page ingestion, then every extractor over the
// resulting pages.
type Pipeline struct {
	Logger *slog.Logger
	Source extract.PageSource
}

func NewPipeline(logger *slog.Logger, source extract.PageSource) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{Logger: logger, Source: source}
}

// Run ingests the document at path and builds its report.
func (p *Pipeline) Run(ctx context.Context, path string) (*entity.Report, error) {
	if strings.TrimSpace(path) == "" {
		return nil, common.NewAppError(common.CodeInvalidInput, "source path is required", common.ErrInvalidInput)
	}
	ctx, runID := common.WithRunID(ctx)
	logger := p.Logger.With("run_id", runID, "path", path)
	ctx = common.WithLogger(ctx, logger)

	start := time.Now()
	pages, err := p.Source.Pages(ctx, path)
	if err != nil {
		logger.Error("pipeline.ingest.failed", "err", err)
		return nil, fmt.Errorf("ingest %s: %w", path, err)
	}
	logger.Debug("pipeline.ingest.ok", "pages", len(pages), "duration_ms", time.Since(start).Milliseconds())

	report := Build(filepath.Base(path), pages)
	logger.Info("pipeline.extract.ok",
		"pages", report.Pages,
		"site_fields", len(report.SiteInformation),
		"summary_fields", len(report.LabReportSummary),
		"samples", len(report.SampleDescriptions),
		"certificates", len(report.Certificates),
		"chemical_pages", len(report.ChemicalTablePages),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return report, nil
}

// Build runs every extractor over pages and merges the results. Each
// extractor makes its own pass over the same read-only page slice.
func Build(filename string, pages []entity.PageRecord) *entity.Report {
	report := &entity.Report{
		Filename:           filename,
		Pages:              len(pages),
		SiteInformation:    parse.ExtractSiteInformation(CombinedText(pages)),
		LabReportSummary:   parse.ExtractLabSummary(pages),
		SampleDescriptions: parse.ExtractSampleDescriptions(pages),
		Certificates:       parse.ExtractCertificates(pages),
		ChemicalTablePages: parse.HighlightChemicalPages(pages),
	}
	if report.SiteInformation == nil {
		report.SiteInformation = entity.Fields{}
	}
	if report.LabReportSummary == nil {
		report.LabReportSummary = entity.Fields{}
	}
	if report.SampleDescriptions == nil {
		report.SampleDescriptions = []entity.SampleDescription{}
	}
	if report.Certificates == nil {
		report.Certificates = []entity.Certificate{}
	}
	if report.ChemicalTablePages == nil {
		report.ChemicalTablePages = []entity.ChemicalPageHighlight{}
	}
	return report
}

// CombinedText joins the non-empty page texts in page order.
func CombinedText(pages []entity.PageRecord) string {
	parts := make([]string, 0, len(pages))
	for _, p := range pages {
		if p.Text != "" {
			parts = append(parts, p.Text)
		}
	}
	return strings.Join(parts, "\n")
}
