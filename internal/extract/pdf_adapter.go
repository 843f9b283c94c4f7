package extract

import (
	"context"
	"log/slog"

	"github.com/joseph-ayodele/labreport-extractor/internal/entity"
	"github.com/joseph-ayodele/labreport-extractor/internal/pdftext"
)

// PDFSource adapts a pdftext.Extractor to PageSource and enforces the page
// record contract: numbered from 1 in order, never nil tables.
type PDFSource struct {
	e      *pdftext.Extractor
	logger *slog.Logger
}

func NewPDFSource(e *pdftext.Extractor, logger *slog.Logger) *PDFSource {
	if logger == nil {
		logger = slog.Default()
	}
	return &PDFSource{e: e, logger: logger}
}

func (a *PDFSource) Pages(ctx context.Context, path string) ([]entity.PageRecord, error) {
	pages, err := a.e.Pages(ctx, path)
	if err != nil {
		return nil, err
	}
	return Sanitize(pages), nil
}

// Sanitize renumbers pages 1..n in order and replaces nil tables and rows
// with empty ones.
func Sanitize(pages []entity.PageRecord) []entity.PageRecord {
	out := make([]entity.PageRecord, len(pages))
	for i, p := range pages {
		tables := make([]entity.RawTable, 0, len(p.Tables))
		for _, t := range p.Tables {
			if t == nil {
				t = entity.RawTable{}
			}
			tables = append(tables, t)
		}
		out[i] = entity.PageRecord{PageNumber: i + 1, Text: p.Text, Tables: tables}
	}
	return out
}
