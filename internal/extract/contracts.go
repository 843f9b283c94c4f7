package extract

import (
	"context"

	"github.com/joseph-ayodele/labreport-extractor/internal/entity"
)

// PageSource is Stage 1: file -> ordered page records (text + raw tables).
type PageSource interface {
	Pages(ctx context.Context, path string) ([]entity.PageRecord, error)
}

// StaticSource serves pages that were extracted elsewhere, ignoring path.
type StaticSource []entity.PageRecord

func (s StaticSource) Pages(_ context.Context, _ string) ([]entity.PageRecord, error) {
	return []entity.PageRecord(s), nil
}
