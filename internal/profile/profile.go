package profile

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/joseph-ayodele/labreport-extractor/constants"
	"github.com/joseph-ayodele/labreport-extractor/internal/common"
	"github.com/joseph-ayodele/labreport-extractor/internal/ingest"
	"github.com/joseph-ayodele/labreport-extractor/internal/pdftext"
)

// NoTextSample stands in for the text sample of a document without text.
const NoTextSample = "NO TEXT EXTRACTED"

// PageExtractor is the part of pdftext.Extractor the profiler needs.
type PageExtractor interface {
	Extract(ctx context.Context, path string) (pdftext.Document, error)
}

// FileProfile is a quick structural summary of one PDF.
type FileProfile struct {
	Filename                  string  `json:"filename" yaml:"filename"`
	SizeMB                    float64 `json:"size_mb" yaml:"size_mb"`
	Pages                     int     `json:"pages" yaml:"pages"`
	HasText                   bool    `json:"has_text" yaml:"has_text"`
	HasTables                 bool    `json:"has_tables" yaml:"has_tables"`
	TextSample                string  `json:"text_sample" yaml:"text_sample"`
	TablePages                []int   `json:"table_pages" yaml:"table_pages"`
	PotentialChemicalKeywords int     `json:"potential_chemical_keywords" yaml:"potential_chemical_keywords"`
	Error                     string  `json:"error,omitempty" yaml:"error,omitempty"`
}

// Profiler profiles PDFs using only their first few pages.
type Profiler struct {
	extractor PageExtractor
	cfg       common.ProfileConfig
	logger    *slog.Logger
}

func NewProfiler(extractor PageExtractor, cfg common.ProfileConfig, logger *slog.Logger) *Profiler {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	return &Profiler{extractor: extractor, cfg: cfg, logger: logger}
}

// ProfileFile never fails: problems are recorded in the profile's Error.
func (p *Profiler) ProfileFile(ctx context.Context, path string) FileProfile {
	profile := FileProfile{
		Filename:   filepath.Base(path),
		TablePages: []int{},
	}

	info, err := os.Stat(path)
	if err != nil {
		profile.Error = err.Error()
		return profile
	}
	profile.SizeMB = float64(info.Size()) / (1024 * 1024)

	doc, err := p.extractor.Extract(ctx, path)
	if err != nil {
		profile.Error = err.Error()
		return profile
	}
	profile.Pages = doc.PageCount
	pages := doc.Pages
	if p.cfg.MaxPages > 0 && len(pages) > p.cfg.MaxPages {
		pages = pages[:p.cfg.MaxPages]
	}

	var all strings.Builder
	for i, page := range pages {
		if page.Text != "" {
			profile.HasText = true
			all.WriteString(page.Text)
			all.WriteByte('\n')
		}
		if len(page.Tables) > 0 {
			profile.HasTables = true
			profile.TablePages = append(profile.TablePages, i+1)
		}
	}

	text := all.String()
	profile.TextSample = NoTextSample
	if text != "" {
		profile.TextSample = firstRunes(text, p.cfg.SampleChars)
	}
	profile.PotentialChemicalKeywords = CountKeywords(text)
	return profile
}

// ProfileDirectory profiles every PDF under dir with at most cfg.Workers
// files in flight. Results follow the sorted file order.
func (p *Profiler) ProfileDirectory(ctx context.Context, dir string) ([]FileProfile, error) {
	start := time.Now()
	paths, stats, err := ingest.ListPDFs(dir, true)
	if err != nil {
		return nil, common.NewAppError(common.CodeIngest, fmt.Sprintf("list %s", dir), err)
	}
	p.logger.Info("profile.scan.ok", "dir", dir, "found", len(paths), "walk_failed", stats.Failed)

	results := make([]FileProfile, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.cfg.Workers)

	for i, path := range paths {
		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}
			p.logger.Debug("profile.file.start", "file", filepath.Base(path))
			results[i] = p.ProfileFile(gctx, path)
			if results[i].Error != "" {
				p.logger.Warn("profile.file.failed", "file", results[i].Filename, "error", results[i].Error)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	p.logger.Info("profile.done", "files", len(results), "duration_ms", time.Since(start).Milliseconds())
	return results, nil
}

// CountKeywords counts case-insensitive occurrences of every profile keyword.
func CountKeywords(text string) int {
	lower := strings.ToLower(text)
	total := 0
	for _, kw := range constants.ProfileKeywords {
		total += strings.Count(lower, strings.ToLower(kw))
	}
	return total
}

func firstRunes(s string, n int) string {
	if n <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
