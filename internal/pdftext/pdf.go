package pdftext

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/joseph-ayodele/labreport-extractor/internal/entity"
)

func pdfPageCount(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	count, err := api.PageCount(f, nil)
	if err != nil {
		return 0, fmt.Errorf("pdfcpu: %w", err)
	}
	return count, nil
}

// pageLayout runs: pdftotext -layout -enc UTF-8 -eol unix -f n -l n <path> -
func (e *Extractor) pageLayout(ctx context.Context, path string, n int) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, e.cfg.PageTimeout)
	defer cancel()

	page := strconv.Itoa(n)
	out, errb, err := e.runner.Run(ctx, e.cfg.Pdftotext, e.logger,
		"-layout", "-enc", "UTF-8", "-eol", "unix", "-f", page, "-l", page, path, "-")
	if err != nil {
		return "", fmt.Errorf("page %d: %w", n, newCommandError(e.cfg.Pdftotext, err, errb))
	}
	return string(out), nil
}

// pagesFromDocument extracts the whole document in one call and splits it on
// the form feed pdftotext writes after every page. The page count is the
// number of chunks before MaxPages is applied.
func (e *Extractor) pagesFromDocument(ctx context.Context, path string) (Document, error) {
	out, errb, err := e.runner.Run(ctx, e.cfg.Pdftotext, e.logger,
		"-layout", "-enc", "UTF-8", "-eol", "unix", path, "-")
	if err != nil {
		return Document{}, newCommandError(e.cfg.Pdftotext, err, errb)
	}

	chunks := strings.Split(string(out), "\f")
	if len(chunks) > 1 && strings.TrimSpace(chunks[len(chunks)-1]) == "" {
		chunks = chunks[:len(chunks)-1]
	}
	total := len(chunks)
	if e.cfg.MaxPages > 0 && len(chunks) > e.cfg.MaxPages {
		chunks = chunks[:e.cfg.MaxPages]
	}

	pages := make([]entity.PageRecord, 0, len(chunks))
	for i, chunk := range chunks {
		pages = append(pages, recordFromLayout(i+1, chunk))
	}
	return Document{PageCount: total, Pages: pages}, nil
}
