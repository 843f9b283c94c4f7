package profile

import (
	"fmt"
	"strings"
)

// Summary aggregates a batch of profiles.
type Summary struct {
	TotalPDFs     int     `json:"total_pdfs" yaml:"total_pdfs"`
	AverageSizeMB float64 `json:"average_size_mb" yaml:"average_size_mb"`
	AveragePages  float64 `json:"average_pages" yaml:"average_pages"`
	WithText      int     `json:"with_text" yaml:"with_text"`
	WithTables    int     `json:"with_tables" yaml:"with_tables"`
	Failed        int     `json:"failed" yaml:"failed"`
}

// Summarize totals profiles. Averages are zero for an empty batch.
func Summarize(profiles []FileProfile) Summary {
	s := Summary{TotalPDFs: len(profiles)}
	if len(profiles) == 0 {
		return s
	}
	var size float64
	var pages int
	for _, p := range profiles {
		size += p.SizeMB
		pages += p.Pages
		if p.HasText {
			s.WithText++
		}
		if p.HasTables {
			s.WithTables++
		}
		if p.Error != "" {
			s.Failed++
		}
	}
	s.AverageSizeMB = size / float64(len(profiles))
	s.AveragePages = float64(pages) / float64(len(profiles))
	return s
}

func (s Summary) String() string {
	var b strings.Builder
	b.WriteString("=== SUMMARY ===\n")
	fmt.Fprintf(&b, "Total PDFs: %d\n", s.TotalPDFs)
	fmt.Fprintf(&b, "Average size: %.2f MB\n", s.AverageSizeMB)
	fmt.Fprintf(&b, "Average pages: %.0f\n", s.AveragePages)
	fmt.Fprintf(&b, "PDFs with text: %d\n", s.WithText)
	fmt.Fprintf(&b, "PDFs with tables: %d\n", s.WithTables)
	if s.Failed > 0 {
		fmt.Fprintf(&b, "PDFs with errors: %d\n", s.Failed)
	}
	return b.String()
}
