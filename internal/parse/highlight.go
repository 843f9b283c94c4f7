package parse

import (
	"regexp"
	"strings"

	"github.com/joseph-ayodele/labreport-extractor/constants"
	"github.com/joseph-ayodele/labreport-extractor/internal/entity"
)

var reChemicalIndicators = regexp.MustCompile(`(?i)` + strings.Join(constants.ChemicalKeywords, "|"))

// CountChemicalKeywords returns the number of keyword matches in text.
func CountChemicalKeywords(text string) int {
	return len(reChemicalIndicators.FindAllStringIndex(text, -1))
}

// HighlightChemicalPages flags pages that both mention chemical keywords
// and contain at least one table.
func HighlightChemicalPages(pages []entity.PageRecord) []entity.ChemicalPageHighlight {
	highlights := make([]entity.ChemicalPageHighlight, 0)
	for _, page := range pages {
		if page.Text == "" || len(page.Tables) == 0 {
			continue
		}
		matches := CountChemicalKeywords(page.Text)
		if matches == 0 {
			continue
		}

		n := min(len(page.Tables), constants.PreviewTables)
		previews := make([]entity.RawTable, 0, n)
		for _, table := range page.Tables[:n] {
			previews = append(previews, CleanTablePreview(table, constants.PreviewRowsPerTable))
		}

		highlights = append(highlights, entity.ChemicalPageHighlight{
			Page:           page.PageNumber,
			KeywordMatches: matches,
			TableCount:     len(page.Tables),
			Preview:        truncateRunes(page.Text, constants.PreviewChars),
			TablesPreview:  previews,
		})
	}
	return highlights
}

// CleanTablePreview drops blank rows and columns that are blank in every
// remaining row, then keeps at most maxRows rows (all rows when maxRows <= 0).
// Short rows are padded with empty cells.
func CleanTablePreview(table entity.RawTable, maxRows int) entity.RawTable {
	rows := make([][]string, 0, len(table))
	width := 0
	for _, row := range table {
		cleaned := make([]string, len(row))
		blank := true
		for i, cell := range row {
			cleaned[i] = strings.TrimSpace(cell)
			if cleaned[i] != "" {
				blank = false
			}
		}
		if blank {
			continue
		}
		rows = append(rows, cleaned)
		width = max(width, len(cleaned))
	}
	if len(rows) == 0 {
		return entity.RawTable{}
	}

	keep := make([]int, 0, width)
	for col := 0; col < width; col++ {
		for _, row := range rows {
			if col < len(row) && row[col] != "" {
				keep = append(keep, col)
				break
			}
		}
	}

	if maxRows > 0 && len(rows) > maxRows {
		rows = rows[:maxRows]
	}
	out := make(entity.RawTable, 0, len(rows))
	for _, row := range rows {
		trimmed := make([]string, len(keep))
		for i, col := range keep {
			if col < len(row) {
				trimmed[i] = row[col]
			}
		}
		out = append(out, trimmed)
	}
	return out
}

func truncateRunes(s string, n int) string {
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
