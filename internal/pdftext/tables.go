package pdftext

import (
	"regexp"
	"strings"

	"github.com/joseph-ayodele/labreport-extractor/internal/entity"
)

// Two or more spaces separate columns in pdftotext -layout output.
var reColumnGap = regexp.MustCompile(`\s{2,}`)

// minTableRows is the number of consecutive multi-column lines that make a table.
const minTableRows = 2

// DetectTables finds runs of column-aligned lines in layout text and returns
// each run as a table. Rows keep however many cells their line had.
func DetectTables(layout string) []entity.RawTable {
	tables := make([]entity.RawTable, 0)
	var current entity.RawTable

	closeTable := func() {
		if len(current) >= minTableRows {
			tables = append(tables, current)
		}
		current = nil
	}

	for _, line := range strings.Split(strings.ReplaceAll(layout, "\r", ""), "\n") {
		cells := splitColumns(line)
		if len(cells) < 2 {
			closeTable()
			continue
		}
		current = append(current, cells)
	}
	closeTable()
	return tables
}

func splitColumns(line string) []string {
	line = strings.TrimSpace(strings.ReplaceAll(line, "\f", ""))
	if line == "" {
		return nil
	}
	return reColumnGap.Split(line, -1)
}
