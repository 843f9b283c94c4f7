package parse

import (
	"regexp"
	"strings"

	"github.com/joseph-ayodele/labreport-extractor/constants"
	"github.com/joseph-ayodele/labreport-extractor/internal/entity"
)

// Site information fields are searched across the whole document; the
// first match of each pattern wins.
var sitePatterns = []struct {
	key string
	re  *regexp.Regexp
}{
	{"project_title", regexp.MustCompile(`(?i)Report Title:\s*(.+)`)},
	{"site_address", regexp.MustCompile(`(?i)Site Address\s+([^\n]+)`)},
	{"project_reference", regexp.MustCompile(`(?i)Project Reference\s*-\s*([^\n]+)`)},
	{"job_number", regexp.MustCompile(`(?i)Job No:\s*([^\n]+)`)},
	{"report_date", regexp.MustCompile(`(?i)Date:\s*([^\n]+)`)},
	{"client", regexp.MustCompile(`(?i)For:\s*([^\n]+)`)},
	{"site_area", regexp.MustCompile(`(?i)Site Area\s*([^\n]+)`)},
	{"national_grid", regexp.MustCompile(`(?i)National Grid[^\n]*?[ \t]+([EWN:0-9][EWN:0-9 \t,]*)`)},
}

// ExtractSiteInformation pulls project and site metadata out of the
// concatenated document text.
func ExtractSiteInformation(text string) entity.Fields {
	info := entity.Fields{}
	for _, p := range sitePatterns {
		m := p.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		info.Set(p.key, strings.TrimSpace(m[1]))
	}
	return info
}

// Inline labels that share a physical line with another field.
const (
	inlineReceivedInstructed = "Samples Received / Instructed:"
	inlineSampleTested       = " Sample Tested:"
	inlineReportIssued       = " Report issued:"
	countSeparator           = " / "
)

// ExtractLabSummary reads the laboratory summary block from the first page
// carrying the "Analytical Test Report" heading.
func ExtractLabSummary(pages []entity.PageRecord) entity.Fields {
	for _, page := range pages {
		if !strings.Contains(page.Text, constants.HeadingLabSummary) {
			continue
		}
		return labSummaryFromLines(nonBlankLines(page.Text))
	}
	return entity.Fields{}
}

func labSummaryFromLines(lines []string) entity.Fields {
	summary := entity.Fields{}
	value := func(label string) string {
		v, _ := lineValue(lines, label)
		return v
	}

	summary.Set("lab_report_reference", value("Analytical Test Report"))
	summary.Set("project_reference", value("Your Project Reference"))

	var received string
	if order := value("Your Order Number"); order != "" {
		if before, after, found := strings.Cut(order, inlineReceivedInstructed); found {
			summary.Set("order_number", strings.TrimSpace(before))
			received = strings.TrimSpace(after)
		} else {
			summary.Set("order_number", strings.TrimSpace(order))
		}
	}
	if received == "" {
		received = value("Samples Received / Instructed")
	}
	if got, want, found := strings.Cut(received, countSeparator); found {
		summary.Set("samples_received", strings.TrimSpace(got))
		summary.Set("samples_instructed", strings.TrimSpace(want))
	}

	// A secondary value not carried inline falls back to its own line.
	var tested string
	if issue := value("Report Issue Number"); issue != "" {
		before, after, found := strings.Cut(issue, inlineSampleTested)
		summary.Set("report_issue", strings.TrimSpace(before))
		if found {
			tested = strings.TrimSpace(after)
		}
	}
	if tested == "" {
		tested = value("Sample Tested")
	}
	summary.Set("sample_tested_range", tested)

	var issued string
	if analysed := value("Samples Analysed"); analysed != "" {
		before, after, found := strings.Cut(analysed, inlineReportIssued)
		summary.Set("samples_analysed", strings.TrimSpace(before))
		if found {
			issued = strings.TrimSpace(after)
		}
	}
	if issued == "" {
		issued = value("Report issued")
	}
	summary.Set("report_issued", issued)

	return summary
}
