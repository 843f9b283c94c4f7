package constants

// Limit labels in the column order used by waste acceptance tables.
const (
	LimitInert     = "inert_limit"
	LimitSNRHW     = "snrhw_limit"
	LimitHazardous = "hazardous_limit"
)

// LimitLabels is positional: the n-th value after a result belongs to LimitLabels[n].
var LimitLabels = []string{LimitInert, LimitSNRHW, LimitHazardous}

// UnitHints are exact unit tokens recognized on analyte lines.
var UnitHints = map[string]struct{}{
	"%":     {},
	"mg/kg": {},
	"mg/l":  {},
	"ug/l":  {},
	"µg/l":  {},
	"units": {},
}

// ChemicalKeywords are regular expression fragments that suggest a page
// carries chemical results.
var ChemicalKeywords = []string{
	`mg/kg`,
	`ppm`,
	`µg/l`,
	`ug/l`,
	`\bbox\b`,
	`\bchemical\b`,
	`\bdetermin`,
	`\bthreshold\b`,
	`\blaboratory\b`,
	`\btc\b`,
	`\bph\b`,
	`\bpah\b`,
	`\btph\b`,
	`\bbtex\b`,
}

// ProfileKeywords are counted (case-insensitively) when profiling a PDF.
var ProfileKeywords = []string{"mg/kg", "ppm", "µg/l", "Lead", "Arsenic", "Benzene", "borehole", "BH"}

// Section headings and markers recognized in report text.
const (
	HeadingLabSummary         = "Analytical Test Report"
	HeadingSampleDescriptions = "Sample Descriptions"
	HeadingCertificate        = "Certificate Of Analysis"
	SampleTableHeader         = "Number (%) (%) sieve (%)"
	SectionSolid              = "solid analysis"
	SectionEluate             = "eluate analysis"
)

// Limits on chemical page previews.
const (
	PreviewChars        = 400
	PreviewTables       = 2
	PreviewRowsPerTable = 5
)
