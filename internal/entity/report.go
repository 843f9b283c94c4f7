package entity

// SampleDescription is one row of the "Sample Descriptions" section.
type SampleDescription struct {
	LabReference           *string `json:"lab_reference,omitempty" yaml:"lab_reference,omitempty"`
	SampleID               *string `json:"sample_id,omitempty" yaml:"sample_id,omitempty"`
	Location               *string `json:"location,omitempty" yaml:"location,omitempty"`
	SampleType             *string `json:"sample_type,omitempty" yaml:"sample_type,omitempty"`
	Description            *string `json:"description,omitempty" yaml:"description,omitempty"`
	MoistureContentPercent *string `json:"moisture_content_percent,omitempty" yaml:"moisture_content_percent,omitempty"`
	StoneContentPercent    *string `json:"stone_content_percent,omitempty" yaml:"stone_content_percent,omitempty"`
	Passing2mmPercent      *string `json:"passing_2mm_percent,omitempty" yaml:"passing_2mm_percent,omitempty"`
}

// Certificate is a "Certificate Of Analysis" page: header fields plus the
// solid and eluate results found on that page.
type Certificate struct {
	Page                   int             `json:"page" yaml:"page"`
	LabReference           *string         `json:"lab_reference,omitempty" yaml:"lab_reference,omitempty"`
	ClientSampleID         *string         `json:"client_sample_id,omitempty" yaml:"client_sample_id,omitempty"`
	ClientSampleLocation   *string         `json:"client_sample_location,omitempty" yaml:"client_sample_location,omitempty"`
	ClientSampleType       *string         `json:"client_sample_type,omitempty" yaml:"client_sample_type,omitempty"`
	ClientSampleNumber     *string         `json:"client_sample_number,omitempty" yaml:"client_sample_number,omitempty"`
	DepthTopM              *float64        `json:"depth_top_m,omitempty" yaml:"depth_top_m,omitempty"`
	DepthBottomM           *float64        `json:"depth_bottom_m,omitempty" yaml:"depth_bottom_m,omitempty"`
	DateOfSampling         *string         `json:"date_of_sampling,omitempty" yaml:"date_of_sampling,omitempty"`
	TimeOfSampling         *string         `json:"time_of_sampling,omitempty" yaml:"time_of_sampling,omitempty"`
	SampleDescription      *string         `json:"sample_description,omitempty" yaml:"sample_description,omitempty"`
	SampleMatrix           *string         `json:"sample_matrix,omitempty" yaml:"sample_matrix,omitempty"`
	MoistureContentPercent *float64        `json:"moisture_content_percent,omitempty" yaml:"moisture_content_percent,omitempty"`
	StoneContentPercent    *float64        `json:"stone_content_percent,omitempty" yaml:"stone_content_percent,omitempty"`
	SolidAnalysis          []AnalyteResult `json:"solid_analysis" yaml:"solid_analysis"`
	EluateAnalysis         []AnalyteResult `json:"eluate_analysis" yaml:"eluate_analysis"`
}

// ChemicalPageHighlight marks a page that probably holds chemical result tables.
type ChemicalPageHighlight struct {
	Page           int        `json:"page" yaml:"page"`
	KeywordMatches int        `json:"keyword_matches" yaml:"keyword_matches"`
	TableCount     int        `json:"table_count" yaml:"table_count"`
	Preview        string     `json:"preview" yaml:"preview"`
	TablesPreview  []RawTable `json:"tables_preview" yaml:"tables_preview"`
}

// Report is the aggregate record built from one laboratory report.
type Report struct {
	Filename           string                  `json:"filename" yaml:"filename"`
	Pages              int                     `json:"pages" yaml:"pages"`
	SiteInformation    Fields                  `json:"site_information" yaml:"site_information"`
	LabReportSummary   Fields                  `json:"lab_report_summary" yaml:"lab_report_summary"`
	SampleDescriptions []SampleDescription     `json:"sample_descriptions" yaml:"sample_descriptions"`
	Certificates       []Certificate           `json:"certificates" yaml:"certificates"`
	ChemicalTablePages []ChemicalPageHighlight `json:"chemical_table_pages" yaml:"chemical_table_pages"`
}
