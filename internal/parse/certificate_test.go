package parse

import (
	"testing"

	"github.com/joseph-ayodele/labreport-extractor/internal/entity"
)

const certificatePage = `Certificate Of Analysis
Lab Reference: 123456
Client Sample ID: BH01
Client Sample Location: FILL
Client Sample Type: TP
Client Sample Number: -
Depth - Top (m): 0.50
Depth - Bottom (m): 1.20
Date of Sampling: 11/03/2024
Time of Sampling: 10:30
Sample Description: Dark brown sandy gravel
Sample Matrix: Soil
Moisture Content (%): 15.2
Stone content (%): n/a
Solid Analysis
Determinand Unit Accreditation Result Inert SNRHW Hazardous
Lead mg/kg UKAS 12.5 5 10 50
Arsenic mg/kg UKAS < 1 5 10 50
Page 7 of 20
Eluate Analysis
Chloride mg/l N 12 800 15000 25000
a line that is not a result
`

func TestExtractCertificates(t *testing.T) {
	pages := []entity.PageRecord{
		{PageNumber: 6, Text: "Contents"},
		{PageNumber: 7, Text: certificatePage},
		{PageNumber: 8, Text: "Certificate Of Analysis\nLab Reference: 123457\nLead mg/kg UKAS 3 5 10 50"},
	}
	certs := ExtractCertificates(pages)
	if len(certs) != 2 {
		t.Fatalf("len = %d, want 2", len(certs))
	}

	c := certs[0]
	if c.Page != 7 {
		t.Errorf("Page = %d, want 7", c.Page)
	}
	expect(t, "lab_reference", c.LabReference, "123456")
	expect(t, "client_sample_id", c.ClientSampleID, "BH01")
	expect(t, "client_sample_location", c.ClientSampleLocation, "FILL")
	expect(t, "client_sample_type", c.ClientSampleType, "TP")
	expect(t, "client_sample_number", c.ClientSampleNumber, "")
	expect(t, "date_of_sampling", c.DateOfSampling, "11/03/2024")
	expect(t, "time_of_sampling", c.TimeOfSampling, "10:30")
	expect(t, "sample_description", c.SampleDescription, "Dark brown sandy gravel")
	expect(t, "sample_matrix", c.SampleMatrix, "Soil")
	expectFloat(t, "depth_top_m", c.DepthTopM, 0.5)
	expectFloat(t, "depth_bottom_m", c.DepthBottomM, 1.2)
	expectFloat(t, "moisture_content_percent", c.MoistureContentPercent, 15.2)
	if c.StoneContentPercent != nil {
		t.Errorf("stone_content_percent = %v, want absent", *c.StoneContentPercent)
	}

	if len(c.SolidAnalysis) != 2 {
		t.Fatalf("solid results = %d, want 2", len(c.SolidAnalysis))
	}
	if c.SolidAnalysis[0].Analyte != "Lead" || c.SolidAnalysis[1].Analyte != "Arsenic" {
		t.Errorf("solid analytes = %q, %q", c.SolidAnalysis[0].Analyte, c.SolidAnalysis[1].Analyte)
	}
	if len(c.EluateAnalysis) != 1 || c.EluateAnalysis[0].Analyte != "Chloride" {
		t.Errorf("eluate = %+v", c.EluateAnalysis)
	}

	second := certs[1]
	expect(t, "lab_reference", second.LabReference, "123457")
	if len(second.SolidAnalysis) != 0 || len(second.EluateAnalysis) != 0 {
		t.Error("result lines outside a section must be ignored")
	}
	if second.SolidAnalysis == nil || second.EluateAnalysis == nil {
		t.Error("sections must be empty lists, not nil")
	}
}

func TestExtractCertificates_None(t *testing.T) {
	certs := ExtractCertificates([]entity.PageRecord{{PageNumber: 1, Text: "certificate of analysis"}})
	if certs == nil || len(certs) != 0 {
		t.Errorf("got %+v, want empty", certs)
	}
}

func expectFloat(t *testing.T, field string, got *float64, want float64) {
	t.Helper()
	if got == nil {
		t.Errorf("%s = absent, want %v", field, want)
		return
	}
	if *got != want {
		t.Errorf("%s = %v, want %v", field, *got, want)
	}
}
