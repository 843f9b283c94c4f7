package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/joseph-ayodele/labreport-extractor/internal/common"
	"github.com/joseph-ayodele/labreport-extractor/internal/entity"
	"github.com/joseph-ayodele/labreport-extractor/internal/extract"
)

func fixturePages() []entity.PageRecord {
	return []entity.PageRecord{
		{PageNumber: 1, Text: "Report Title: Phase II Site Investigation\nJob No: J4410", Tables: []entity.RawTable{}},
		{PageNumber: 2, Text: "", Tables: []entity.RawTable{}},
		{PageNumber: 3, Text: "Analytical Test Report: 24-01234\nYour Project Reference: GI-2231", Tables: []entity.RawTable{}},
		{
			PageNumber: 4,
			Text: "Certificate Of Analysis\nLab Reference: 123456\nSolid Analysis\n" +
				"Lead mg/kg UKAS 12.5 5 10 50\nArsenic mg/kg UKAS < 1 5 10 50",
			Tables: []entity.RawTable{
				{{"Determinand", "Unit", "Result"}, {"Lead", "mg/kg", "12.5"}},
			},
		},
	}
}

func TestBuild(t *testing.T) {
	r := Build("report.pdf", fixturePages())

	if r.Filename != "report.pdf" || r.Pages != 4 {
		t.Errorf("filename/pages = %q/%d", r.Filename, r.Pages)
	}
	if got := r.SiteInformation["project_title"]; got != "Phase II Site Investigation" {
		t.Errorf("project_title = %q", got)
	}
	if got := r.SiteInformation["job_number"]; got != "J4410" {
		t.Errorf("job_number = %q", got)
	}
	if got := r.LabReportSummary["lab_report_reference"]; got != "24-01234" {
		t.Errorf("lab_report_reference = %q", got)
	}
	if len(r.Certificates) != 1 || r.Certificates[0].Page != 4 {
		t.Fatalf("certificates = %+v", r.Certificates)
	}
	if n := len(r.Certificates[0].SolidAnalysis); n != 2 {
		t.Errorf("solid results = %d, want 2", n)
	}
	if len(r.ChemicalTablePages) != 1 || r.ChemicalTablePages[0].Page != 4 {
		t.Errorf("chemical pages = %+v", r.ChemicalTablePages)
	}
	if r.SampleDescriptions == nil {
		t.Error("sample_descriptions must be an empty list, not nil")
	}
}

func TestBuild_NoPages(t *testing.T) {
	r := Build("empty.pdf", nil)
	if r.Pages != 0 {
		t.Errorf("pages = %d", r.Pages)
	}
	if r.SiteInformation == nil || r.LabReportSummary == nil || r.Certificates == nil || r.ChemicalTablePages == nil {
		t.Error("sections must be present and empty")
	}
	out, err := Encode(r, common.FormatJSON)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{`"site_information": {}`, `"sample_descriptions": []`, `"certificates": []`} {
		if !strings.Contains(string(out), want) {
			t.Errorf("output missing %s:\n%s", want, out)
		}
	}
}

func TestCombinedText(t *testing.T) {
	pages := []entity.PageRecord{{Text: "a"}, {Text: ""}, {Text: "b"}}
	if got := CombinedText(pages); got != "a\nb" {
		t.Errorf("CombinedText() = %q", got)
	}
}

func TestEncodeJSON(t *testing.T) {
	out, err := Encode(Build("report.pdf", fixturePages()), "")
	if err != nil {
		t.Fatal(err)
	}
	s := string(out)
	if strings.Contains(s, `\u003c`) {
		t.Error("operators must not be HTML escaped")
	}
	if !strings.Contains(s, `"raw": "< 1"`) {
		t.Errorf("missing combined operator result:\n%s", s)
	}
	inert := strings.Index(s, `"inert_limit"`)
	snrhw := strings.Index(s, `"snrhw_limit"`)
	hazardous := strings.Index(s, `"hazardous_limit"`)
	if inert < 0 || !(inert < snrhw && snrhw < hazardous) {
		t.Errorf("limit labels out of order: %d %d %d", inert, snrhw, hazardous)
	}
	if strings.Contains(s, `"sample_type": null`) {
		t.Error("absent optional fields must be omitted")
	}
}

func TestEncodeYAML(t *testing.T) {
	out, err := Encode(Build("report.pdf", fixturePages()), common.FormatYAML)
	if err != nil {
		t.Fatal(err)
	}
	var back map[string]any
	if err := yaml.Unmarshal(out, &back); err != nil {
		t.Fatalf("unmarshal: %v\n%s", err, out)
	}
	if back["filename"] != "report.pdf" || back["pages"] != 4 {
		t.Errorf("filename/pages = %v/%v", back["filename"], back["pages"])
	}
	s := string(out)
	if i, j := strings.Index(s, "inert_limit"), strings.Index(s, "hazardous_limit"); i < 0 || i > j {
		t.Error("limit labels out of order")
	}
}

func TestEncodeUnknownFormat(t *testing.T) {
	_, err := Encode(&entity.Report{}, "xml")
	if !errors.Is(err, common.ErrUnsupported) {
		t.Errorf("err = %v, want ErrUnsupported", err)
	}
}

type failingSource struct{ err error }

func (f failingSource) Pages(context.Context, string) ([]entity.PageRecord, error) {
	return nil, f.err
}

func TestRun(t *testing.T) {
	p := NewPipeline(nil, extract.StaticSource(fixturePages()))
	r, err := p.Run(context.Background(), "/data/reports/site-a.pdf")
	if err != nil {
		t.Fatal(err)
	}
	if r.Filename != "site-a.pdf" {
		t.Errorf("filename = %q", r.Filename)
	}
	if r.Pages != 4 {
		t.Errorf("pages = %d", r.Pages)
	}
}

func TestRun_Errors(t *testing.T) {
	p := NewPipeline(nil, failingSource{err: common.ErrIngest})
	if _, err := p.Run(context.Background(), "x.pdf"); !errors.Is(err, common.ErrIngest) {
		t.Errorf("err = %v, want ErrIngest", err)
	}
	if _, err := p.Run(context.Background(), " "); !errors.Is(err, common.ErrInvalidInput) {
		t.Errorf("err = %v, want ErrInvalidInput", err)
	}
}
