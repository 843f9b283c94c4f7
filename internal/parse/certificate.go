package parse

import (
	"strings"

	"github.com/joseph-ayodele/labreport-extractor/constants"
	"github.com/joseph-ayodele/labreport-extractor/internal/entity"
)

type analysisSection int

const (
	sectionNone analysisSection = iota
	sectionSolid
	sectionEluate
)

// ExtractCertificates builds one Certificate per page carrying the
// "Certificate Of Analysis" heading, in page order.
func ExtractCertificates(pages []entity.PageRecord) []entity.Certificate {
	certificates := make([]entity.Certificate, 0)
	for _, page := range pages {
		if !strings.Contains(page.Text, constants.HeadingCertificate) {
			continue
		}
		certificates = append(certificates, buildCertificate(page))
	}
	return certificates
}

func buildCertificate(page entity.PageRecord) entity.Certificate {
	lines := nonBlankLines(page.Text)
	str := func(label string) *string { return optionalString(lineValue(lines, label)) }
	num := func(label string) *float64 { return optionalFloat(lineValue(lines, label)) }

	cert := entity.Certificate{
		Page:                   page.PageNumber,
		LabReference:           str("Lab Reference"),
		ClientSampleID:         str("Client Sample ID"),
		ClientSampleLocation:   str("Client Sample Location"),
		ClientSampleType:       str("Client Sample Type"),
		ClientSampleNumber:     str("Client Sample Number"),
		DepthTopM:              num("Depth - Top (m)"),
		DepthBottomM:           num("Depth - Bottom (m)"),
		DateOfSampling:         str("Date of Sampling"),
		TimeOfSampling:         str("Time of Sampling"),
		SampleDescription:      str("Sample Description"),
		SampleMatrix:           str("Sample Matrix"),
		MoistureContentPercent: num("Moisture Content (%)"),
		StoneContentPercent:    num("Stone content (%)"),
		SolidAnalysis:          []entity.AnalyteResult{},
		EluateAnalysis:         []entity.AnalyteResult{},
	}

	section := sectionNone
	for _, line := range lines {
		switch {
		case hasPrefixFold(line, constants.SectionSolid):
			section = sectionSolid
			continue
		case hasPrefixFold(line, constants.SectionEluate):
			section = sectionEluate
			continue
		case hasPrefixFold(line, "page "):
			continue
		}

		if section == sectionNone {
			continue
		}
		result, ok := ParseAnalyteLine(line)
		if !ok {
			continue
		}
		if section == sectionSolid {
			cert.SolidAnalysis = append(cert.SolidAnalysis, result)
		} else {
			cert.EluateAnalysis = append(cert.EluateAnalysis, result)
		}
	}
	return cert
}
