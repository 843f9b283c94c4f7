package export

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/labreport-extractor/constants"
	"github.com/joseph-ayodele/labreport-extractor/internal/common"
	"github.com/joseph-ayodele/labreport-extractor/internal/entity"
)

// Sheet names of the report workbook.
const (
	SheetSummary      = "Summary"
	SheetSamples      = "Samples"
	SheetCertificates = "Certificates"
)

// Service produces XLSX bytes for an extracted report.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// ReportXLSX returns an XLSX workbook (as bytes) with a Summary, Samples and
// Certificates sheet for report.
func (s *Service) ReportXLSX(ctx context.Context, report *entity.Report) ([]byte, error) {
	if report == nil {
		return nil, common.NewAppError(common.CodeInvalidInput, "report is required", common.ErrInvalidInput)
	}
	start := time.Now()
	logger := common.LoggerFromContext(ctx, s.logger)

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	// The default "Sheet1" becomes the summary sheet.
	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	for _, name := range []string{SheetSamples, SheetCertificates} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("new sheet %s: %w", name, err)
		}
	}

	summaryRows := writeSummary(f, report)
	sampleRows := writeSamples(f, report.SampleDescriptions)
	resultRows := writeCertificates(f, report.Certificates)

	activeIndex, _ := f.GetSheetIndex(SheetSummary)
	f.SetActiveSheet(activeIndex)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	logger.Info("export.xlsx.ok",
		"filename", report.Filename,
		"summary_rows", summaryRows,
		"sample_rows", sampleRows,
		"result_rows", resultRows,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// sheetWriter writes rows to one sheet, starting below its header.
type sheetWriter struct {
	f     *excelize.File
	sheet string
	row   int
}

func newSheetWriter(f *excelize.File, sheet string, headers []string) *sheetWriter {
	w := &sheetWriter{f: f, sheet: sheet, row: 1}
	values := make([]any, len(headers))
	for i, h := range headers {
		values[i] = h
	}
	w.write(values...)
	return w
}

func (w *sheetWriter) write(values ...any) {
	for i, v := range values {
		cell, _ := excelize.CoordinatesToCellName(i+1, w.row)
		_ = w.f.SetCellValue(w.sheet, cell, v)
	}
	w.row++
}

func (w *sheetWriter) rows() int {
	return w.row - 2
}

func writeSummary(f *excelize.File, report *entity.Report) int {
	w := newSheetWriter(f, SheetSummary, []string{"Section", "Field", "Value"})
	w.write("report", "filename", report.Filename)
	w.write("report", "pages", report.Pages)
	writeFields(w, "site_information", report.SiteInformation)
	writeFields(w, "lab_report_summary", report.LabReportSummary)

	_ = f.SetColWidth(SheetSummary, "A", "B", 24)
	_ = f.SetColWidth(SheetSummary, "C", "C", 48)
	return w.rows()
}

func writeFields(w *sheetWriter, section string, fields entity.Fields) {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		w.write(section, k, fields[k])
	}
}

func writeSamples(f *excelize.File, samples []entity.SampleDescription) int {
	w := newSheetWriter(f, SheetSamples, []string{
		"Lab Reference", "Sample ID", "Location", "Type", "Description",
		"Moisture (%)", "Stone (%)", "Passing 2mm (%)",
	})
	for _, s := range samples {
		w.write(str(s.LabReference), str(s.SampleID), str(s.Location), str(s.SampleType),
			str(s.Description),
			str(s.MoistureContentPercent), str(s.StoneContentPercent), str(s.Passing2mmPercent))
	}
	_ = f.SetColWidth(SheetSamples, "A", "D", 14)
	_ = f.SetColWidth(SheetSamples, "E", "E", 60)
	_ = f.SetColWidth(SheetSamples, "F", "H", 14)
	return w.rows()
}

func writeCertificates(f *excelize.File, certs []entity.Certificate) int {
	headers := []string{"Page", "Lab Reference", "Client Sample ID", "Section", "Analyte", "Unit", "Accreditation", "Result"}
	headers = append(headers, constants.LimitLabels...)
	for _, label := range constants.LimitLabels {
		headers = append(headers, label+"_exceeded")
	}
	w := newSheetWriter(f, SheetCertificates, headers)

	for _, c := range certs {
		for _, section := range []struct {
			name    string
			results []entity.AnalyteResult
		}{
			{"solid", c.SolidAnalysis},
			{"eluate", c.EluateAnalysis},
		} {
			for _, r := range section.results {
				row := []any{c.Page, str(c.LabReference), str(c.ClientSampleID), section.name,
					r.Analyte, r.Unit, r.Accreditation, raw(r.Result)}
				for _, label := range constants.LimitLabels {
					limit, _ := r.Limits.Get(label)
					row = append(row, raw(limit))
				}
				for _, label := range constants.LimitLabels {
					flag, _ := r.ThresholdFlags.Get(label)
					row = append(row, flagText(flag))
				}
				w.write(row...)
			}
		}
	}
	_ = f.SetColWidth(SheetCertificates, "E", "E", 32)
	return w.rows()
}

func str(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func raw(m *entity.Measurement) string {
	if m == nil {
		return ""
	}
	return m.Raw
}

func flagText(b *bool) string {
	if b == nil {
		return ""
	}
	return strconv.FormatBool(*b)
}
