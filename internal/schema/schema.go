package schema

import (
	"github.com/joseph-ayodele/labreport-extractor/constants"
)

// Keys the field extractors may emit.
var (
	SiteInformationKeys = []string{
		"project_title", "site_address", "project_reference", "job_number",
		"report_date", "client", "site_area", "national_grid",
	}
	LabSummaryKeys = []string{
		"lab_report_reference", "project_reference", "order_number",
		"samples_received", "samples_instructed", "report_issue",
		"sample_tested_range", "samples_analysed", "report_issued",
	}
)

// BuildReportJSONSchema returns a JSON-Schema (draft 2020-12 subset) for a
// serialized report as a generic map.
func BuildReportJSONSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"filename":             map[string]any{"type": "string", "minLength": 1},
			"pages":                map[string]any{"type": "integer", "minimum": 0},
			"site_information":     fieldsProp(SiteInformationKeys),
			"lab_report_summary":   fieldsProp(LabSummaryKeys),
			"sample_descriptions":  arrayOf(sampleProp()),
			"certificates":         arrayOf(certificateProp()),
			"chemical_table_pages": arrayOf(highlightProp()),
		},
		"required": []string{
			"filename", "pages", "site_information", "lab_report_summary",
			"sample_descriptions", "certificates", "chemical_table_pages",
		},
	}
}

func fieldsProp(keys []string) map[string]any {
	props := make(map[string]any, len(keys))
	for _, k := range keys {
		props[k] = stringProp()
	}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
	}
}

func sampleProp() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"lab_reference":            stringProp(),
			"sample_id":                stringProp(),
			"location":                 stringProp(),
			"sample_type":              stringProp(),
			"description":              map[string]any{"type": "string"},
			"moisture_content_percent": stringProp(),
			"stone_content_percent":    stringProp(),
			"passing_2mm_percent":      stringProp(),
		},
	}
}

func certificateProp() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"page":                     map[string]any{"type": "integer", "minimum": 1},
			"lab_reference":            stringProp(),
			"client_sample_id":         stringProp(),
			"client_sample_location":   stringProp(),
			"client_sample_type":       stringProp(),
			"client_sample_number":     stringProp(),
			"depth_top_m":              numberProp(),
			"depth_bottom_m":           numberProp(),
			"date_of_sampling":         stringProp(),
			"time_of_sampling":         stringProp(),
			"sample_description":       stringProp(),
			"sample_matrix":            stringProp(),
			"moisture_content_percent": numberProp(),
			"stone_content_percent":    numberProp(),
			"solid_analysis":           arrayOf(analyteProp()),
			"eluate_analysis":          arrayOf(analyteProp()),
		},
		"required": []string{"page", "solid_analysis", "eluate_analysis"},
	}
}

func analyteProp() map[string]any {
	limits := make(map[string]any, len(constants.LimitLabels))
	flags := make(map[string]any, len(constants.LimitLabels))
	for _, label := range constants.LimitLabels {
		limits[label] = map[string]any{"oneOf": []any{measurementProp(), map[string]any{"type": "null"}}}
		flags[label] = map[string]any{"type": []string{"boolean", "null"}}
	}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"analyte":       map[string]any{"type": "string", "minLength": 1},
			"unit":          map[string]any{"type": "string", "minLength": 1},
			"accreditation": map[string]any{"type": "string", "minLength": 1},
			"result":        measurementProp(),
			"limits": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"properties":           limits,
			},
			"threshold_flags": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"properties":           flags,
			},
		},
		"required": []string{"analyte", "unit", "accreditation", "limits", "threshold_flags"},
	}
}

func measurementProp() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"raw":      map[string]any{"type": "string", "minLength": 1},
			"operator": map[string]any{"type": "string", "enum": []string{"<", ">", "<=", ">="}},
			"value":    numberProp(),
		},
		"required": []string{"raw"},
	}
}

func highlightProp() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"page":            map[string]any{"type": "integer", "minimum": 1},
			"keyword_matches": map[string]any{"type": "integer", "minimum": 1},
			"table_count":     map[string]any{"type": "integer", "minimum": 1},
			"preview":         map[string]any{"type": "string"},
			"tables_preview": arrayOf(map[string]any{
				"type":  "array",
				"items": arrayOf(map[string]any{"type": "string"}),
			}),
		},
		"required": []string{"page", "keyword_matches", "table_count", "preview", "tables_preview"},
	}
}

func arrayOf(items map[string]any) map[string]any {
	return map[string]any{"type": "array", "items": items}
}

func stringProp() map[string]any {
	return map[string]any{"type": "string", "minLength": 1}
}

func numberProp() map[string]any {
	return map[string]any{"type": "number"}
}
