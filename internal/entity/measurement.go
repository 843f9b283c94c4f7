package entity

// Operator is the comparison qualifier printed in front of a reported value.
type Operator string

const (
	OpNone         Operator = ""
	OpLess         Operator = "<"
	OpGreater      Operator = ">"
	OpLessEqual    Operator = "<="
	OpGreaterEqual Operator = ">="
)

// Measurement is one reported analytical value. Value is nil when the raw
// text could not be read as a number.
type Measurement struct {
	Raw      string   `json:"raw" yaml:"raw"`
	Operator Operator `json:"operator,omitempty" yaml:"operator,omitempty"`
	Value    *float64 `json:"value,omitempty" yaml:"value,omitempty"`
}

// HasValue reports whether m carries a numeric value.
func (m *Measurement) HasValue() bool {
	return m != nil && m.Value != nil
}

// AnalyteResult is a single parsed result row of a certificate.
type AnalyteResult struct {
	Analyte        string         `json:"analyte" yaml:"analyte"`
	Unit           string         `json:"unit" yaml:"unit"`
	Accreditation  string         `json:"accreditation" yaml:"accreditation"`
	Result         *Measurement   `json:"result,omitempty" yaml:"result,omitempty"`
	Limits         Limits         `json:"limits" yaml:"limits"`
	ThresholdFlags ThresholdFlags `json:"threshold_flags" yaml:"threshold_flags"`
}
