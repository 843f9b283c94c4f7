package entity

// RawTable is a table of cells as produced by the text extractor. Rows may
// have different lengths.
type RawTable [][]string

// PageRecord holds the extracted content of one page. PageNumber is 1-based.
type PageRecord struct {
	PageNumber int        `json:"page_number" yaml:"page_number"`
	Text       string     `json:"text" yaml:"text"`
	Tables     []RawTable `json:"tables" yaml:"tables"`
}

// Fields is a sparse set of labeled values. Absent fields have no key.
type Fields map[string]string

// Set stores value under key unless value is empty.
func (f Fields) Set(key, value string) {
	if value == "" {
		return
	}
	f[key] = value
}

// Get returns the value for key and whether it is present.
func (f Fields) Get(key string) (string, bool) {
	v, ok := f[key]
	return v, ok
}
