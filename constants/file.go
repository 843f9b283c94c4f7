package constants

import "strings"

// PDF is the only source format the extractor accepts.
const PDF = "PDF"

// AllowedExtensions holds the file extensions picked up by batch operations.
var AllowedExtensions = map[string]struct{}{
	"pdf": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat returns the source format for an extension, or "" when unsupported.
func MapExtToFormat(ext string) string {
	if _, ok := AllowedExtensions[NormalizeExt(ext)]; ok {
		return PDF
	}
	return ""
}

// SummarySuffix is appended to the source stem for the default output file.
const SummarySuffix = "_chemical_summary"
