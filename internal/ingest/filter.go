package ingest

import (
	"path/filepath"
	"strings"

	"github.com/joseph-ayodele/labreport-extractor/constants"
)

// AllowedExt reports whether ext (with or without the dot, any case) is a
// source format batch operations pick up.
func AllowedExt(ext string) bool {
	return constants.MapExtToFormat(ext) != ""
}

// IsHidden reports whether the last element of path is a dot file or
// directory. "." and ".." are not hidden.
func IsHidden(path string) bool {
	base := filepath.Base(path)
	if base == "." || base == ".." {
		return false
	}
	return strings.HasPrefix(base, ".")
}
