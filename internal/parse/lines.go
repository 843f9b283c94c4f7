package parse

import (
	"math"
	"strconv"
	"strings"
)

// separators trimmed from a value that follows a label on the same line.
const labelSeparators = " :-"

// nonBlankLines splits text into trimmed lines, dropping blank ones.
func nonBlankLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// hasPrefixFold is a case-insensitive strings.HasPrefix.
func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

// lineValue finds the first line starting with label and returns what follows it.
// An empty remainder or a lone "-" counts as absent; the search stops at the
// first matching line either way.
func lineValue(lines []string, label string) (string, bool) {
	for _, line := range lines {
		if !hasPrefixFold(line, label) {
			continue
		}
		value := strings.Trim(line[len(label):], labelSeparators)
		if value == "" || value == "-" {
			return "", false
		}
		return value, true
	}
	return "", false
}

// normalizeToken trims s and maps "" and "-" to nil.
func normalizeToken(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" || s == "-" {
		return nil
	}
	return &s
}

// toFloat parses s after removing thousands separators. Only decimal
// notation is accepted: hex floats and digit underscores are rejected.
func toFloat(s string) (float64, bool) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" || strings.ContainsAny(s, "xX_") {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func optionalString(value string, ok bool) *string {
	if !ok {
		return nil
	}
	return &value
}

func optionalFloat(value string, ok bool) *float64 {
	if !ok {
		return nil
	}
	v, ok := toFloat(value)
	if !ok {
		return nil
	}
	return &v
}
