package parse

import (
	"strings"

	"github.com/joseph-ayodele/labreport-extractor/internal/entity"
)

// Two-character operators first so "<=" is not read as "<".
var comparisonOperators = []entity.Operator{
	entity.OpLessEqual,
	entity.OpGreaterEqual,
	entity.OpLess,
	entity.OpGreater,
}

func isOperatorToken(tok string) bool {
	for _, op := range comparisonOperators {
		if tok == string(op) {
			return true
		}
	}
	return false
}

// ParseMeasurement reads one value token such as "12.5", "< 0.5" or "1,200".
// It returns nil for an empty or "-" token. A token that is not a number
// keeps its raw text with a nil Value.
func ParseMeasurement(token string) *entity.Measurement {
	raw := strings.TrimSpace(token)
	if raw == "" || raw == "-" {
		return nil
	}

	m := &entity.Measurement{Raw: raw}
	number := raw
	for _, op := range comparisonOperators {
		if strings.HasPrefix(raw, string(op)) {
			m.Operator = op
			number = raw[len(op):]
			break
		}
	}
	if v, ok := toFloat(number); ok {
		m.Value = &v
	}
	return m
}

// CombineOperators joins a standalone comparison operator with the token
// after it, so ["<", "1", "5"] becomes ["< 1", "5"].
func CombineOperators(tokens []string) []string {
	combined := make([]string, 0, len(tokens))
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		if isOperatorToken(tok) && i+1 < len(tokens) {
			combined = append(combined, tok+" "+tokens[i+1])
			i++
			continue
		}
		combined = append(combined, tok)
	}
	return combined
}
