package parse

import (
	"strings"

	"github.com/joseph-ayodele/labreport-extractor/constants"
	"github.com/joseph-ayodele/labreport-extractor/internal/entity"
)

// IsUnitToken reports whether tok marks the unit column of an analyte line.
func IsUnitToken(tok string) bool {
	if _, ok := constants.UnitHints[tok]; ok {
		return true
	}
	return strings.Contains(tok, "/") ||
		strings.Contains(tok, "%") ||
		strings.EqualFold(tok, "units")
}

// unitBoundary returns the index of the first unit token, or -1.
func unitBoundary(tokens []string) int {
	for i, tok := range tokens {
		if IsUnitToken(tok) {
			return i
		}
	}
	return -1
}

// ParseAnalyteLine reads a result row laid out as
//
//	<analyte words...> <unit> <accreditation> <result> [inert] [snrhw] [hazardous]
//
// The second return is false when the line does not have that shape.
func ParseAnalyteLine(line string) (entity.AnalyteResult, bool) {
	tokens := strings.Fields(line)
	unitIdx := unitBoundary(tokens)
	if unitIdx <= 0 || len(tokens) < unitIdx+3 {
		return entity.AnalyteResult{}, false
	}

	values := CombineOperators(tokens[unitIdx+2:])
	res := entity.AnalyteResult{
		Analyte:       strings.Join(tokens[:unitIdx], " "),
		Unit:          tokens[unitIdx],
		Accreditation: tokens[unitIdx+1],
		Result:        ParseMeasurement(values[0]),
	}

	limits := make(entity.Limits, 0, len(constants.LimitLabels))
	for i, label := range constants.LimitLabels {
		if i+1 >= len(values) {
			break
		}
		limits = append(limits, entity.Entry[*entity.Measurement]{
			Label: label,
			Value: ParseMeasurement(values[i+1]),
		})
	}
	res.Limits = limits
	res.ThresholdFlags = ClassifyThresholds(res.Result, limits)
	return res, true
}

// ClassifyThresholds compares result against every limit. A flag is nil
// when either value is missing or the result is reported as "<" a
// detection limit, since that cannot be compared with a threshold.
func ClassifyThresholds(result *entity.Measurement, limits entity.Limits) entity.ThresholdFlags {
	flags := make(entity.ThresholdFlags, 0, len(limits))
	for _, limit := range limits {
		var flag *bool
		if result.HasValue() && limit.Value.HasValue() && result.Operator != entity.OpLess {
			exceeded := *result.Value > *limit.Value.Value
			flag = &exceeded
		}
		flags = append(flags, entity.Entry[*bool]{Label: limit.Label, Value: flag})
	}
	return flags
}
