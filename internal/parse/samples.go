package parse

import (
	"regexp"
	"strings"

	"github.com/joseph-ayodele/labreport-extractor/constants"
	"github.com/joseph-ayodele/labreport-extractor/internal/entity"
)

var (
	reLabReference = regexp.MustCompile(`^\d{6}\b`)
	reFieldSpan    = regexp.MustCompile(`\S+`)
	reNumericValue = regexp.MustCompile(`^<?-?\d+(?:\.\d+)?$`)
)

// sampleSeparator splits lab reference, id block and remainder.
const sampleSeparator = " - "

// ExtractSampleDescriptions parses the sample table on the first page that
// has both the "Sample Descriptions" heading and the table header row.
func ExtractSampleDescriptions(pages []entity.PageRecord) []entity.SampleDescription {
	for _, page := range pages {
		if !strings.Contains(page.Text, constants.HeadingSampleDescriptions) {
			continue
		}
		lines := strings.Split(page.Text, "\n")
		start := -1
		for i, line := range lines {
			if strings.Contains(line, constants.SampleTableHeader) {
				start = i + 1
				break
			}
		}
		if start < 0 {
			continue
		}

		acc := newSampleAccumulator()
		for _, line := range lines[start:] {
			acc.Feed(line)
		}
		return acc.Samples()
	}
	return []entity.SampleDescription{}
}

type accumulatorState int

const (
	stateNoCurrentSample accumulatorState = iota
	stateAccumulating
)

// sampleBuilder holds the sample being assembled until the next sample
// line (or the end of the section) flushes it.
type sampleBuilder struct {
	sample      entity.SampleDescription
	description string
}

func (b *sampleBuilder) appendDescription(line string) {
	if b.description == "" {
		b.description = line
		return
	}
	b.description += " " + line
}

func (b *sampleBuilder) build() entity.SampleDescription {
	s := b.sample
	s.Description = normalizeToken(b.description)
	return s
}

// sampleAccumulator is the line state machine behind ExtractSampleDescriptions.
type sampleAccumulator struct {
	state   accumulatorState
	current *sampleBuilder
	samples []entity.SampleDescription
}

func newSampleAccumulator() *sampleAccumulator {
	return &sampleAccumulator{state: stateNoCurrentSample, samples: []entity.SampleDescription{}}
}

// Feed consumes one raw line of the section.
func (a *sampleAccumulator) Feed(line string) {
	line = strings.TrimSpace(line)
	if skipSampleLine(line) {
		return
	}
	if reLabReference.MatchString(line) {
		a.flush()
		a.current = parseSampleLine(line)
		a.state = stateAccumulating
		return
	}
	if a.state == stateAccumulating {
		a.current.appendDescription(line)
	}
}

// Samples flushes the pending sample and returns everything seen so far.
func (a *sampleAccumulator) Samples() []entity.SampleDescription {
	a.flush()
	return a.samples
}

func (a *sampleAccumulator) flush() {
	if a.state != stateAccumulating {
		return
	}
	a.samples = append(a.samples, a.current.build())
	a.current = nil
	a.state = stateNoCurrentSample
}

func skipSampleLine(line string) bool {
	return line == "" ||
		strings.HasPrefix(line, "Page ") ||
		strings.HasPrefix(line, "Client") ||
		strings.HasPrefix(line, "Determinant")
}

// parseSampleLine reads "<lab ref> - <id> [location...] <type> - <description> <moisture> <stone> <passing>".
func parseSampleLine(line string) *sampleBuilder {
	parts := strings.SplitN(line, sampleSeparator, 3)
	b := &sampleBuilder{}
	b.sample.LabReference = normalizeToken(parts[0])

	var idBlock, remainder string
	if len(parts) > 1 {
		idBlock = strings.TrimSpace(parts[1])
	}
	if len(parts) > 2 {
		remainder = strings.TrimSpace(parts[2])
	}

	ids := strings.Fields(idBlock)
	if len(ids) > 0 {
		b.sample.SampleID = normalizeToken(ids[0])
	}
	if len(ids) >= 2 {
		b.sample.SampleType = normalizeToken(ids[len(ids)-1])
	}
	if len(ids) > 2 {
		b.sample.Location = normalizeToken(strings.Join(ids[1:len(ids)-1], " "))
	}

	values := valueSpans(remainder)
	if len(values) < 3 {
		b.description = remainder
		return b
	}
	last := values[len(values)-3:]
	b.description = strings.TrimSpace(remainder[:last[0][0]])
	b.sample.MoistureContentPercent = normalizeToken(remainder[last[0][0]:last[0][1]])
	b.sample.StoneContentPercent = normalizeToken(remainder[last[1][0]:last[1][1]])
	b.sample.Passing2mmPercent = normalizeToken(remainder[last[2][0]:last[2][1]])
	return b
}

// valueSpans returns the byte spans of numeric or "-" tokens in s. A lone
// "<" directly followed by a number is merged into one span.
func valueSpans(s string) [][2]int {
	fields := reFieldSpan.FindAllStringIndex(s, -1)
	var spans [][2]int
	for i := 0; i < len(fields); i++ {
		tok := s[fields[i][0]:fields[i][1]]
		switch {
		case tok == "-" || reNumericValue.MatchString(tok):
			spans = append(spans, [2]int{fields[i][0], fields[i][1]})
		case tok == "<" && i+1 < len(fields) && reNumericValue.MatchString(s[fields[i+1][0]:fields[i+1][1]]):
			spans = append(spans, [2]int{fields[i][0], fields[i+1][1]})
			i++
		}
	}
	return spans
}
