package pipeline

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/joseph-ayodele/labreport-extractor/internal/common"
	"github.com/joseph-ayodele/labreport-extractor/internal/entity"
)

// Encode serializes report as indented JSON or YAML.
func Encode(report *entity.Report, format string) ([]byte, error) {
	switch format {
	case "", common.FormatJSON:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return nil, common.WrapError(err, "encode json")
		}
		return buf.Bytes(), nil
	case common.FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return nil, common.WrapError(err, "encode yaml")
		}
		if err := enc.Close(); err != nil {
			return nil, common.WrapError(err, "encode yaml")
		}
		return buf.Bytes(), nil
	default:
		return nil, common.NewAppError(common.CodeUnsupported, fmt.Sprintf("unknown output format %q", format), common.ErrUnsupported)
	}
}
