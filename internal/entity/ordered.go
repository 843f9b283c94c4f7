package entity

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Entry is one labeled value of an Ordered map.
type Entry[V any] struct {
	Label string
	Value V
}

// Ordered is a small map that keeps insertion order when serialized.
// Limit labels are positional, so they must not be re-sorted on output.
type Ordered[V any] []Entry[V]

// Limits maps a limit label to the parsed limit value (nil for a blank column).
type Limits = Ordered[*Measurement]

// ThresholdFlags maps a limit label to its exceedance outcome; nil means
// the comparison could not be made.
type ThresholdFlags = Ordered[*bool]

// Get returns the value stored under label.
func (o Ordered[V]) Get(label string) (V, bool) {
	for _, e := range o {
		if e.Label == label {
			return e.Value, true
		}
	}
	var zero V
	return zero, false
}

// Labels returns the labels in order.
func (o Ordered[V]) Labels() []string {
	out := make([]string, len(o))
	for i, e := range o {
		out[i] = e.Label
	}
	return out
}

func (o Ordered[V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := marshalNoEscape(e.Label)
		if err != nil {
			return nil, err
		}
		v, err := marshalNoEscape(e.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// marshalNoEscape encodes v without HTML escaping, so "< 0.5" stays as written.
func marshalNoEscape(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func (o Ordered[V]) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, e := range o {
		var val yaml.Node
		if err := val.Encode(e.Value); err != nil {
			return nil, err
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Label},
			&val,
		)
	}
	return node, nil
}
