package parse

import (
	"reflect"
	"testing"

	"github.com/joseph-ayodele/labreport-extractor/internal/entity"
)

func TestParseMeasurement(t *testing.T) {
	tests := []struct {
		name      string
		token     string
		wantNil   bool
		wantRaw   string
		wantOp    entity.Operator
		wantValue *float64
	}{
		{name: "empty", token: "", wantNil: true},
		{name: "whitespace", token: "   ", wantNil: true},
		{name: "placeholder", token: "-", wantNil: true},
		{name: "plain number", token: "12.5", wantRaw: "12.5", wantValue: f(12.5)},
		{name: "thousands separator", token: "1,200", wantRaw: "1,200", wantValue: f(1200)},
		{name: "spaced less than", token: "< 0.5", wantRaw: "< 0.5", wantOp: entity.OpLess, wantValue: f(0.5)},
		{name: "attached less than", token: "<1", wantRaw: "<1", wantOp: entity.OpLess, wantValue: f(1)},
		{name: "greater or equal", token: ">= 10", wantRaw: ">= 10", wantOp: entity.OpGreaterEqual, wantValue: f(10)},
		{name: "less or equal", token: "<=3", wantRaw: "<=3", wantOp: entity.OpLessEqual, wantValue: f(3)},
		{name: "greater than", token: "> 100", wantRaw: "> 100", wantOp: entity.OpGreater, wantValue: f(100)},
		{name: "text keeps raw", token: "N.D.", wantRaw: "N.D."},
		{name: "operator only", token: "<", wantRaw: "<", wantOp: entity.OpLess},
		{name: "nan is not a value", token: "NaN", wantRaw: "NaN"},
		{name: "surrounding space", token: "  7 ", wantRaw: "7", wantValue: f(7)},
		{name: "hex float is not a value", token: "0x1p4", wantRaw: "0x1p4"},
		{name: "underscore digits are not a value", token: "1_000", wantRaw: "1_000"},
		{name: "exponent", token: "1.5e3", wantRaw: "1.5e3", wantValue: f(1500)},
		{name: "negative", token: "-0.2", wantRaw: "-0.2", wantValue: f(-0.2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseMeasurement(tt.token)
			if tt.wantNil {
				if got != nil {
					t.Fatalf("ParseMeasurement(%q) = %+v, want nil", tt.token, got)
				}
				return
			}
			if got == nil {
				t.Fatalf("ParseMeasurement(%q) = nil", tt.token)
			}
			if got.Raw != tt.wantRaw {
				t.Errorf("Raw = %q, want %q", got.Raw, tt.wantRaw)
			}
			if got.Operator != tt.wantOp {
				t.Errorf("Operator = %q, want %q", got.Operator, tt.wantOp)
			}
			if !reflect.DeepEqual(got.Value, tt.wantValue) {
				t.Errorf("Value = %v, want %v", deref(got.Value), deref(tt.wantValue))
			}
		})
	}
}

func TestCombineOperators(t *testing.T) {
	tests := []struct {
		in   []string
		want []string
	}{
		{[]string{"<", "1", "5"}, []string{"< 1", "5"}},
		{[]string{"12", ">=", "3"}, []string{"12", ">= 3"}},
		{[]string{"<1", "5"}, []string{"<1", "5"}},
		{[]string{"5", "<"}, []string{"5", "<"}},
		{[]string{}, []string{}},
	}
	for _, tt := range tests {
		if got := CombineOperators(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("CombineOperators(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func f(v float64) *float64 { return &v }

func deref(p *float64) any {
	if p == nil {
		return nil
	}
	return *p
}
