package paramspec

import (
	"testing"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

func TestParamTypeString(t *testing.T) {
	tests := []struct {
		typ  ParamType
		want string
	}{
		{ParamTypeNull, "null"},
		{ParamTypeString, "string"},
		{ParamTypeInteger, "integer"},
		{ParamTypeFloat, "float"},
		{ParamTypeBoolean, "boolean"},
		{ParamTypeTable, "table"},
		{ParamType(42), "ParamType(42)"},
	}

	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("ParamType(%d).String() = %q, want %q", int(tt.typ), got, tt.want)
		}
	}
}

func TestParamTypeZeroValueIsNull(t *testing.T) {
	var v Value
	if v.Type != ParamTypeNull {
		t.Fatalf("zero Value has type %v, want null", v.Type)
	}
	if v.String() != "NULL" {
		t.Errorf("zero Value renders as %q", v.String())
	}
}

func TestParamTypeYAML(t *testing.T) {
	out, err := yaml.Marshal(map[string]ParamType{"type": ParamTypeTable})
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "type: table\n" {
		t.Errorf("unexpected YAML: %q", out)
	}

	var decoded map[string]ParamType
	if err := yaml.Unmarshal([]byte("type: boolean\n"), &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded["type"] != ParamTypeBoolean {
		t.Errorf("decoded %v, want boolean", decoded["type"])
	}

	if err := yaml.Unmarshal([]byte("type: bogus\n"), &decoded); err == nil {
		t.Error("expected error for unknown type name")
	}
}

func TestValueString(t *testing.T) {
	tests := []struct {
		name  string
		value Value
		want  string
	}{
		{"integer", Value{Type: ParamTypeInteger, Int: 123}, "123"},
		{"float", Value{Type: ParamTypeFloat, Float: decimal.RequireFromString("12.50")}, "12.5"},
		{"true", Value{Type: ParamTypeBoolean, Bool: true}, "True"},
		{"false", Value{Type: ParamTypeBoolean}, "False"},
		{"string", Value{Type: ParamTypeString, Str: "hello"}, "hello"},
		{"table", Value{Type: ParamTypeTable, Array: &ValueArray{TypeName: "[dbo.T]", Values: []string{"1,a", "", "2,b"}}}, "2 rows [dbo.T]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.value.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
