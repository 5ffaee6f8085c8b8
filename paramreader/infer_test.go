package paramreader

import (
	"reflect"
	"strings"
	"testing"

	"github.com/andrewkroh/paramsql/paramspec"
)

func TestInfer(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		wantType paramspec.ParamType
		want     string // Value.String()
	}{
		{"integer", "123", paramspec.ParamTypeInteger, "123"},
		{"integer leading zeros", "007", paramspec.ParamTypeInteger, "7"},
		{"true", "True", paramspec.ParamTypeBoolean, "True"},
		{"false", "False", paramspec.ParamTypeBoolean, "False"},
		{"lowercase true is a string", "true", paramspec.ParamTypeString, "true"},
		{"float", "12.5", paramspec.ParamTypeFloat, "12.5"},
		{"float trailing zero", "12.50", paramspec.ParamTypeFloat, "12.5"},
		{"float leading dot", ".5", paramspec.ParamTypeFloat, "0.5"},
		{"float trailing dot", "5.", paramspec.ParamTypeFloat, "5"},
		{"signed number is a string", "-1", paramspec.ParamTypeString, "-1"},
		{"exponent is a string", "1e5", paramspec.ParamTypeString, "1e5"},
		{"table", "( 1,a 2,b )[dbo.T]", paramspec.ParamTypeTable, "2 rows [dbo.T]"},
		{"table without type is a string", "( 1,a )", paramspec.ParamTypeString, "( 1,a )"},
		{"string", "hello", paramspec.ParamTypeString, "hello"},
		{"empty string", "", paramspec.ParamTypeString, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Infer(tt.raw)
			if err != nil {
				t.Fatal(err)
			}
			if v.Type != tt.wantType {
				t.Fatalf("Infer(%q) type = %v, want %v", tt.raw, v.Type, tt.wantType)
			}
			if got := v.String(); got != tt.want {
				t.Errorf("Infer(%q) value = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

// The boolean check matches any value that starts with "True" or ends with
// "False". This test pins the current behavior until the pattern is anchored.
func TestInfer_LooseBoolean(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{"TrueStory", false},
		{"NotFalse", false},
		{"True False", false},
	}

	for _, tt := range tests {
		v, err := Infer(tt.raw)
		if err != nil {
			t.Fatal(err)
		}
		if v.Type != paramspec.ParamTypeBoolean {
			t.Errorf("Infer(%q) type = %v, want boolean", tt.raw, v.Type)
		}
		if v.Bool != tt.want {
			t.Errorf("Infer(%q) = %v, want %v", tt.raw, v.Bool, tt.want)
		}
	}
}

func TestInfer_Table(t *testing.T) {
	v, err := Infer("( 1,a  ,b )[dbo.MyType]")
	if err != nil {
		t.Fatal(err)
	}
	want := &paramspec.ValueArray{
		TypeName: "[dbo.MyType]",
		Values:   []string{"1,a", "", ",b"},
	}
	if !reflect.DeepEqual(v.Array, want) {
		t.Errorf("Array = %+v, want %+v", v.Array, want)
	}
}

func TestInfer_Errors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"integer overflow", "99999999999999999999", "out of BIGINT range"},
		{"too many dots", "1.2.3", "invalid decimal"},
		{"only a dot", ".", "invalid decimal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Infer(tt.raw)
			if err == nil {
				t.Fatalf("expected error for %q", tt.raw)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not contain %q", err, tt.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	params, err := Parse("id=1\n\nname=bob\nok=True")
	if err != nil {
		t.Fatal(err)
	}

	if len(params) != 3 {
		t.Fatalf("got %d params, want 3", len(params))
	}

	wantNames := []string{"id", "name", "ok"}
	wantLines := []int{1, 3, 4}
	wantTypes := []paramspec.ParamType{
		paramspec.ParamTypeInteger,
		paramspec.ParamTypeString,
		paramspec.ParamTypeBoolean,
	}
	for i, p := range params {
		if p.Name != wantNames[i] || p.Line != wantLines[i] || p.Value.Type != wantTypes[i] {
			t.Errorf("param %d = {%s line %d %v}, want {%s line %d %v}",
				i, p.Name, p.Line, p.Value.Type, wantNames[i], wantLines[i], wantTypes[i])
		}
	}
}

func TestParse_ErrorIncludesLine(t *testing.T) {
	_, err := Parse("a=1\nprice=1.2.3")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "line 2: parameter price") {
		t.Errorf("unexpected error: %v", err)
	}
}
