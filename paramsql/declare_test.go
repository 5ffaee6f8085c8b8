package paramsql

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/andrewkroh/paramsql/paramspec"
)

func TestDeclare(t *testing.T) {
	tests := []struct {
		name  string
		param paramspec.Param
		want  paramspec.DeclareFragment
	}{
		{
			name:  "null",
			param: paramspec.Param{Name: "n", Value: paramspec.Value{Type: paramspec.ParamTypeNull}},
			want:  paramspec.DeclareFragment{ParamString: "@n NVARCHAR(10) = NULL"},
		},
		{
			name:  "string",
			param: paramspec.Param{Name: "s", Value: paramspec.Value{Type: paramspec.ParamTypeString, Str: "x"}},
			want:  paramspec.DeclareFragment{ParamString: "@s NVARCHAR(MAX) = N'x'"},
		},
		{
			name:  "unknown type falls back to string",
			param: paramspec.Param{Name: "u", Value: paramspec.Value{Type: paramspec.ParamType(99), Str: "x"}},
			want:  paramspec.DeclareFragment{ParamString: "@u NVARCHAR(MAX) = N'x'"},
		},
		{
			name:  "integer",
			param: paramspec.Param{Name: "i", Value: paramspec.Value{Type: paramspec.ParamTypeInteger, Int: 42}},
			want:  paramspec.DeclareFragment{ParamString: "@i BIGINT = 42"},
		},
		{
			name:  "float",
			param: paramspec.Param{Name: "f", Value: paramspec.Value{Type: paramspec.ParamTypeFloat, Float: decimal.RequireFromString("0.125")}},
			want:  paramspec.DeclareFragment{ParamString: "@f DECIMAL(16, 5) = 0.125"},
		},
		{
			name:  "boolean",
			param: paramspec.Param{Name: "b", Value: paramspec.Value{Type: paramspec.ParamTypeBoolean, Bool: true}},
			want:  paramspec.DeclareFragment{ParamString: "@b BIT = 1"},
		},
		{
			name: "table",
			param: paramspec.Param{Name: "t", Value: paramspec.Value{
				Type:  paramspec.ParamTypeTable,
				Array: &paramspec.ValueArray{TypeName: "[dbo.T]", Values: []string{"1,a", "", ",b"}},
			}},
			want: paramspec.DeclareFragment{
				ParamString: "@t [dbo.T]",
				InsertBlock: "INSERT INTO @t\nVALUES (1,a), (NULL,b)\n",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Declare(tt.param))
		})
	}
}

func TestGenerate_Null(t *testing.T) {
	params := []paramspec.Param{
		{Name: "a", Value: paramspec.Value{Type: paramspec.ParamTypeInteger, Int: 1}},
		{Name: "b"},
	}
	assert.Equal(t, "DECLARE\n@a BIGINT = 1,\n@b NVARCHAR(10) = NULL\n\n", Generate(params))
}

func TestChunkRows(t *testing.T) {
	tests := []struct {
		rows int
		size int
		want []int
	}{
		{0, 1000, nil},
		{1, 1000, []int{1}},
		{1000, 1000, []int{1000}},
		{1001, 1000, []int{1000, 1}},
		{2500, 1000, []int{1000, 1000, 500}},
	}

	for _, tt := range tests {
		rows := make([]string, tt.rows)
		var got []int
		for _, c := range chunkRows(rows, tt.size) {
			got = append(got, len(c))
		}
		assert.Equal(t, tt.want, got, "rows=%d size=%d", tt.rows, tt.size)
	}
}
