package paramsql

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/andrewkroh/paramsql/paramspec"
)

// Generate renders the DECLARE block for params followed by the INSERT
// statements of every table-typed parameter, both in input order.
func Generate(params []paramspec.Param, opts ...Option) string {
	cfg := newGenerateConfig(opts)

	decls := make([]string, 0, len(params))
	var inserts strings.Builder
	for _, p := range params {
		frag := declare(p, cfg)
		decls = append(decls, frag.ParamString)
		inserts.WriteString(frag.InsertBlock)
	}

	var b strings.Builder
	b.WriteString("DECLARE\n")
	b.WriteString(strings.Join(decls, ",\n"))
	b.WriteString("\n")
	b.WriteString(inserts.String())
	b.WriteString("\n")
	return b.String()
}

// Declare returns the declaration fragment for a single parameter.
func Declare(p paramspec.Param, opts ...Option) paramspec.DeclareFragment {
	return declare(p, newGenerateConfig(opts))
}

func declare(p paramspec.Param, cfg *generateConfig) paramspec.DeclareFragment {
	v := p.Value
	switch v.Type {
	case paramspec.ParamTypeTable:
		typeName := ""
		if v.Array != nil {
			typeName = v.Array.TypeName
		}
		return paramspec.DeclareFragment{
			ParamString: fmt.Sprintf("@%s %s", p.Name, typeName),
			InsertBlock: insertBlock(p.Name, v.Array.Rows(), cfg.chunkSize),
		}
	case paramspec.ParamTypeNull:
		return paramspec.DeclareFragment{ParamString: fmt.Sprintf("@%s NVARCHAR(10) = NULL", p.Name)}
	case paramspec.ParamTypeBoolean:
		bit := "0"
		if v.Bool {
			bit = "1"
		}
		return paramspec.DeclareFragment{ParamString: fmt.Sprintf("@%s BIT = %s", p.Name, bit)}
	case paramspec.ParamTypeInteger:
		return paramspec.DeclareFragment{ParamString: fmt.Sprintf("@%s BIGINT = %s", p.Name, strconv.FormatInt(v.Int, 10))}
	case paramspec.ParamTypeFloat:
		return paramspec.DeclareFragment{ParamString: fmt.Sprintf("@%s DECIMAL(16, 5) = %s", p.Name, v.Float.String())}
	default:
		// String and anything unrecognized.
		return paramspec.DeclareFragment{ParamString: fmt.Sprintf("@%s NVARCHAR(MAX) = N'%s'", p.Name, v.Str)}
	}
}

// insertBlock emits one INSERT statement per chunk of at most chunkSize rows.
func insertBlock(name string, rows []string, chunkSize int) string {
	var b strings.Builder
	for _, chunk := range chunkRows(rows, chunkSize) {
		fmt.Fprintf(&b, "INSERT INTO @%s\n", name)
		b.WriteString("VALUES (")
		b.WriteString(strings.Join(chunk, "), ("))
		b.WriteString(")\n")
	}
	return b.String()
}

func chunkRows(rows []string, size int) [][]string {
	var chunks [][]string
	for i := 0; i < len(rows); i += size {
		end := min(i+size, len(rows))
		chunks = append(chunks, rows[i:end])
	}
	return chunks
}
