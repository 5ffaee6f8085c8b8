// Package paramspec defines the data model shared by the parameter reader
// and the SQL generator: typed parameters, their values, and the
// per-parameter declaration fragments produced from them.
package paramspec

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Param is one parsed name/value pair destined for a SQL declaration.
type Param struct {
	// Name is taken verbatim from the left side of the source line.
	Name string

	// Line is the 1-based source line the parameter was read from. It is
	// zero for parameters that were constructed directly.
	Line int

	Value Value
}

// Value is a typed parameter value. Only the field matching Type is
// meaningful.
type Value struct {
	Type  ParamType
	Int   int64
	Float decimal.Decimal
	Bool  bool
	Str   string
	Array *ValueArray
}

// String returns a human-readable rendering of the value. It is not a SQL
// literal; see the paramsql package for that.
func (v Value) String() string {
	switch v.Type {
	case ParamTypeNull:
		return "NULL"
	case ParamTypeInteger:
		return strconv.FormatInt(v.Int, 10)
	case ParamTypeFloat:
		return v.Float.String()
	case ParamTypeBoolean:
		if v.Bool {
			return "True"
		}
		return "False"
	case ParamTypeTable:
		if v.Array == nil {
			return ""
		}
		return strconv.Itoa(len(v.Array.Rows())) + " rows " + v.Array.TypeName
	default:
		return v.Str
	}
}

// DeclareFragment is the generated SQL for a single parameter.
type DeclareFragment struct {
	// ParamString is the "@name TYPE = value" text.
	ParamString string

	// InsertBlock holds the INSERT statements populating a table-typed
	// parameter. It is empty for every other type.
	InsertBlock string
}
