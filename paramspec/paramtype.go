package paramspec

import "fmt"

// ParamType identifies which SQL declaration a parameter receives.
type ParamType int

// Enum values for ParamType. Null is never produced by inference; it exists
// for parameters that are constructed directly.
const (
	ParamTypeNull ParamType = iota
	ParamTypeString
	ParamTypeInteger
	ParamTypeFloat
	ParamTypeBoolean
	ParamTypeTable
)

var paramTypeNames = [...]string{
	ParamTypeNull:    "null",
	ParamTypeString:  "string",
	ParamTypeInteger: "integer",
	ParamTypeFloat:   "float",
	ParamTypeBoolean: "boolean",
	ParamTypeTable:   "table",
}

func (t ParamType) String() string {
	if t < 0 || int(t) >= len(paramTypeNames) {
		return fmt.Sprintf("ParamType(%d)", int(t))
	}
	return paramTypeNames[t]
}

// MarshalText implements [encoding.TextMarshaler] so that ParamType is
// rendered by name in YAML and JSON output.
func (t ParamType) MarshalText() ([]byte, error) {
	if t < 0 || int(t) >= len(paramTypeNames) {
		return nil, fmt.Errorf("unknown parameter type %d", int(t))
	}
	return []byte(paramTypeNames[t]), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] for ParamType.
func (t *ParamType) UnmarshalText(text []byte) error {
	for i, name := range paramTypeNames {
		if name == string(text) {
			*t = ParamType(i)
			return nil
		}
	}
	return fmt.Errorf("unknown parameter type %q", text)
}
