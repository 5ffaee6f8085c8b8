package paramreader

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/andrewkroh/paramsql/paramspec"
)

var (
	integerRe = regexp.MustCompile(`^\d+$`)

	// TODO: anchor both alternatives (^(True|False)$). As written this
	// matches any value starting with "True" or ending with "False", and
	// such values are declared as BIT = 0 unless they equal "True".
	booleanRe = regexp.MustCompile(`^True|False$`)

	floatRe = regexp.MustCompile(`^[\d.]+$`)

	// tableRe matches "( <rows> )[<type name>]". Rows are separated by
	// single spaces.
	tableRe = regexp.MustCompile(`(?s)^\( (.*) \)(\[.+\])$`)
)

// Infer classifies a raw value. Checks run in a fixed order and the first
// match wins: integer, boolean, float, table, then string as a fallback.
// An error is returned only when a value is classified but cannot be
// converted (an integer outside the BIGINT range or a malformed decimal).
func Infer(raw string) (paramspec.Value, error) {
	if integerRe.MatchString(raw) {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return paramspec.Value{}, fmt.Errorf("integer %q out of BIGINT range: %w", raw, err)
		}
		return paramspec.Value{Type: paramspec.ParamTypeInteger, Int: n}, nil
	}

	if booleanRe.MatchString(raw) {
		return paramspec.Value{Type: paramspec.ParamTypeBoolean, Bool: raw == "True"}, nil
	}

	if floatRe.MatchString(raw) {
		d, err := decimal.NewFromString(raw)
		if err != nil {
			return paramspec.Value{}, fmt.Errorf("invalid decimal %q: %w", raw, err)
		}
		return paramspec.Value{Type: paramspec.ParamTypeFloat, Float: d}, nil
	}

	if m := tableRe.FindStringSubmatch(raw); m != nil {
		return paramspec.Value{
			Type: paramspec.ParamTypeTable,
			Array: &paramspec.ValueArray{
				TypeName: m[2],
				Values:   strings.Split(m[1], " "),
			},
		}, nil
	}

	return paramspec.Value{Type: paramspec.ParamTypeString, Str: raw}, nil
}

// Parse splits input into lines and infers the value of each parameter.
// Parameters are returned in input order.
func Parse(input string) ([]paramspec.Param, error) {
	lines := Split(input)

	params := make([]paramspec.Param, 0, len(lines))
	for _, l := range lines {
		v, err := Infer(l.Raw)
		if err != nil {
			return nil, fmt.Errorf("line %d: parameter %s: %w", l.Number, l.Name, err)
		}
		params = append(params, paramspec.Param{
			Name:  l.Name,
			Line:  l.Number,
			Value: v,
		})
	}
	return params, nil
}
