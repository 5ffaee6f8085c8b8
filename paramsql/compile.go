package paramsql

import (
	"fmt"
	"strings"

	"github.com/andrewkroh/paramsql/paramreader"
)

// Error is returned by Compile when the input cannot be compiled. It
// carries a single message suitable for display.
type Error struct {
	Message string
	err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.err
}

// Compile converts parameter text into a SQL declaration block. Empty or
// whitespace-only input, and input containing no "name=value" lines,
// produce an empty result and no error. On failure no partial output is
// returned.
func Compile(input string, opts ...Option) (out string, err error) {
	if strings.TrimSpace(input) == "" {
		return "", nil
	}

	defer func() {
		if r := recover(); r != nil {
			out = ""
			err = &Error{Message: fmt.Sprintf("compilation failed: %v", r)}
		}
	}()

	params, err := paramreader.Parse(input)
	if err != nil {
		return "", &Error{Message: "compilation failed: " + err.Error(), err: err}
	}
	if len(params) == 0 {
		return "", nil
	}

	return Generate(params, opts...), nil
}
