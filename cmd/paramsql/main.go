// Command paramsql converts name=value parameter text into T-SQL variable
// declarations.
package main

import (
	"os"

	"github.com/andrewkroh/paramsql/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
