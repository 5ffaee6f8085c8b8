// Command table_params reads a parameter file and prints every table-typed
// parameter with its parsed rows and the INSERT statements generated for it.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/andrewkroh/paramsql/paramreader"
	"github.com/andrewkroh/paramsql/paramspec"
	"github.com/andrewkroh/paramsql/paramsql"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <params-file>\n", os.Args[0])
		os.Exit(1)
	}

	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		log.Fatal(err)
	}

	params, err := paramreader.Parse(string(data))
	if err != nil {
		log.Fatal(err)
	}

	for _, p := range params {
		if p.Value.Type != paramspec.ParamTypeTable {
			continue
		}

		rows := p.Value.Array.Rows()
		fmt.Printf("%s %s (line %d, %d rows)\n", p.Name, p.Value.Array.TypeName, p.Line, len(rows))
		for i, row := range rows {
			fmt.Printf("  %4d  %s\n", i+1, row)
		}

		frag := paramsql.Declare(p)
		fmt.Printf("\n%s\n%s\n", frag.ParamString, frag.InsertBlock)
	}
}
