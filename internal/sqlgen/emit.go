package sqlgen

import (
	"fmt"
	"path/filepath"

	"github.com/dave/jennifer/jen"
)

// EmitGo writes <pkgName>.go into outputDir containing one string constant
// per result. It returns the path of the written file.
func EmitGo(pkgName, outputDir string, results []Result) (string, error) {
	f := jen.NewFile(pkgName)
	f.HeaderComment("Code generated by paramsql. DO NOT EDIT.")

	seen := make(map[string]string, len(results))
	defs := make([]jen.Code, 0, len(results))
	for _, r := range results {
		name := ToGoName(r.Job)
		if other, ok := seen[name]; ok {
			return "", fmt.Errorf("jobs %q and %q both map to Go identifier %s", other, r.Job, name)
		}
		seen[name] = r.Job

		defs = append(defs, jen.Commentf("%s is the SQL generated for job %q.", name, r.Job))
		if r.Comment != "" {
			defs = append(defs, jen.Comment(r.Comment))
		}
		defs = append(defs, jen.Id(name).Op("=").Lit(r.SQL))
	}
	f.Const().Defs(defs...)

	path := filepath.Join(outputDir, pkgName+".go")
	if err := f.Save(path); err != nil {
		return "", err
	}
	return path, nil
}
