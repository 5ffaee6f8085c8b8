package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andrewkroh/paramsql/internal/cli/config"
	"github.com/andrewkroh/paramsql/internal/sqlgen"
)

// NewBatchCommand creates the batch command.
func NewBatchCommand() *cobra.Command {
	var jobsFile string

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Compile every parameter file listed in a jobs file",
		Long: `Batch reads a YAML jobs file, compiles each job's parameter file and writes
one .sql file per job to the output directory. When --package is set a Go
file holding one string constant per job is generated as well.`,
		Example: `  paramsql batch --jobs jobs.yml --output-dir sql
  paramsql batch --jobs jobs.yml --output-dir queries --package queries`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.FromContext(cmd.Context())

			results, err := sqlgen.Run(sqlgen.Config{
				JobsFile:    jobsFile,
				OutputDir:   cfg.OutputDir,
				PackageName: cfg.Package,
				ChunkSize:   cfg.ChunkSize,
			})
			if err != nil {
				return err
			}

			for _, r := range results {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", r.Job, r.Path)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&jobsFile, "jobs", "", "Path to the jobs file (required)")
	cmd.Flags().String("output-dir", "", "Output directory for generated files (default \".\")")
	cmd.Flags().String("package", "", "Also generate a Go file with one constant per job in this package")
	_ = cmd.MarkFlagRequired("jobs")
	return cmd
}
