package commands

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/andrewkroh/paramsql/internal/cli/config"
	"github.com/andrewkroh/paramsql/paramsql"
)

// NewCompileCommand creates the compile command.
func NewCompileCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "compile [FILE]",
		Short: "Compile name=value parameters into SQL declarations",
		Long: `Compile reads name=value lines from FILE (or stdin) and writes a T-SQL
DECLARE block, followed by INSERT statements for table-typed parameters.`,
		Example: `  paramsql compile params.txt
  pbpaste | paramsql compile -o declare.sql`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromContext(cmd.Context())

			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			sql, err := paramsql.Compile(input, paramsql.WithChunkSize(cfg.ChunkSize))
			if err != nil {
				return err
			}
			if sql == "" {
				log.Warn().Msg("no parameters found in input")
			}

			if output == "" || output == "-" {
				_, err = fmt.Fprint(cmd.OutOrStdout(), sql)
				return err
			}
			if err := os.WriteFile(output, []byte(sql), 0o644); err != nil {
				return fmt.Errorf("writing output: %w", err)
			}
			log.Info().Str("output", output).Int("bytes", len(sql)).Msg("wrote sql")
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write SQL to this file instead of stdout")
	return cmd
}
