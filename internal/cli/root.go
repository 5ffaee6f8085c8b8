// Package cli provides the command-line interface for paramsql.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/andrewkroh/paramsql/internal/cli/commands"
	"github.com/andrewkroh/paramsql/internal/cli/config"
	"github.com/andrewkroh/paramsql/internal/logger"
	"github.com/andrewkroh/paramsql/paramsql"
)

// Version is set at build time.
var Version = "0.1.0"

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "paramsql",
		Short: "Turn name=value parameter dumps into T-SQL declarations",
		Long: `paramsql converts captured query parameters, one name=value pair per line,
into a T-SQL DECLARE block so that a logged query can be replayed by hand.

Types are inferred from each value: digits become BIGINT, True/False become
BIT, decimals become DECIMAL(16, 5), "( r1 r2 )[dbo.Type]" becomes a table
variable populated with INSERT statements, and anything else NVARCHAR(MAX).`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.Load(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			if err := logger.SetLogLevel(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat); err != nil {
				return err
			}
			if cfg.ConfigFile != "" {
				log.Debug().Str("path", cfg.ConfigFile).Msg("using config file")
			}

			cmd.SetContext(config.WithContext(cmd.Context(), cfg))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./paramsql.yaml)")
	rootCmd.PersistentFlags().Int("chunk-size", paramsql.DefaultChunkSize, "Maximum rows per INSERT statement")
	rootCmd.PersistentFlags().String("log-level", config.DefaultLogLevel, "Log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().String("log-format", config.DefaultLogFormat, "Log format (text|json)")

	_ = rootCmd.RegisterFlagCompletionFunc("log-format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{logger.LogFormatTextValue, logger.LogFormatJsonValue}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(commands.NewCompileCommand())
	rootCmd.AddCommand(commands.NewInspectCommand())
	rootCmd.AddCommand(commands.NewBatchCommand())
	rootCmd.AddCommand(commands.NewVersionCommand(Version))

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
