package commands

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/andrewkroh/paramsql/paramreader"
	"github.com/andrewkroh/paramsql/paramspec"
	"github.com/andrewkroh/paramsql/paramsql"
)

// Output formats supported by inspect.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// inspectedParam is the YAML rendering of a parsed parameter.
type inspectedParam struct {
	Line        int                 `yaml:"line"`
	Name        string              `yaml:"name"`
	Type        paramspec.ParamType `yaml:"type"`
	Value       string              `yaml:"value"`
	TypeName    string              `yaml:"type_name,omitempty"`
	Rows        []string            `yaml:"rows,omitempty"`
	Declaration string              `yaml:"declaration"`
}

// NewInspectCommand creates the inspect command.
func NewInspectCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "inspect [FILE]",
		Short: "Show the type inferred for each parameter",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			params, err := paramreader.Parse(input)
			if err != nil {
				return fmt.Errorf("inspecting parameters: %w", err)
			}
			log.Debug().Int("parameters", len(params)).Str("types", typeSummary(params)).Msg("parsed input")

			switch format {
			case FormatText:
				return renderParamTable(cmd, params)
			case FormatYAML:
				return renderParamYAML(cmd, params)
			default:
				return fmt.Errorf("unknown format %q (expected %s or %s)", format, FormatText, FormatYAML)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", FormatText, "Output format (text|yaml)")
	_ = cmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{FormatText, FormatYAML}, cobra.ShellCompDirectiveNoFileComp
	})
	return cmd
}

func renderParamTable(cmd *cobra.Command, params []paramspec.Param) error {
	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Line", "Name", "Type", "Value"})
	for _, p := range params {
		t.AppendRow(table.Row{p.Line, p.Name, p.Value.Type.String(), p.Value.String()})
	}
	t.Render()
	return nil
}

func renderParamYAML(cmd *cobra.Command, params []paramspec.Param) error {
	out := make([]inspectedParam, 0, len(params))
	for _, p := range params {
		ip := inspectedParam{
			Line:        p.Line,
			Name:        p.Name,
			Type:        p.Value.Type,
			Value:       p.Value.String(),
			Declaration: paramsql.Declare(p).ParamString,
		}
		if p.Value.Array != nil {
			ip.TypeName = p.Value.Array.TypeName
			ip.Rows = p.Value.Array.Rows()
		}
		out = append(out, ip)
	}

	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return enc.Close()
}

// typeSummary returns "integer=2, string=1" style counts in first-seen order.
func typeSummary(params []paramspec.Param) string {
	counts := make(map[paramspec.ParamType]int)
	var order []paramspec.ParamType
	for _, p := range params {
		if counts[p.Value.Type] == 0 {
			order = append(order, p.Value.Type)
		}
		counts[p.Value.Type]++
	}

	parts := make([]string, 0, len(order))
	for _, typ := range order {
		parts = append(parts, fmt.Sprintf("%s=%d", typ, counts[typ]))
	}
	return strings.Join(parts, ", ")
}
