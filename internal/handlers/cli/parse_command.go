package cli

import (
	"fmt"
	"strings"

	"github.com/AntonioJCosta/replsh/internal/handlers/ui"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewParseCommand creates the 'parse' subcommand, which shows how a line
// splits into a statement without executing anything.
func NewParseCommand(build DepsBuilder) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse <line>",
		Short: "Parse a line and show the resulting statement fields.",
		Long: `Parses the given line with the configured aliases, shortcuts, and
terminators, then prints every field of the resulting statement.
Useful for checking how quoting, pipes, and redirection split a line.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParseCmd(cmd, args, build)
		},
	}
	return cmd
}

func runParseCmd(cmd *cobra.Command, args []string, build DepsBuilder) error {
	configPath, _ := cmd.Flags().GetString("config")

	deps, err := build(configPath)
	if err != nil {
		return fmt.Errorf("could not initialize the parser: %w", err)
	}
	if deps.Close != nil {
		defer deps.Close()
	}

	line := strings.Join(args, " ")
	st, err := deps.Parser.Parse(line)
	if err != nil {
		return fmt.Errorf("could not parse %q: %w", line, err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), ui.HeaderColor("Statement fields:"))

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"Field", "Value"})
	table.SetBorder(true)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	rows := []struct {
		name  string
		value string
	}{
		{"Raw", fmt.Sprintf("%q", st.Raw)},
		{"Command", fmt.Sprintf("%q", st.Command)},
		{"Args", fmt.Sprintf("%q", st.Args)},
		{"ArgList", fmt.Sprintf("%q", st.ArgList)},
		{"MultilineCommand", fmt.Sprintf("%q", st.MultilineCommand)},
		{"Terminator", fmt.Sprintf("%q", st.Terminator)},
		{"Suffix", fmt.Sprintf("%q", st.Suffix)},
		{"PipeTo", fmt.Sprintf("%q", st.PipeTo)},
		{"Output", fmt.Sprintf("%q", st.Output)},
		{"OutputTo", fmt.Sprintf("%q", st.OutputTo)},
	}
	for _, row := range rows {
		table.Append([]string{ui.FieldNameColor(row.name), ui.FieldValueColor(row.value)})
	}
	table.Render()

	if expanded := st.ExpandedCommandLine(); expanded != st.Raw {
		fmt.Fprintln(cmd.OutOrStdout(), ui.DetailColor(fmt.Sprintf("(Expanded: %s)", expanded)))
	}
	return nil
}
