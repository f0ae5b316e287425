package cli

import (
	"fmt"

	"github.com/AntonioJCosta/replsh/internal/core/ports"
	"github.com/AntonioJCosta/replsh/internal/handlers/repl"
	"github.com/spf13/cobra"
)

// Deps carries the collaborators the commands execute against.
type Deps struct {
	Session   ports.ShellSession
	Completer ports.LineCompleter
	Parser    ports.StatementParser
	History   ports.HistoryStore
	Close     func()
}

// DepsBuilder constructs the dependency set for the given settings file
// path. It runs after flag parsing, so --config can steer construction.
// An empty path selects the default location.
type DepsBuilder func(configPath string) (Deps, error)

var rootCmd *cobra.Command

// NewRootCommand creates the root command. Run with no arguments it
// starts the interactive shell; -c executes a single line and exits.
func NewRootCommand(version string, build DepsBuilder) *cobra.Command {
	rootCmd = &cobra.Command{
		Use:   "replsh",
		Short: "replsh is an interactive, scriptable command shell.",
		Long: `replsh reads statements line by line, expands aliases and shortcuts,
and routes command output to the terminal, a pipe, or a file.
Run without arguments it starts an interactive prompt; use -c to
execute a single command line instead.`,
		Version:      version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRootCmd(cmd, build)
		},
	}

	rootCmd.PersistentFlags().String("config", "", "Path to the settings file (defaults to the user config directory).")
	rootCmd.Flags().StringP("command", "c", "", "Execute a single command line and exit.")

	rootCmd.AddCommand(NewParseCommand(build))

	return rootCmd
}

func runRootCmd(cmd *cobra.Command, build DepsBuilder) error {
	configPath, _ := cmd.Flags().GetString("config")
	command, _ := cmd.Flags().GetString("command")

	deps, err := build(configPath)
	if err != nil {
		return fmt.Errorf("could not initialize the shell: %w", err)
	}
	if deps.Close != nil {
		defer deps.Close()
	}

	if command != "" {
		_, err := deps.Session.Execute(command, nil)
		return err
	}

	return repl.NewREPL(deps.Session, deps.Completer, deps.History).Run()
}
