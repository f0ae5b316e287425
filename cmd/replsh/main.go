package main

import (
	"fmt"
	"os"

	"github.com/AntonioJCosta/replsh/internal/adapters/completion"
	"github.com/AntonioJCosta/replsh/internal/adapters/oscommand"
	"github.com/AntonioJCosta/replsh/internal/adapters/statementparsing"
	"github.com/AntonioJCosta/replsh/internal/core/ports"
	"github.com/AntonioJCosta/replsh/internal/core/services/dispatch"
	"github.com/AntonioJCosta/replsh/internal/core/services/shellsession"
	"github.com/AntonioJCosta/replsh/internal/handlers/cli"
	"github.com/AntonioJCosta/replsh/internal/handlers/ui"
	historyrepo "github.com/AntonioJCosta/replsh/internal/repositories/history"
	settingsrepo "github.com/AntonioJCosta/replsh/internal/repositories/settings"
)

// Version is set at build time
var Version = "dev"

func main() {
	rootCmd := cli.NewRootCommand(Version, buildDeps)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildDeps wires the whole shell for the given settings file path:
// settings, parser, command registry, session, history, and completion.
func buildDeps(configPath string) (cli.Deps, error) {
	if configPath == "" {
		var err error
		configPath, err = settingsrepo.DefaultPath()
		if err != nil {
			return cli.Deps{}, fmt.Errorf("locating the settings file: %w", err)
		}
	}
	settingsRepo, err := settingsrepo.NewYAMLRepository(configPath)
	if err != nil {
		return cli.Deps{}, err
	}
	cfg, err := settingsRepo.Load()
	if err != nil {
		return cli.Deps{}, err
	}

	// History is optional: the shell still works when the database
	// cannot be opened, it just forgets everything on exit.
	var historyStore ports.HistoryStore
	historyPath := cfg.HistoryFile
	if historyPath == "" {
		historyPath, err = historyrepo.DefaultPath()
		if err != nil {
			fmt.Fprintln(os.Stderr, ui.WarningColor(fmt.Sprintf("Warning: could not locate a history database: %v. Continuing without history.", err)))
			historyPath = ""
		}
	}
	if historyPath != "" {
		store, err := historyrepo.NewBoltStore(historyPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, ui.WarningColor(fmt.Sprintf("Warning: could not open the history database: %v. Continuing without history.", err)))
		} else {
			historyStore = store
		}
	}

	parser := statementparsing.NewParser(cfg.ParserConfig())
	registry := dispatch.NewRegistry()

	session, err := shellsession.NewSession(cfg, parser, registry, oscommand.NewRunner(), oscommand.NewFileWriter(), shellsession.Options{
		History:  historyStore,
		Settings: settingsRepo,
	})
	if err != nil {
		if historyStore != nil {
			historyStore.Close()
		}
		return cli.Deps{}, err
	}

	return cli.Deps{
		Session:   session,
		Completer: completion.NewCompleter(parser, session.CompletionNames),
		Parser:    parser,
		History:   historyStore,
		Close: func() {
			if historyStore != nil {
				historyStore.Close()
			}
		},
	}, nil
}
