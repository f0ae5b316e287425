/*
Package settings defines the persisted shell configuration and its
defaults.
*/
package settings

import "github.com/AntonioJCosta/replsh/internal/core/domain/statement"

/*
Settings holds everything replsh persists between sessions. The yaml
tags define the on-disk layout used by the settings repository.
*/
type Settings struct {
	Prompt             string               `yaml:"prompt"`
	ContinuationPrompt string               `yaml:"continuation_prompt"`
	AllowRedirection   bool                 `yaml:"allow_redirection"`
	Terminators        []string             `yaml:"terminators"`
	MultilineCommands  []string             `yaml:"multiline_commands"`
	Aliases            map[string]string    `yaml:"aliases"`
	Shortcuts          []statement.Shortcut `yaml:"shortcuts"`
	HistoryFile        string               `yaml:"history_file"`
}

// Default returns the settings used when no configuration file exists.
func Default() Settings {
	return Settings{
		Prompt:             "(replsh) ",
		ContinuationPrompt: "> ",
		AllowRedirection:   true,
		Terminators:        []string{statement.DefaultTerminator},
		Aliases:            map[string]string{},
		Shortcuts: []statement.Shortcut{
			{Prefix: "?", Expansion: "help"},
			{Prefix: "!", Expansion: "shell"},
		},
	}
}

// ParserConfig converts the settings into the parser's snapshot form.
func (s Settings) ParserConfig() statement.ParserConfig {
	cfg := statement.ParserConfig{
		AllowRedirection:  s.AllowRedirection,
		Terminators:       append([]string(nil), s.Terminators...),
		MultilineCommands: append([]string(nil), s.MultilineCommands...),
		Aliases:           make(map[string]string, len(s.Aliases)),
		Shortcuts:         append([]statement.Shortcut(nil), s.Shortcuts...),
	}
	for name, expansion := range s.Aliases {
		cfg.Aliases[name] = expansion
	}
	if len(cfg.Terminators) == 0 {
		cfg.Terminators = []string{statement.DefaultTerminator}
	}
	return cfg
}
