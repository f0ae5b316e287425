package statementparsing

import (
	"testing"

	"github.com/AntonioJCosta/replsh/internal/core/domain/statement"
)

func TestParser_Expand_Aliases(t *testing.T) {
	cfg := statement.DefaultParserConfig()
	cfg.Aliases = map[string]string{
		"l":     "ls -l",
		"ls":    "ls --color",
		"loop":  "loop",
		"a":     "b",
		"b":     "a",
		"speak": "say",
	}

	tests := []struct {
		name string
		line string
		want string
	}{
		{
			name: "single alias",
			line: "speak hello",
			want: "say hello",
		},
		{
			name: "chained aliases",
			line: "l /tmp",
			want: "ls --color -l /tmp",
		},
		{
			name: "self referencing alias expands once",
			line: "loop forever",
			want: "loop forever",
		},
		{
			name: "cyclic pair terminates",
			line: "a",
			want: "a",
		},
		{
			name: "alias only applies to the command word",
			line: "echo speak",
			want: "echo speak",
		},
		{
			name: "separator after the word is kept",
			line: "speak;next",
			want: "say;next",
		},
		{
			name: "leading whitespace dropped on expansion",
			line: "   speak hello",
			want: "say hello",
		},
		{
			name: "no alias no change",
			line: "say hello",
			want: "say hello",
		},
		{
			name: "empty line",
			line: "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser := newTestParser(t, cfg)
			if got := parser.expand(tt.line); got != tt.want {
				t.Errorf("expand(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}

func TestParser_Expand_Shortcuts(t *testing.T) {
	cfg := statement.DefaultParserConfig()
	cfg.Shortcuts = []statement.Shortcut{
		{Prefix: "?!", Expansion: "huh"},
		{Prefix: "?", Expansion: "help"},
		{Prefix: "!", Expansion: "shell"},
	}

	tests := []struct {
		name string
		line string
		want string
	}{
		{
			name: "bare shortcut gains a trailing space",
			line: "?",
			want: "help ",
		},
		{
			name: "space inserted before following text",
			line: "?say",
			want: "help say",
		},
		{
			name: "existing space reused",
			line: "? say",
			want: "help say",
		},
		{
			name: "first configured prefix wins",
			line: "?!really",
			want: "huh really",
		},
		{
			name: "only the leading prefix matters",
			line: "say ?",
			want: "say ?",
		},
		{
			name: "only one shortcut fires",
			line: "!?mixed",
			want: "shell ?mixed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser := newTestParser(t, cfg)
			if got := parser.expand(tt.line); got != tt.want {
				t.Errorf("expand(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}

func TestParser_Expand_AliasThenShortcut(t *testing.T) {
	cfg := statement.DefaultParserConfig()
	cfg.Aliases = map[string]string{"h": "?"}
	cfg.Shortcuts = []statement.Shortcut{{Prefix: "?", Expansion: "help"}}
	parser := newTestParser(t, cfg)

	// Aliases settle first, then shortcuts get one look at the result.
	if got := parser.expand("h topics"); got != "help topics" {
		t.Errorf("expand(%q) = %q, want %q", "h topics", got, "help topics")
	}
}
