package statementparsing

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/AntonioJCosta/replsh/internal/core/domain/statement"
)

func newTestParser(t *testing.T, cfg statement.ParserConfig) *Parser {
	t.Helper()
	p, ok := NewParser(cfg).(*Parser)
	if !ok {
		t.Fatal("NewParser() did not return a *Parser")
	}
	return p
}

func TestNewParser(t *testing.T) {
	parser := NewParser(statement.DefaultParserConfig())
	if parser == nil {
		t.Fatal("NewParser() returned nil")
	}
	if _, ok := parser.(*Parser); !ok {
		t.Errorf("NewParser() did not return a *Parser, got %T", parser)
	}
}

func TestParser_Parse(t *testing.T) {
	cfg := statement.DefaultParserConfig()
	cfg.MultilineCommands = []string{"sql"}
	cfg.Aliases = map[string]string{
		"l":  "ls -l",
		"ls": "ls --color",
		"a":  "b",
		"b":  "a",
	}
	cfg.Shortcuts = []statement.Shortcut{{Prefix: "?", Expansion: "help"}}

	tests := []struct {
		name string
		line string
		want statement.Statement
	}{
		{
			name: "command with args and nothing else",
			line: "cmd arg1 arg2",
			want: statement.Statement{
				Raw:     "cmd arg1 arg2",
				Command: "cmd",
				Args:    "arg1 arg2",
				ArgList: []string{"arg1", "arg2"},
			},
		},
		{
			name: "empty input",
			line: "",
			want: statement.Statement{},
		},
		{
			name: "blank line with line feed",
			line: "\n",
			want: statement.Statement{
				Raw:        "\n",
				Terminator: statement.LineFeed,
			},
		},
		{
			name: "comment stripping is quote aware",
			line: `say "hi /* not a comment */" /* real comment */`,
			want: statement.Statement{
				Raw:     `say "hi /* not a comment */" /* real comment */`,
				Command: "say",
				Args:    `"hi /* not a comment */"`,
				ArgList: []string{`"hi /* not a comment */"`},
			},
		},
		{
			name: "explicit terminator",
			line: "say hi;",
			want: statement.Statement{
				Raw:        "say hi;",
				Command:    "say",
				Args:       "hi",
				ArgList:    []string{"hi"},
				Terminator: ";",
			},
		},
		{
			name: "suffix after terminator",
			line: "say hi; and more",
			want: statement.Statement{
				Raw:        "say hi; and more",
				Command:    "say",
				Args:       "hi",
				ArgList:    []string{"hi"},
				Terminator: ";",
				Suffix:     "and more",
			},
		},
		{
			name: "implicit line feed outranks terminator tokens",
			line: "say hi ; bye\n",
			want: statement.Statement{
				Raw:        "say hi ; bye\n",
				Command:    "say",
				Args:       "hi ; bye",
				ArgList:    []string{"hi", ";", "bye"},
				Terminator: statement.LineFeed,
			},
		},
		{
			name: "pipe before redirection",
			line: "cmd | wc > out.txt",
			want: statement.Statement{
				Raw:     "cmd | wc > out.txt",
				Command: "cmd",
				PipeTo:  []string{"wc", ">", "out.txt"},
			},
		},
		{
			name: "pipe with quoted argument",
			line: `say hi | grep "h i"`,
			want: statement.Statement{
				Raw:     `say hi | grep "h i"`,
				Command: "say",
				Args:    "hi",
				ArgList: []string{"hi"},
				PipeTo:  []string{"grep", "h i"},
			},
		},
		{
			name: "truncating redirection",
			line: "cmd > a.txt",
			want: statement.Statement{
				Raw:      "cmd > a.txt",
				Command:  "cmd",
				Output:   ">",
				OutputTo: "a.txt",
			},
		},
		{
			name: "appending redirection",
			line: "cmd >> a.txt",
			want: statement.Statement{
				Raw:      "cmd >> a.txt",
				Command:  "cmd",
				Output:   ">>",
				OutputTo: "a.txt",
			},
		},
		{
			name: "redirection without whitespace",
			line: "cmd>a.txt",
			want: statement.Statement{
				Raw:      "cmd>a.txt",
				Command:  "cmd",
				Output:   ">",
				OutputTo: "a.txt",
			},
		},
		{
			name: "redirection without target",
			line: "cmd >",
			want: statement.Statement{
				Raw:     "cmd >",
				Command: "cmd",
				Output:  ">",
			},
		},
		{
			name: "first redirection operator wins",
			line: "cmd > a.txt >> b.txt",
			want: statement.Statement{
				Raw:      "cmd > a.txt >> b.txt",
				Command:  "cmd",
				Output:   ">",
				OutputTo: "a.txt",
			},
		},
		{
			name: "quoted redirection target keeps inner spaces",
			line: `cmd > "my file.txt"`,
			want: statement.Statement{
				Raw:      `cmd > "my file.txt"`,
				Command:  "cmd",
				Output:   ">",
				OutputTo: "my file.txt",
			},
		},
		{
			name: "multiline command swallows the declaring line",
			line: "sql select * > out.txt",
			want: statement.Statement{
				Raw:              "sql select * > out.txt",
				Command:          "sql",
				Args:             "select * > out.txt",
				ArgList:          []string{"select", "*", ">", "out.txt"},
				MultilineCommand: "sql",
			},
		},
		{
			name: "multiline command redirects after its terminator",
			line: "sql select now(); > out.txt",
			want: statement.Statement{
				Raw:              "sql select now(); > out.txt",
				Command:          "sql",
				Args:             "select now()",
				ArgList:          []string{"select", "now()"},
				MultilineCommand: "sql",
				Terminator:       ";",
				Output:           ">",
				OutputTo:         "out.txt",
			},
		},
		{
			name: "pipe after terminator",
			line: "say hi; | wc",
			want: statement.Statement{
				Raw:        "say hi; | wc",
				Command:    "say",
				Args:       "hi",
				ArgList:    []string{"hi"},
				Terminator: ";",
				PipeTo:     []string{"wc"},
			},
		},
		{
			name: "terminator with nothing before it",
			line: "; hi",
			want: statement.Statement{
				Raw:        "; hi",
				Terminator: ";",
				Suffix:     "hi",
			},
		},
		{
			name: "alias chain resolves fully",
			line: "l /tmp",
			want: statement.Statement{
				Raw:     "l /tmp",
				Command: "ls",
				Args:    "--color -l /tmp",
				ArgList: []string{"--color", "-l", "/tmp"},
			},
		},
		{
			name: "cyclic aliases expand once each and stop",
			line: "a",
			want: statement.Statement{
				Raw:     "a",
				Command: "a",
			},
		},
		{
			name: "shortcut expands with inserted space",
			line: "?say",
			want: statement.Statement{
				Raw:     "?say",
				Command: "help",
				Args:    "say",
				ArgList: []string{"say"},
			},
		},
		{
			name: "dangling pipe is no pipe",
			line: "say hi |",
			want: statement.Statement{
				Raw:     "say hi |",
				Command: "say",
				Args:    "hi",
				ArgList: []string{"hi"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser := NewParser(cfg)
			got, err := parser.Parse(tt.line)
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", tt.line, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.line, diff)
			}
		})
	}
}

func TestParser_Parse_TerminatorPrecedence(t *testing.T) {
	cfg := statement.DefaultParserConfig()
	cfg.Terminators = []string{";", ":"}
	parser := NewParser(cfg)

	got, err := parser.Parse("cmd a : b ; c")
	if err != nil {
		t.Fatalf("Parse() returned error: %v", err)
	}

	want := statement.Statement{
		Raw:        "cmd a : b ; c",
		Command:    "cmd",
		Args:       "a",
		ArgList:    []string{"a"},
		Terminator: ":",
		Suffix:     "b",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}
}

func TestParser_Parse_MultiCharTerminator(t *testing.T) {
	cfg := statement.DefaultParserConfig()
	cfg.Terminators = []string{"&&"}
	parser := NewParser(cfg)

	got, err := parser.Parse("make build && make test")
	if err != nil {
		t.Fatalf("Parse() returned error: %v", err)
	}

	want := statement.Statement{
		Raw:        "make build && make test",
		Command:    "make",
		Args:       "build",
		ArgList:    []string{"build"},
		Terminator: "&&",
		Suffix:     "make test",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}
}

func TestParser_Parse_HomeExpansion(t *testing.T) {
	t.Setenv("HOME", "/home/tester")

	parser := NewParser(statement.DefaultParserConfig())

	got, err := parser.Parse("say hi > ~/out.txt")
	if err != nil {
		t.Fatalf("Parse() returned error: %v", err)
	}
	if got.OutputTo != "/home/tester/out.txt" {
		t.Errorf("OutputTo = %q, want %q", got.OutputTo, "/home/tester/out.txt")
	}

	got, err = parser.Parse("say hi | tee ~/copy.txt")
	if err != nil {
		t.Fatalf("Parse() returned error: %v", err)
	}
	wantPipe := []string{"tee", "/home/tester/copy.txt"}
	if diff := cmp.Diff(wantPipe, got.PipeTo); diff != "" {
		t.Errorf("PipeTo mismatch (-want +got):\n%s", diff)
	}
}

func TestParser_Parse_UnclosedQuote(t *testing.T) {
	parser := NewParser(statement.DefaultParserConfig())

	_, err := parser.Parse(`say "unterminated`)
	if err == nil {
		t.Fatal("Parse() succeeded, want unclosed quote error")
	}
	if !errors.Is(err, ErrUnclosedQuote) {
		t.Errorf("Parse() error = %v, want errors.Is(err, ErrUnclosedQuote)", err)
	}
}

func TestParser_Parse_RedirectionDisabledKeepsPunctuationTogether(t *testing.T) {
	cfg := statement.DefaultParserConfig()
	cfg.AllowRedirection = false
	parser := NewParser(cfg)

	got, err := parser.Parse("say hi>out.txt")
	if err != nil {
		t.Fatalf("Parse() returned error: %v", err)
	}

	want := statement.Statement{
		Raw:     "say hi>out.txt",
		Command: "say",
		Args:    "hi>out.txt",
		ArgList: []string{"hi>out.txt"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}

	// A standalone operator token is still honored; the flag only stops
	// punctuation splitting.
	got, err = parser.Parse("say hi > out.txt")
	if err != nil {
		t.Fatalf("Parse() returned error: %v", err)
	}
	if got.Output != ">" || got.OutputTo != "out.txt" {
		t.Errorf("Parse() output = (%q, %q), want (%q, %q)", got.Output, got.OutputTo, ">", "out.txt")
	}
}

func TestParser_ParseCommandOnly(t *testing.T) {
	cfg := statement.DefaultParserConfig()
	cfg.MultilineCommands = []string{"sql"}
	cfg.Aliases = map[string]string{"l": "ls -l"}
	cfg.Shortcuts = []statement.Shortcut{{Prefix: "?", Expansion: "help"}}

	tests := []struct {
		name string
		line string
		want statement.Statement
	}{
		{
			name: "unbalanced quotes never fail",
			line: `say "unterminated`,
			want: statement.Statement{
				Raw:     `say "unterminated`,
				Command: "say",
				Args:    `"unterminated`,
			},
		},
		{
			name: "interior whitespace preserved",
			line: "say  hello   there  ",
			want: statement.Statement{
				Raw:     "say  hello   there  ",
				Command: "say",
				Args:    " hello   there",
			},
		},
		{
			name: "multiline command flagged",
			line: "sql select",
			want: statement.Statement{
				Raw:              "sql select",
				Command:          "sql",
				Args:             "select",
				MultilineCommand: "sql",
			},
		},
		{
			name: "alias expanded",
			line: "l /tmp",
			want: statement.Statement{
				Raw:     "l /tmp",
				Command: "ls",
				Args:    "-l /tmp",
			},
		},
		{
			name: "shortcut expanded",
			line: "?say",
			want: statement.Statement{
				Raw:     "?say",
				Command: "help",
				Args:    "say",
			},
		},
		{
			name: "no command word",
			line: "> out.txt",
			want: statement.Statement{
				Raw: "> out.txt",
			},
		},
		{
			name: "empty input",
			line: "",
			want: statement.Statement{Raw: ""},
		},
		{
			name: "command only",
			line: "say",
			want: statement.Statement{
				Raw:     "say",
				Command: "say",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser := NewParser(cfg)
			got := parser.ParseCommandOnly(tt.line)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseCommandOnly(%q) mismatch (-want +got):\n%s", tt.line, diff)
			}
		})
	}
}

func TestParser_ParseCommandOnly_SeparatorConsumed(t *testing.T) {
	parser := NewParser(statement.DefaultParserConfig())

	// The single separator after the command is dropped from args, even
	// when it is a redirection character rather than a space.
	got := parser.ParseCommandOnly("help>out")
	if got.Command != "help" || got.Args != "out" {
		t.Errorf("ParseCommandOnly() = (%q, %q), want (%q, %q)", got.Command, got.Args, "help", "out")
	}
}

func TestParser_IsValidCommand(t *testing.T) {
	cfg := statement.DefaultParserConfig()
	parser := NewParser(cfg)

	tests := []struct {
		name      string
		word      string
		wantValid bool
	}{
		{name: "plain word", word: "speak", wantValid: true},
		{name: "with dash and digits", word: "run-2", wantValid: true},
		{name: "redirection character", word: ">", wantValid: false},
		{name: "pipe character", word: "pi|pe", wantValid: false},
		{name: "embedded whitespace", word: "two words", wantValid: false},
		{name: "leading whitespace", word: " speak", wantValid: false},
		{name: "quote character", word: `say"`, wantValid: false},
		{name: "terminator", word: "say;", wantValid: false},
		{name: "empty word", word: "", wantValid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, errmsg := parser.IsValidCommand(tt.word)
			if valid != tt.wantValid {
				t.Errorf("IsValidCommand(%q) = %v, want %v", tt.word, valid, tt.wantValid)
			}
			if tt.wantValid && errmsg != "" {
				t.Errorf("IsValidCommand(%q) returned message %q for a valid word", tt.word, errmsg)
			}
			if !tt.wantValid {
				for _, fragment := range []string{"whitespace", "quotes", "'>'", "'|'", "';'"} {
					if !strings.Contains(errmsg, fragment) {
						t.Errorf("IsValidCommand(%q) message %q missing %q", tt.word, errmsg, fragment)
					}
				}
			}
		})
	}
}

func TestParser_IsValidCommand_CustomTerminators(t *testing.T) {
	cfg := statement.DefaultParserConfig()
	cfg.Terminators = []string{";", ":"}
	parser := NewParser(cfg)

	valid, errmsg := parser.IsValidCommand("na:me")
	if valid {
		t.Fatal("IsValidCommand() accepted a word containing a terminator")
	}
	for _, fragment := range []string{"';'", "':'"} {
		if !strings.Contains(errmsg, fragment) {
			t.Errorf("IsValidCommand() message %q missing %q", errmsg, fragment)
		}
	}
}

func TestParser_Reconfigure(t *testing.T) {
	parser := NewParser(statement.DefaultParserConfig())

	st, err := parser.Parse("greet")
	if err != nil {
		t.Fatalf("Parse() returned error: %v", err)
	}
	if st.Command != "greet" {
		t.Fatalf("Parse() command = %q, want %q", st.Command, "greet")
	}

	cfg := statement.DefaultParserConfig()
	cfg.Aliases = map[string]string{"greet": "say hello"}
	parser.Reconfigure(cfg)

	st, err = parser.Parse("greet")
	if err != nil {
		t.Fatalf("Parse() returned error: %v", err)
	}
	if st.Command != "say" || st.Args != "hello" {
		t.Errorf("Parse() after Reconfigure = (%q, %q), want (%q, %q)", st.Command, st.Args, "say", "hello")
	}
}

func TestParser_Reconfigure_CopiesConfig(t *testing.T) {
	cfg := statement.DefaultParserConfig()
	cfg.Aliases = map[string]string{"greet": "say hello"}
	parser := newTestParser(t, cfg)

	// Mutating the caller's map after construction must not leak into
	// the parser's snapshot.
	cfg.Aliases["greet"] = "shout hello"
	delete(cfg.Aliases, "greet")

	st, err := parser.Parse("greet")
	if err != nil {
		t.Fatalf("Parse() returned error: %v", err)
	}
	if st.Command != "say" {
		t.Errorf("Parse() command = %q, want %q", st.Command, "say")
	}
}
