package shellsession

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/AntonioJCosta/replsh/internal/core/domain/statement"
	"github.com/AntonioJCosta/replsh/internal/core/ports"
)

const defaultHistoryCount = 20

func (s *session) registerBuiltins() error {
	builtins := []ports.Command{
		{Name: "help", Help: "list available commands, or show help for one: help [command]", Run: s.runHelp},
		{Name: "exit", Help: "leave the shell", Run: s.runExit},
		{Name: "quit", Help: "leave the shell", Run: s.runExit},
		{Name: "say", Help: "print the arguments back", Run: s.runSay},
		{Name: "alias", Help: "list aliases, or define one: alias [name [expansion]]", Run: s.runAlias},
		{Name: "unalias", Help: "remove an alias: unalias <name>", Run: s.runUnalias},
		{Name: "shortcuts", Help: "list the configured shortcuts", Run: s.runShortcuts},
		{Name: "history", Help: "show recent commands: history [count]", Run: s.runHistory},
		{Name: "shell", Help: "run a command line in the operating system shell", Run: s.runShell},
	}
	for _, cmd := range builtins {
		if err := s.dispatcher.Register(cmd); err != nil {
			return fmt.Errorf("registering builtin commands: %w", err)
		}
	}
	return nil
}

func (s *session) runHelp(st statement.Statement) (ports.DispatchResult, error) {
	if len(st.ArgList) > 0 {
		name := statement.StripOuterQuotes(st.ArgList[0])
		for _, cmd := range s.dispatcher.Commands() {
			if cmd.Name == name {
				return ports.DispatchResult{Output: fmt.Sprintf("%s: %s\n", cmd.Name, cmd.Help)}, nil
			}
		}
		return ports.DispatchResult{}, fmt.Errorf("no help for %q: unknown command", name)
	}

	cmds := s.dispatcher.Commands()
	width := 0
	for _, cmd := range cmds {
		if len(cmd.Name) > width {
			width = len(cmd.Name)
		}
	}
	var b strings.Builder
	b.WriteString("Available commands:\n")
	for _, cmd := range cmds {
		fmt.Fprintf(&b, "  %-*s  %s\n", width, cmd.Name, cmd.Help)
	}
	return ports.DispatchResult{Output: b.String()}, nil
}

func (s *session) runExit(statement.Statement) (ports.DispatchResult, error) {
	return ports.DispatchResult{Stop: true}, nil
}

func (s *session) runSay(st statement.Statement) (ports.DispatchResult, error) {
	argv := st.Argv()
	return ports.DispatchResult{Output: strings.Join(argv[1:], " ") + "\n"}, nil
}

func (s *session) runAlias(st statement.Statement) (ports.DispatchResult, error) {
	args := st.ArgList
	switch len(args) {
	case 0:
		return ports.DispatchResult{Output: s.aliasListing()}, nil
	case 1:
		name := statement.StripOuterQuotes(args[0])
		expansion, ok := s.cfg.Aliases[name]
		if !ok {
			return ports.DispatchResult{}, fmt.Errorf("no alias named %q", name)
		}
		return ports.DispatchResult{Output: fmt.Sprintf("%s=%s\n", name, expansion)}, nil
	default:
		name := args[0]
		if ok, msg := s.parser.IsValidCommand(name); !ok {
			return ports.DispatchResult{}, fmt.Errorf("invalid alias name %q: %s", name, msg)
		}
		if s.cfg.Aliases == nil {
			s.cfg.Aliases = make(map[string]string)
		}
		expansion := strings.Join(args[1:], " ")
		s.cfg.Aliases[name] = expansion
		s.ApplyParserConfig()
		s.saveSettings()
		return ports.DispatchResult{Output: fmt.Sprintf("alias %s=%s\n", name, expansion)}, nil
	}
}

func (s *session) aliasListing() string {
	if len(s.cfg.Aliases) == 0 {
		return "no aliases defined\n"
	}
	names := make([]string, 0, len(s.cfg.Aliases))
	for name := range s.cfg.Aliases {
		names = append(names, name)
	}
	sort.Strings(names)
	var b strings.Builder
	for _, name := range names {
		fmt.Fprintf(&b, "%s=%s\n", name, s.cfg.Aliases[name])
	}
	return b.String()
}

func (s *session) runUnalias(st statement.Statement) (ports.DispatchResult, error) {
	if len(st.ArgList) != 1 {
		return ports.DispatchResult{}, fmt.Errorf("usage: unalias <name>")
	}
	name := statement.StripOuterQuotes(st.ArgList[0])
	if _, ok := s.cfg.Aliases[name]; !ok {
		return ports.DispatchResult{}, fmt.Errorf("no alias named %q", name)
	}
	delete(s.cfg.Aliases, name)
	s.ApplyParserConfig()
	s.saveSettings()
	return ports.DispatchResult{Output: fmt.Sprintf("removed alias %s\n", name)}, nil
}

func (s *session) runShortcuts(statement.Statement) (ports.DispatchResult, error) {
	if len(s.cfg.Shortcuts) == 0 {
		return ports.DispatchResult{Output: "no shortcuts configured\n"}, nil
	}
	var b strings.Builder
	for _, sc := range s.cfg.Shortcuts {
		fmt.Fprintf(&b, "%s: %s\n", sc.Prefix, sc.Expansion)
	}
	return ports.DispatchResult{Output: b.String()}, nil
}

func (s *session) runHistory(st statement.Statement) (ports.DispatchResult, error) {
	if s.history == nil {
		return ports.DispatchResult{}, fmt.Errorf("history is not available in this session")
	}
	count := defaultHistoryCount
	if len(st.ArgList) > 0 {
		n, err := strconv.Atoi(st.ArgList[0])
		if err != nil || n <= 0 {
			return ports.DispatchResult{}, fmt.Errorf("history expects a positive count, got %q", st.ArgList[0])
		}
		count = n
	}
	next, err := s.history.NextSeq()
	if err != nil {
		return ports.DispatchResult{}, fmt.Errorf("reading history: %w", err)
	}
	from := next - count
	if from < 0 {
		from = 0
	}
	entries, err := s.history.Entries(from, -1)
	if err != nil {
		return ports.DispatchResult{}, fmt.Errorf("reading history: %w", err)
	}
	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "%5d  %s\n", e.Seq, e.Text)
	}
	return ports.DispatchResult{Output: b.String()}, nil
}

func (s *session) runShell(st statement.Statement) (ports.DispatchResult, error) {
	if strings.TrimSpace(st.Args) == "" {
		return ports.DispatchResult{}, fmt.Errorf("shell requires a command line")
	}
	stdout, stderr, err := s.runner.RunShell(st.Args)
	if stderr != "" {
		fmt.Fprint(s.errOut, stderr)
	}
	if err != nil {
		return ports.DispatchResult{}, fmt.Errorf("shell command failed: %w", err)
	}
	return ports.DispatchResult{Output: stdout}, nil
}
