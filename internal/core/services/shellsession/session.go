/*
Package shellsession assembles complete statements from raw input lines
and executes them. It owns the read-eval loop semantics: multiline
continuation, history recording, dispatch, and routing of command output
to the terminal, a pipe, or a file.
*/
package shellsession

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/AntonioJCosta/replsh/internal/core/domain/settings"
	"github.com/AntonioJCosta/replsh/internal/core/domain/statement"
	"github.com/AntonioJCosta/replsh/internal/core/ports"
)

// Options carries the optional session collaborators.
type Options struct {
	History  ports.HistoryStore       // nil disables history recording
	Settings ports.SettingsRepository // nil disables persistence of alias changes
	Out      io.Writer                // defaults to os.Stdout
	ErrOut   io.Writer                // defaults to os.Stderr
}

type session struct {
	cfg        settings.Settings
	parser     ports.StatementParser
	dispatcher ports.CommandDispatcher
	runner     ports.ProcessRunner
	writer     ports.OutputWriter
	history    ports.HistoryStore
	settings   ports.SettingsRepository
	out        io.Writer
	errOut     io.Writer
}

// NewSession creates a shell session with the builtin command set
// registered and the parser configured from cfg. It panics if any of
// the required collaborators is nil, and fails only when a builtin name
// is already taken in the dispatcher.
func NewSession(cfg settings.Settings, parser ports.StatementParser, dispatcher ports.CommandDispatcher, runner ports.ProcessRunner, writer ports.OutputWriter, opts Options) (ports.ShellSession, error) {
	if parser == nil {
		panic("parser cannot be nil")
	}
	if dispatcher == nil {
		panic("dispatcher cannot be nil")
	}
	if runner == nil {
		panic("runner cannot be nil")
	}
	if writer == nil {
		panic("writer cannot be nil")
	}
	s := &session{
		cfg:        cfg,
		parser:     parser,
		dispatcher: dispatcher,
		runner:     runner,
		writer:     writer,
		history:    opts.History,
		settings:   opts.Settings,
		out:        opts.Out,
		errOut:     opts.ErrOut,
	}
	if s.out == nil {
		s.out = os.Stdout
	}
	if s.errOut == nil {
		s.errOut = os.Stderr
	}
	if err := s.registerBuiltins(); err != nil {
		return nil, err
	}
	s.ApplyParserConfig()
	return s, nil
}

// Execute assembles a complete statement starting from line, records it,
// dispatches it, and routes its output.
func (s *session) Execute(line string, readLine ports.ReadLineFunc) (bool, error) {
	st, err := s.completeStatement(line, readLine)
	if err != nil {
		return false, err
	}
	if st.Command == "" {
		return false, nil
	}
	s.recordHistory(st)
	res, err := s.dispatcher.Dispatch(st)
	if err != nil {
		return false, err
	}
	if err := s.routeOutput(st, res.Output); err != nil {
		return res.Stop, err
	}
	return res.Stop, nil
}

// completeStatement reparses line, appending continuation input, until
// the statement no longer needs more text. Only multiline commands ever
// continue; everything else completes on its first line.
func (s *session) completeStatement(line string, readLine ports.ReadLineFunc) (statement.Statement, error) {
	if readLine == nil {
		readLine = func(string) (string, error) { return "", io.EOF }
	}
	for {
		st, err := s.parser.Parse(line)
		if err == nil {
			if st.MultilineCommand == "" || st.Terminator != "" {
				return st, nil
			}
		} else if s.parser.ParseCommandOnly(line).MultilineCommand == "" {
			// Unclosed quotes may legitimately span lines inside a
			// multiline command; anywhere else they are a real error.
			return statement.Statement{}, err
		}
		next, rerr := readLine(s.cfg.ContinuationPrompt)
		if rerr != nil {
			// End of input closes the statement like a blank line.
			return s.parser.Parse(line + statement.LineFeed)
		}
		line = line + statement.LineFeed + next
	}
}

// routeOutput delivers what the command produced. Pipes and file
// redirection honor the AllowRedirection setting; everything else goes
// to the session's output stream.
func (s *session) routeOutput(st statement.Statement, output string) error {
	if (len(st.PipeTo) > 0 || st.Output != "") && !s.cfg.AllowRedirection {
		return fmt.Errorf("output redirection and pipes are disabled")
	}
	switch {
	case len(st.PipeTo) > 0:
		stdout, stderr, err := s.runner.Run(st.PipeTo, output)
		if stderr != "" {
			fmt.Fprint(s.errOut, stderr)
		}
		if err != nil {
			return fmt.Errorf("pipe process failed: %w", err)
		}
		fmt.Fprint(s.out, stdout)
		return nil
	case st.Output != "":
		if st.OutputTo == "" {
			return fmt.Errorf("redirection requires a target file")
		}
		appendTo := st.Output == statement.RedirectAppend
		if err := s.writer.WriteFile(st.OutputTo, output, appendTo); err != nil {
			return fmt.Errorf("writing %s: %w", st.OutputTo, err)
		}
		return nil
	default:
		fmt.Fprint(s.out, output)
		return nil
	}
}

func (s *session) recordHistory(st statement.Statement) {
	if s.history == nil {
		return
	}
	if _, err := s.history.Add(st.ExpandedCommandLine()); err != nil {
		fmt.Fprintf(s.errOut, "Warning: failed to record history: %v\n", err)
	}
}

func (s *session) saveSettings() {
	if s.settings == nil {
		return
	}
	if err := s.settings.Save(s.cfg); err != nil {
		fmt.Fprintf(s.errOut, "Warning: failed to save settings: %v\n", err)
	}
}

// ApplyParserConfig pushes the session settings, plus the multiline
// command names known to the dispatcher, into the parser.
func (s *session) ApplyParserConfig() {
	cfg := s.cfg.ParserConfig()
	cfg.MultilineCommands = append(cfg.MultilineCommands, s.dispatcher.MultilineNames()...)
	s.parser.Reconfigure(cfg)
}

// Prompt returns the primary prompt text.
func (s *session) Prompt() string {
	return s.cfg.Prompt
}

// CompletionNames returns the command and alias names, deduplicated and
// sorted.
func (s *session) CompletionNames() []string {
	seen := make(map[string]bool)
	var names []string
	for _, name := range s.dispatcher.Names() {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	for name := range s.cfg.Aliases {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
