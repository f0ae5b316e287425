package testutil

import "github.com/AntonioJCosta/replsh/internal/core/ports"

// MockShellSession is a mock implementation of ports.ShellSession. It
// records every executed line.
type MockShellSession struct {
	ExecuteFunc func(line string, readLine ports.ReadLineFunc) (bool, error)

	Executed         []string
	PromptText       string
	Names            []string
	ApplyConfigCalls int
}

// Execute records line and then defers to ExecuteFunc when set.
func (m *MockShellSession) Execute(line string, readLine ports.ReadLineFunc) (bool, error) {
	m.Executed = append(m.Executed, line)
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(line, readLine)
	}
	return false, nil
}

// ApplyParserConfig counts invocations.
func (m *MockShellSession) ApplyParserConfig() {
	m.ApplyConfigCalls++
}

// Prompt returns PromptText, defaulting to "(mock) ".
func (m *MockShellSession) Prompt() string {
	if m.PromptText == "" {
		return "(mock) "
	}
	return m.PromptText
}

// CompletionNames returns Names.
func (m *MockShellSession) CompletionNames() []string {
	return m.Names
}
