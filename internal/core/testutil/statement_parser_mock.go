package testutil

import (
	"errors"

	"github.com/AntonioJCosta/replsh/internal/core/domain/statement"
)

// MockStatementParser is a mock implementation of ports.StatementParser.
type MockStatementParser struct {
	ParseFunc            func(line string) (statement.Statement, error)
	ParseCommandOnlyFunc func(line string) statement.Statement
	TokenizeFunc         func(line string) ([]string, error)
	IsValidCommandFunc   func(word string) (bool, string)
	ReconfigureFunc      func(cfg statement.ParserConfig)

	ReconfigureCalls []statement.ParserConfig
}

// Parse calls the mock ParseFunc.
func (m *MockStatementParser) Parse(line string) (statement.Statement, error) {
	if m.ParseFunc != nil {
		return m.ParseFunc(line)
	}
	return statement.Statement{}, errors.New("MockStatementParser.ParseFunc not implemented")
}

// ParseCommandOnly calls the mock ParseCommandOnlyFunc.
func (m *MockStatementParser) ParseCommandOnly(line string) statement.Statement {
	if m.ParseCommandOnlyFunc != nil {
		return m.ParseCommandOnlyFunc(line)
	}
	return statement.Statement{Raw: line}
}

// Tokenize calls the mock TokenizeFunc.
func (m *MockStatementParser) Tokenize(line string) ([]string, error) {
	if m.TokenizeFunc != nil {
		return m.TokenizeFunc(line)
	}
	return nil, errors.New("MockStatementParser.TokenizeFunc not implemented")
}

// IsValidCommand calls the mock IsValidCommandFunc.
func (m *MockStatementParser) IsValidCommand(word string) (bool, string) {
	if m.IsValidCommandFunc != nil {
		return m.IsValidCommandFunc(word)
	}
	return word != "", "mock rejection"
}

// Reconfigure records the configuration and calls the mock
// ReconfigureFunc when set.
func (m *MockStatementParser) Reconfigure(cfg statement.ParserConfig) {
	m.ReconfigureCalls = append(m.ReconfigureCalls, cfg)
	if m.ReconfigureFunc != nil {
		m.ReconfigureFunc(cfg)
	}
}
