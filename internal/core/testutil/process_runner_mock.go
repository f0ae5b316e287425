package testutil

import "errors"

// MockProcessRunner is a mock implementation of ports.ProcessRunner.
type MockProcessRunner struct {
	RunFunc      func(argv []string, stdin string) (stdout string, stderr string, err error)
	RunShellFunc func(commandLine string) (stdout string, stderr string, err error)
}

// Run calls the mock RunFunc.
func (m *MockProcessRunner) Run(argv []string, stdin string) (string, string, error) {
	if m.RunFunc != nil {
		return m.RunFunc(argv, stdin)
	}
	return "", "", errors.New("MockProcessRunner.RunFunc not implemented")
}

// RunShell calls the mock RunShellFunc.
func (m *MockProcessRunner) RunShell(commandLine string) (string, string, error) {
	if m.RunShellFunc != nil {
		return m.RunShellFunc(commandLine)
	}
	return "", "", errors.New("MockProcessRunner.RunShellFunc not implemented")
}
