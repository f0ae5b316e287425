/*
Package oscommand touches the operating system on the shell's behalf:
it spawns the external processes that receive piped output, runs full
command lines under the system shell, and writes redirected output to
files.
*/
package oscommand

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/AntonioJCosta/replsh/internal/core/ports"
)

// Runner implements the ProcessRunner port using os/exec.
type Runner struct{}

// NewRunner creates a new process runner.
func NewRunner() ports.ProcessRunner {
	return &Runner{}
}

// Run executes argv directly, without shell interpretation. The process
// reads stdin from the given string and both output streams are captured
// in full before returning.
func (r *Runner) Run(argv []string, stdin string) (string, string, error) {
	if len(argv) == 0 {
		return "", "", fmt.Errorf("cannot run an empty argument vector")
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = strings.NewReader(stdin)
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	err := cmd.Run()
	stdout := outBuf.String()
	stderr := errBuf.String()
	if err != nil {
		return stdout, stderr, fmt.Errorf("running '%s': %w", argv[0], err)
	}
	return stdout, stderr, nil
}

// RunShell passes commandLine to the system shell. It uses the SHELL
// environment variable when set, falling back to /bin/sh.
func (r *Runner) RunShell(commandLine string) (string, string, error) {
	shellExecPath := os.Getenv("SHELL")
	if shellExecPath == "" {
		shellExecPath = "/bin/sh"
	}

	cmd := exec.Command(shellExecPath, "-c", commandLine)
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	err := cmd.Run()
	stdout := outBuf.String()
	stderr := errBuf.String()
	if err != nil {
		return stdout, stderr, fmt.Errorf("executing with shell '%s': %w", shellExecPath, err)
	}
	return stdout, stderr, nil
}
