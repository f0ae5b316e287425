package ports

// ProcessRunner defines an interface for running external processes on
// behalf of the shell.
type ProcessRunner interface {
	// Run executes argv directly, without shell interpretation, feeding
	// the process stdin and returning its captured stdout and stderr.
	Run(argv []string, stdin string) (stdout string, stderr string, err error)

	// RunShell passes commandLine to the system shell. It is used by the
	// shell passthrough command, never by pipe handling.
	RunShell(commandLine string) (stdout string, stderr string, err error)
}
