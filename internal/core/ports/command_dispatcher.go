package ports

import "github.com/AntonioJCosta/replsh/internal/core/domain/statement"

// DispatchResult carries what a command produced: its textual output and
// whether the shell should stop after it.
type DispatchResult struct {
	Output string
	Stop   bool
}

// Command is one dispatchable command: its name, a help line, whether its
// arguments may continue across lines, and the handler that runs it.
type Command struct {
	Name      string
	Help      string
	Multiline bool
	Run       func(st statement.Statement) (DispatchResult, error)
}

/*
CommandDispatcher defines the contract for the command registry the shell
session executes statements against. This is a driven port.
*/
type CommandDispatcher interface {
	// Register adds a command. It fails when the name is empty, the
	// handler is nil, or the name is already taken.
	Register(cmd Command) error

	// Dispatch runs the command named by st.Command. Unknown commands
	// are an error.
	Dispatch(st statement.Statement) (DispatchResult, error)

	// Names returns the registered command names, sorted.
	Names() []string

	// MultilineNames returns the names of commands whose arguments may
	// span lines until a terminator appears, sorted.
	MultilineNames() []string

	// Commands returns all registered commands sorted by name, for help
	// rendering.
	Commands() []Command
}
