/*
Package dispatch routes parsed statements to registered command
handlers.
*/
package dispatch

import (
	"fmt"
	"sort"

	"github.com/AntonioJCosta/replsh/internal/core/domain/statement"
	"github.com/AntonioJCosta/replsh/internal/core/ports"
)

// Registry is the default CommandDispatcher implementation: a
// name-indexed set of commands. It is not safe for concurrent mutation;
// register everything before the shell starts executing.
type Registry struct {
	commands map[string]ports.Command
}

// NewRegistry creates an empty command registry.
func NewRegistry() ports.CommandDispatcher {
	return &Registry{commands: make(map[string]ports.Command)}
}

// Register adds cmd to the registry.
func (r *Registry) Register(cmd ports.Command) error {
	if cmd.Name == "" {
		return fmt.Errorf("cannot register a command without a name")
	}
	if cmd.Run == nil {
		return fmt.Errorf("cannot register command %q without a handler", cmd.Name)
	}
	if _, exists := r.commands[cmd.Name]; exists {
		return fmt.Errorf("command %q is already registered", cmd.Name)
	}
	r.commands[cmd.Name] = cmd
	return nil
}

// Dispatch runs the command named by st.Command.
func (r *Registry) Dispatch(st statement.Statement) (ports.DispatchResult, error) {
	cmd, ok := r.commands[st.Command]
	if !ok {
		return ports.DispatchResult{}, fmt.Errorf("unknown command: %q", st.Command)
	}
	return cmd.Run(st)
}

// Names returns the registered command names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// MultilineNames returns the names of registered multiline commands,
// sorted.
func (r *Registry) MultilineNames() []string {
	var names []string
	for name, cmd := range r.commands {
		if cmd.Multiline {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Commands returns all registered commands sorted by name.
func (r *Registry) Commands() []ports.Command {
	cmds := make([]ports.Command, 0, len(r.commands))
	for _, name := range r.Names() {
		cmds = append(cmds, r.commands[name])
	}
	return cmds
}
