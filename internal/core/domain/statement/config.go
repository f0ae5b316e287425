package statement

// DefaultTerminator ends a statement unless the configuration overrides
// the terminator set.
const DefaultTerminator = ";"

// Shortcut maps a leading-text prefix to the command text it expands to.
// Shortcuts are tried in order and only the first matching prefix is
// rewritten.
type Shortcut struct {
	Prefix    string `yaml:"prefix"`
	Expansion string `yaml:"expansion"`
}

/*
ParserConfig is a snapshot of everything that influences how a line is
parsed. The parser copies it on configuration, so callers may reuse or
mutate their own copy freely afterwards.

A nil Terminators slice selects the default terminator set; an explicitly
empty one disables terminator recognition entirely.
*/
type ParserConfig struct {
	AllowRedirection  bool
	Terminators       []string
	MultilineCommands []string
	Aliases           map[string]string
	Shortcuts         []Shortcut
}

// DefaultParserConfig returns the configuration used when the caller
// supplies nothing: redirection enabled, ";" as the only terminator, and
// no aliases, shortcuts, or multiline commands.
func DefaultParserConfig() ParserConfig {
	return ParserConfig{
		AllowRedirection: true,
		Terminators:      []string{DefaultTerminator},
	}
}
