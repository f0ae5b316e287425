package ports

// OutputWriter applies an output redirection clause to the filesystem.
type OutputWriter interface {
	// WriteFile writes data to path, truncating by default or appending
	// when appendTo is set.
	WriteFile(path string, data string, appendTo bool) error
}
