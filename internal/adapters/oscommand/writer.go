package oscommand

import (
	"fmt"
	"os"

	"github.com/AntonioJCosta/replsh/internal/core/ports"
)

// FileWriter implements the OutputWriter port with plain files.
type FileWriter struct{}

// NewFileWriter creates a new file writer.
func NewFileWriter() ports.OutputWriter {
	return &FileWriter{}
}

// WriteFile writes data to path, truncating unless appendTo is set. The
// file is created when missing.
func (w *FileWriter) WriteFile(path, data string, appendTo bool) error {
	flags := os.O_CREATE | os.O_WRONLY
	if appendTo {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}

	file, err := os.OpenFile(path, flags, 0644)
	if err != nil {
		return fmt.Errorf("opening '%s' for redirection: %w", path, err)
	}
	defer file.Close()

	if _, err := file.WriteString(data); err != nil {
		return fmt.Errorf("writing redirected output to '%s': %w", path, err)
	}
	return nil
}
