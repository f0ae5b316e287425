package testutil

// MockOutputWriter is a mock implementation of ports.OutputWriter. It
// records every write so tests can assert on redirection behavior.
type MockOutputWriter struct {
	WriteFileFunc func(path, data string, appendTo bool) error

	Writes []RecordedWrite
}

// RecordedWrite is one captured WriteFile call.
type RecordedWrite struct {
	Path   string
	Data   string
	Append bool
}

// WriteFile records the call and then defers to the mock WriteFileFunc
// when set.
func (m *MockOutputWriter) WriteFile(path, data string, appendTo bool) error {
	m.Writes = append(m.Writes, RecordedWrite{Path: path, Data: data, Append: appendTo})
	if m.WriteFileFunc != nil {
		return m.WriteFileFunc(path, data, appendTo)
	}
	return nil
}
