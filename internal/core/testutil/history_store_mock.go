package testutil

import "github.com/AntonioJCosta/replsh/internal/core/domain/history"

// MockHistoryStore is an in-memory implementation of ports.HistoryStore
// suitable for tests.
type MockHistoryStore struct {
	AddFunc func(text string) (int, error)

	Items []history.Entry
}

// Add appends text, or defers to AddFunc when set.
func (m *MockHistoryStore) Add(text string) (int, error) {
	if m.AddFunc != nil {
		return m.AddFunc(text)
	}
	seq := len(m.Items) + 1
	m.Items = append(m.Items, history.Entry{Seq: seq, Text: text})
	return seq, nil
}

// NextSeq returns the sequence number the next Add will use.
func (m *MockHistoryStore) NextSeq() (int, error) {
	return len(m.Items) + 1, nil
}

// Entries returns entries with from <= seq < upto, oldest first.
func (m *MockHistoryStore) Entries(from, upto int) ([]history.Entry, error) {
	if upto < 0 {
		upto = len(m.Items) + 1
	}
	var out []history.Entry
	for _, e := range m.Items {
		if e.Seq >= from && e.Seq < upto {
			out = append(out, e)
		}
	}
	return out, nil
}

// Prev returns the newest entry before upto whose text begins with
// prefix.
func (m *MockHistoryStore) Prev(upto int, prefix string) (history.Entry, error) {
	for i := len(m.Items) - 1; i >= 0; i-- {
		e := m.Items[i]
		if e.Seq < upto && len(e.Text) >= len(prefix) && e.Text[:len(prefix)] == prefix {
			return e, nil
		}
	}
	return history.Entry{}, history.ErrNoEntry
}

// Close is a no-op.
func (m *MockHistoryStore) Close() error { return nil }
