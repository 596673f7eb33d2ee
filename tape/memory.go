package tape

import "sync"

// Memory is a tape held in memory.
type Memory struct {
	mu      sync.Mutex
	entries []Entry
}

// NewMemory creates an empty in-memory tape.
func NewMemory() *Memory {
	return &Memory{}
}

// Append adds an entry to the tape.
func (m *Memory) Append(e Entry) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e.ID = int64(len(m.entries)) + 1
	m.entries = append(m.entries, e)
	return e.ID, nil
}

// Recent returns up to n of the latest entries, oldest first.
func (m *Memory) Recent(n int) ([]Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if n <= 0 {
		return nil, nil
	}
	k := len(m.entries) - n
	if k < 0 {
		k = 0
	}
	return append([]Entry(nil), m.entries[k:]...), nil
}

// Close is a no-op for a memory tape.
func (m *Memory) Close() error {
	return nil
}

var _ Store = (*Memory)(nil)
