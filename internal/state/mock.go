// internal/state/mock.go
package state

// Mock is a test double for Manager.
type Mock struct {
	session *Session
	saves   []Session
	closed  bool
}

// NewMock creates a new mock session store for testing.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) Load() (*Session, error) {
	return m.session, nil
}

func (m *Mock) Save(s Session) {
	m.saves = append(m.saves, s)
}

func (m *Mock) SaveNow(s Session) error {
	m.saves = append(m.saves, s)
	return nil
}

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Test helpers

func (m *Mock) SetSession(s *Session) { m.session = s }

func (m *Mock) Saves() []Session { return m.saves }

func (m *Mock) IsClosed() bool { return m.closed }

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
