package clock

import (
	"sync"
	"time"
)

// TimeProvider supplies the wall-clock instant for each frame
type TimeProvider interface {
	Now() time.Time
}

// SystemTime reads the local system clock
type SystemTime struct{}

// Now returns the current local time with its monotonic reading
func (SystemTime) Now() time.Time {
	return time.Now()
}

// MockTime is a controllable time source for tests
type MockTime struct {
	mu      sync.RWMutex
	current time.Time
}

// NewMockTime creates a mock starting at start
func NewMockTime(start time.Time) *MockTime {
	return &MockTime{current: start}
}

// Now returns the current mocked time
func (m *MockTime) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// SetTime sets the current time for the mock
func (m *MockTime) SetTime(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = t
}

// Advance moves the mocked time forward by d
func (m *MockTime) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = m.current.Add(d)
}
