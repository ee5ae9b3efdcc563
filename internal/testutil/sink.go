package testutil

import "sync"

// RecordingSink captures report lines and error messages in call order.
type RecordingSink struct {
	mu     sync.Mutex
	infos  []string
	errors []string
}

func (s *RecordingSink) Info(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.infos = append(s.infos, message)
}

func (s *RecordingSink) Error(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errors = append(s.errors, message)
}

// Infos returns a copy of the captured info lines.
func (s *RecordingSink) Infos() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.infos...)
}

// Errors returns a copy of the captured error lines.
func (s *RecordingSink) Errors() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.errors...)
}

// Reset drops everything captured so far.
func (s *RecordingSink) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.infos = nil
	s.errors = nil
}
