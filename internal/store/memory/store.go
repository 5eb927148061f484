package memory

import (
	"sync"
)

// MemorySink records log lines in memory.
type MemorySink struct {
	mux          *sync.Mutex
	successLines []string
	errorLines   []string
}

func NewMemorySink() *MemorySink {
	return &MemorySink{
		mux: &sync.Mutex{},
	}
}

func (s *MemorySink) ResetSuccessLog() error {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.successLines = nil
	return nil
}

func (s *MemorySink) AppendSuccess(line string) error {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.successLines = append(s.successLines, line)
	return nil
}

func (s *MemorySink) AppendError(line string) error {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.errorLines = append(s.errorLines, line)
	return nil
}

func (s *MemorySink) SuccessLines() []string {
	s.mux.Lock()
	defer s.mux.Unlock()
	return append([]string(nil), s.successLines...)
}

func (s *MemorySink) ErrorLines() []string {
	s.mux.Lock()
	defer s.mux.Unlock()
	return append([]string(nil), s.errorLines...)
}
