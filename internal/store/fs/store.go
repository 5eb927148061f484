package fs

import (
	"fmt"
	"os"
	"sync"
)

const LogFilePerm = 0600

// FSSink keeps the success and error logs as flat files.
// The success log is truncated by ResetSuccessLog, the error log only grows.
type FSSink struct {
	mux         *sync.Mutex
	successPath string
	errorPath   string
}

func NewFileSink(successPath, errorPath string) (*FSSink, error) {
	for _, path := range []string{successPath, errorPath} {
		file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, LogFilePerm)
		if err != nil {
			return nil, fmt.Errorf("error opening file: %w", err)
		}
		if err := file.Close(); err != nil {
			return nil, fmt.Errorf("error closing file: %w", err)
		}
	}

	return &FSSink{
		mux:         &sync.Mutex{},
		successPath: successPath,
		errorPath:   errorPath,
	}, nil
}

func (s *FSSink) ResetSuccessLog() error {
	s.mux.Lock()
	defer s.mux.Unlock()

	if err := os.WriteFile(s.successPath, nil, LogFilePerm); err != nil {
		return fmt.Errorf("error truncating success log: %w", err)
	}
	return nil
}

func (s *FSSink) AppendSuccess(line string) error {
	return s.appendLine(s.successPath, line)
}

func (s *FSSink) AppendError(line string) error {
	return s.appendLine(s.errorPath, line)
}

func (s *FSSink) appendLine(path string, line string) error {
	s.mux.Lock()
	defer s.mux.Unlock()

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, LogFilePerm)
	if err != nil {
		return fmt.Errorf("error opening file: %w", err)
	}

	if _, err := file.WriteString(line + "\n"); err != nil {
		_ = file.Close()
		return fmt.Errorf("error writing line: %w", err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("error closing file: %w", err)
	}
	return nil
}
