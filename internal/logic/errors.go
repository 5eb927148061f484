package logic

import (
	"errors"
	"fmt"

	"github.com/rawen554/uploader/internal/models"
)

type Stage string

const (
	StageRead   Stage = "read"
	StageCreate Stage = "create"
	StageUpdate Stage = "update"
)

// PairError is the outcome of a failed (account, file) pair.
// Subject is the file name for read failures and the project name otherwise.
type PairError struct {
	Err     error
	Stage   Stage
	Subject string
}

func (e *PairError) Error() string {
	switch e.Stage {
	case StageRead:
		return fmt.Sprintf("❌ Error reading file %s: %v", e.Subject, e.Err)
	case StageCreate:
		return fmt.Sprintf("❌ Failed to create project %s: %v - %s", e.Subject, e.Err, e.body())
	default:
		return fmt.Sprintf("❌ Failed to update README %s: %v - %s", e.Subject, e.Err, e.body())
	}
}

func (e *PairError) Unwrap() error {
	return e.Err
}

func (e *PairError) body() string {
	var remoteErr *models.RemoteError
	if errors.As(e.Err, &remoteErr) {
		return remoteErr.Body
	}
	return ""
}
