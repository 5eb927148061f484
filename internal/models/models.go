package models

import (
	"bytes"
	"io"
)

// FileEntry is an uploaded file. Open returns a fresh reader positioned at the start of the content.
type FileEntry struct {
	Open     func() (io.ReadCloser, error)
	Filename string
}

// NewFileEntry wraps in-memory content.
func NewFileEntry(filename string, content []byte) FileEntry {
	return FileEntry{
		Filename: filename,
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(content)), nil
		},
	}
}

type UploadRequest struct {
	SlugPrefix string
	Tokens     []string
	GroupIDs   []string
	Files      []FileEntry
}

// Account is a token paired with the group it creates projects in.
type Account struct {
	Token   string
	GroupID string
	Index   int
}

// Accounts pairs tokens and group ids by position. Index is 1-based.
func (r *UploadRequest) Accounts() []Account {
	n := min(len(r.Tokens), len(r.GroupIDs))
	accounts := make([]Account, 0, n)
	for i := 0; i < n; i++ {
		accounts = append(accounts, Account{
			Index:   i + 1,
			Token:   r.Tokens[i],
			GroupID: r.GroupIDs[i],
		})
	}

	return accounts
}

type UploadResult struct {
	Account int    `json:"account"`
	File    string `json:"file"`
	Slug    string `json:"slug"`
	URL     string `json:"url"`
}

type UploadRes struct {
	Status   string         `json:"status"`
	Projects []UploadResult `json:"projects"`
}

type ErrorRes struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type ProjectSpec struct {
	Name        string
	Path        string
	NamespaceID string
	Visibility  string
	InitReadme  bool
}

type Project struct {
	WebURL        string
	DefaultBranch string
	ID            int64
}

type FileUpdate struct {
	Branch        string
	Path          string
	Content       string
	CommitMessage string
	ProjectID     int64
}

// RemoteError is a failed call to the hosting API. Body holds the response text, if any.
type RemoteError struct {
	Err  error
	Body string
}

func (e *RemoteError) Error() string {
	return e.Err.Error()
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}
