package logic

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"sort"
	"unicode/utf8"

	"github.com/rawen554/uploader/internal/config"
	"github.com/rawen554/uploader/internal/models"
	"github.com/rawen554/uploader/internal/utils"
	"go.uber.org/zap"
)

const (
	readmePath       = "README.md"
	publicVisibility = "public"
	ErrorAppendLog   = "error appending to log: %v"
	ErrorBuildURL    = "error building web URL: %w"
	StatusCompleted  = "✅ Upload completed"
)

var (
	ErrMissingFields = errors.New("missing token, group_id, slug or files")
	ErrCountMismatch = errors.New("number of tokens and group ids must match")
	ErrNotText       = errors.New("content is not valid UTF-8 text")
)

//go:generate mockgen -destination=mocks/remote.go -package=mocks . Remote
type Remote interface {
	CreateProject(ctx context.Context, token string, spec models.ProjectSpec) (*models.Project, error)
	UpdateFile(ctx context.Context, token string, update models.FileUpdate) error
}

type Sink interface {
	ResetSuccessLog() error
	AppendSuccess(line string) error
	AppendError(line string) error
}

type CoreLogic struct {
	config *config.ServerConfig
	remote Remote
	sink   Sink
	logger *zap.SugaredLogger
}

func NewCoreLogic(config *config.ServerConfig, remote Remote, sink Sink, logger *zap.SugaredLogger) *CoreLogic {
	return &CoreLogic{
		config: config,
		remote: remote,
		sink:   sink,
		logger: logger,
	}
}

// Upload creates one project per (account, file) pair and fills its README.
// Failed pairs are written to the error log and skipped; the returned results
// hold only pairs where both remote calls succeeded.
func (cl *CoreLogic) Upload(ctx context.Context, req *models.UploadRequest) ([]models.UploadResult, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	if err := cl.sink.ResetSuccessLog(); err != nil {
		return nil, fmt.Errorf("error resetting success log: %w", err)
	}

	files := make([]models.FileEntry, len(req.Files))
	copy(files, req.Files)
	sort.SliceStable(files, func(i, j int) bool {
		return files[i].Filename < files[j].Filename
	})

	counter := newSlugCounter(req.SlugPrefix)
	results := make([]models.UploadResult, 0)

	for _, account := range req.Accounts() {
		cl.logger.Infof("processing account %d", account.Index)

		for _, file := range files {
			result, err := cl.uploadFile(ctx, account, file, counter.next())
			if err != nil {
				cl.logger.Warn(err)
				cl.appendError(err.Error())
				continue
			}
			results = append(results, *result)
		}
	}

	return results, nil
}

func validate(req *models.UploadRequest) error {
	if len(req.Tokens) == 0 || len(req.GroupIDs) == 0 || req.SlugPrefix == "" || len(req.Files) == 0 {
		return ErrMissingFields
	}
	if len(req.Tokens) != len(req.GroupIDs) {
		return ErrCountMismatch
	}
	return nil
}

func (cl *CoreLogic) uploadFile(
	ctx context.Context,
	account models.Account,
	file models.FileEntry,
	slug string,
) (*models.UploadResult, error) {
	filename := utils.BaseName(file.Filename)
	projectName := utils.ProjectName(filename)

	content, err := readContent(file)
	if err != nil {
		return nil, &PairError{Stage: StageRead, Subject: filename, Err: err}
	}

	project, err := cl.remote.CreateProject(ctx, account.Token, models.ProjectSpec{
		Name:        projectName,
		Path:        slug,
		NamespaceID: account.GroupID,
		Visibility:  publicVisibility,
		InitReadme:  true,
	})
	if err != nil {
		return nil, &PairError{Stage: StageCreate, Subject: projectName, Err: err}
	}

	webURL := project.WebURL
	if webURL == "" {
		webURL, err = url.JoinPath(cl.config.GitLabURL, slug)
		if err != nil {
			return nil, &PairError{Stage: StageCreate, Subject: projectName, Err: fmt.Errorf(ErrorBuildURL, err)}
		}
	}

	if err := cl.sink.AppendSuccess(webURL); err != nil {
		cl.logger.Errorf(ErrorAppendLog, err)
	}

	branch := project.DefaultBranch
	if branch == "" {
		branch = cl.config.DefaultBranch
	}

	if err := cl.remote.UpdateFile(ctx, account.Token, models.FileUpdate{
		ProjectID:     project.ID,
		Branch:        branch,
		Path:          readmePath,
		Content:       content,
		CommitMessage: cl.config.CommitMessage,
	}); err != nil {
		return nil, &PairError{Stage: StageUpdate, Subject: projectName, Err: err}
	}

	return &models.UploadResult{
		Account: account.Index,
		File:    filename,
		Slug:    slug,
		URL:     webURL,
	}, nil
}

func (cl *CoreLogic) appendError(line string) {
	if err := cl.sink.AppendError(line); err != nil {
		cl.logger.Errorf(ErrorAppendLog, err)
	}
}

// readContent opens the upload afresh, so every account reads it from the start.
func readContent(file models.FileEntry) (string, error) {
	r, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("error opening file: %w", err)
	}
	defer r.Close()

	b, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("error reading file: %w", err)
	}

	if !utf8.Valid(b) {
		return "", ErrNotText
	}

	return string(b), nil
}

type slugCounter struct {
	prefix string
	n      int
}

func newSlugCounter(prefix string) *slugCounter {
	return &slugCounter{prefix: prefix, n: 1}
}

func (c *slugCounter) next() string {
	slug := utils.Slug(c.prefix, c.n)
	c.n++
	return slug
}
