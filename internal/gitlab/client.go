package gitlab

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	gl "gitlab.com/gitlab-org/api/client-go"
	"go.uber.org/zap"

	"github.com/rawen554/uploader/internal/models"
)

// Client talks to the GitLab REST API. A new API client is built per call
// because every account authenticates with its own token.
type Client struct {
	httpClient *http.Client
	logger     *zap.SugaredLogger
	baseURL    string
}

func NewClient(baseURL string, timeout time.Duration, logger *zap.SugaredLogger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

func (c *Client) api(token string) (*gl.Client, error) {
	client, err := gl.NewClient(
		token,
		gl.WithBaseURL(c.baseURL),
		gl.WithHTTPClient(c.httpClient),
		gl.WithoutRetries(),
	)
	if err != nil {
		return nil, fmt.Errorf("error creating gitlab client: %w", err)
	}
	return client, nil
}

func (c *Client) CreateProject(ctx context.Context, token string, spec models.ProjectSpec) (*models.Project, error) {
	namespaceID, err := strconv.ParseInt(spec.NamespaceID, 10, 64)
	if err != nil {
		return nil, &models.RemoteError{Err: fmt.Errorf("invalid namespace id %q: %w", spec.NamespaceID, err)}
	}

	client, err := c.api(token)
	if err != nil {
		return nil, &models.RemoteError{Err: err}
	}

	project, _, err := client.Projects.CreateProject(&gl.CreateProjectOptions{
		Name:                 gl.Ptr(spec.Name),
		Path:                 gl.Ptr(spec.Path),
		NamespaceID:          gl.Ptr(int(namespaceID)),
		InitializeWithReadme: gl.Ptr(spec.InitReadme),
		Visibility:           gl.Ptr(gl.VisibilityValue(spec.Visibility)),
	}, gl.WithContext(ctx))
	if err != nil {
		return nil, remoteError(err)
	}

	c.logger.Debugf("created project %d at %s", project.ID, project.WebURL)

	return &models.Project{
		ID:            int64(project.ID),
		WebURL:        project.WebURL,
		DefaultBranch: project.DefaultBranch,
	}, nil
}

func (c *Client) UpdateFile(ctx context.Context, token string, update models.FileUpdate) error {
	client, err := c.api(token)
	if err != nil {
		return &models.RemoteError{Err: err}
	}

	_, _, err = client.RepositoryFiles.UpdateFile(
		strconv.FormatInt(update.ProjectID, 10),
		update.Path,
		&gl.UpdateFileOptions{
			Branch:        gl.Ptr(update.Branch),
			Content:       gl.Ptr(update.Content),
			CommitMessage: gl.Ptr(update.CommitMessage),
		},
		gl.WithContext(ctx),
	)
	if err != nil {
		return remoteError(err)
	}

	return nil
}

func remoteError(err error) *models.RemoteError {
	re := &models.RemoteError{Err: err}

	var errResp *gl.ErrorResponse
	if errors.As(err, &errResp) {
		re.Body = string(errResp.Body)
	}

	return re
}
