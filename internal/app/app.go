package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rawen554/uploader/internal/config"
	"github.com/rawen554/uploader/internal/logic"
	"github.com/rawen554/uploader/internal/middleware/recovery"
	"github.com/rawen554/uploader/internal/models"
	"go.uber.org/zap"
)

const (
	homeMessage = "✅ GitLab Multi Uploader with Slug is running."

	ErrorMissingFields = "Missing token, group_id, slug or files"
	ErrorCountMismatch = "Number of tokens and group IDs must match"
	UploadSystemError  = "Upload system error"

	tokenField   = "token"
	groupIDField = "group_id"
	slugField    = "slug"
	filesField   = "files"
)

type Uploader interface {
	Upload(ctx context.Context, req *models.UploadRequest) ([]models.UploadResult, error)
}

type App struct {
	config   *config.ServerConfig
	uploader Uploader
	errLog   recovery.ErrorSink
	logger   *zap.SugaredLogger
}

func NewApp(config *config.ServerConfig, uploader Uploader, errLog recovery.ErrorSink, logger *zap.SugaredLogger) *App {
	return &App{
		config:   config,
		uploader: uploader,
		errLog:   errLog,
		logger:   logger,
	}
}

func (a *App) Home(c *gin.Context) {
	c.String(http.StatusOK, homeMessage)
}

func (a *App) Upload(c *gin.Context) {
	req, err := a.parseUploadRequest(c.Request)
	if err != nil {
		recovery.Abort(c, a.errLog, a.logger, UploadSystemError, err)
		return
	}
	if form := c.Request.MultipartForm; form != nil {
		defer func() {
			if rmErr := form.RemoveAll(); rmErr != nil {
				a.logger.Errorf("error removing multipart files: %v", rmErr)
			}
		}()
	}

	// A started batch runs to completion even if the client goes away.
	results, err := a.uploader.Upload(context.WithoutCancel(c.Request.Context()), req)
	if err != nil {
		switch {
		case errors.Is(err, logic.ErrMissingFields):
			c.JSON(http.StatusBadRequest, models.ErrorRes{Error: ErrorMissingFields})
		case errors.Is(err, logic.ErrCountMismatch):
			c.JSON(http.StatusBadRequest, models.ErrorRes{Error: ErrorCountMismatch})
		default:
			recovery.Abort(c, a.errLog, a.logger, UploadSystemError, err)
		}
		return
	}

	c.JSON(http.StatusOK, models.UploadRes{
		Status:   logic.StatusCompleted,
		Projects: results,
	})
}

func (a *App) parseUploadRequest(r *http.Request) (*models.UploadRequest, error) {
	if err := r.ParseMultipartForm(a.config.MaxUploadMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return nil, fmt.Errorf("error parsing multipart form: %w", err)
	}

	req := &models.UploadRequest{
		Tokens:     r.PostForm[tokenField],
		GroupIDs:   r.PostForm[groupIDField],
		SlugPrefix: r.PostForm.Get(slugField),
	}

	if r.MultipartForm != nil {
		for _, fh := range r.MultipartForm.File[filesField] {
			fh := fh
			req.Files = append(req.Files, models.FileEntry{
				Filename: uploadedName(fh),
				Open: func() (io.ReadCloser, error) {
					return fh.Open()
				},
			})
		}
	}

	return req, nil
}

// uploadedName returns the filename as sent by the client. FileHeader.Filename has its directory part stripped.
func uploadedName(fh *multipart.FileHeader) string {
	_, params, err := mime.ParseMediaType(fh.Header.Get("Content-Disposition"))
	if err != nil || params["filename"] == "" {
		return fh.Filename
	}
	return params["filename"]
}
