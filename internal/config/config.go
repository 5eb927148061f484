package config

import (
	"flag"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/caarlos0/env/v6"
)

const (
	defaultPort            = 5000
	defaultRequestTimeout  = 15 * time.Second
	defaultMaxUploadMemory = 32 << 20
)

type ServerConfig struct {
	Host            string        `env:"BIND_HOST"`
	GitLabURL       string        `env:"GITLAB_URL"`
	SuccessLogPath  string        `env:"SUCCESS_LOG_PATH"`
	ErrorLogPath    string        `env:"ERROR_LOG_PATH"`
	DefaultBranch   string        `env:"DEFAULT_BRANCH"`
	CommitMessage   string        `env:"COMMIT_MESSAGE"`
	LogLevel        string        `env:"LOG_LEVEL"`
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT"`
	MaxUploadMemory int64         `env:"MAX_UPLOAD_MEMORY"`
	Port            int           `env:"PORT"`
	ProfileMode     bool          `env:"PROFILE_MODE"`
}

// ParseFlags reads command line flags first and lets environment variables override them.
func ParseFlags(args []string) (*ServerConfig, error) {
	config := &ServerConfig{}

	fs := flag.NewFlagSet("uploader", flag.ContinueOnError)
	fs.StringVar(&config.Host, "h", "0.0.0.0", "interface to listen on")
	fs.IntVar(&config.Port, "p", defaultPort, "port to listen on")
	fs.StringVar(&config.GitLabURL, "g", "https://gitlab.com", "GitLab base URL")
	fs.DurationVar(&config.RequestTimeout, "t", defaultRequestTimeout, "timeout of a single GitLab API call")
	fs.StringVar(&config.SuccessLogPath, "s", "upload.log", "success log path")
	fs.StringVar(&config.ErrorLogPath, "e", "error.log", "error log path")
	fs.StringVar(&config.DefaultBranch, "b", "main", "branch used when GitLab does not report one")
	fs.StringVar(&config.CommitMessage, "m", "Update README.md from uploaded file", "README commit message")
	fs.Int64Var(&config.MaxUploadMemory, "u", defaultMaxUploadMemory, "multipart bytes kept in memory")
	fs.StringVar(&config.LogLevel, "l", "info", "log level")
	fs.BoolVar(&config.ProfileMode, "pprof", false, "register pprof handlers")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("error parsing env variables: %w", err)
	}

	return config, nil
}

func (c *ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
