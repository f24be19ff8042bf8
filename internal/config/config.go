package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/urfave/cli/v2"
)

const (
	DefaultTimeZone      = "UTC"
	DefaultReadmePath    = "README.md"
	DefaultCommitMessage = "Update activity chart"
	DefaultBarWidth      = 21
)

type AppConfig struct {
	Token         string
	TimeZone      string
	TargetOwner   string
	TargetRepo    string
	TargetPath    string
	CommitMessage string
	BarWidth      int
	DryRun        bool
	LogLevel      string
	LogFormat     string
	NoBanner      bool
	NoProgress    bool
}

func ParseConfig(c *cli.Context) (*AppConfig, error) {
	cfg := &AppConfig{
		Token:         strings.TrimSpace(c.String("token")),
		TimeZone:      c.String("timezone"),
		TargetOwner:   c.String("owner"),
		TargetRepo:    c.String("repo"),
		TargetPath:    c.String("path"),
		CommitMessage: c.String("message"),
		BarWidth:      c.Int("width"),
		DryRun:        c.Bool("dry-run"),
		LogLevel:      c.String("log-level"),
		LogFormat:     c.String("log-format"),
		NoBanner:      c.Bool("no-banner"),
		NoProgress:    c.Bool("no-progress"),
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *AppConfig) applyDefaults() {
	if c.TimeZone == "" {
		c.TimeZone = DefaultTimeZone
	}
	if c.TargetPath == "" {
		c.TargetPath = DefaultReadmePath
	}
	if c.CommitMessage == "" {
		c.CommitMessage = DefaultCommitMessage
	}
	if c.BarWidth == 0 {
		c.BarWidth = DefaultBarWidth
	}
}

func (c *AppConfig) Validate() error {
	var errs []error
	if c.Token == "" {
		errs = append(errs, errors.New("a GitHub token is required (HOURGLASS_GITHUB_TOKEN or GH_TOKEN)"))
	}
	if _, err := time.LoadLocation(c.TimeZone); err != nil {
		errs = append(errs, fmt.Errorf("invalid time zone %q: %w", c.TimeZone, err))
	}
	if c.BarWidth <= 0 {
		errs = append(errs, fmt.Errorf("bar width must be positive, got %d", c.BarWidth))
	}
	return errors.Join(errs...)
}

// Location is only valid after Validate succeeded.
func (c *AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Target resolves the README location, falling back to the viewer's
// profile repository (login/login).
func (c *AppConfig) Target(login string) (owner, repo, path string) {
	owner, repo, path = c.TargetOwner, c.TargetRepo, c.TargetPath
	if owner == "" {
		owner = login
	}
	if repo == "" {
		repo = owner
	}
	if path == "" {
		path = DefaultReadmePath
	}
	return owner, repo, path
}
