package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/imdario/mergo"
)

const (
	SourceGit    = "git"
	SourceGitHub = "github"

	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

type Config struct {
	Verbose bool `json:"verbose,omitempty"`
	Quiet   bool `json:"quiet,omitempty"`

	// Name is the project name, used as the heading of the text journal.
	Name string `json:"name,omitempty"`

	// Source is where commits are read from, either "git" or "github".
	Source string `json:"source,omitempty"`
	// Repo is the "owner/name" of the repository on GitHub.
	Repo   string `json:"repo,omitempty"`
	Branch string `json:"branch,omitempty"`
	// Token authenticates GitHub API requests. GITJ_GITHUB_TOKEN and
	// GITHUB_TOKEN are used if it's empty.
	Token string `json:"-"`

	// Me is the author login (or name) considered to be the user.
	Me   string `json:"me,omitempty"`
	Mine bool   `json:"mine,omitempty"`
	// Since is the journal start date. Commits authored before it are
	// skipped.
	Since string `json:"since,omitempty"`
	// Statuses limits the journal to entries with one of these statuses.
	Statuses []string `json:"statuses,omitempty"`
	// AllowedStatuses are the statuses accepted by --check. Any status is
	// accepted if it's empty.
	AllowedStatuses []string `json:"allowed_statuses,omitempty"`
	// RequireDuration makes --check fail for commits with a status but no
	// duration.
	RequireDuration bool `json:"require_duration,omitempty"`

	Output       string     `json:"output,omitempty"`
	TemplatePath string     `json:"template,omitempty"`
	Term         TerminalIO `json:"-"`
}

func New(overrides *Config) Config {
	return NewWithTerminalIO(overrides, nil)
}

func NewWithTerminalIO(overrides *Config, termio *TerminalIO) Config {
	cfg := GetDefault()
	if termio == nil {
		termio = &DefaultTermIO
	}
	cfg.Term = *termio

	if overrides != nil {
		if err := mergo.Merge(&cfg, overrides, mergo.WithOverride); err != nil {
			panic(err)
		}
	}
	return cfg
}

func GetDefault() Config {
	return Config{
		Source: SourceGit,
		Output: OutputText,
	}
}

func (c Config) Validate() error {
	switch c.Source {
	case SourceGit:
	case SourceGitHub:
		if _, _, err := c.RepoParts(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("config: unknown source %q (want %q or %q)", c.Source, SourceGit, SourceGitHub)
	}

	switch c.Output {
	case OutputText, OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("config: unknown output %q", c.Output)
	}

	if c.Since != "" {
		if _, err := c.SinceTime(); err != nil {
			return err
		}
	}
	if c.Mine && c.Me == "" {
		return errors.New("config: --mine requires --me")
	}
	if c.Verbose && c.Quiet {
		return errors.New("config: only one of --verbose, --quiet may be set")
	}
	return nil
}

// RepoParts splits Repo into owner and name.
func (c Config) RepoParts() (string, string, error) {
	owner, name, ok := strings.Cut(c.Repo, "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return "", "", fmt.Errorf("config: repo must be in the form owner/name, got %q", c.Repo)
	}
	return owner, name, nil
}

var sinceLayouts = []string{time.RFC3339, "2006-01-02"}

// SinceTime parses Since. It returns the zero time if Since is empty.
func (c Config) SinceTime() (time.Time, error) {
	if c.Since == "" {
		return time.Time{}, nil
	}
	for _, layout := range sinceLayouts {
		if t, err := time.Parse(layout, c.Since); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("config: invalid since date %q (want YYYY-MM-DD or RFC3339)", c.Since)
}

func (c Config) Printf(msg string, args ...interface{}) {
	if c.Quiet {
		return
	}
	fmt.Fprintf(c.Term.Stdout, msg+"\n", args...)
}

func (c Config) Errorf(msg string, args ...interface{}) {
	fmt.Fprintf(c.Term.Stderr, msg+"\n", args...)
}

func (c Config) Debugf(msg string, args ...interface{}) {
	if !c.Verbose {
		return
	}
	fmt.Fprintf(c.Term.Stderr, msg+"\n", args...)
}
