// Package gitcli implements vcs.Interface using the git commandline tool.
package gitcli

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/jeffrom/gitj/config"
	"github.com/jeffrom/gitj/model"
	"github.com/jeffrom/gitj/vcs"
)

// Git implements vcs.Interface using the git commandline tool.
type Git struct {
	cfg config.Config
	wd  string
}

func New(cfg config.Config, wd string) *Git {
	return &Git{
		cfg: cfg,
		wd:  wd,
	}
}

const (
	logStart = "_START_"
	logSep   = "_SEP_"
	logEnd   = "_END_"

	EXPECTED_LOG_PARTS = 4
)

var logFormat = "--pretty=tformat:" + logStart + "%H" + logSep + "%aN" + logSep + "%aI" + logSep + "%B" + logEnd

func (g *Git) ReadCommits(ctx context.Context, ref string) ([]*model.Commit, error) {
	if ref == "" {
		ref = "HEAD"
	}
	b, err := g.call(ctx, []string{"log", logFormat, ref, "--"})
	if err != nil {
		if isUnknownRevision(err) {
			return nil, vcs.NotFoundError{Ref: ref}
		}
		return nil, err
	}

	commits, err := parseLog(string(b))
	if err != nil {
		return nil, err
	}

	webURL, err := g.ReadRemoteURL(ctx, "origin")
	if err != nil {
		g.cfg.Debugf("gitcli: no commit urls: %v", err)
	}
	if webURL != "" {
		for _, c := range commits {
			c.URL = webURL + "/commit/" + c.SHA
		}
	}
	return commits, nil
}

func parseLog(out string) ([]*model.Commit, error) {
	var commits []*model.Commit
	for _, chunk := range strings.Split(out, logEnd) {
		chunk = strings.TrimLeft(chunk, "\r\n")
		if chunk == "" {
			continue
		}
		if !strings.HasPrefix(chunk, logStart) {
			return nil, fmt.Errorf("gitcli: unexpected git log output: %q", chunk)
		}
		chunk = strings.TrimPrefix(chunk, logStart)

		// the message can contain anything, so it's always the last part.
		parts := strings.SplitN(chunk, logSep, EXPECTED_LOG_PARTS)
		if len(parts) != EXPECTED_LOG_PARTS {
			return nil, fmt.Errorf("gitcli: expected %d parts from git log, got %d", EXPECTED_LOG_PARTS, len(parts))
		}

		date, err := formatAuthorDate(parts[2])
		if err != nil {
			return nil, err
		}

		commits = append(commits, &model.Commit{
			SHA:        parts[0],
			AuthorName: parts[1],
			AuthorDate: date,
			Message:    strings.TrimRight(parts[3], "\r\n"),
		})
	}
	return commits, nil
}

func isUnknownRevision(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "unknown revision") || strings.Contains(msg, "bad revision")
}

func (g *Git) CurrentBranch(ctx context.Context) (string, error) {
	b, err := g.call(ctx, []string{"rev-parse", "--abbrev-ref", "HEAD"})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

func (g *Git) ReadRemoteURL(ctx context.Context, upstream string) (string, error) {
	if upstream == "" {
		upstream = "origin"
	}
	b, err := g.call(ctx, []string{"remote", "get-url", upstream})
	if err != nil {
		return "", err
	}
	return remoteWebURL(strings.TrimSpace(string(b))), nil
}

// remoteWebURL turns a git remote into the repository's web URL. ssh remotes
// like git@github.com:owner/repo.git are converted to https. Remotes that
// aren't on a host, such as local paths, return an empty string.
func remoteWebURL(remote string) string {
	if remote == "" {
		return ""
	}

	var host, path string
	if !strings.Contains(remote, "://") {
		// scp-like syntax: [user@]host:path
		hostPart, p, ok := strings.Cut(remote, ":")
		if !ok || strings.Contains(hostPart, "/") {
			return ""
		}
		if _, h, ok := strings.Cut(hostPart, "@"); ok {
			hostPart = h
		}
		host, path = hostPart, p
	} else {
		u, err := url.Parse(remote)
		if err != nil {
			return ""
		}
		switch u.Scheme {
		case "http", "https", "ssh", "git":
		default:
			return ""
		}
		host, path = u.Hostname(), u.Path
	}

	path = strings.Trim(path, "/")
	path = strings.TrimSuffix(path, ".git")
	if host == "" || path == "" {
		return ""
	}
	return "https://" + host + "/" + path
}
