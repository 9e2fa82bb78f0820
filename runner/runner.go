// Package runner manages command-line execution
package runner

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jeffrom/gitj/commit"
	"github.com/jeffrom/gitj/config"
	"github.com/jeffrom/gitj/model"
	"github.com/jeffrom/gitj/vcs"
)

var ErrNoCommits = errors.New("runner: no commits found")

type Runner struct {
	cfg config.Config
	vcs vcs.Interface
}

func New(cfg config.Config, vcs vcs.Interface) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Runner{
		cfg: cfg,
		vcs: vcs,
	}, nil
}

// Ref returns the ref to read commits from: ref if set, then the configured
// branch, then the source's current branch.
func (r *Runner) Ref(ctx context.Context, ref string) (string, error) {
	if ref != "" {
		return ref, nil
	}
	if r.cfg.Branch != "" {
		return r.cfg.Branch, nil
	}
	branch, err := r.vcs.CurrentBranch(ctx)
	if err != nil {
		return "", err
	}
	r.cfg.Debugf("Current branch is %q", branch)
	return branch, nil
}

// Journal reads the commits on ref and grooms them into entries, newest
// first, filtered by the configured start date, author and statuses.
func (r *Runner) Journal(ctx context.Context, ref string) ([]*model.Entry, error) {
	ref, err := r.Ref(ctx, ref)
	if err != nil {
		return nil, err
	}
	commits, err := r.vcs.ReadCommits(ctx, ref)
	if err != nil {
		return nil, err
	}
	if len(commits) == 0 {
		return nil, ErrNoCommits
	}
	r.cfg.Debugf("read %d commits from %s", len(commits), ref)

	entries, err := r.filter(commit.GroomAll(commits))
	if err != nil {
		return nil, err
	}
	r.cfg.Debugf("%d entries after filtering", len(entries))
	return entries, nil
}

// GroomMessages grooms raw commit messages, for messages that haven't been
// committed yet.
func (r *Runner) GroomMessages(msgs []string) []*model.Entry {
	entries := make([]*model.Entry, len(msgs))
	for i, msg := range msgs {
		entries[i] = commit.Groom(&model.Commit{Message: msg, AuthorName: r.cfg.Me})
	}
	return entries
}

func (r *Runner) filter(entries []*model.Entry) ([]*model.Entry, error) {
	since, err := r.cfg.SinceTime()
	if err != nil {
		return nil, err
	}

	var res []*model.Entry
	for _, e := range entries {
		if !since.IsZero() {
			if date, err := time.Parse(time.RFC3339, e.Date); err == nil && date.Before(since) {
				continue
			}
		}
		if r.cfg.Mine && !strings.EqualFold(e.Author, r.cfg.Me) {
			continue
		}
		if len(r.cfg.Statuses) > 0 && !statusAllowed(e.Status, r.cfg.Statuses) {
			continue
		}
		res = append(res, e)
	}
	return res, nil
}

func statusAllowed(status string, cands []string) bool {
	for _, cand := range cands {
		if strings.EqualFold(status, cand) {
			return true
		}
	}
	return false
}
