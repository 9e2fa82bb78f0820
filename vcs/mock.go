package vcs

import (
	"context"
	"time"

	"github.com/jeffrom/gitj/model"
)

type Mock struct {
	t         time.Time
	branch    string
	remoteURL string
	commits   []*model.Commit
	refs      map[string][]*model.Commit
}

func NewMock() *Mock {
	return &Mock{
		t:      time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC),
		branch: "main",
		refs:   make(map[string][]*model.Commit),
	}
}

func (m *Mock) SetBranch(branch string) *Mock {
	m.branch = branch
	return m
}

func (m *Mock) SetRemoteURL(u string) *Mock {
	m.remoteURL = u
	return m
}

// SetCommits sets the commits returned for the current branch. Commits
// without an author date are given one, a minute apart going back in time.
func (m *Mock) SetCommits(commits ...*model.Commit) *Mock {
	m.commits = m.prepare(commits)
	return m
}

// SetRefCommits sets the commits returned for a specific ref.
func (m *Mock) SetRefCommits(ref string, commits ...*model.Commit) *Mock {
	m.refs[ref] = m.prepare(commits)
	return m
}

func (m *Mock) prepare(commits []*model.Commit) []*model.Commit {
	finalCommits := make([]*model.Commit, len(commits))
	for i, commit := range commits {
		c := *commit
		if c.AuthorDate == "" {
			c.AuthorDate = m.t.Format(time.RFC3339)
			m.t = m.t.Add(-time.Minute)
		}
		finalCommits[i] = &c
	}
	return finalCommits
}

func (m *Mock) ReadCommits(ctx context.Context, ref string) ([]*model.Commit, error) {
	if ref == "" || ref == m.branch {
		return m.commits, nil
	}
	commits, ok := m.refs[ref]
	if !ok {
		return nil, NotFoundError{Ref: ref}
	}
	return commits, nil
}

func (m *Mock) CurrentBranch(ctx context.Context) (string, error) {
	return m.branch, nil
}

func (m *Mock) ReadRemoteURL(ctx context.Context, upstream string) (string, error) {
	return m.remoteURL, nil
}
