// Package vcs abstracts the places commits are read from: the local git
// repository, or a hosted one.
package vcs

import (
	"context"
	"fmt"

	"github.com/jeffrom/gitj/model"
)

type NotFoundError struct {
	Ref string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("vcs: ref %q not found", e.Ref)
}

type Interface interface {
	// ReadCommits returns the commits reachable from ref, newest first. An
	// empty ref means the current branch.
	ReadCommits(ctx context.Context, ref string) ([]*model.Commit, error)
	CurrentBranch(ctx context.Context) (string, error)
	// ReadRemoteURL returns the web URL of the repository, or an empty
	// string if there isn't one.
	ReadRemoteURL(ctx context.Context, upstream string) (string, error)
}
