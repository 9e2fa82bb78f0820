// Package githubapi implements vcs.Interface using the GitHub REST API.
package githubapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"

	"github.com/jeffrom/gitj/config"
	"github.com/jeffrom/gitj/model"
	"github.com/jeffrom/gitj/vcs"
)

const perPage = 100

// GitHub implements vcs.Interface for a single GitHub repository.
type GitHub struct {
	cfg    config.Config
	client *github.Client
	owner  string
	repo   string
}

func New(cfg config.Config, client *github.Client) (*GitHub, error) {
	owner, repo, err := cfg.RepoParts()
	if err != nil {
		return nil, err
	}
	if client == nil {
		client = NewClient(Token(cfg))
	}
	return &GitHub{
		cfg:    cfg,
		client: client,
		owner:  owner,
		repo:   repo,
	}, nil
}

// NewClient returns an API client, authenticated if token isn't empty.
func NewClient(token string) *github.Client {
	if token == "" {
		return github.NewClient(nil)
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(context.Background(), ts)
	return github.NewClient(tc)
}

// Token returns the configured token, falling back to the environment.
func Token(cfg config.Config) string {
	if cfg.Token != "" {
		return cfg.Token
	}
	for _, key := range []string{"GITJ_GITHUB_TOKEN", "GITHUB_TOKEN"} {
		if token := os.Getenv(key); token != "" {
			return token
		}
	}
	return ""
}

func (g *GitHub) ReadCommits(ctx context.Context, ref string) ([]*model.Commit, error) {
	since, err := g.cfg.SinceTime()
	if err != nil {
		return nil, err
	}
	opt := &github.CommitsListOptions{
		SHA:         ref,
		Since:       since,
		ListOptions: github.ListOptions{PerPage: perPage},
	}

	var commits []*model.Commit
	for {
		rcs, resp, err := g.client.Repositories.ListCommits(ctx, g.owner, g.repo, opt)
		if err != nil {
			return nil, g.wrapErr(resp, ref, err)
		}
		for _, rc := range rcs {
			commits = append(commits, toCommit(rc))
		}
		g.cfg.Debugf("githubapi: read %d commits (page %d)", len(rcs), opt.Page)
		if resp.NextPage == 0 {
			break
		}
		opt.Page = resp.NextPage
	}
	return commits, nil
}

func toCommit(rc *github.RepositoryCommit) *model.Commit {
	c := &model.Commit{
		SHA:         rc.GetSHA(),
		Message:     rc.GetCommit().GetMessage(),
		AuthorLogin: rc.GetAuthor().GetLogin(),
		AuthorName:  rc.GetCommit().GetAuthor().GetName(),
		URL:         rc.GetHTMLURL(),
	}
	if date := rc.GetCommit().GetAuthor().GetDate(); !date.IsZero() {
		c.AuthorDate = date.UTC().Format(time.RFC3339)
	}
	return c
}

func (g *GitHub) CurrentBranch(ctx context.Context) (string, error) {
	repo, err := g.getRepo(ctx)
	if err != nil {
		return "", err
	}
	return repo.GetDefaultBranch(), nil
}

// ReadRemoteURL returns the repository's web page. upstream is ignored.
func (g *GitHub) ReadRemoteURL(ctx context.Context, upstream string) (string, error) {
	repo, err := g.getRepo(ctx)
	if err != nil {
		return "", err
	}
	return repo.GetHTMLURL(), nil
}

func (g *GitHub) getRepo(ctx context.Context) (*github.Repository, error) {
	repo, resp, err := g.client.Repositories.Get(ctx, g.owner, g.repo)
	if err != nil {
		return nil, g.wrapErr(resp, g.owner+"/"+g.repo, err)
	}
	return repo, nil
}

func (g *GitHub) wrapErr(resp *github.Response, ref string, err error) error {
	if resp != nil && resp.StatusCode == http.StatusNotFound {
		return vcs.NotFoundError{Ref: ref}
	}
	var rle *github.RateLimitError
	if errors.As(err, &rle) {
		return fmt.Errorf("githubapi: rate limited until %s, set GITJ_GITHUB_TOKEN: %w", rle.Rate.Reset.Time.Format(time.Kitchen), err)
	}
	return fmt.Errorf("githubapi: %s/%s: %w", g.owner, g.repo, err)
}
