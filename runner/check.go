package runner

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/jeffrom/gitj/model"
)

var (
	errNoMeta = errors.New("no time metadata found")
	errNoTime = errors.New("no duration found")
)

type CheckFailure struct {
	Failures []FailureEntry
}

type FailureEntry struct {
	commitID    string
	commitTitle string
	err         error
}

func (cf CheckFailure) Error() string {
	return fmt.Sprintf("%d check(s) failed", len(cf.Failures))
}

func (cf CheckFailure) Is(other error) bool {
	_, ok := other.(CheckFailure)
	return ok
}

// WriteFailure writes each failing commit's title followed by its failures.
func (cf CheckFailure) WriteFailure(w io.Writer) error {
	if len(cf.Failures) == 0 {
		return nil
	}
	bw := bufio.NewWriter(w)

	var order []string
	byCommit := make(map[string][]FailureEntry)
	for _, failure := range cf.Failures {
		key := failure.commitID + "\x00" + failure.commitTitle
		if _, ok := byCommit[key]; !ok {
			order = append(order, key)
		}
		byCommit[key] = append(byCommit[key], failure)
	}

	for _, key := range order {
		failures := byCommit[key]
		first := failures[0]
		if len(first.commitID) >= 8 {
			bw.WriteString(first.commitID[:8])
			bw.WriteString(" ")
		} else if first.commitID != "" {
			bw.WriteString(first.commitID)
			bw.WriteString(" ")
		}
		bw.WriteString(first.commitTitle)
		bw.WriteString("\n")
		for _, failure := range failures {
			bw.WriteString("  ")
			bw.WriteString(failure.err.Error())
			bw.WriteString("\n")
		}
	}

	return bw.Flush()
}

// CheckMessages checks that raw commit messages carry time metadata.
func (r *Runner) CheckMessages(ctx context.Context, msgs []string) ([]*model.Entry, error) {
	return r.checkEntries(r.GroomMessages(msgs))
}

func (r *Runner) CheckReadMessage(ctx context.Context, rdr io.Reader) ([]*model.Entry, error) {
	raw, err := io.ReadAll(rdr)
	if err != nil {
		return nil, err
	}
	return r.CheckMessages(ctx, []string{string(raw)})
}

// CheckCommits checks the journal's commits on ref.
func (r *Runner) CheckCommits(ctx context.Context, ref string) ([]*model.Entry, error) {
	entries, err := r.Journal(ctx, ref)
	if err != nil {
		return nil, err
	}
	return r.checkEntries(entries)
}

func (r *Runner) checkEntries(entries []*model.Entry) ([]*model.Entry, error) {
	var failures []FailureEntry
	for _, e := range entries {
		failures = append(failures, r.checkEntry(e)...)
	}
	if len(failures) > 0 {
		return nil, CheckFailure{Failures: failures}
	}
	return entries, nil
}

func (r *Runner) checkEntry(e *model.Entry) []FailureEntry {
	newFailure := func(err error) FailureEntry {
		return FailureEntry{commitID: e.SHA, commitTitle: e.Name, err: err}
	}
	if !e.HasMeta() {
		return []FailureEntry{newFailure(errNoMeta)}
	}

	var failures []FailureEntry
	if r.cfg.RequireDuration && e.Duration == 0 {
		failures = append(failures, newFailure(errNoTime))
	}
	if e.Status != "" && len(r.cfg.AllowedStatuses) > 0 && !statusAllowed(e.Status, r.cfg.AllowedStatuses) {
		failures = append(failures, newFailure(fmt.Errorf("status %q is disallowed", e.Status)))
	}
	return failures
}
