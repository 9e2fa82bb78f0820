package commit

import (
	"strings"

	"github.com/jeffrom/gitj/model"
)

// UnknownAuthor is used when a commit has neither an author login nor a
// name.
const UnknownAuthor = "?"

// Groom turns a commit into a journal entry. The first non-blank line
// carrying metadata wins: its metadata is used, and it is stripped from the
// title or dropped from the description.
func Groom(c *model.Commit) *model.Entry {
	lines := contentLines(c.Message)

	var meta Meta
	metaLine := -1
	for i, line := range lines {
		m, _ := ParseLine(line)
		if m.Found() {
			meta = m
			metaLine = i
			break
		}
	}

	var name string
	var desc []string
	if len(lines) > 0 {
		name = lines[0]
		for i, line := range lines[1:] {
			if i+1 == metaLine {
				continue
			}
			desc = append(desc, line)
		}
	}
	if metaLine == 0 {
		name = Strip(name)
	}
	if name == "" {
		name = c.Subject()
	}

	return &model.Entry{
		SHA:         c.SHA,
		Name:        name,
		Description: strings.Join(desc, "\n"),
		Date:        c.AuthorDate,
		Duration:    meta.Duration,
		Status:      meta.Status,
		Author:      resolveAuthor(c),
		URL:         c.URL,
	}
}

// GroomAll grooms commits in order.
func GroomAll(commits []*model.Commit) []*model.Entry {
	entries := make([]*model.Entry, len(commits))
	for i, c := range commits {
		entries[i] = Groom(c)
	}
	return entries
}

// contentLines splits a message into lines, dropping blank ones.
func contentLines(msg string) []string {
	var lines []string
	for _, line := range strings.Split(msg, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

func resolveAuthor(c *model.Commit) string {
	if c.AuthorLogin != "" {
		return c.AuthorLogin
	}
	if c.AuthorName != "" {
		return c.AuthorName
	}
	return UnknownAuthor
}
