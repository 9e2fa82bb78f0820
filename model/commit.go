package model

import "strings"

// Commit is a commit as read from a version control source. AuthorLogin and
// AuthorName are empty when the source doesn't know them.
type Commit struct {
	SHA         string `json:"sha"`
	Message     string `json:"message"`
	AuthorDate  string `json:"author_date"`
	AuthorLogin string `json:"author_login,omitempty"`
	AuthorName  string `json:"author_name,omitempty"`
	URL         string `json:"url,omitempty"`
}

func (c *Commit) ShortID() string {
	if len(c.SHA) < 8 {
		return c.SHA
	}
	return c.SHA[:8]
}

// Subject returns the first line of the message.
func (c *Commit) Subject() string {
	subject, _, _ := strings.Cut(c.Message, "\n")
	return strings.TrimSuffix(subject, "\r")
}
