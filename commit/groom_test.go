package commit

import (
	"testing"

	"github.com/jeffrom/gitj/model"
)

func mockCommit(message string) *model.Commit {
	return &model.Commit{
		SHA:         "abc123",
		Message:     message,
		AuthorDate:  "2024-01-15T10:00:00Z",
		AuthorLogin: "testuser",
		AuthorName:  "Test User",
		URL:         "https://github.com/test/repo/commit/abc123",
	}
}

func TestGroom(t *testing.T) {
	tcs := []struct {
		name           string
		message        string
		expectName     string
		expectDesc     string
		expectDuration int
		expectStatus   string
	}{
		{
			name:           "compact-next-line",
			message:        "Title\n[2h30 done]\nDescription",
			expectName:     "Title",
			expectDesc:     "Description",
			expectDuration: 150,
			expectStatus:   "done",
		},
		{
			name:           "compact-minutes-status",
			message:        "Title\n[45m wip]",
			expectName:     "Title",
			expectDuration: 45,
			expectStatus:   "wip",
		},
		{
			name:           "compact-hours",
			message:        "Title\n[1h]",
			expectName:     "Title",
			expectDuration: 60,
		},
		{
			name:           "compact-minutes",
			message:        "Title\n[30m]",
			expectName:     "Title",
			expectDuration: 30,
		},
		{
			name:           "classic",
			message:        "Title\n[2][30][done]\nDescription",
			expectName:     "Title",
			expectDesc:     "Description",
			expectDuration: 150,
			expectStatus:   "done",
		},
		{
			name:           "classic-minutes",
			message:        "Title\n[90]",
			expectName:     "Title",
			expectDuration: 90,
		},
		{
			name:         "classic-status",
			message:      "Title\n[done]",
			expectName:   "Title",
			expectStatus: "done",
		},
		{
			name:           "classic-minutes-status",
			message:        "Title\n[2][done]",
			expectName:     "Title",
			expectDuration: 2,
			expectStatus:   "done",
		},
		{
			name:           "implicit-minutes",
			message:        "Title\n[5 done]",
			expectName:     "Title",
			expectDuration: 5,
			expectStatus:   "done",
		},
		{
			name:           "title-compact",
			message:        "feat: add login [30m done]",
			expectName:     "feat: add login",
			expectDuration: 30,
			expectStatus:   "done",
		},
		{
			name:           "title-implicit",
			message:        "fix: bug [5 done]",
			expectName:     "fix: bug",
			expectDuration: 5,
			expectStatus:   "done",
		},
		{
			name:           "title-start",
			message:        "[1h wip] refactor code",
			expectName:     "refactor code",
			expectDuration: 60,
			expectStatus:   "wip",
		},
		{
			name:           "title-classic",
			message:        "Title [1][15][review]\nbody",
			expectName:     "Title",
			expectDesc:     "body",
			expectDuration: 75,
			expectStatus:   "review",
		},
		{
			name:           "last-line",
			message:        "Title\nSome description\n[45m done]",
			expectName:     "Title",
			expectDesc:     "Some description",
			expectDuration: 45,
			expectStatus:   "done",
		},
		{
			name:           "after-several-lines",
			message:        "Title\nLine 2\nLine 3\n[2h wip]",
			expectName:     "Title",
			expectDesc:     "Line 2\nLine 3",
			expectDuration: 120,
			expectStatus:   "wip",
		},
		{
			name:           "first-match-wins",
			message:        "Title [30m done]\n[1h wip]",
			expectName:     "Title",
			expectDesc:     "[1h wip]",
			expectDuration: 30,
			expectStatus:   "done",
		},
		{
			name:       "no-metadata",
			message:    "Title only",
			expectName: "Title only",
		},
		{
			name:           "blank-lines",
			message:        "Title\n\n\nLine 2\n   \n[1h]\n\nLine 3\n",
			expectName:     "Title",
			expectDesc:     "Line 2\nLine 3",
			expectDuration: 60,
		},
		{
			name:           "empty-brackets-skipped",
			message:        "Title\n[]\n[15m]",
			expectName:     "Title",
			expectDesc:     "[]",
			expectDuration: 15,
		},
		{
			name:       "three-digit-runs",
			message:    "Title [1 2 3]\nDesc",
			expectName: "Title [1 2 3]",
			expectDesc: "Desc",
		},
		{
			name:           "metadata-only",
			message:        "[30m]",
			expectName:     "[30m]",
			expectDuration: 30,
		},
		{
			name:           "crlf",
			message:        "Title\r\n[1h done]\r\nDesc\r\n",
			expectName:     "Title",
			expectDesc:     "Desc",
			expectDuration: 60,
			expectStatus:   "done",
		},
		{
			name:       "compact-overflow",
			message:    "Title [999999999999999999h done]",
			expectName: "Title [999999999999999999h done]",
		},
		{
			name:           "classic-overflow-keeps-duration",
			message:        "Title [999999999999999999][1][done]",
			expectName:     "Title",
			expectDuration: 999999999999999999,
			expectStatus:   "done",
		},
		{
			name:    "empty",
			message: "",
		},
		{
			name:    "all-blank",
			message: "\n  \n\t\n",
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			e := Groom(mockCommit(tc.message))
			if e.Name != tc.expectName {
				t.Errorf("expected name %q, got %q", tc.expectName, e.Name)
			}
			if e.Description != tc.expectDesc {
				t.Errorf("expected description %q, got %q", tc.expectDesc, e.Description)
			}
			if e.Duration != tc.expectDuration {
				t.Errorf("expected duration %d, got %d", tc.expectDuration, e.Duration)
			}
			if e.Status != tc.expectStatus {
				t.Errorf("expected status %q, got %q", tc.expectStatus, e.Status)
			}
		})
	}
}

func TestGroomFields(t *testing.T) {
	e := Groom(mockCommit("Title\n[1h]"))
	if e.SHA != "abc123" {
		t.Errorf("expected sha %q, got %q", "abc123", e.SHA)
	}
	if e.Date != "2024-01-15T10:00:00Z" {
		t.Errorf("expected date %q, got %q", "2024-01-15T10:00:00Z", e.Date)
	}
	if e.Author != "testuser" {
		t.Errorf("expected author %q, got %q", "testuser", e.Author)
	}
	if e.URL != "https://github.com/test/repo/commit/abc123" {
		t.Errorf("expected url %q, got %q", "https://github.com/test/repo/commit/abc123", e.URL)
	}
}

func TestGroomAuthor(t *testing.T) {
	tcs := []struct {
		name   string
		login  string
		author string
		expect string
	}{
		{name: "login", login: "octocat", author: "Mona", expect: "octocat"},
		{name: "name", author: "Mona", expect: "Mona"},
		{name: "unknown", expect: UnknownAuthor},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			c := &model.Commit{Message: "Title", AuthorLogin: tc.login, AuthorName: tc.author}
			if e := Groom(c); e.Author != tc.expect {
				t.Errorf("expected author %q, got %q", tc.expect, e.Author)
			}
		})
	}
}

func TestGroomAll(t *testing.T) {
	commits := []*model.Commit{
		mockCommit("one [10m]"),
		mockCommit("two"),
	}
	entries := GroomAll(commits)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Name != "one" || entries[0].Duration != 10 {
		t.Errorf("expected first entry to be groomed, got %+v", entries[0])
	}
	if entries[1].Name != "two" || entries[1].HasMeta() {
		t.Errorf("expected second entry without metadata, got %+v", entries[1])
	}
}
