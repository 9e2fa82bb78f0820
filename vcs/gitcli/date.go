package gitcli

import (
	"fmt"
	"time"
)

// formatAuthorDate normalizes git's strict ISO 8601 date (%aI), such as
// 2020-08-17T16:26:10-07:00, to UTC RFC3339 so dates read from git match
// the ones from hosted sources.
func formatAuthorDate(s string) (string, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return "", fmt.Errorf("gitcli: invalid author date %q: %w", s, err)
	}
	return t.UTC().Format(time.RFC3339), nil
}
