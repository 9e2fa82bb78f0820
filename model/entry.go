package model

// Entry is a groomed commit: its title and description with the time
// metadata stripped out, the duration in minutes, and the status.
type Entry struct {
	SHA         string `json:"sha"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Duration    int    `json:"duration"`
	Status      string `json:"status"`
	Author      string `json:"author"`
	URL         string `json:"url"`
}

func (e *Entry) ShortID() string {
	if len(e.SHA) < 8 {
		return e.SHA
	}
	return e.SHA[:8]
}

// HasMeta reports whether the commit carried any time metadata.
func (e *Entry) HasMeta() bool {
	return e.Duration > 0 || e.Status != ""
}
