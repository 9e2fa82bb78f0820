package runner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"regexp"
	"sort"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jeffrom/gitj/model"
)

const (
	bucketStatus = "status"
	bucketAuthor = "author"
)

type Stats struct {
	Commits int64
	// Tracked is the number of commits that carried time metadata.
	Tracked int64
	Minutes int64
	Counts  map[string][]*statCount
}

func NewStats(entries []*model.Entry) *Stats {
	s := &Stats{Counts: make(map[string][]*statCount)}
	for _, e := range entries {
		s.AddEntry(e)
	}
	return s
}

func (s *Stats) AddEntry(e *model.Entry) {
	s.Commits++
	if !e.HasMeta() {
		return
	}
	s.Tracked++
	n := int64(e.Duration)
	s.Minutes += n
	s.Add(bucketStatus, e.Status, n)
	s.Add(bucketAuthor, e.Author, n)
}

func (s *Stats) Add(bucket, name string, n int64) {
	counts := s.Counts[bucket]
	count, found := s.findCount(name, counts)
	if !found {
		counts = append(counts, count)
	}
	count.Add(n)

	s.Counts[bucket] = counts
}

// MinutesFor returns the total minutes recorded for name in bucket.
func (s *Stats) MinutesFor(bucket, name string) int64 {
	count, _ := s.findCount(name, s.Counts[bucket])
	return count.n
}

func (s *Stats) findCount(name string, counts []*statCount) (*statCount, bool) {
	for _, c := range counts {
		if c.label == name {
			return c, true
		}
	}
	return &statCount{label: name}, false
}

func (s *Stats) sortedBuckets() []string {
	buckets := make([]string, len(s.Counts))
	i := 0
	for name := range s.Counts {
		buckets[i] = name
		i++
	}
	sort.Strings(buckets)
	return buckets
}

type statCount struct {
	label string
	n     int64
	hits  int64
}

func (c *statCount) Add(n int64) {
	c.n += n
	c.hits++
}

// TextSummary writes the totals and, per bucket, the time spent on each
// label. Only the top ten labels per bucket are written unless all is set.
func (s *Stats) TextSummary(w io.Writer, all bool) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(fmt.Sprintf("%d commits, %d tracked\n", s.Commits, s.Tracked))
	bw.WriteString(fmt.Sprintf("%s total\n\n", FormatMinutes(int(s.Minutes))))

	for _, name := range s.sortedBuckets() {
		counts := s.Counts[name]
		sort.SliceStable(counts, func(i, j int) bool {
			if counts[i].n == counts[j].n {
				return counts[i].label < counts[j].label
			}
			return counts[i].n > counts[j].n
		})
		bw.WriteString(fmt.Sprintf("%s:\n", toTitle(name)))
		for i, count := range counts {
			if !all && i >= 10 {
				break
			}
			label := count.label
			if label == "" {
				label = "n/a"
			}
			bw.WriteString(fmt.Sprintf("  %20s\t\t%8s\t%d\n", label, FormatMinutes(int(count.n)), count.hits))
		}
		bw.WriteString("\n")
	}
	return bw.Flush()
}

func (r *Runner) Stats(ctx context.Context, ref string) (*Stats, error) {
	entries, err := r.Journal(ctx, ref)
	if err != nil {
		return nil, err
	}
	return NewStats(entries), nil
}

// FormatMinutes renders minutes like 2h30m, 45m or 3h.
func FormatMinutes(mins int) string {
	h, m := mins/60, mins%60
	switch {
	case h == 0:
		return fmt.Sprintf("%dm", m)
	case m == 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dh%02dm", h, m)
	}
}

var nonAlphaRE = regexp.MustCompile(`[^A-Za-z]`)

func toTitle(s string) string {
	s = nonAlphaRE.ReplaceAllLiteralString(s, " ")
	return cases.Title(language.English).String(s)
}
