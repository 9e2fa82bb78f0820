package commit

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Meta is the time metadata found in a commit message.
type Meta struct {
	// Duration is always in minutes.
	Duration int
	Status   string
}

// Found reports whether the metadata is worth keeping. Stray empty brackets
// parse to a zero Meta and don't count.
func (m Meta) Found() bool {
	return m.Duration > 0 || m.Status != ""
}

var (
	bracketRE = regexp.MustCompile(`\[(.*?)\]`)
	digitsRE  = regexp.MustCompile(`\d+`)

	// 2h, 2h30, 2h30m or 30m, with an optional status.
	compactUnitsRE = regexp.MustCompile(`(?i)^(?:(\d+)h(?:(\d+)m?)?|(\d+)m)(?:\s+(\w+))?$`)
	// 5 done. The status must start with a letter so "2 30" isn't read as
	// minutes plus status.
	compactImplicitRE = regexp.MustCompile(`(?i)^(\d+)\s+([a-z]\w*)$`)
	compactHintRE     = regexp.MustCompile(`(?i)\d[hm]`)

	stripCompactRE = regexp.MustCompile(`\s*\[.*?\]\s*`)
	stripClassicRE = regexp.MustCompile(`\s*\[.*?\]`)
)

// Brackets returns the contents of every [...] on the line, in order.
func Brackets(line string) []string {
	matches := bracketRE.FindAllStringSubmatch(line, -1)
	if len(matches) == 0 {
		return nil
	}
	res := make([]string, len(matches))
	for i, m := range matches {
		res[i] = m[1]
	}
	return res
}

// LooksCompact reports whether a bracket's content is in the compact
// notation.
func LooksCompact(s string) bool {
	return compactHintRE.MatchString(s) || compactImplicitRE.MatchString(s)
}

// Classify decides which grammar applies to a line's brackets.
func Classify(brackets []string) Format {
	switch {
	case len(brackets) == 0:
		return FormatNone
	case len(brackets) == 1 && LooksCompact(brackets[0]):
		return FormatCompact
	default:
		return FormatClassic
	}
}

// ParseCompact parses a single bracket's content in the compact notation:
// [2h30 done], [45m wip], [1h], [5 done]. It returns false when nothing matched,
// which is not the same as a zero duration.
func ParseCompact(s string) (Meta, bool) {
	if m := compactUnitsRE.FindStringSubmatch(s); m != nil {
		hours, ok := atoi(m[1])
		if !ok {
			return Meta{}, false
		}
		minStr := m[2]
		if minStr == "" {
			minStr = m[3]
		}
		mins, ok := atoi(minStr)
		if !ok {
			return Meta{}, false
		}
		dur, ok := fold(hours, mins)
		if !ok {
			return Meta{}, false
		}
		return Meta{Duration: dur, Status: m[4]}, true
	}

	if m := compactImplicitRE.FindStringSubmatch(s); m != nil {
		mins, ok := atoi(m[1])
		if !ok {
			return Meta{}, false
		}
		return Meta{Duration: mins, Status: m[2]}, true
	}
	return Meta{}, false
}

// ParseClassic parses a line's brackets in the classic notation:
// [2][30][done]. Numbers accumulate positionally as hours then minutes, and a
// bracket without digits is the status. Brackets holding three or more
// numbers are skipped.
func ParseClassic(brackets []string) Meta {
	var meta Meta
	for _, b := range brackets {
		nums := digitsRE.FindAllString(b, -1)
		if len(nums) == 0 {
			meta.Status = b
			continue
		}
		if len(nums) >= 3 {
			continue
		}

		dur := meta.Duration
		valid := true
		for _, n := range nums {
			v, ok := atoi(n)
			if ok {
				dur, ok = fold(dur, v)
			}
			if !ok {
				valid = false
				break
			}
		}
		if valid {
			meta.Duration = dur
		}
	}
	return meta
}

// ParseLine reads the metadata from a single line, along with the notation
// it was written in.
func ParseLine(line string) (Meta, Format) {
	brackets := Brackets(line)
	format := Classify(brackets)
	switch format {
	case FormatCompact:
		meta, _ := ParseCompact(brackets[0])
		return meta, format
	case FormatClassic:
		return ParseClassic(brackets), format
	}
	return Meta{}, format
}

// Strip removes the metadata brackets from a line. A compact bracket is
// removed once, classic brackets are all removed. Lines without brackets are
// returned unchanged.
func Strip(line string) string {
	switch Classify(Brackets(line)) {
	case FormatCompact:
		loc := stripCompactRE.FindStringIndex(line)
		return strings.TrimSpace(line[:loc[0]] + " " + line[loc[1]:])
	case FormatClassic:
		return strings.TrimSpace(stripClassicRE.ReplaceAllLiteralString(line, ""))
	}
	return line
}

// fold returns acc*60 + v, or false if that doesn't fit in an int. Both
// arguments are non-negative.
func fold(acc, v int) (int, bool) {
	if acc > (math.MaxInt-v)/60 {
		return 0, false
	}
	return acc*60 + v, true
}

// atoi parses a run of digits. Empty input is zero.
func atoi(s string) (int, bool) {
	if s == "" {
		return 0, true
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
