// Package commit contains code for reading time metadata out of commit
// messages and grooming commits into journal entries.
package commit

// Format is the metadata notation used on a line.
type Format int

const (
	FormatNone Format = iota

	// FormatCompact is a single bracket with units, like [2h30 done], [45m]
	// or [5 done].
	FormatCompact

	// FormatClassic is one or more brackets, each holding a number or a
	// status, like [2][30][done].
	FormatClassic
)

func (f Format) String() string {
	switch f {
	case FormatNone:
		return "NONE"
	case FormatCompact:
		return "COMPACT"
	case FormatClassic:
		return "CLASSIC"
	default:
		return "<UNKNOWN>"
	}
}
