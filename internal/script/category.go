package script

import "strings"

// Category selects how a line is styled. It has no effect on timing.
type Category int

const (
	Plain Category = iota
	Command
	Status
	Announcement
)

func (c Category) String() string {
	switch c {
	case Command:
		return "command"
	case Status:
		return "status"
	case Announcement:
		return "announcement"
	default:
		return "plain"
	}
}

// Classify maps a line to its display category from its leading
// characters.
func Classify(line string) Category {
	switch {
	case strings.HasPrefix(line, "$"):
		return Command
	case strings.HasPrefix(line, "✓"), strings.HasPrefix(line, "✨"):
		return Status
	case strings.HasPrefix(line, ">"):
		return Announcement
	default:
		return Plain
	}
}

// Sparkle reports whether a status line uses the ✨ marker, which the
// terminal styles apart from ✓.
func Sparkle(line string) bool {
	return strings.HasPrefix(line, "✨")
}
