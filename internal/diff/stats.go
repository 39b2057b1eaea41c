package diff

import (
	"fmt"
	"strings"
)

// Stats are headline counts scanned out of unified diff text.
type Stats struct {
	FilesChanged int
	Insertions   int
	Deletions    int
}

// ParseStats walks the diff line by line. Header lines ("+++", "---") are not
// counted as changes.
func ParseStats(diff string) Stats {
	var s Stats
	for _, line := range strings.Split(diff, "\n") {
		switch {
		case strings.HasPrefix(line, "diff --git "):
			s.FilesChanged++
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
		case strings.HasPrefix(line, "+"):
			s.Insertions++
		case strings.HasPrefix(line, "-"):
			s.Deletions++
		}
	}
	return s
}

// String renders the stats the way git's own shortstat line reads.
func (s Stats) String() string {
	return fmt.Sprintf("%s changed, %s(+), %s(-)",
		plural(s.FilesChanged, "file"),
		plural(s.Insertions, "insertion"),
		plural(s.Deletions, "deletion"))
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
