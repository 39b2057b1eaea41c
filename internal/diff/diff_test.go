package diff

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestSummarizeIdentityWithinBudget(t *testing.T) {
	text := "diff --git a/x b/x\n+added line\n"

	if got := Summarize(text, Budget{MaxChars: len(text)}); got != text {
		t.Errorf("Summarize() changed a diff that fits the budget")
	}
	if got := Summarize(text, Budget{MaxChars: 10000}); got != text {
		t.Errorf("Summarize() changed a diff well under budget")
	}
}

func TestSummarizeZeroBudgetIsUnlimited(t *testing.T) {
	text := strings.Repeat("x", 500000)

	if got := Summarize(text, Budget{}); got != text {
		t.Error("Summarize() with zero budget must return the diff unchanged")
	}
}

func TestSummarizeTruncatesToPrefix(t *testing.T) {
	text := strings.Repeat("a", 40) + strings.Repeat("b", 60)

	got := Summarize(text, Budget{MaxChars: 50})

	if !strings.HasPrefix(got, "aaaaa") {
		t.Errorf("Summarize() = %q, want a prefix of the input", got)
	}
	if !strings.Contains(got, "[diff truncated at 50 characters]") {
		t.Errorf("Summarize() = %q, missing truncation marker", got)
	}
	if strings.Contains(got, "b") {
		t.Errorf("Summarize() = %q, kept content past the budget", got)
	}
	if len(got) > 50 {
		t.Errorf("Summarize() produced %d bytes for a 50 byte budget", len(got))
	}
}

func TestSummarizeTinyBudgetDropsMarker(t *testing.T) {
	got := Summarize("aaaaabbbbbccccc", Budget{MaxChars: 5})

	if got != "aaaaa" {
		t.Errorf("Summarize() = %q, want plain 5 byte prefix", got)
	}
}

func TestSummarizeMinBudgetKeepsMarker(t *testing.T) {
	text := strings.Repeat("line of diff\n", 10000)

	for _, max := range []int{MinBudget, 100, 4096, 99999} {
		got := Summarize(text, Budget{MaxChars: max})
		if len(got) > max {
			t.Errorf("budget %d: produced %d bytes", max, len(got))
		}
		if !strings.Contains(got, "[diff truncated at") {
			t.Errorf("budget %d: missing truncation marker", max)
		}
	}
}

func TestSummarizeBudgetIsUpperBound(t *testing.T) {
	text := strings.Repeat("line of diff\n", 100)

	for _, max := range []int{1, 7, 64, 500, len(text) - 1} {
		got := Summarize(text, Budget{MaxChars: max})
		if len(got) > max {
			t.Errorf("budget %d: produced %d bytes", max, len(got))
		}
	}
}

func TestSummarizeNeverSplitsRunes(t *testing.T) {
	text := strings.Repeat("é⚙️日本語", 50)

	for max := 1; max < 60; max++ {
		got := Summarize(text, Budget{MaxChars: max})
		if !utf8.ValidString(got) {
			t.Fatalf("budget %d: output is not valid UTF-8: %q", max, got)
		}
		if len(got) > max {
			t.Fatalf("budget %d: produced %d bytes", max, len(got))
		}
	}
}

func TestTruncated(t *testing.T) {
	if Truncated("short", Budget{MaxChars: 100}) {
		t.Error("Truncated() = true for a diff under budget")
	}
	if Truncated("longer than budget", Budget{MaxChars: 4}) != true {
		t.Error("Truncated() = false for a diff over budget")
	}
	if Truncated(strings.Repeat("x", 1000), Budget{}) {
		t.Error("Truncated() = true with unlimited budget")
	}
}

func TestParseStats(t *testing.T) {
	text := strings.Join([]string{
		"diff --git a/one.go b/one.go",
		"index 83db48f..bf269f4 100644",
		"--- a/one.go",
		"+++ b/one.go",
		"@@ -1,3 +1,4 @@",
		" unchanged",
		"+added one",
		"+added two",
		"-removed",
		"diff --git a/two.go b/two.go",
		"--- a/two.go",
		"+++ b/two.go",
		"@@ -5 +5 @@",
		"+only add",
	}, "\n")

	s := ParseStats(text)

	if s.FilesChanged != 2 {
		t.Errorf("FilesChanged = %d, want 2", s.FilesChanged)
	}
	if s.Insertions != 3 {
		t.Errorf("Insertions = %d, want 3", s.Insertions)
	}
	if s.Deletions != 1 {
		t.Errorf("Deletions = %d, want 1", s.Deletions)
	}
}

func TestStatsString(t *testing.T) {
	got := Stats{FilesChanged: 1, Insertions: 2, Deletions: 0}.String()
	want := "1 file changed, 2 insertions(+), 0 deletions(-)"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
