// Package message turns a budgeted diff into a commit message through an
// external completion service.
package message

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

// Language selects the output language of the generated message.
type Language string

const (
	LanguageEnglish      Language = "en"
	LanguagePortugueseBR Language = "pt-br"
)

// ParseLanguage validates a --lang flag value.
func ParseLanguage(s string) (Language, error) {
	switch Language(strings.ToLower(s)) {
	case LanguageEnglish, "":
		return LanguageEnglish, nil
	case LanguagePortugueseBR:
		return LanguagePortugueseBR, nil
	default:
		return "", errors.Newf("unsupported language %q (supported: en, pt-br)", s)
	}
}

// Request carries everything the service needs for one generation call. It is
// immutable once built; model name and token ceiling pass through verbatim.
type Request struct {
	Diff      string
	Model     string
	MaxTokens int
	Language  Language
}

// Message is the parsed model output. It lives for a single workflow run:
// generated, optionally replaced by a review edit, committed once.
type Message struct {
	Summary string
	Body    string
}

// String renders the message the way git expects it on stdin: summary line,
// blank line, body.
func (m Message) String() string {
	if m.Body == "" {
		return m.Summary
	}
	return fmt.Sprintf("%s\n\n%s", m.Summary, m.Body)
}

// Parse splits raw model output into summary and body: the first non-empty
// line is the summary, everything after it is the body. ok is false when the
// response contains no usable text.
func Parse(raw string) (Message, bool) {
	lines := strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n")

	start := -1
	for i, line := range lines {
		if strings.TrimSpace(line) != "" {
			start = i
			break
		}
	}
	if start == -1 {
		return Message{}, false
	}

	m := Message{Summary: strings.TrimSpace(lines[start])}
	if start+1 < len(lines) {
		m.Body = strings.TrimSpace(strings.Join(lines[start+1:], "\n"))
	}
	return m, true
}
