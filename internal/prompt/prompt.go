package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/cockroachdb/errors"
)

// TerminalPrompter asks questions on an interactive terminal.
type TerminalPrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewTerminalPrompter reads answers from in and writes questions to out.
func NewTerminalPrompter(in io.Reader, out io.Writer) *TerminalPrompter {
	return &TerminalPrompter{in: bufio.NewReader(in), out: out}
}

// Confirm asks a yes/no question and keeps asking until it gets an
// intelligible answer. An empty answer picks the default.
func (p *TerminalPrompter) Confirm(question string, defaultYes bool) (bool, error) {
	suffix := "[Y/n]"
	if !defaultYes {
		suffix = "[y/N]"
	}

	for {
		fmt.Fprintf(p.out, "%s %s ", question, suffix)
		line, err := p.in.ReadString('\n')

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "":
			if err == nil || err == io.EOF {
				return defaultYes, nil
			}
			return false, errors.Wrap(err, "reading answer")
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}

		if err != nil {
			// No more input is coming, fall back to the default.
			return defaultYes, nil
		}
		fmt.Fprintln(p.out, `Please answer "y" or "n".`)
	}
}

// EditText opens initial in the user's editor and returns the edited text,
// trimmed. $VISUAL wins over $EDITOR; vi is the fallback.
func (p *TerminalPrompter) EditText(initial string) (string, error) {
	f, err := os.CreateTemp("", "lazycommit-*.txt")
	if err != nil {
		return "", errors.Wrap(err, "creating edit buffer")
	}
	path := f.Name()
	defer os.Remove(path)

	if _, err := f.WriteString(initial); err != nil {
		f.Close()
		return "", errors.Wrap(err, "writing edit buffer")
	}
	if err := f.Close(); err != nil {
		return "", errors.Wrap(err, "writing edit buffer")
	}

	parts := editorCommand()
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return "", errors.Wrapf(err, "editor %s failed", parts[0])
	}

	edited, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrap(err, "reading edit buffer")
	}
	return strings.TrimSpace(string(edited)), nil
}

// editorCommand picks the editor argv. $VISUAL wins over $EDITOR, vi is the
// fallback; values that are empty or all whitespace are skipped.
func editorCommand() []string {
	for _, v := range []string{os.Getenv("VISUAL"), os.Getenv("EDITOR")} {
		if parts := strings.Fields(v); len(parts) > 0 {
			return parts
		}
	}
	return []string{"vi"}
}
