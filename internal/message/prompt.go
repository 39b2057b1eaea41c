package message

import "strings"

const instructions = `Write a commit message for the diff below.

The first line is a short imperative summary of at most 72 characters.
If the change needs explanation, add a blank line and then a body describing
what changed and why. Respond with the commit message only, no code fences
and no surrounding quotes.`

const portugueseDirective = "Write the entire commit message in Brazilian Portuguese."

// BuildPrompt assembles the user prompt for a request. It is deterministic:
// the same request always produces the same prompt.
func BuildPrompt(req Request) string {
	var b strings.Builder
	b.WriteString(instructions)
	if req.Language == LanguagePortugueseBR {
		b.WriteString("\n")
		b.WriteString(portugueseDirective)
	}
	b.WriteString("\n\n")
	b.WriteString(req.Diff)
	return b.String()
}
