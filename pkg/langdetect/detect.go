// Package langdetect guesses the language of a code snippet. It backs the
// importer, which tags fenced code blocks that arrive without an info string.
package langdetect

import (
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// candidates narrows the classifier to languages that commonly appear in
// fenced blocks. Without this, enry considers its full catalogue and the
// confidence on short snippets is too low to be usable.
var candidates = []string{
	"Go", "Python", "Shell", "JavaScript", "TypeScript",
	"Ruby", "Rust", "Java", "C", "C++", "SQL", "JSON",
	"YAML", "HTML", "CSS", "Dockerfile",
}

// detector recognizes one language from a cheap textual signal. These run
// before the classifier because short snippets rarely classify safely.
type detector struct {
	lang  string
	match func(s string) bool
}

var detectors = []detector{
	{"go", func(s string) bool {
		return strings.HasPrefix(s, "package ") || strings.Contains(s, "func ")
	}},
	{"python", func(s string) bool {
		return strings.Contains(s, "def ") && strings.Contains(s, "):") ||
			strings.Contains(s, "__main__")
	}},
	{"html", func(s string) bool {
		l := strings.ToLower(s)
		return strings.Contains(l, "<!doctype html") || strings.Contains(l, "<html")
	}},
	{"json", func(s string) bool {
		return (strings.HasPrefix(s, "{") || strings.HasPrefix(s, "[")) &&
			strings.Contains(s, `":`)
	}},
	{"dockerfile", func(s string) bool {
		return strings.HasPrefix(s, "FROM ") && strings.Contains(s, "\nRUN ")
	}},
	{"sql", func(s string) bool {
		l := strings.ToUpper(s)
		return strings.Contains(l, "SELECT ") && strings.Contains(l, " FROM ")
	}},
	{"rust", func(s string) bool {
		return strings.Contains(s, "fn ") && strings.Contains(s, "let ")
	}},
}

// Guess returns a fence info string for code, or ok=false when nothing
// matches with reasonable confidence.
func Guess(code string) (string, bool) {
	trimmed := strings.TrimSpace(code)
	if trimmed == "" {
		return "", false
	}

	if lang, safe := enry.GetLanguageByShebang([]byte(code)); safe {
		return fenceTag(lang), true
	}

	for _, d := range detectors {
		if d.match(trimmed) {
			return d.lang, true
		}
	}

	if lang, safe := enry.GetLanguageByClassifier([]byte(code), candidates); safe && lang != "" {
		return fenceTag(lang), true
	}
	return "", false
}

// fenceTag converts an enry language name to the lowercase tag used in
// fence info strings.
func fenceTag(lang string) string {
	if lang == "Shell" {
		return "bash"
	}
	return strings.ToLower(lang)
}
