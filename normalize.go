package golingo

import (
	"regexp"
	"strings"
)

// NumberPlaceholder is the token substituted for every run of decimal
// digits when deriving pattern keys and pattern templates.
const NumberPlaceholder = "##"

// Default language codes used when the caller supplies empty values.
const (
	DefaultFromLang = "auto"
	DefaultToLang   = "en"
)

var digitRun = regexp.MustCompile(`[0-9]+`)

// Normalize lowercases text, collapses internal whitespace to single
// spaces, and trims leading/trailing whitespace. It is pure and idempotent.
func Normalize(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}

// Key derives the exact-match cache key for a text and language pair.
func Key(text, from, to string) string {
	if from == "" {
		from = DefaultFromLang
	}
	if to == "" {
		to = DefaultToLang
	}
	return Normalize(text) + "|" + from + "|" + to
}

// PatternKey derives the number-elided cache key: every maximal run of
// decimal digits in the normalized text is replaced by NumberPlaceholder.
func PatternKey(text, from, to string) string {
	return Key(TemplateNumbers(text), from, to)
}

// TemplateNumbers replaces every digit run in text with NumberPlaceholder.
func TemplateNumbers(text string) string {
	return digitRun.ReplaceAllString(text, NumberPlaceholder)
}

// ContainsNumbers reports whether text contains at least one digit run.
func ContainsNumbers(text string) bool {
	return digitRun.MatchString(text)
}

// ExtractNumbers returns the digit runs in text in order of appearance.
func ExtractNumbers(text string) []string {
	return digitRun.FindAllString(text, -1)
}

// SubstituteNumbers replaces successive NumberPlaceholder occurrences in
// template, left to right, with successive elements of numbers. When
// numbers runs out first, the remaining placeholders are left as literal
// placeholder text.
func SubstituteNumbers(template string, numbers []string) string {
	var b strings.Builder
	rest := template
	for _, n := range numbers {
		idx := strings.Index(rest, NumberPlaceholder)
		if idx < 0 {
			break
		}
		b.WriteString(rest[:idx])
		b.WriteString(n)
		rest = rest[idx+len(NumberPlaceholder):]
	}
	b.WriteString(rest)
	return b.String()
}
