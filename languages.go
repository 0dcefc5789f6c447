package golingo

import "strings"

// LanguageNames maps short language codes to human-readable names for
// display in CLIs and logs.
var LanguageNames = map[string]string{
	"auto": "Auto-detect",
	"ar":   "Arabic",
	"bg":   "Bulgarian",
	"cs":   "Czech",
	"da":   "Danish",
	"de":   "German",
	"el":   "Greek",
	"en":   "English",
	"es":   "Spanish",
	"fi":   "Finnish",
	"fr":   "French",
	"he":   "Hebrew",
	"hi":   "Hindi",
	"hu":   "Hungarian",
	"id":   "Indonesian",
	"it":   "Italian",
	"ja":   "Japanese",
	"ko":   "Korean",
	"nl":   "Dutch",
	"no":   "Norwegian",
	"pl":   "Polish",
	"pt":   "Portuguese",
	"ro":   "Romanian",
	"ru":   "Russian",
	"sv":   "Swedish",
	"th":   "Thai",
	"tr":   "Turkish",
	"uk":   "Ukrainian",
	"vi":   "Vietnamese",
	"zh":   "Chinese",
}

// GetLanguageName returns the human-readable name for a language code.
// Falls back to the code itself if not found.
func GetLanguageName(langCode string) string {
	if name, ok := LanguageNames[NormalizeLang(langCode)]; ok {
		return name
	}
	return langCode
}

// NormalizeLang lowercases a language code and reduces locale forms to
// their base code (e.g., "es-ES" and "es_ES" both become "es").
func NormalizeLang(langCode string) string {
	code := strings.ToLower(strings.TrimSpace(langCode))
	code = strings.ReplaceAll(code, "-", "_")
	if i := strings.Index(code, "_"); i > 0 {
		code = code[:i]
	}
	return code
}

// IsAuto reports whether a source language code requests auto-detection.
// An empty code counts as auto.
func IsAuto(langCode string) bool {
	code := NormalizeLang(langCode)
	return code == "" || code == DefaultFromLang
}
