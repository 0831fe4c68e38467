// Package caption holds the presentation choices offered by the form and the
// rule that turns one completion into caption alternatives.
package caption

import "strings"

// Delimiter separates alternatives inside a single completion.
const Delimiter = "---"

const (
	LanguageEnglish    = "English"
	LanguageIndonesian = "Indonesian"
)

var (
	Platforms = []string{"Instagram", "Twitter", "LinkedIn", "Facebook"}
	Styles    = []string{"Professional", "Casual", "Funny", "Enthusiastic"}
	Languages = []string{LanguageEnglish, LanguageIndonesian}
)

// Form defaults.
const (
	DefaultPlatform = "Instagram"
	DefaultStyle    = "Casual"
	DefaultLanguage = LanguageEnglish
)

// Split cuts result on Delimiter, trims every segment and drops the empty
// ones. Text without a delimiter comes back as a single alternative.
func Split(result string) []string {
	parts := strings.Split(result, Delimiter)
	alternatives := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			alternatives = append(alternatives, p)
		}
	}
	return alternatives
}
