package handlers

import (
	"strings"
	"unicode/utf8"
)

// Validation limits for project form fields.
const (
	maxTitleLen       = 300
	maxSlugLen        = 300
	maxDescriptionLen = 100_000
	maxURLLen         = 2_000
	maxLabelLen       = 200
	maxQuoteLen       = 5_000
)

// validateProject checks the required project form inputs and returns the
// first error found. Title and slug must both be non-empty after trimming;
// the slug is derived from the title when the field is left untouched, so
// an empty slug here means the title was empty too.
func validateProject(title, slug string) string {
	if strings.TrimSpace(title) == "" {
		return "Pealkiri on kohustuslik."
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		return "Pealkiri on liiga pikk (max 300 tähemärki)."
	}
	if strings.TrimSpace(slug) == "" {
		return "Slug on kohustuslik."
	}
	if utf8.RuneCountInString(slug) > maxSlugLen {
		return "Slug on liiga pikk (max 300 tähemärki)."
	}
	return ""
}

// validateProjectOptional checks the optional free-text fields.
func validateProjectOptional(description, quote string) string {
	if utf8.RuneCountInString(description) > maxDescriptionLen {
		return "Kirjeldus on liiga pikk (max 100 000 tähemärki)."
	}
	if utf8.RuneCountInString(quote) > maxQuoteLen {
		return "Tagasiside on liiga pikk (max 5000 tähemärki)."
	}
	return ""
}
