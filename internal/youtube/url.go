// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package youtube handles the two YouTube touchpoints of the site:
// turning arbitrary video URLs into embeddable player URLs, and fetching
// live video statistics from the Data API.
package youtube

import (
	"regexp"
	"strings"
)

var (
	// videoIDPattern matches the known YouTube URL shapes and captures the
	// 11-character video identifier that follows them.
	videoIDPattern = regexp.MustCompile(`(?:youtu\.be/|/v/|/u/\w/|/embed/|watch\?v=|&v=)([^#&?]{11})`)

	// startPattern captures the t= query parameter, with an optional
	// trailing unit suffix such as "s".
	startPattern = regexp.MustCompile(`[?&]t=(\d+)`)
)

// ExtractVideoID pulls the 11-character video identifier out of a YouTube
// URL. Returns "" when no valid identifier is present.
func ExtractVideoID(rawURL string) string {
	m := videoIDPattern.FindStringSubmatch(rawURL)
	if m == nil {
		return ""
	}
	return m[1]
}

// EmbedURL converts an arbitrary YouTube URL into an embeddable player URL,
// carrying over a t=<seconds> time offset as a start= parameter. Returns
// ("", false) when the URL does not contain a valid video identifier.
func EmbedURL(rawURL string) (string, bool) {
	id := ExtractVideoID(rawURL)
	if id == "" {
		return "", false
	}

	var b strings.Builder
	b.WriteString("https://www.youtube.com/embed/")
	b.WriteString(id)
	if m := startPattern.FindStringSubmatch(rawURL); m != nil {
		b.WriteString("?start=")
		b.WriteString(m[1])
	}
	return b.String(), true
}
