// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package stats normalizes the heterogeneous numeric-as-text statistic
// fields stored on projects (views/likes/comments/shares) into
// display-ready values. Stored values may be raw counts ("1234"),
// space-grouped counts ("1 234"), or abbreviated with a trailing "k".
package stats

import (
	"strconv"
	"strings"
)

// Parse converts a stored stat string into an integer count.
// A trailing "k" (or "K") is expanded by literal digit substitution —
// "12k" parses as the characters "12" followed by "000", not as 12×1000 —
// and every other non-digit character is stripped. Returns 0 and false
// when nothing numeric remains.
func Parse(raw string) (int64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}

	// Expand the abbreviation before stripping, so "12k" becomes "12000".
	s = strings.ReplaceAll(s, " ", "")
	if n := len(s); n > 0 && (s[n-1] == 'k' || s[n-1] == 'K') {
		s = s[:n-1] + "000"
	}

	var digits strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0, false
	}

	n, err := strconv.ParseInt(digits.String(), 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Format renders a count with Estonian-locale thousands separators
// (groups of three digits separated by a space): 12000 → "12 000".
func Format(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// Display parses and formats a stored stat in one step. The second return
// is false when the field should be omitted from display entirely — empty
// input, no digits, or a zero count.
func Display(raw string) (string, bool) {
	n, ok := Parse(raw)
	if !ok || n == 0 {
		return "", false
	}
	return Format(n), true
}
