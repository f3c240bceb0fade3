package stats

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int64
		ok    bool
	}{
		{name: "plain digits", input: "1234", want: 1234, ok: true},
		{name: "space-grouped", input: "1 234", want: 1234, ok: true},
		{name: "trailing k expands literally", input: "12k", want: 12000, ok: true},
		{name: "uppercase K", input: "50K", want: 50000, ok: true},
		{name: "k with grouping", input: "1 200k", want: 1200000, ok: true},
		{name: "stray punctuation stripped", input: "~1,234!", want: 1234, ok: true},
		{name: "zero parses", input: "0", want: 0, ok: true},
		{name: "empty string", input: "", want: 0, ok: false},
		{name: "whitespace only", input: "   ", want: 0, ok: false},
		{name: "no digits at all", input: "palju", want: 0, ok: false},
		{name: "lone k", input: "k", want: 0, ok: true}, // "k" → "000" → 0
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Parse(tt.input)
			if got != tt.want || ok != tt.ok {
				t.Errorf("Parse(%q) = (%d, %v), want (%d, %v)", tt.input, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		input int64
		want  string
	}{
		{0, "0"},
		{7, "7"},
		{999, "999"},
		{1000, "1 000"},
		{1234, "1 234"},
		{12000, "12 000"},
		{123456, "123 456"},
		{1234567, "1 234 567"},
	}

	for _, tt := range tests {
		if got := Format(tt.input); got != tt.want {
			t.Errorf("Format(%d) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestDisplay(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{name: "abbreviated", input: "12k", want: "12 000", ok: true},
		{name: "grouped passthrough", input: "1 234", want: "1 234", ok: true},
		{name: "empty omitted", input: "", want: "", ok: false},
		{name: "zero omitted", input: "0", want: "", ok: false},
		{name: "non-numeric omitted", input: "n/a", want: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Display(tt.input)
			if got != tt.want || ok != tt.ok {
				t.Errorf("Display(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.ok)
			}
		})
	}
}
