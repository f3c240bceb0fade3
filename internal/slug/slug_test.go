package slug

import "testing"

// TestGenerate exercises the slug generator with typical titles, special
// characters, and boundary conditions.
func TestGenerate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "simple two words",
			input: "Hello World",
			want:  "hello-world",
		},
		{
			name:  "title with punctuation and year",
			input: "Acme & Co. 2024!",
			want:  "acme-co-2024",
		},
		{
			name:  "already lowercase",
			input: "already lowercase",
			want:  "already-lowercase",
		},
		{
			name:  "single word",
			input: "Sisumaja",
			want:  "sisumaja",
		},
		{
			name:  "runs of separators collapse",
			input: "One --- Two___Three",
			want:  "one-two-three",
		},
		{
			name:  "leading and trailing junk trimmed",
			input: "  !!Launch Day!!  ",
			want:  "launch-day",
		},
		{
			name:  "slashes and pipes",
			input: "Frontend/Backend | Full Stack",
			want:  "frontend-backend-full-stack",
		},
		{
			name:  "digits survive",
			input: "Kampaania #42 (2025)",
			want:  "kampaania-42-2025",
		},
		{
			name:  "unicode characters become separators",
			input: "Tänavune töö",
			want:  "t-navune-t",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "only special characters",
			input: "!@#$%^&*()",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Generate(tt.input)
			if got != tt.want {
				t.Errorf("Generate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
