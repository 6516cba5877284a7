package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty",
			input: "",
			want:  "",
		},
		{
			name:  "normalizes line endings",
			input: "line one\r\nline two\rline three",
			want:  "line one\nline two\nline three",
		},
		{
			name:  "collapses internal whitespace",
			input: "John    Doe\t\tEngineer",
			want:  "John Doe Engineer",
		},
		{
			name:  "keeps indentation",
			input: "EXPERIENCE\n  - built things",
			want:  "EXPERIENCE\n  - built things",
		},
		{
			name:  "collapses blank line runs",
			input: "a\n\n\n\n\nb",
			want:  "a\n\nb",
		},
		{
			name:  "trims leading and trailing blanks",
			input: "\n\n  hello  \n\n",
			want:  "hello",
		},
		{
			name:  "whitespace-only lines become empty",
			input: "a\n   \t\nb",
			want:  "a\n\nb",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanText(tt.input))
		})
	}
}
