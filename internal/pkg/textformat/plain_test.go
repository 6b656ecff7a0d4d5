package textformat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlainTextParser(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "one document per line",
			input: "first line\nsecond line\n",
			want:  []string{"first line", "second line"},
		},
		{
			name:  "blank lines are skipped",
			input: "first\n\n\nsecond\n\n",
			want:  []string{"first", "second"},
		},
		{
			name:  "no trailing newline",
			input: "only line",
			want:  []string{"only line"},
		},
		{
			name:  "empty file",
			input: "",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recs, err := parseAll(t, &PlainTextParser{}, tt.input)
			assert.NoError(t, err)
			var texts []string
			for _, r := range recs {
				texts = append(texts, r.Text)
			}
			assert.Equal(t, tt.want, texts)
		})
	}
}
