package textformat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFastTextParser(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []Record
		wantErr bool
	}{
		{
			name:  "single label",
			input: "__label__positive great movie\n",
			want: []Record{
				{Text: "great movie", Labels: []string{"positive"}},
			},
		},
		{
			name:  "multiple labels",
			input: "__label__sauce __label__cheese how much does potato starch affect a cheese sauce recipe\n",
			want: []Record{
				{Text: "how much does potato starch affect a cheese sauce recipe", Labels: []string{"sauce", "cheese"}},
			},
		},
		{
			name:  "label after text still counts",
			input: "great movie __label__positive\n",
			want: []Record{
				{Text: "great movie", Labels: []string{"positive"}},
			},
		},
		{
			name:  "no labels at all",
			input: "just plain text\n",
			want: []Record{
				{Text: "just plain text"},
			},
		},
		{
			name:  "blank lines skipped",
			input: "\n__label__a b\n\n",
			want: []Record{
				{Text: "b", Labels: []string{"a"}},
			},
		},
		{
			name:    "label tag without a name",
			input:   "__label__ some text\n",
			wantErr: true,
		},
		{
			name:    "no text after labels",
			input:   "__label__positive\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recs, err := parseAll(t, &FastTextParser{}, tt.input)
			if tt.wantErr {
				assert.True(t, IsParseError(err))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, recs)
		})
	}
}
