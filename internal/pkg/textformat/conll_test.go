package textformat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoNLLParser(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []Record
		wantErr bool
	}{
		{
			name: "BIO chunks become character spans",
			input: "Alex\tB-PER\n" +
				"is\tO\n" +
				"going\tO\n" +
				"to\tO\n" +
				"Los\tB-LOC\n" +
				"Angeles\tI-LOC\n",
			want: []Record{
				{
					Text: "Alex is going to Los Angeles",
					Spans: []Span{
						{Start: 0, End: 4, Type: "PER"},
						{Start: 17, End: 28, Type: "LOC"},
					},
				},
			},
		},
		{
			name: "blank line separates sentences",
			input: "Peter\tB-PER\n" +
				"\n" +
				"Mary\tB-PER\n",
			want: []Record{
				{Text: "Peter", Spans: []Span{{Start: 0, End: 5, Type: "PER"}}},
				{Text: "Mary", Spans: []Span{{Start: 0, End: 4, Type: "PER"}}},
			},
		},
		{
			name: "repeated surface form gets distinct offsets",
			input: "Paris\tB-LOC\n" +
				"loves\tO\n" +
				"Paris\tB-LOC\n",
			want: []Record{
				{
					Text: "Paris loves Paris",
					Spans: []Span{
						{Start: 0, End: 5, Type: "LOC"},
						{Start: 12, End: 17, Type: "LOC"},
					},
				},
			},
		},
		{
			name: "I tag without a matching chunk starts a new one",
			input: "York\tI-LOC\n" +
				"today\tO\n",
			want: []Record{
				{Text: "York today", Spans: []Span{{Start: 0, End: 4, Type: "LOC"}}},
			},
		},
		{
			name:  "trailing blank lines",
			input: "word\tO\n\n\n",
			want: []Record{
				{Text: "word"},
			},
		},
		{
			name:    "line without a tab",
			input:   "Alex B-PER\n",
			wantErr: true,
		},
		{
			name:    "too many fields",
			input:   "Alex\tB-PER\textra\n",
			wantErr: true,
		},
		{
			name:  "empty file",
			input: "",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recs, err := parseAll(t, &CoNLLParser{}, tt.input)
			if tt.wantErr {
				assert.True(t, IsParseError(err))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, recs)
		})
	}
}

func TestBIOChunks(t *testing.T) {
	tests := []struct {
		name string
		tags []string
		want []chunk
	}{
		{
			name: "adjacent chunks of different types",
			tags: []string{"B-PER", "B-LOC", "I-LOC"},
			want: []chunk{{typ: "PER", start: 0, end: 0}, {typ: "LOC", start: 1, end: 2}},
		},
		{
			name: "all O",
			tags: []string{"O", "O"},
			want: nil,
		},
		{
			name: "malformed tag treated as O",
			tags: []string{"B-PER", "X-LOC", "B-ORG"},
			want: []chunk{{typ: "PER", start: 0, end: 0}, {typ: "ORG", start: 2, end: 2}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, bioChunks(tt.tags))
		})
	}
}
