package textformat

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCSVParser(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []Record
		wantErr bool
	}{
		{
			name:  "text and label columns",
			input: "text,label\nhello world,positive\nbad day,negative\n",
			want: []Record{
				{Text: "hello world", Labels: []string{"positive"}, Meta: map[string]interface{}{}},
				{Text: "bad day", Labels: []string{"negative"}, Meta: map[string]interface{}{}},
			},
		},
		{
			name:  "columns mapped by header name, not position",
			input: "label,text\npositive,hello world\n",
			want: []Record{
				{Text: "hello world", Labels: []string{"positive"}, Meta: map[string]interface{}{}},
			},
		},
		{
			name:  "extra columns become meta",
			input: "text,label,source\nhello,positive,web\n",
			want: []Record{
				{Text: "hello", Labels: []string{"positive"}, Meta: map[string]interface{}{"source": "web"}},
			},
		},
		{
			name:  "single column rows are text only",
			input: "text,label\njust some text\n",
			want: []Record{
				{Text: "just some text"},
			},
		},
		{
			name:  "empty label cell yields no labels",
			input: "text,label\nhello,\n",
			want: []Record{
				{Text: "hello", Meta: map[string]interface{}{}},
			},
		},
		{
			name:    "row width mismatch",
			input:   "text,label\na,b,c\n",
			wantErr: true,
		},
		{
			name:  "header only",
			input: "text,label\n",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recs, err := parseAll(t, &CSVParser{}, tt.input)
			if tt.wantErr {
				assert.True(t, IsParseError(err))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, recs)
		})
	}
}

func TestCSVParserUTF16(t *testing.T) {
	// "text,label\nhello,positive\n" as UTF-16LE with a BOM.
	src := "text,label\nhello,positive\n"
	var buf bytes.Buffer
	buf.Write([]byte{0xFF, 0xFE})
	for _, r := range src {
		buf.WriteByte(byte(r))
		buf.WriteByte(0x00)
	}

	var recs []Record
	err := (&CSVParser{}).Parse(&buf, 100, func(batch []Record) error {
		recs = append(recs, batch...)
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, []Record{
		{Text: "hello", Labels: []string{"positive"}, Meta: map[string]interface{}{}},
	}, recs)
}

func TestCSVParserUTF8BOM(t *testing.T) {
	input := "\xEF\xBB\xBFtext,label\nhello,positive\n"
	recs, err := parseAll(t, &CSVParser{}, input)
	assert.NoError(t, err)
	assert.Len(t, recs, 1)
	assert.Equal(t, "hello", recs[0].Text)
}
