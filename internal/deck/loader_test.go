package deck

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Deck
	}{
		{
			name:  "plain rows in file order",
			input: "q1, a1\nq2, a2\nq3, a3\n",
			want: Deck{
				{Question: "q1", Answer: "a1"},
				{Question: "q2", Answer: "a2"},
				{Question: "q3", Answer: "a3"},
			},
		},
		{
			name:  "quoted field keeps embedded commas",
			input: `What are the primary colors?, "Red, blue, and yellow"`,
			want: Deck{
				{Question: "What are the primary colors?", Answer: "Red, blue, and yellow"},
			},
		},
		{
			name:  "doubled quote collapses to literal quote",
			input: `"She said ""hi""", ok`,
			want: Deck{
				{Question: `She said "hi"`, Answer: "ok"},
			},
		},
		{
			name:  "quote toggles mid-field",
			input: `a"b,c"d, answer`,
			want: Deck{
				{Question: "ab,cd", Answer: "answer"},
			},
		},
		{
			name:  "fields are trimmed inside and outside quotes",
			input: `  spaced question  ,"  spaced answer  "`,
			want: Deck{
				{Question: "spaced question", Answer: "spaced answer"},
			},
		},
		{
			name:  "extra columns are ignored",
			input: "question, answer, note, another note",
			want: Deck{
				{Question: "question", Answer: "answer"},
			},
		},
		{
			name:  "blank and invalid rows do not shift surviving rows",
			input: "q1, a1\n\n   \nonly one column\nq2,\n, a only\nq2 really, a2\n",
			want: Deck{
				{Question: "q1", Answer: "a1"},
				{Question: "q2 really", Answer: "a2"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseUnterminatedQuote(t *testing.T) {
	// An unclosed quote swallows the comma separator, so the whole
	// line collapses to one field and the row is dropped.
	input := `"open question, never closed` + "\nq2, a2\n"

	got, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, Deck{{Question: "q2", Answer: "a2"}}, got)
}

func TestParseEmptyDeck(t *testing.T) {
	inputs := map[string]string{
		"empty input":        "",
		"only blank lines":   "\n\n   \n\t\n",
		"only invalid rows":  "no answer here\n, missing question\nlonely,\n",
		"only quoted blanks": `"", ""` + "\n" + `"   ", "   "`,
	}

	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			got, err := Parse(strings.NewReader(input))
			require.ErrorIs(t, err, ErrEmptyDeck)
			assert.Nil(t, got)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("reads a cards file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cards.csv")
		content := "capital of France?, Paris\n\"2+2?\", \"4\"\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		got, err := Load(path)
		require.NoError(t, err)
		assert.Len(t, got, 2)
		assert.Equal(t, "capital of France?", got[0].Question)
		assert.Equal(t, "4", got[1].Answer)
	})

	t.Run("missing file reports the cause", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
		assert.Contains(t, err.Error(), "cards file unreadable")
	})
}
