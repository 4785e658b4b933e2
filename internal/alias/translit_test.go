package alias

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDictionary_ForwardBackward(t *testing.T) {
	d := NewDictionary(defaultEntries)

	assert.Equal(t, []string{"монреаль", "монреал", "монтреаль"}, d.Forward("montreal"))
	assert.Equal(t, []string{"монреаль", "монреал", "монтреаль"}, d.Forward("MONTREAL"))
	assert.Equal(t, []string{"montreal"}, d.Backward("монреаль"))
	assert.Nil(t, d.Forward("монреаль"))
	assert.Nil(t, d.Backward("montreal"))
	assert.Nil(t, d.Forward("nothing"))
	assert.Nil(t, d.Backward("nothing"))
}

func TestDictionary_BackwardKeepsDeclarationOrder(t *testing.T) {
	d := NewDictionary(defaultEntries)
	assert.Equal(t, []string{"lenvik", "lanwick", "lenvick", "lanvik", "lenwig"}, d.Backward("ленвик"))
}

func TestDictionary_DeduplicatesVariants(t *testing.T) {
	d := NewDictionary([]Entry{
		Word("kubo", "кубо", "кубо"),
		Word("kubo", "кубо", "кубa"),
		Word("  ", "пусто"),
	})
	assert.Equal(t, []string{"кубо", "кубa"}, d.Forward("kubo"))
	assert.Equal(t, []string{"kubo"}, d.Backward("кубо"))
	require.Len(t, d.Entries(), 1)
	assert.Equal(t, KindWord, d.Entries()[0].Kind)
	assert.Equal(t, []string{"kubo"}, d.Keys())
}

func TestDictionary_ReturnsCopies(t *testing.T) {
	d := NewDictionary(defaultEntries)
	got := d.Forward("emma")
	got[0] = "broken"
	assert.Equal(t, "эмма", d.Forward("emma")[0])
}

func TestDictionary_LetterEntriesStaySeparate(t *testing.T) {
	d := NewDictionary(defaultEntries)
	assert.Nil(t, d.Forward("a"), "letters do not take part in word lookup")
	assert.Nil(t, d.Backward("а"))
}

func TestDictionary_Transliterate(t *testing.T) {
	d := NewDictionary(defaultEntries)
	tests := []struct {
		in, want string
	}{
		{"chianti", "кьянти"},
		{"Emma Lux", "эмма лукс"},
		{"shchuka", "щука"},
		{"диван sofa", "диван софа"},
		{"moon 12", "моон 12"},
		{"", ""},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, d.Transliterate(tc.in))
		})
	}
}

func TestEntryKind_String(t *testing.T) {
	assert.Equal(t, "word", KindWord.String())
	assert.Equal(t, "letter", KindLetter.String())
	assert.Equal(t, "unknown", EntryKind(7).String())
}
