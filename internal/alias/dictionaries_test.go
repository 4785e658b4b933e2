package alias

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDictionaryYAML = `
brands:
  - name: Lagoma
    aliases: [lagoma, лагома]
  - name: Laguna
    aliases: [laguna]
words:
  - key: alma
    variants: [альма, алма]
digits: [нуль, один, два, три, четыре, пять, шесть, семь, восемь, девять]
`

func TestLoadDictionaries(t *testing.T) {
	d, err := LoadDictionaries(strings.NewReader(testDictionaryYAML))
	require.NoError(t, err)

	assert.Equal(t, []string{"lagoma", "лагома"}, d.Brands.Resolve("Lag"))
	assert.Equal(t, []string{"альма", "алма"}, d.Translit.Forward("alma"))
	assert.Nil(t, d.Translit.Forward("montreal"), "words section replaces built-in words")
	assert.Equal(t, "щ", d.Translit.Transliterate("shch"), "built-in letters kept")
	assert.Equal(t, "нуль", d.Digits[0])
	assert.Equal(t, defaultRules, d.Rules)
}

func TestLoadDictionaries_Empty(t *testing.T) {
	d, err := LoadDictionaries(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultDictionaries().Brands.Brands(), d.Brands.Brands())
}

func TestLoadDictionaries_Errors(t *testing.T) {
	_, err := LoadDictionaries(strings.NewReader("digits: [один]"))
	assert.Error(t, err)

	_, err = LoadDictionaries(strings.NewReader("unknown_section: 1"))
	assert.Error(t, err)
}

func TestLoadDictionariesFile(t *testing.T) {
	d, err := LoadDictionariesFile("")
	require.NoError(t, err)
	assert.NotEmpty(t, d.Translit.Keys())

	path := filepath.Join(t.TempDir(), "dict.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testDictionaryYAML), 0o644))
	d, err = LoadDictionariesFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"alma"}, d.Translit.Keys())

	_, err = LoadDictionariesFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
