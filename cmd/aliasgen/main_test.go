package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-aliases/internal/alias"
	"catalog-aliases/internal/catalog/store"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestExpandCmd(t *testing.T) {
	out := run(t, "expand", "--brand", "Mio Tesoro", "--model", "Монреаль-4", "--article", "10077127")

	var got alias.Aliases
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Contains(t, got.Brand, "мио тесоро")
	assert.Contains(t, got.Model, "монреаль")
	assert.Equal(t, []string{"1 0 0 7 7 1 2 7", "10077127"}, got.Article)
}

func TestBuildCmd(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "catalog.csv")
	csv := "код;наименование;;описание\n" +
		"10077127;Диван угловой Мебельград Монреаль-4;;<b>угловой</b>\n" +
		";Итого;;\n" +
		"2002;Диван Mio Tesoro Chianti (велюр);;\n"
	require.NoError(t, os.WriteFile(in, []byte(csv), 0o644))
	out := filepath.Join(dir, "out", "catalog.json")

	run(t, "build", "--in", in, "--out", out, "--first-row", "2", "--workers", "2", "--quiet")

	records, err := store.LoadFile(out)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Мебельград", records[0].Brand)
	assert.Equal(t, "Монреаль-4", records[0].Model)
	assert.Equal(t, "угловой", records[0].Description)
	assert.Equal(t, "Mio Tesoro", records[1].Brand)
	assert.Equal(t, "Chianti", records[1].Model)
}

func TestBuildCmd_MissingInput(t *testing.T) {
	rootCmd.SetArgs([]string{"build", "--in", filepath.Join(t.TempDir(), "nope.csv"), "--quiet"})
	assert.Error(t, rootCmd.Execute())
}
