package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-aliases/internal/alias"
	"catalog-aliases/internal/catalog/model"
)

func testIndex(t *testing.T) *Index {
	t.Helper()
	dicts := alias.DefaultDictionaries()
	b := NewBuilder(alias.NewEngine(dicts), 1)
	records, err := b.Build(context.Background(), []model.Entry{
		{Code: "91742", Name: "Диван Elva Emma"},
		{Code: "10077127", Name: "Диван угловой Мебельград Монреаль-4"},
		{Code: "8474646", Name: "Диван Leset Emma"},
		{Code: "55.501", Name: "Диван Askona Chianti Soft"},
	})
	require.NoError(t, err)
	return NewIndex(records, dicts)
}

func TestIndex_Find(t *testing.T) {
	idx := testIndex(t)
	require.Equal(t, 4, idx.Len())

	tests := []struct {
		name     string
		query    string
		code     string
		method   string
		wantFind bool
	}{
		{"code", "артикул 10077127", "10077127", MatchCode, true},
		{"code with dots is not a numeric code", "55501", "", "", false},
		{"spoken code", "восемь четыре семь четыре шесть четыре шесть", "8474646", MatchSpokenCode, true},
		{"brand then model", "лесет эмма", "8474646", MatchBrandModel, true},
		{"model then brand", "emma leset", "8474646", MatchBrandModel, true},
		{"model only, first in catalog", "эмма", "91742", MatchModel, true},
		{"suffixless model", "монреаль", "10077127", MatchModel, true},
		{"latin query transliterated", "montreal", "10077127", MatchModel, true},
		{"multiword model", "кьянти soft", "55.501", MatchModel, true},
		{"unknown", "кухня", "", "", false},
		{"empty", "  ", "", "", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec, method, ok := idx.Find(tc.query)
			assert.Equal(t, tc.wantFind, ok)
			assert.Equal(t, tc.method, method)
			assert.Equal(t, tc.code, rec.Code)
		})
	}
}

func TestIntersectFirst(t *testing.T) {
	assert.Equal(t, 3, intersectFirst([]int{1, 3, 5}, []int{2, 3, 5}))
	assert.Equal(t, -1, intersectFirst([]int{1}, []int{2}))
	assert.Equal(t, -1, intersectFirst(nil, []int{2}))
}

func TestIndex_FindCodeDoesNotMixAlphanumeric(t *testing.T) {
	idx := NewIndex([]model.Record{
		{Code: "LG-12345", Name: "Диван Lazurit Orion"},
		{Code: "12345", Name: "Диван Leset Aspen"},
		{Code: " 10 077 127 ", Name: "Диван Elva Emma"},
	}, alias.DefaultDictionaries())

	rec, method, ok := idx.Find("12345")
	require.True(t, ok)
	assert.Equal(t, MatchCode, method)
	assert.Equal(t, "12345", rec.Code)

	rec, _, ok = idx.Find("10077127")
	require.True(t, ok)
	assert.Equal(t, "Диван Elva Emma", rec.Name)

	assert.Empty(t, numericCode("LG-12345"))
	assert.Equal(t, "10077127", numericCode("10077127.0"))
}
