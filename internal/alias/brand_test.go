package alias

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBrandTable_Resolve(t *testing.T) {
	bt := NewBrandTable(defaultBrands)

	tests := []struct {
		name  string
		brand string
		want  []string
	}{
		{"exact", "ELVA", []string{"elva", "элва", "эльва", "елва", "ельва"}},
		{"exact trims", "  Askona ", []string{"askona", "аскона"}},
		{"case-insensitive substring", "elva", []string{"elva", "элва", "эльва", "елва", "ельва"}},
		{"brand contains key", "Lazurit Home", []string{"lazurit", "лазурит"}},
		{"key contains brand", "Wood", []string{"woodcraft", "вудкрафт", "вуткрафт"}},
		{"earlier key wins", "trade", []string{"moon trade", "мун трейд", "мун трэйд", "moon", "мун"}},
		{"moon alone", "Moon", []string{"moon", "мун"}},
		{"fallback", "  Новый Бренд ", []string{"новый бренд"}},
		{"empty", "   ", nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, bt.Resolve(tc.brand))
		})
	}
}

func TestBrandTable_DeclarationOrderIsTieBreak(t *testing.T) {
	shadowing := NewBrandTable([]Brand{
		{Name: "Moon", Aliases: []string{"moon"}},
		{Name: "Moon Trade", Aliases: []string{"moon trade"}},
	})
	assert.Equal(t, []string{"moon"}, shadowing.Resolve("moon trade"), "first declared key shadows the longer one")
	assert.Equal(t, []string{"moon trade"}, shadowing.Resolve("Moon Trade"), "exact match still wins")
}

func TestBrandTable_ReturnsCopies(t *testing.T) {
	bt := NewBrandTable(defaultBrands)
	got := bt.Resolve("Askona")
	got[0] = "broken"
	assert.Equal(t, "askona", bt.Resolve("Askona")[0])
	assert.Equal(t, "VELUNA", bt.Brands()[0].Name)
}
