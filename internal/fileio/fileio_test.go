package fileio

import (
	"bytes"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	excelize "github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
)

func xlsxFixture(t *testing.T) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	_, err := f.NewSheet("Мягкая мебель")
	require.NoError(t, err)
	require.NoError(t, f.SetCellValue("Sheet1", "A1", "не тот лист"))
	require.NoError(t, f.SetCellValue("Мягкая мебель", "A1", "Код"))
	require.NoError(t, f.SetCellValue("Мягкая мебель", "B1", "Наименование"))
	require.NoError(t, f.SetCellValue("Мягкая мебель", "A3", "10077127"))
	require.NoError(t, f.SetCellValue("Мягкая мебель", "B3", "Диван Elva Emma "))

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return buf.Bytes()
}

func TestReadGrid_XLSX(t *testing.T) {
	data := xlsxFixture(t)

	rows, err := ReadGrid(bytes.NewReader(data), "catalog.XLSX", "Мягкая мебель")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Код", "Наименование"}, rows[0])
	assert.Empty(t, rows[1])
	assert.Equal(t, "10077127", Cell(rows[2], 0))
	assert.Equal(t, "Диван Elva Emma", Cell(rows[2], 1))
	assert.Equal(t, "", Cell(rows[2], 5))

	rows, err = ReadGrid(bytes.NewReader(data), "catalog.xlsx", "нет такого")
	require.NoError(t, err)
	assert.Equal(t, "не тот лист", Cell(rows[0], 0), "unknown sheet falls back to the first one")
}

func TestReadGrid_CSV(t *testing.T) {
	rows, err := ReadGrid(bytes.NewBufferString("code;name;x\n123;Диван Elva Emma;\n"), "a.csv", "")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"123", "Диван Elva Emma"}, rows[1])
}

func TestReadGrid_CSVWindows1251(t *testing.T) {
	text := "код,наименование\n555,Диван угловой Мебельград Монреаль-4 с оттоманкой\n"
	enc, err := charmap.Windows1251.NewEncoder().String(text)
	require.NoError(t, err)

	rows, err := ReadGrid(bytes.NewBufferString(enc), "a.csv", "")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "555", Cell(rows[1], 0))
	assert.True(t, utf8.ValidString(Cell(rows[1], 1)), "decoded to UTF-8")
}

func TestReadGrid_Unsupported(t *testing.T) {
	_, err := ReadGrid(bytes.NewBufferString(""), "a.pdf", "")
	assert.Error(t, err)
}

func TestNormalizeCell(t *testing.T) {
	assert.Equal(t, "a b", normalizeCell(" a b "))
}
