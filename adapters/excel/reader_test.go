package excel

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"statclass/domain/sample"
	"statclass/internal/errors"
)

func writeWorkbook(t *testing.T, cells map[string]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	for ref, value := range cells {
		require.NoError(t, f.SetCellValue("Sheet1", ref, value))
	}
	path := filepath.Join(t.TempDir(), "data.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())
	return path
}

func TestReadFile_FirstNumericColumn(t *testing.T) {
	path := writeWorkbook(t, map[string]interface{}{
		"A1": "student", "B1": "score",
		"A2": "ana", "B2": 7.5,
		"A3": "rui", "B3": 8.0,
		"A4": "eva", "B4": 6.5,
	})

	got, err := NewSampleReader("").ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, sample.Sample{7.5, 8, 6.5}, got)
}

func TestReadFile_NamedColumn(t *testing.T) {
	path := writeWorkbook(t, map[string]interface{}{
		"A1": "age", "B1": "score",
		"A2": 30, "B2": 7.5,
		"A3": 40, "B3": 8.0,
	})

	got, err := NewSampleReader("score").ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, sample.Sample{7.5, 8}, got)
}

func TestReadFile_SkipsBlankCells(t *testing.T) {
	path := writeWorkbook(t, map[string]interface{}{
		"A1": "score",
		"A2": 1.0,
		"A4": 3.0, // A3 left blank
	})

	got, err := NewSampleReader("score").ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, sample.Sample{1, 3}, got)
}

func TestReadFile_NonNumericCell(t *testing.T) {
	path := writeWorkbook(t, map[string]interface{}{
		"A1": "score",
		"A2": 1.0,
		"A3": "n/a",
	})

	_, err := NewSampleReader("score").ReadFile(path)
	require.Error(t, err)
	assert.Equal(t, errors.CodeParseError, errors.GetCode(err))
}

func TestReadFile_MissingColumn(t *testing.T) {
	path := writeWorkbook(t, map[string]interface{}{
		"A1": "score",
		"A2": 1.0,
	})

	_, err := NewSampleReader("grade").ReadFile(path)
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
}

func TestReadFile_NoNumericData(t *testing.T) {
	path := writeWorkbook(t, map[string]interface{}{
		"A1": "name",
		"A2": "ana",
	})

	_, err := NewSampleReader("").ReadFile(path)
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
}
