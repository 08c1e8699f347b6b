package bqddl

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const sampleExtractCSV = `TABLE_NAME,COLUMN_NAME,DATA_TYPE,DATA_LENGTH,DATA_PRECISION,DATA_SCALE,NULLABLE
T1,COL_A,VARCHAR2,50,,,false
T1,COL_B,NUMBER,,10,2,true
T2,COL_C,DATE,,,,true
`

func writeTestFile(t *testing.T, name, content string, compression CompressionType) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	writer, closer, err := createCompressedFile(path, compression)
	require.NoError(t, err)
	_, err = io.WriteString(writer, content)
	require.NoError(t, err)
	require.NoError(t, closer())
	return path
}

func TestDetectExtractType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path     string
		expected ExtractType
	}{
		{path: "schema.csv", expected: ExtractTypeCSV},
		{path: "schema.tsv", expected: ExtractTypeTSV},
		{path: "schema.xlsx", expected: ExtractTypeXLSX},
		{path: "schema.parquet", expected: ExtractTypeParquet},
		{path: "schema.csv.gz", expected: ExtractTypeCSV},
		{path: "schema.tsv.zst", expected: ExtractTypeTSV},
		{path: "schema.xlsx.bz2", expected: ExtractTypeXLSX},
		{path: "Schema.CSV", expected: ExtractTypeCSV},
		{path: "schema.txt", expected: ExtractTypeUnsupported},
		{path: "schema.sql", expected: ExtractTypeUnsupported},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, detectExtractType(tt.path))
			assert.Equal(t, tt.expected != ExtractTypeUnsupported, IsSupportedExtract(tt.path))
		})
	}
}

func TestBaseNameFromPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "schema", baseNameFromPath("/data/schema.csv"))
	assert.Equal(t, "schema", baseNameFromPath("schema.csv.gz"))
	assert.Equal(t, "hr_schema", baseNameFromPath("extracts/hr_schema.xlsx.zst"))
}

func TestExtract_Records_CSV(t *testing.T) {
	t.Parallel()

	path := writeTestFile(t, "schema.csv", sampleExtractCSV, CompressionNone)
	records, err := NewExtract(path).Records(DefaultFieldMap())
	require.NoError(t, err)

	require.Len(t, records, 3)
	assert.Equal(t, ColumnRecord{
		TableName:  "T1",
		ColumnName: "COL_A",
		RawType:    "VARCHAR2",
		Length:     "50",
		Nullable:   false,
	}, records[0])
	assert.Equal(t, ColumnRecord{
		TableName:  "T1",
		ColumnName: "COL_B",
		RawType:    "NUMBER",
		Precision:  "10",
		Scale:      "2",
		Nullable:   true,
	}, records[1])
	assert.True(t, records[2].Nullable)
}

func TestExtract_Records_CompressedCSV(t *testing.T) {
	t.Parallel()

	for _, c := range []CompressionType{CompressionGZ, CompressionXZ, CompressionZSTD} {
		t.Run(c.Extension(), func(t *testing.T) {
			t.Parallel()

			path := writeTestFile(t, "schema.csv"+c.Extension(), sampleExtractCSV, c)
			records, err := NewExtract(path).Records(DefaultFieldMap())
			require.NoError(t, err)
			assert.Len(t, records, 3)
		})
	}
}

func TestExtract_Records_TSV(t *testing.T) {
	t.Parallel()

	content := "TABLE_NAME\tCOLUMN_NAME\tDATA_TYPE\tDATA_LENGTH\tDATA_PRECISION\tDATA_SCALE\tNULLABLE\n" +
		"T1\tCOL_A\tVARCHAR2\t50\t\t\tfalse\n"
	path := writeTestFile(t, "schema.tsv", content, CompressionNone)
	records, err := NewExtract(path).Records(DefaultFieldMap())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "VARCHAR2", records[0].RawType)
	assert.False(t, records[0].Nullable)
}

func TestExtract_Records_FieldMapOverrides(t *testing.T) {
	t.Parallel()

	// Curated migration sheets name the target table column BQ_ODS and use
	// Oracle's "N" for not-nullable.
	content := `BQ_ODS,COLUMN_NAME,DATA_TYPE,DATA_LENGTH,DATA_PRECISION,DATA_SCALE,NULLABLE
ods_t1,COL_A,VARCHAR2,50,,,N
`
	path := writeTestFile(t, "schema.csv", content, CompressionNone)

	fields := DefaultFieldMap()
	fields.Table = "BQ_ODS"
	records, err := NewExtract(path).Records(fields)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "ods_t1", records[0].TableName)
	assert.False(t, records[0].Nullable)
}

func TestExtract_Records_HeaderMatchingIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	content := "table_name,column_name,data_type,data_length,data_precision,data_scale,nullable\nT1,C,DATE,,,,true\n"
	path := writeTestFile(t, "schema.csv", content, CompressionNone)
	records, err := NewExtract(path).Records(DefaultFieldMap())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "T1", records[0].TableName)
}

func TestExtract_Records_MissingRequiredField(t *testing.T) {
	t.Parallel()

	content := "COLUMN_NAME,DATA_TYPE\nCOL_A,VARCHAR2\n"
	path := writeTestFile(t, "schema.csv", content, CompressionNone)
	_, err := NewExtract(path).Records(DefaultFieldMap())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingField)
	assert.Contains(t, err.Error(), "TABLE_NAME")
}

func TestExtract_Records_MissingOptionalFields(t *testing.T) {
	t.Parallel()

	// Without length/precision/scale/nullable columns every value is absent
	// and every column nullable.
	content := "TABLE_NAME,COLUMN_NAME,DATA_TYPE\nT1,COL_A,DATE\n"
	path := writeTestFile(t, "schema.csv", content, CompressionNone)
	records, err := NewExtract(path).Records(DefaultFieldMap())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Empty(t, records[0].Length)
	assert.True(t, records[0].Nullable)
}

func TestExtract_Records_EmptyFile(t *testing.T) {
	t.Parallel()

	path := writeTestFile(t, "schema.csv", "", CompressionNone)
	_, err := NewExtract(path).Records(DefaultFieldMap())
	assert.ErrorIs(t, err, ErrEmptyExtract)
}

func TestExtract_Records_HeaderOnly(t *testing.T) {
	t.Parallel()

	content := "TABLE_NAME,COLUMN_NAME,DATA_TYPE,DATA_LENGTH,DATA_PRECISION,DATA_SCALE,NULLABLE\n"
	path := writeTestFile(t, "schema.csv", content, CompressionNone)
	records, err := NewExtract(path).Records(DefaultFieldMap())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestExtract_Records_UnsupportedFormat(t *testing.T) {
	t.Parallel()

	path := writeTestFile(t, "schema.txt", "whatever", CompressionNone)
	_, err := NewExtract(path).Records(DefaultFieldMap())
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestExtract_Records_XLSX(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "schema.xlsx")
	xlsx := excelize.NewFile()
	sheet := xlsx.GetSheetName(0)
	rows := [][]string{
		{"TABLE_NAME", "COLUMN_NAME", "DATA_TYPE", "DATA_LENGTH", "DATA_PRECISION", "DATA_SCALE", "NULLABLE"},
		{"T1", "COL_A", "VARCHAR2", "50", "", "", "false"},
		{"T1", "COL_B", "NUMBER", "", "10", "2", "true"},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, xlsx.SetSheetRow(sheet, cell, &row))
	}
	require.NoError(t, xlsx.SaveAs(path))
	require.NoError(t, xlsx.Close())

	records, err := NewExtract(path).Records(DefaultFieldMap())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "COL_A", records[0].ColumnName)
	assert.False(t, records[0].Nullable)
	assert.Equal(t, "10", records[1].Precision)
}

func TestExtract_PathAndType(t *testing.T) {
	t.Parallel()

	e := NewExtract("dir/schema.csv.gz")
	assert.Equal(t, "dir/schema.csv.gz", e.Path())
	assert.Equal(t, ExtractTypeCSV, e.Type())
}

func TestExtract_Records_FileNotFound(t *testing.T) {
	t.Parallel()

	_, err := NewExtract(filepath.Join(t.TempDir(), "missing.csv")).Records(DefaultFieldMap())
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
