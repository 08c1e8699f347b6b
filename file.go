package bqddl

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ExtractType represents supported metadata extract formats.
type ExtractType int

const (
	// ExtractTypeCSV represents CSV extracts
	ExtractTypeCSV ExtractType = iota
	// ExtractTypeTSV represents TSV extracts
	ExtractTypeTSV
	// ExtractTypeXLSX represents Excel XLSX extracts
	ExtractTypeXLSX
	// ExtractTypeParquet represents Parquet extracts
	ExtractTypeParquet
	// ExtractTypeUnsupported represents unsupported formats
	ExtractTypeUnsupported
)

// Extract format extensions
const (
	// extCSV is the CSV file extension
	extCSV = ".csv"
	// extTSV is the TSV file extension
	extTSV = ".tsv"
	// extXLSX is the Excel XLSX file extension
	extXLSX = ".xlsx"
	// extParquet is the Parquet file extension
	extParquet = ".parquet"
)

// FieldMap names the extract header fields that carry each ColumnRecord
// field. Extract producers are inconsistent here: Oracle data dictionary
// exports use TABLE_NAME while curated migration sheets use target-table
// fields such as BQ_ODS, so every name is overridable.
type FieldMap struct {
	// Table is the header field holding the target table name.
	Table string
	// Column is the header field holding the column name.
	Column string
	// Type is the header field holding the raw data type.
	Type string
	// Length is the header field holding the data length.
	Length string
	// Precision is the header field holding the numeric precision.
	Precision string
	// Scale is the header field holding the numeric scale.
	Scale string
	// Nullable is the header field holding the nullability literal.
	Nullable string
	// FalseLiterals are the values decoded as "not nullable". Empty means
	// the default set.
	FalseLiterals []string
}

// DefaultFieldMap returns the field names of an Oracle ALL_TAB_COLUMNS style
// extract.
func DefaultFieldMap() FieldMap {
	return FieldMap{
		Table:         "TABLE_NAME",
		Column:        "COLUMN_NAME",
		Type:          "DATA_TYPE",
		Length:        "DATA_LENGTH",
		Precision:     "DATA_PRECISION",
		Scale:         "DATA_SCALE",
		Nullable:      "NULLABLE",
		FalseLiterals: defaultFalseLiterals,
	}
}

// Extract represents one metadata extract file.
type Extract struct {
	path        string
	extractType ExtractType
}

// NewExtract creates an Extract for the given path, detecting format and
// compression from the extension.
func NewExtract(path string) *Extract {
	return &Extract{
		path:        path,
		extractType: detectExtractType(path),
	}
}

// Path returns the extract file path.
func (e *Extract) Path() string {
	return e.path
}

// Type returns the detected extract format.
func (e *Extract) Type() ExtractType {
	return e.extractType
}

// Records reads the extract and maps its rows to ColumnRecords using the
// given field mapping. Row order is preserved; it defines table grouping.
func (e *Extract) Records(fields FieldMap) ([]ColumnRecord, error) {
	rows, err := e.readRows()
	if err != nil {
		return nil, err
	}
	return recordsFromRows(rows, fields, e.path)
}

// readRows reads the raw rows of the extract, header row first.
func (e *Extract) readRows() ([][]string, error) {
	switch e.extractType {
	case ExtractTypeCSV:
		return e.readDelimited(',')
	case ExtractTypeTSV:
		return e.readDelimited('\t')
	case ExtractTypeXLSX:
		return e.readXLSX()
	case ExtractTypeParquet:
		return e.readParquet()
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, e.path)
	}
}

// readDelimited reads a CSV or TSV extract with compression support.
func (e *Extract) readDelimited(comma rune) ([][]string, error) {
	reader, closer, err := openCompressedFile(e.path)
	if err != nil {
		return nil, err
	}
	defer closer() //nolint:errcheck // read-only close

	csvReader := csv.NewReader(reader)
	csvReader.Comma = comma
	rows, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", e.path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyExtract, e.path)
	}
	return rows, nil
}

// readXLSX reads the first sheet of an XLSX extract. excelize needs random
// access, so compressed files are buffered in memory first.
func (e *Extract) readXLSX() ([][]string, error) {
	var xlsxFile *excelize.File

	if detectCompressionType(e.path) != CompressionNone {
		reader, closer, err := openCompressedFile(e.path)
		if err != nil {
			return nil, err
		}
		defer closer() //nolint:errcheck // read-only close

		data, err := io.ReadAll(reader)
		if err != nil {
			return nil, err
		}
		xlsxFile, err = excelize.OpenReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
	} else {
		var err error
		xlsxFile, err = excelize.OpenFile(e.path)
		if err != nil {
			return nil, err
		}
	}
	defer func() {
		_ = xlsxFile.Close()
	}()

	sheetNames := xlsxFile.GetSheetList()
	if len(sheetNames) == 0 {
		return nil, fmt.Errorf("%w: no sheets in %s", ErrEmptyExtract, e.path)
	}

	rows, err := xlsxFile.GetRows(sheetNames[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheetNames[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyExtract, e.path)
	}

	// Pad short rows to header width; excelize trims trailing empty cells.
	width := len(rows[0])
	padded := make([][]string, len(rows))
	for i, row := range rows {
		p := make([]string, width)
		copy(p, row)
		padded[i] = p
	}
	return padded, nil
}

// recordsFromRows maps raw rows (header first) to ColumnRecords.
func recordsFromRows(rows [][]string, fields FieldMap, path string) ([]ColumnRecord, error) {
	header := rows[0]
	idx := func(name string) int {
		for i, h := range header {
			if strings.EqualFold(strings.TrimSpace(h), name) {
				return i
			}
		}
		return -1
	}

	tableIdx := idx(fields.Table)
	columnIdx := idx(fields.Column)
	typeIdx := idx(fields.Type)
	for _, missing := range []struct {
		name string
		pos  int
	}{
		{fields.Table, tableIdx},
		{fields.Column, columnIdx},
		{fields.Type, typeIdx},
	} {
		if missing.pos < 0 {
			return nil, fmt.Errorf("%w: %q in %s", ErrMissingField, missing.name, path)
		}
	}

	// Optional fields fall back to absent values when the column is missing.
	lengthIdx := idx(fields.Length)
	precisionIdx := idx(fields.Precision)
	scaleIdx := idx(fields.Scale)
	nullableIdx := idx(fields.Nullable)

	falseLiterals := fields.FalseLiterals
	if len(falseLiterals) == 0 {
		falseLiterals = defaultFalseLiterals
	}

	cell := func(row []string, i int) string {
		if i < 0 || i >= len(row) {
			return ""
		}
		return row[i]
	}

	records := make([]ColumnRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		nullable := true
		if nullableIdx >= 0 {
			nullable = parseNullable(cell(row, nullableIdx), falseLiterals)
		}
		records = append(records, ColumnRecord{
			TableName:  strings.TrimSpace(cell(row, tableIdx)),
			ColumnName: strings.TrimSpace(cell(row, columnIdx)),
			RawType:    strings.TrimSpace(cell(row, typeIdx)),
			Length:     strings.TrimSpace(cell(row, lengthIdx)),
			Precision:  strings.TrimSpace(cell(row, precisionIdx)),
			Scale:      strings.TrimSpace(cell(row, scaleIdx)),
			Nullable:   nullable,
		})
	}
	return records, nil
}

// IsSupportedExtract reports whether the file name has a supported extract
// extension, compressed or not.
func IsSupportedExtract(fileName string) bool {
	return detectExtractType(fileName) != ExtractTypeUnsupported
}

// detectExtractType detects the extract format from the extension,
// considering stacked compression extensions.
func detectExtractType(path string) ExtractType {
	base := strings.ToLower(path)
	for _, ext := range []string{extGZ, extBZ2, extXZ, extZSTD} {
		if strings.HasSuffix(base, ext) {
			base = strings.TrimSuffix(base, ext)
			break
		}
	}
	switch filepath.Ext(base) {
	case extCSV:
		return ExtractTypeCSV
	case extTSV:
		return ExtractTypeTSV
	case extXLSX:
		return ExtractTypeXLSX
	case extParquet:
		return ExtractTypeParquet
	default:
		return ExtractTypeUnsupported
	}
}

// baseNameFromPath returns the extract file name without compression and
// format extensions. Output files derive their names from it.
func baseNameFromPath(path string) string {
	fileName := filepath.Base(path)
	for _, ext := range []string{extGZ, extBZ2, extXZ, extZSTD} {
		if strings.HasSuffix(strings.ToLower(fileName), ext) {
			fileName = fileName[:len(fileName)-len(ext)]
			break
		}
	}
	return strings.TrimSuffix(fileName, filepath.Ext(fileName))
}
