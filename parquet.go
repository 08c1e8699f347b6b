package bqddl

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/apache/arrow/go/v18/arrow"
	"github.com/apache/arrow/go/v18/arrow/array"
	pqfile "github.com/apache/arrow/go/v18/parquet/file"
	"github.com/apache/arrow/go/v18/parquet/pqarrow"
)

// readParquet reads a Parquet extract into raw rows, header first. Parquet
// needs random access, so the whole (decompressed) file is buffered in
// memory.
func (e *Extract) readParquet() ([][]string, error) {
	reader, closer, err := openCompressedFile(e.path)
	if err != nil {
		return nil, err
	}
	defer closer() //nolint:errcheck // read-only close

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read parquet data: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyExtract, e.path)
	}

	pqReader, err := pqfile.NewParquetReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create parquet reader: %w", err)
	}
	defer pqReader.Close()

	arrowReader, err := pqarrow.NewFileReader(pqReader, pqarrow.ArrowReadProperties{}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create arrow reader: %w", err)
	}

	table, err := arrowReader.ReadTable(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to read table: %w", err)
	}
	defer table.Release()

	schema := table.Schema()
	headerRow := make([]string, schema.NumFields())
	for i, field := range schema.Fields() {
		headerRow[i] = field.Name
	}
	rows := [][]string{headerRow}

	tableReader := array.NewTableReader(table, 0)
	defer tableReader.Release()

	for tableReader.Next() {
		batch := tableReader.Record()
		numRows := int(batch.NumRows())
		for i := range numRows {
			row := make([]string, batch.NumCols())
			for j, col := range batch.Columns() {
				row[j] = arrowValueString(col, i)
			}
			rows = append(rows, row)
		}
	}
	if err := tableReader.Err(); err != nil {
		return nil, fmt.Errorf("error reading table records: %w", err)
	}
	return rows, nil
}

// arrowValueString renders one arrow cell as the string form used by the
// field mapping. NULL cells become empty strings so they read as absent
// metadata values.
func arrowValueString(col arrow.Array, i int) string {
	if col.IsNull(i) {
		return ""
	}
	if s, ok := col.(*array.String); ok {
		return s.Value(i)
	}
	return col.ValueStr(i)
}
