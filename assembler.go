package bqddl

import (
	"fmt"
	"strings"
)

// Assemble folds an ordered sequence of column records into BigQuery
// `CREATE OR REPLACE TABLE` statements, one block per contiguous run of
// records sharing a table name, and returns the DDL body together with the
// stats accumulated during the pass. The input order is taken as-is; a table
// name reappearing after a different one opens a second block and is flagged
// as a duplicate in the stats.
//
// An empty record sequence yields an empty body with zero counts.
func Assemble(dialect Dialect, records []ColumnRecord, opts ...ConvertOptions) (string, *ConversionStats, error) {
	if dialect.mapping() == nil {
		return "", nil, fmt.Errorf("%w: %d", ErrUnknownDialect, dialect)
	}
	opt := NewConvertOptions()
	if len(opts) > 0 {
		opt = opts[0]
	}
	if opt.alignColumn < 1 {
		opt.alignColumn = defaultCommentAlignColumn
	}

	mapper := newTypeMapper(dialect)
	stats := newConversionStats()

	var (
		b            strings.Builder
		currentTable string
		blockOpen    bool
		blockColumns int
	)

	for _, rec := range records {
		if !blockOpen || rec.TableName != currentTable {
			if blockOpen {
				closeBlock(&b, blockColumns)
			}
			openBlock(&b, rec.TableName, opt)
			currentTable = rec.TableName
			blockOpen = true
			blockColumns = 0
			stats.Tables++
			stats.recordTableOpen(rec.TableName)
		}

		bqType, err := mapper.resolve(rec, stats)
		if err != nil {
			return "", nil, err
		}
		stats.recordType(normalizeRawType(rec.RawType))

		writeColumnLine(&b, rec, bqType, opt)
		blockColumns++
		stats.Columns++
	}

	if blockOpen {
		closeBlock(&b, blockColumns)
	}
	return b.String(), stats, nil
}

// openBlock emits the CREATE OR REPLACE TABLE header for a new table block.
func openBlock(b *strings.Builder, tableName string, opt ConvertOptions) {
	if b.Len() > 0 {
		b.WriteString("\n")
	}
	fmt.Fprintf(b, "CREATE OR REPLACE TABLE `%s` (\n", qualifiedTableName(tableName, opt))
}

// closeBlock emits the closing line annotated with the block's column count.
func closeBlock(b *strings.Builder, columns int) {
	fmt.Fprintf(b, "); -- Column: %d\n", columns)
}

// qualifiedTableName applies the dataset/project qualification and
// lowercasing options to a table name.
func qualifiedTableName(name string, opt ConvertOptions) string {
	if opt.lowercaseTables {
		name = strings.ToLower(name)
	}
	if opt.dataset == "" {
		return name
	}
	if opt.project != "" {
		return opt.project + "." + opt.dataset + "." + name
	}
	return opt.dataset + "." + name
}

// writeColumnLine emits one column declaration with its right-aligned audit
// comment echoing the original raw type and length/precision/scale.
func writeColumnLine(b *strings.Builder, rec ColumnRecord, bqType string, opt ConvertOptions) {
	decl := fmt.Sprintf("  `%s` %s", sanitizeColumnName(rec.ColumnName), bqType)
	if !rec.Nullable {
		decl += " NOT NULL"
	}
	decl += ","

	gap := opt.alignColumn - len(decl)
	if gap < 1 {
		gap = 1
	}
	b.WriteString(decl)
	b.WriteString(strings.Repeat(" ", gap))
	fmt.Fprintf(b, "-- %s %s-%s-%s\n",
		rec.RawType, orAbsent(rec.Length), orAbsent(rec.Precision), orAbsent(rec.Scale))
}

// orAbsent renders a metadata field for the audit comment, using "N" for an
// absent value the way the source extracts do.
func orAbsent(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return "N"
	}
	return value
}
