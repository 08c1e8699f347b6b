package bqddl

import "strings"

// ColumnRecord is one row of a schema metadata extract: a single column of a
// source table. Records are expected in encounter order with all records of
// the same table contiguous; that ordering defines table grouping and is
// never re-sorted.
type ColumnRecord struct {
	// TableName is the target table the column belongs to.
	TableName string
	// ColumnName is the source column name. A `$` marker used by some
	// dialects for system columns is stripped on emit.
	ColumnName string
	// RawType is the source data type, possibly with a parenthesized
	// suffix (e.g. "VARCHAR2(50)").
	RawType string
	// Length is the declared length, empty when not applicable.
	Length string
	// Precision is the declared numeric precision, empty when absent.
	Precision string
	// Scale is the declared numeric scale, empty when absent.
	Scale string
	// Nullable reports whether the column accepts NULL.
	Nullable bool
}

// defaultFalseLiterals are the extract values decoded as "not nullable".
// Oracle data dictionary extracts use "N", information_schema style extracts
// use "NO" or "false". Comparison is case-insensitive; anything else means
// nullable.
var defaultFalseLiterals = []string{"false", "N", "NO", "0"}

// parseNullable decodes a nullability literal against the given
// false-literals set.
func parseNullable(value string, falseLiterals []string) bool {
	value = strings.TrimSpace(value)
	for _, lit := range falseLiterals {
		if strings.EqualFold(value, lit) {
			return false
		}
	}
	return true
}

// sanitizeColumnName removes the `$` system-column marker so the name is a
// valid BigQuery identifier.
func sanitizeColumnName(name string) string {
	return strings.ReplaceAll(name, "$", "")
}
