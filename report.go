package bqddl

import (
	"fmt"
	"strings"
	"time"
)

// RenderReport renders the conversion summary as a comment block to prepend
// to the DDL body: generation timestamp, dialect, table/column/unknown
// counts, any duplicated table names, the raw-type frequency listing in
// first-occurrence order, and the audit-comment legend.
func RenderReport(dialect Dialect, stats *ConversionStats, generatedAt time.Time) string {
	var b strings.Builder
	b.WriteString("/*\n")
	fmt.Fprintf(&b, "Generated at: %s\n", generatedAt.Format(time.RFC3339))
	fmt.Fprintf(&b, "Dialect: %s\n", dialect)
	fmt.Fprintf(&b, "Total table: %d\n", stats.Tables)
	fmt.Fprintf(&b, "Total column: %d\n", stats.Columns)
	fmt.Fprintf(&b, "Total unknown data type: %d\n", stats.UnknownTypes)
	for _, dup := range stats.DuplicateTables() {
		fmt.Fprintf(&b, "Duplicate table: %s (opened %d times)\n", dup.Name, dup.Opens)
	}
	if freq := stats.TypeFrequency(); len(freq) > 0 {
		b.WriteString("Type frequency:\n")
		for _, tc := range freq {
			fmt.Fprintf(&b, "  %s: %d\n", tc.Name, tc.Count)
		}
	}
	b.WriteString("comment: -- DATA_TYPE DATA_LENGTH-DATA_PRECISION-DATA_SCALE\n")
	b.WriteString("*/\n\n")
	return b.String()
}
