package bqddl

import "time"

// Convert runs a full conversion: assembles the DDL body for the records,
// renders the summary header, and returns the complete document together
// with the per-run stats. Each call gets a fresh stats accumulator, so
// repeated or concurrent conversions never share counters.
func Convert(dialect Dialect, records []ColumnRecord, opts ...ConvertOptions) (string, *ConversionStats, error) {
	return convertAt(dialect, records, time.Now(), opts...)
}

// convertAt is Convert with an injectable timestamp.
func convertAt(dialect Dialect, records []ColumnRecord, generatedAt time.Time, opts ...ConvertOptions) (string, *ConversionStats, error) {
	body, stats, err := Assemble(dialect, records, opts...)
	if err != nil {
		return "", nil, err
	}
	return RenderReport(dialect, stats, generatedAt) + body, stats, nil
}
