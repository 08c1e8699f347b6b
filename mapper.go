package bqddl

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// BigQuery parameterized type capacity limits.
// https://cloud.google.com/bigquery/docs/reference/standard-sql/data-types#parameterized_data_types
const (
	maxNumericPrecision    = 38
	maxNumericScale        = 9
	maxBigNumericPrecision = 76
	maxBigNumericScale     = 38
)

// parenSuffix matches a parenthesized type suffix such as "(50)" or "(10,2)".
var parenSuffix = regexp.MustCompile(`\(.*?\)`)

// normalizeRawType strips any parenthesized suffix and uppercases the raw
// type name for lookup, so "timestamp(6) with time zone" becomes
// "TIMESTAMP WITH TIME ZONE". Length, precision and scale arrive as separate
// metadata fields; the suffix itself is discarded.
func normalizeRawType(raw string) string {
	return strings.ToUpper(strings.TrimSpace(parenSuffix.ReplaceAllString(raw, "")))
}

// typeMapper resolves source raw types to BigQuery type strings for one
// dialect.
type typeMapper struct {
	dialect Dialect
	types   map[string]string
}

func newTypeMapper(dialect Dialect) typeMapper {
	return typeMapper{dialect: dialect, types: dialect.mapping()}
}

// numericField validates a length/precision/scale metadata value. An empty
// value means absent. A non-empty value must be a non-negative integer and is
// returned in canonical form ("050" becomes "50").
func numericField(field, value string, rec ColumnRecord) (string, bool, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", false, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return "", false, fmt.Errorf("%w: %s %q for column %s.%s",
			ErrMalformedNumericField, field, value, rec.TableName, rec.ColumnName)
	}
	return strconv.Itoa(n), true, nil
}

// resolve maps one column record to its BigQuery type string. Unknown raw
// types and capacity overflows are absorbed into stats as diagnostics; the
// only error condition is a malformed numeric metadata field.
func (m typeMapper) resolve(rec ColumnRecord, stats *ConversionStats) (string, error) {
	length, hasLength, err := numericField("length", rec.Length, rec)
	if err != nil {
		return "", err
	}
	precision, hasPrecision, err := numericField("precision", rec.Precision, rec)
	if err != nil {
		return "", err
	}
	scale, hasScale, err := numericField("scale", rec.Scale, rec)
	if err != nil {
		return "", err
	}

	name := normalizeRawType(rec.RawType)
	base, known := m.types[name]
	if !known {
		stats.UnknownTypes++
		stats.warnf("unknown %s data type %q for column %s.%s, defaulting to STRING",
			m.dialect, name, rec.TableName, rec.ColumnName)
		base = typeString
	}

	switch base {
	case typeNumeric:
		switch {
		case hasPrecision && hasScale:
			p, _ := strconv.Atoi(precision)
			s, _ := strconv.Atoi(scale)
			switch {
			case p <= maxNumericPrecision && s <= maxNumericScale:
				return fmt.Sprintf("NUMERIC(%s, %s)", precision, scale), nil
			case p <= maxBigNumericPrecision || s <= maxBigNumericScale:
				return fmt.Sprintf("BIGNUMERIC(%s, %s)", precision, scale), nil
			default:
				stats.warnf("precision %s and scale %s exceed BIGNUMERIC capacity for column %s.%s, degrading to FLOAT64",
					precision, scale, rec.TableName, rec.ColumnName)
				return typeFloat64, nil
			}
		case hasPrecision:
			return fmt.Sprintf("NUMERIC(%s)", precision), nil
		default:
			return typeNumeric, nil
		}
	case typeString:
		if hasLength {
			return fmt.Sprintf("STRING(%s)", length), nil
		}
		return typeString, nil
	default:
		return base, nil
	}
}
