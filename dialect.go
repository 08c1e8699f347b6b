package bqddl

import (
	"fmt"
	"strings"
)

// Dialect represents the source database family whose type vocabulary is
// translated to BigQuery.
type Dialect int

const (
	// DialectOracle represents Oracle sources
	DialectOracle Dialect = iota
	// DialectPostgreSQL represents PostgreSQL sources
	DialectPostgreSQL
	// DialectMSSQL represents Microsoft SQL Server sources
	DialectMSSQL
)

// String returns the dialect tag used in configuration and reports.
func (d Dialect) String() string {
	switch d {
	case DialectOracle:
		return "oracle"
	case DialectPostgreSQL:
		return "postgresql"
	case DialectMSSQL:
		return "mssql"
	default:
		return "unknown"
	}
}

// ParseDialect parses a dialect tag. An unrecognized tag is a configuration
// error; there is no silent default.
func ParseDialect(s string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "oracle":
		return DialectOracle, nil
	case "postgresql", "postgres":
		return DialectPostgreSQL, nil
	case "mssql", "sqlserver":
		return DialectMSSQL, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownDialect, s)
	}
}

// BigQuery base types before length/precision/scale parameterization.
const (
	typeString    = "STRING"
	typeBytes     = "BYTES"
	typeNumeric   = "NUMERIC"
	typeDate      = "DATE"
	typeTimestamp = "TIMESTAMP"
	typeBool      = "BOOL"
	typeInt64     = "INT64"
	typeFloat64   = "FLOAT64"
	typeDatetime  = "DATETIME"
)

// mapping returns the immutable raw-type table for the dialect. Keys are
// uppercase with any parenthesized suffix already stripped.
func (d Dialect) mapping() map[string]string {
	switch d {
	case DialectOracle:
		return oracleTypes
	case DialectPostgreSQL:
		return postgresTypes
	case DialectMSSQL:
		return mssqlTypes
	default:
		return nil
	}
}

var oracleTypes = map[string]string{
	"VARCHAR2":                       typeString,
	"NVARCHAR2":                      typeString,
	"CHAR":                           typeString,
	"NCHAR":                          typeString,
	"CLOB":                           typeString,
	"NCLOB":                          typeString,
	"LONG":                           typeString,
	"ROWID":                          typeString,
	"BLOB":                           typeBytes,
	"RAW":                            typeBytes,
	"LONG RAW":                       typeBytes,
	"NUMBER":                         typeNumeric,
	"FLOAT":                          typeFloat64,
	"BINARY_FLOAT":                   typeFloat64,
	"BINARY_DOUBLE":                  typeFloat64,
	"DATE":                           typeDate,
	"TIMESTAMP":                      typeTimestamp,
	"TIMESTAMP WITH TIME ZONE":       typeTimestamp,
	"TIMESTAMP WITH LOCAL TIME ZONE": typeTimestamp,
}

var postgresTypes = map[string]string{
	"CHARACTER VARYING":           typeString,
	"VARCHAR":                     typeString,
	"CHARACTER":                   typeString,
	"CHAR":                        typeString,
	"BPCHAR":                      typeString,
	"TEXT":                        typeString,
	"UUID":                        typeString,
	"JSON":                        typeString,
	"JSONB":                       typeString,
	"XML":                         typeString,
	"BYTEA":                       typeBytes,
	"NUMERIC":                     typeNumeric,
	"DECIMAL":                     typeNumeric,
	"SMALLINT":                    typeInt64,
	"INTEGER":                     typeInt64,
	"INT":                         typeInt64,
	"BIGINT":                      typeInt64,
	"SMALLSERIAL":                 typeInt64,
	"SERIAL":                      typeInt64,
	"BIGSERIAL":                   typeInt64,
	"REAL":                        typeFloat64,
	"DOUBLE PRECISION":            typeFloat64,
	"BOOLEAN":                     typeBool,
	"DATE":                        typeDate,
	"TIMESTAMP":                   typeTimestamp,
	"TIMESTAMP WITHOUT TIME ZONE": typeTimestamp,
	"TIMESTAMP WITH TIME ZONE":    typeTimestamp,
}

var mssqlTypes = map[string]string{
	"VARCHAR":          typeString,
	"NVARCHAR":         typeString,
	"CHAR":             typeString,
	"NCHAR":            typeString,
	"TEXT":             typeString,
	"NTEXT":            typeString,
	"UNIQUEIDENTIFIER": typeString,
	"XML":              typeString,
	"BINARY":           typeBytes,
	"VARBINARY":        typeBytes,
	"IMAGE":            typeBytes,
	"BIT":              typeBool,
	"TINYINT":          typeInt64,
	"SMALLINT":         typeInt64,
	"INT":              typeInt64,
	"BIGINT":           typeInt64,
	"DECIMAL":          typeNumeric,
	"NUMERIC":          typeNumeric,
	"MONEY":            typeNumeric,
	"SMALLMONEY":       typeNumeric,
	"FLOAT":            typeFloat64,
	"REAL":             typeFloat64,
	"DATE":             typeDate,
	"DATETIME":         typeDatetime,
	"DATETIME2":        typeDatetime,
	"SMALLDATETIME":    typeDatetime,
	"DATETIMEOFFSET":   typeTimestamp,
}
