package bqddl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDialect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected Dialect
	}{
		{input: "oracle", expected: DialectOracle},
		{input: "Oracle", expected: DialectOracle},
		{input: "postgresql", expected: DialectPostgreSQL},
		{input: "postgres", expected: DialectPostgreSQL},
		{input: "mssql", expected: DialectMSSQL},
		{input: "sqlserver", expected: DialectMSSQL},
		{input: " oracle ", expected: DialectOracle},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := ParseDialect(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseDialect_Unknown(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "mysql", "bigquery"} {
		t.Run("tag "+input, func(t *testing.T) {
			t.Parallel()

			_, err := ParseDialect(input)
			require.Error(t, err, "unrecognized tags must not fall back to a default")
			assert.ErrorIs(t, err, ErrUnknownDialect)
		})
	}
}

func TestDialect_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "oracle", DialectOracle.String())
	assert.Equal(t, "postgresql", DialectPostgreSQL.String())
	assert.Equal(t, "mssql", DialectMSSQL.String())
	assert.Equal(t, "unknown", Dialect(99).String())
}

func TestDialect_MappingCoversCanonicalBaseTypes(t *testing.T) {
	t.Parallel()

	valid := map[string]bool{
		typeString: true, typeBytes: true, typeNumeric: true,
		typeDate: true, typeTimestamp: true, typeBool: true,
		typeInt64: true, typeFloat64: true, typeDatetime: true,
	}
	for _, dialect := range []Dialect{DialectOracle, DialectPostgreSQL, DialectMSSQL} {
		mapping := dialect.mapping()
		require.NotEmpty(t, mapping)
		for raw, base := range mapping {
			assert.True(t, valid[base], "dialect %s maps %s to non-canonical base type %s", dialect, raw, base)
			assert.Equal(t, normalizeRawType(raw), raw, "mapping key %s must already be normalized", raw)
		}
	}
}
