package bqddl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNullable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value    string
		expected bool
	}{
		{value: "false", expected: false},
		{value: "FALSE", expected: false},
		{value: "N", expected: false},
		{value: "n", expected: false},
		{value: "NO", expected: false},
		{value: "0", expected: false},
		{value: " N ", expected: false},
		{value: "true", expected: true},
		{value: "Y", expected: true},
		{value: "YES", expected: true},
		{value: "", expected: true},
		{value: "anything", expected: true},
	}
	for _, tt := range tests {
		t.Run("value "+tt.value, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, parseNullable(tt.value, defaultFalseLiterals))
		})
	}
}

func TestParseNullable_CustomLiterals(t *testing.T) {
	t.Parallel()

	assert.False(t, parseNullable("nicht", []string{"nicht"}))
	assert.True(t, parseNullable("N", []string{"nicht"}), "custom literals replace the default set")
}

func TestSanitizeColumnName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "SYSID", sanitizeColumnName("SYS$ID"))
	assert.Equal(t, "AB", sanitizeColumnName("$A$B$"))
	assert.Equal(t, "PLAIN", sanitizeColumnName("PLAIN"))
}
