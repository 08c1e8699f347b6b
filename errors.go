package bqddl

import "errors"

// Standard error values for consistency across the package
var (
	// ErrUnknownDialect indicates a dialect tag outside oracle/postgresql/mssql
	ErrUnknownDialect = errors.New("bqddl: unknown dialect")

	// ErrUnsupportedFormat indicates an unsupported metadata extract format
	ErrUnsupportedFormat = errors.New("bqddl: unsupported file format")

	// ErrEmptyExtract indicates that the metadata extract contains no rows
	ErrEmptyExtract = errors.New("bqddl: empty metadata extract")

	// ErrMissingField indicates a required header field absent from the extract
	ErrMissingField = errors.New("bqddl: missing header field")

	// ErrMalformedNumericField indicates a non-empty length/precision/scale
	// value that is not a valid non-negative integer
	ErrMalformedNumericField = errors.New("bqddl: malformed numeric field")

	// ErrFileNotFound indicates an input path that does not exist
	ErrFileNotFound = errors.New("bqddl: file not found")

	// ErrNoInputs indicates a builder with nothing to convert
	ErrNoInputs = errors.New("bqddl: no input files")
)
