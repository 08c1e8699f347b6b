package bqddl

// defaultCommentAlignColumn is the line offset where the trailing audit
// comment starts. Purely cosmetic; long declarations clamp to a single-space
// gap.
const defaultCommentAlignColumn = 48

// ConvertOptions configures DDL assembly. Use NewConvertOptions and chain
// With* methods:
//
//	opts := bqddl.NewConvertOptions().
//		WithDataset("ods").
//		WithProject("my-project")
type ConvertOptions struct {
	project         string
	dataset         string
	lowercaseTables bool
	alignColumn     int
}

// NewConvertOptions creates ConvertOptions with default settings.
func NewConvertOptions() ConvertOptions {
	return ConvertOptions{alignColumn: defaultCommentAlignColumn}
}

// WithProject sets the project id used to qualify emitted table names.
// Ignored unless a dataset is also set.
func (o ConvertOptions) WithProject(project string) ConvertOptions {
	o.project = project
	return o
}

// WithDataset sets the dataset used to qualify emitted table names.
func (o ConvertOptions) WithDataset(dataset string) ConvertOptions {
	o.dataset = dataset
	return o
}

// WithLowercaseTables lowercases emitted table names.
func (o ConvertOptions) WithLowercaseTables(enabled bool) ConvertOptions {
	o.lowercaseTables = enabled
	return o
}

// WithCommentAlignColumn sets the audit-comment alignment column. Values
// below 1 fall back to the default.
func (o ConvertOptions) WithCommentAlignColumn(col int) ConvertOptions {
	if col < 1 {
		col = defaultCommentAlignColumn
	}
	o.alignColumn = col
	return o
}
