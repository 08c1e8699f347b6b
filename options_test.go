package bqddl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewConvertOptions(t *testing.T) {
	t.Parallel()

	opts := NewConvertOptions()
	assert.Equal(t, defaultCommentAlignColumn, opts.alignColumn)
	assert.Empty(t, opts.dataset)
	assert.Empty(t, opts.project)
	assert.False(t, opts.lowercaseTables)
}

func TestConvertOptions_Chaining(t *testing.T) {
	t.Parallel()

	opts := NewConvertOptions().
		WithProject("p").
		WithDataset("d").
		WithLowercaseTables(true).
		WithCommentAlignColumn(60)

	assert.Equal(t, "p", opts.project)
	assert.Equal(t, "d", opts.dataset)
	assert.True(t, opts.lowercaseTables)
	assert.Equal(t, 60, opts.alignColumn)
}

func TestConvertOptions_AlignColumnFallback(t *testing.T) {
	t.Parallel()

	opts := NewConvertOptions().WithCommentAlignColumn(0)
	assert.Equal(t, defaultCommentAlignColumn, opts.alignColumn)

	opts = NewConvertOptions().WithCommentAlignColumn(-5)
	assert.Equal(t, defaultCommentAlignColumn, opts.alignColumn)
}

func TestConvertOptions_ValueSemantics(t *testing.T) {
	t.Parallel()

	base := NewConvertOptions()
	derived := base.WithDataset("d")
	assert.Empty(t, base.dataset, "With methods return copies")
	assert.Equal(t, "d", derived.dataset)
}
