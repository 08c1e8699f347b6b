package bqddl

import (
	"compress/bzip2"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

// CompressionType represents the compression applied to an extract or to a
// generated DDL file.
type CompressionType int

const (
	// CompressionNone represents no compression
	CompressionNone CompressionType = iota
	// CompressionGZ represents gzip compression
	CompressionGZ
	// CompressionBZ2 represents bzip2 compression (read only)
	CompressionBZ2
	// CompressionXZ represents xz compression
	CompressionXZ
	// CompressionZSTD represents zstandard compression
	CompressionZSTD
)

// Compression extensions
const (
	// extGZ is the gzip compression extension
	extGZ = ".gz"
	// extBZ2 is the bzip2 compression extension
	extBZ2 = ".bz2"
	// extXZ is the xz compression extension
	extXZ = ".xz"
	// extZSTD is the zstd compression extension
	extZSTD = ".zst"
)

// Extension returns the file extension for the compression type, empty for
// CompressionNone.
func (c CompressionType) Extension() string {
	switch c {
	case CompressionGZ:
		return extGZ
	case CompressionBZ2:
		return extBZ2
	case CompressionXZ:
		return extXZ
	case CompressionZSTD:
		return extZSTD
	default:
		return ""
	}
}

// ParseCompressionType parses a compression tag from configuration
// ("none"/"", "gz", "bz2", "xz", "zst").
func ParseCompressionType(s string) (CompressionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return CompressionNone, nil
	case "gz", "gzip":
		return CompressionGZ, nil
	case "bz2", "bzip2":
		return CompressionBZ2, nil
	case "xz":
		return CompressionXZ, nil
	case "zst", "zstd":
		return CompressionZSTD, nil
	default:
		return CompressionNone, fmt.Errorf("bqddl: unsupported compression %q", s)
	}
}

// detectCompressionType detects the compression type from a file path.
func detectCompressionType(path string) CompressionType {
	path = strings.ToLower(path)
	switch {
	case strings.HasSuffix(path, extGZ):
		return CompressionGZ
	case strings.HasSuffix(path, extBZ2):
		return CompressionBZ2
	case strings.HasSuffix(path, extXZ):
		return CompressionXZ
	case strings.HasSuffix(path, extZSTD):
		return CompressionZSTD
	default:
		return CompressionNone
	}
}

// newCompressionReader wraps a reader with the decompression matching the
// compression type. The returned func releases decompressor resources; it
// does not close the underlying reader.
func newCompressionReader(r io.Reader, c CompressionType) (io.Reader, func() error, error) {
	switch c {
	case CompressionNone:
		return r, func() error { return nil }, nil
	case CompressionGZ:
		gzReader, err := gzip.NewReader(r)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		return gzReader, gzReader.Close, nil
	case CompressionBZ2:
		return bzip2.NewReader(r), func() error { return nil }, nil
	case CompressionXZ:
		xzReader, err := xz.NewReader(r)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create xz reader: %w", err)
		}
		return xzReader, func() error { return nil }, nil
	case CompressionZSTD:
		decoder, err := zstd.NewReader(r)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create zstd reader: %w", err)
		}
		return decoder, func() error {
			decoder.Close()
			return nil
		}, nil
	default:
		return nil, nil, fmt.Errorf("bqddl: unsupported compression type for reading: %v", c)
	}
}

// newCompressionWriter wraps a writer with the compression matching the
// compression type. The returned func flushes and closes the compressor; it
// does not close the underlying writer.
func newCompressionWriter(w io.Writer, c CompressionType) (io.Writer, func() error, error) {
	switch c {
	case CompressionNone:
		return w, func() error { return nil }, nil
	case CompressionGZ:
		gzWriter := gzip.NewWriter(w)
		return gzWriter, gzWriter.Close, nil
	case CompressionBZ2:
		// bzip2 has no writer in the standard library
		return nil, nil, errors.New("bqddl: bzip2 compression is not supported for writing")
	case CompressionXZ:
		xzWriter, err := xz.NewWriter(w)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create xz writer: %w", err)
		}
		return xzWriter, xzWriter.Close, nil
	case CompressionZSTD:
		zstdWriter, err := zstd.NewWriter(w)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create zstd writer: %w", err)
		}
		return zstdWriter, zstdWriter.Close, nil
	default:
		return nil, nil, fmt.Errorf("bqddl: unsupported compression type for writing: %v", c)
	}
}

// openCompressedFile opens a file and returns a reader that transparently
// decompresses based on the file extension. The returned func closes both
// the decompressor and the file.
func openCompressedFile(path string) (io.Reader, func() error, error) {
	f, err := os.Open(path) //nolint:gosec // user-provided input path
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open file: %w", err)
	}
	reader, cleanup, err := newCompressionReader(f, detectCompressionType(path))
	if err != nil {
		_ = f.Close()
		return nil, nil, err
	}
	closer := func() error {
		cleanupErr := cleanup()
		if closeErr := f.Close(); closeErr != nil && cleanupErr == nil {
			cleanupErr = closeErr
		}
		return cleanupErr
	}
	return reader, closer, nil
}

// createCompressedFile creates a file and returns a writer that compresses
// with the given type. The returned func flushes the compressor and closes
// the file.
func createCompressedFile(path string, c CompressionType) (io.Writer, func() error, error) {
	f, err := os.Create(path) //nolint:gosec // user-provided output path
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create file: %w", err)
	}
	writer, cleanup, err := newCompressionWriter(f, c)
	if err != nil {
		_ = f.Close()
		return nil, nil, err
	}
	closer := func() error {
		cleanupErr := cleanup()
		if closeErr := f.Close(); closeErr != nil && cleanupErr == nil {
			cleanupErr = closeErr
		}
		return cleanupErr
	}
	return writer, closer, nil
}
