package bqddl

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// outputTimestampFormat is the timestamp embedded in generated file names.
// Colons are avoided so the names stay valid on every platform.
const outputTimestampFormat = "2006-01-02T15-04-05"

// BatchBuilder collects metadata extracts and conversion settings before
// running a batch. Use NewBatchBuilder, chain the configuration methods, and
// call Build to validate the inputs:
//
//	batch, err := bqddl.NewBatchBuilder(bqddl.DialectOracle).
//		AddPath("schemas/").
//		WithOutputDir("out").
//		Build()
//	if err != nil {
//		return err
//	}
//	results := batch.Run()
type BatchBuilder struct {
	dialect     Dialect
	paths       []string
	fields      FieldMap
	convertOpts ConvertOptions
	outputDir   string
	compression CompressionType
}

// NewBatchBuilder creates a builder for the given dialect.
func NewBatchBuilder(dialect Dialect) *BatchBuilder {
	return &BatchBuilder{
		dialect:     dialect,
		paths:       make([]string, 0),
		fields:      DefaultFieldMap(),
		convertOpts: NewConvertOptions(),
	}
}

// AddPath adds an extract file or a directory. Directories are searched
// recursively for supported extracts at Build time.
func (b *BatchBuilder) AddPath(path string) *BatchBuilder {
	b.paths = append(b.paths, path)
	return b
}

// AddPaths adds multiple extract files or directories.
func (b *BatchBuilder) AddPaths(paths ...string) *BatchBuilder {
	b.paths = append(b.paths, paths...)
	return b
}

// WithFieldMap sets the header-field mapping used to read the extracts.
func (b *BatchBuilder) WithFieldMap(fields FieldMap) *BatchBuilder {
	b.fields = fields
	return b
}

// WithConvertOptions sets the DDL assembly options.
func (b *BatchBuilder) WithConvertOptions(opts ConvertOptions) *BatchBuilder {
	b.convertOpts = opts
	return b
}

// WithOutputDir sets the directory where generated .sql documents are
// written. Empty means no files are written; results carry the text only.
func (b *BatchBuilder) WithOutputDir(dir string) *BatchBuilder {
	b.outputDir = dir
	return b
}

// WithOutputCompression compresses written documents with the given type.
func (b *BatchBuilder) WithOutputCompression(c CompressionType) *BatchBuilder {
	b.compression = c
	return b
}

// Build validates the configuration and collects the extract list. Missing
// paths and an empty input set are configuration errors; a directory without
// supported extracts contributes nothing.
func (b *BatchBuilder) Build() (*Batch, error) {
	if b.dialect.mapping() == nil {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDialect, b.dialect)
	}

	var extracts []*Extract
	for _, path := range b.paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		if !info.IsDir() {
			if !IsSupportedExtract(path) {
				return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
			}
			extracts = append(extracts, NewExtract(path))
			continue
		}
		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && IsSupportedExtract(p) {
				extracts = append(extracts, NewExtract(p))
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk directory %s: %w", path, err)
		}
	}
	if len(extracts) == 0 {
		return nil, ErrNoInputs
	}

	return &Batch{
		dialect:     b.dialect,
		extracts:    extracts,
		fields:      b.fields,
		convertOpts: b.convertOpts,
		outputDir:   b.outputDir,
		compression: b.compression,
	}, nil
}

// Batch is a validated set of extracts ready for conversion.
type Batch struct {
	dialect     Dialect
	extracts    []*Extract
	fields      FieldMap
	convertOpts ConvertOptions
	outputDir   string
	compression CompressionType
}

// Extracts returns the collected extracts in run order.
func (b *Batch) Extracts() []*Extract {
	return b.extracts
}

// Result is the outcome of converting one extract. Err is set when that
// extract failed; the batch still continues with the remaining inputs.
type Result struct {
	// Input is the extract file path.
	Input string
	// Output is the written document path, empty when no output directory
	// was configured or the conversion failed.
	Output string
	// DDL is the complete generated document (header plus body).
	DDL string
	// Stats are the counters of this extract's run.
	Stats *ConversionStats
	// Err is the failure of this extract, nil on success.
	Err error
}

// Run converts every extract independently, each with its own stats
// accumulator, and returns one Result per input in order. A failing input
// never aborts the others.
func (b *Batch) Run() []Result {
	results := make([]Result, 0, len(b.extracts))
	for _, extract := range b.extracts {
		results = append(results, b.runOne(extract, time.Now()))
	}
	return results
}

func (b *Batch) runOne(extract *Extract, now time.Time) Result {
	result := Result{Input: extract.Path()}

	records, err := extract.Records(b.fields)
	if err != nil {
		result.Err = err
		return result
	}

	ddl, stats, err := convertAt(b.dialect, records, now, b.convertOpts)
	if err != nil {
		result.Err = err
		return result
	}
	result.DDL = ddl
	result.Stats = stats

	if b.outputDir != "" {
		outPath, err := b.writeDocument(extract, ddl, now)
		if err != nil {
			result.Err = err
			return result
		}
		result.Output = outPath
	}
	return result
}

// writeDocument writes one generated document to the output directory,
// named <base>_<timestamp>.sql plus the compression extension.
func (b *Batch) writeDocument(extract *Extract, ddl string, now time.Time) (string, error) {
	if err := os.MkdirAll(b.outputDir, 0o750); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	name := fmt.Sprintf("%s_%s.sql%s",
		baseNameFromPath(extract.Path()), now.Format(outputTimestampFormat), b.compression.Extension())
	outPath := filepath.Join(b.outputDir, name)

	writer, closer, err := createCompressedFile(outPath, b.compression)
	if err != nil {
		return "", err
	}
	if _, err := io.WriteString(writer, ddl); err != nil {
		_ = closer()
		return "", fmt.Errorf("failed to write %s: %w", outPath, err)
	}
	if err := closer(); err != nil {
		return "", fmt.Errorf("failed to close %s: %w", outPath, err)
	}
	return outPath, nil
}
