package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/nao1215/bqddl"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "bqddl error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("bqddl", flag.ContinueOnError)
	fs.Usage = func() { printUsage(fs) }

	var (
		dialectTag  = fs.String("dialect", "", "source dialect: oracle, postgresql, or mssql")
		configPath  = fs.String("config", "", "path to YAML config file")
		outputDir   = fs.String("output", "", "directory for generated .sql files (default: print to stdout)")
		dataset     = fs.String("dataset", "", "BigQuery dataset used to qualify table names")
		project     = fs.String("project", "", "project id used to qualify table names (requires -dataset)")
		compression = fs.String("compress", "", "compress output files: gz, xz, or zst")
		lowercase   = fs.Bool("lowercase", false, "lowercase emitted table names")
		sweep       = fs.Bool("sweep", false, "after the run, keep only the newest document per input in the output directory")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		printUsage(fs)
		return fmt.Errorf("no input files")
	}

	var cfg bqddl.Config
	if *configPath != "" {
		loaded, err := bqddl.LoadConfig(*configPath)
		if err != nil {
			return err
		}
		cfg = *loaded
	}

	// Flags win over config file settings.
	if *dialectTag == "" {
		*dialectTag = cfg.Dialect
	}
	if *dialectTag == "" {
		return fmt.Errorf("missing required flag: -dialect")
	}
	dialect, err := bqddl.ParseDialect(*dialectTag)
	if err != nil {
		return err
	}
	if *outputDir == "" {
		*outputDir = cfg.Output.Dir
	}
	if *compression == "" {
		*compression = cfg.Output.Compression
	}
	compressionType, err := bqddl.ParseCompressionType(*compression)
	if err != nil {
		return err
	}

	opts := cfg.ConvertOptions()
	if *dataset != "" {
		opts = opts.WithDataset(*dataset)
	}
	if *project != "" {
		opts = opts.WithProject(*project)
	}
	if *lowercase {
		opts = opts.WithLowercaseTables(true)
	}

	batch, err := bqddl.NewBatchBuilder(dialect).
		AddPaths(fs.Args()...).
		WithFieldMap(cfg.FieldMap()).
		WithConvertOptions(opts).
		WithOutputDir(*outputDir).
		WithOutputCompression(compressionType).
		Build()
	if err != nil {
		return err
	}

	failed := 0
	for _, result := range batch.Run() {
		if result.Err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "%s: %v\n", result.Input, result.Err)
			continue
		}
		for _, diag := range result.Stats.Diagnostics {
			fmt.Fprintf(os.Stderr, "%s: %s\n", result.Input, diag)
		}
		if *outputDir == "" {
			fmt.Print(result.DDL)
		} else {
			fmt.Fprintf(os.Stderr, "DDL saved to: %s\n", result.Output)
		}
	}

	if (*sweep || cfg.Output.Sweep) && *outputDir != "" {
		swept, err := bqddl.SweepOutputs(*outputDir)
		if err != nil {
			return err
		}
		for _, diag := range swept.Skipped {
			fmt.Fprintf(os.Stderr, "%s\n", diag)
		}
		for _, moved := range swept.Moved {
			fmt.Fprintf(os.Stderr, "moved %s to trash\n", moved)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d inputs failed", failed, len(batch.Extracts()))
	}
	return nil
}

func printUsage(fs *flag.FlagSet) {
	fmt.Fprint(os.Stderr, `bqddl - generate BigQuery DDL from schema metadata extracts

Usage:
  bqddl [flags] <extract file or directory>...

Flags:
`)
	fs.PrintDefaults()
}
