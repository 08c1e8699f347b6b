// Package bqddl generates BigQuery `CREATE OR REPLACE TABLE` DDL from
// schema metadata extracts of Oracle, PostgreSQL, and Microsoft SQL Server
// databases.
//
// An extract is a delimited file (CSV, TSV, XLSX, or Parquet, optionally
// gzip/bzip2/xz/zstd compressed) with one row per column, grouped by table.
// bqddl maps each source type to its BigQuery equivalent, applies the
// NUMERIC/BIGNUMERIC/FLOAT64 capacity tiering and STRING length
// parameterization, and assembles one CREATE OR REPLACE TABLE block per
// table with a summary header: generation timestamp, table/column counts,
// unknown types, duplicated table names, and a raw-type frequency listing.
//
// # Basic Usage
//
// Convert an in-memory record sequence:
//
//	records := []bqddl.ColumnRecord{
//		{TableName: "EMPLOYEES", ColumnName: "EMP_ID", RawType: "NUMBER", Precision: "10", Scale: "0"},
//		{TableName: "EMPLOYEES", ColumnName: "NAME", RawType: "VARCHAR2", Length: "100", Nullable: true},
//	}
//	ddl, stats, err := bqddl.Convert(bqddl.DialectOracle, records)
//
// # Batch Processing
//
// Convert extract files or whole directories with the batch builder:
//
//	batch, err := bqddl.NewBatchBuilder(bqddl.DialectOracle).
//		AddPath("extracts/").
//		WithOutputDir("out").
//		Build()
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, result := range batch.Run() {
//		if result.Err != nil {
//			log.Printf("%s: %v", result.Input, result.Err)
//		}
//	}
//
// Each input is converted independently with its own stats accumulator, so
// a bad file never aborts the batch and counters never leak across runs.
package bqddl
