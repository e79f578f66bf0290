// Package kwtable decodes keyword-research exports (SEMrush-style
// semicolon-delimited datasets) into typed in-memory tables and serves
// interactive filter/sort queries over them.
//
// kwtable is the engine behind a keyword-table viewer: a presentation
// layer hands it raw file text, and it hands back either a fully decoded
// table or a single positioned error. There is no partial success; a
// failed load never replaces the previously loaded table.
//
// # Features
//
//   - Header-driven column discovery: the ten recognized export columns
//     may appear in any order, and all but "Keyword" are optional
//   - Strict per-field decoding with line, column, and raw-value context
//     on every error
//   - A pure query layer: case-insensitive text filter, selection filter,
//     AND-semantics SERP-feature tag filter, and nullable-aware stable sort
//   - Automatic handling of compressed files (gzip, bzip2, xz, zstandard)
//   - Ingestion of exports stored as XLSX workbooks or Parquet files
//   - Export of the decoded table to CSV, TSV, XLSX, or an SQLite database
//
// # Basic Usage
//
// The Session type owns the currently loaded table and its view state:
//
//	sess := kwtable.NewSession()
//	summary, err := sess.LoadFile("keywords.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("loaded %d rows\n", summary.RowCount)
//
//	sess.SetFilter("login")
//	sess.SetSort(kwtable.SortBySearchVolume, kwtable.Descending)
//	for _, row := range sess.View() {
//	    fmt.Println(row.Keyword)
//	}
//
// # Optional Fields
//
// Columns absent from a file's header decode as absent, not as zero.
// Numeric fields are wrapped in model.Option and list fields decode to
// empty sequences, so callers must never assume a value exists. Sorting
// is nullable-aware: absent values order before present ones ascending
// and after them descending.
//
// # Error Handling
//
// All decode failures are fatal to the load as a whole and are reported
// as a *model.ParseError wrapping one of the sentinel errors
// (model.ErrMissingKeywordColumn, model.ErrInvalidValue,
// model.ErrInvalidListEntry, model.ErrTrendsLength). Use errors.Is and
// errors.As to classify them.
package kwtable
