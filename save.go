package kwtable

import (
	"compress/gzip"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
	"github.com/xuri/excelize/v2"
	_ "modernc.org/sqlite" // sqlite driver for ExportSQLite

	"github.com/semlens/kwtable/domain/model"
)

// OutputFormat represents the export file format.
type OutputFormat int

const (
	// OutputFormatCSV represents semicolon-delimited CSV output
	OutputFormatCSV OutputFormat = iota
	// OutputFormatTSV represents tab-delimited output
	OutputFormatTSV
	// OutputFormatXLSX represents Excel XLSX output
	OutputFormatXLSX
	// OutputFormatSQLite represents an SQLite database file
	OutputFormatSQLite
)

// String returns the string representation of OutputFormat.
func (f OutputFormat) String() string {
	switch f {
	case OutputFormatCSV:
		return "csv"
	case OutputFormatTSV:
		return "tsv"
	case OutputFormatXLSX:
		return "xlsx"
	case OutputFormatSQLite:
		return "sqlite"
	default:
		return "csv"
	}
}

// Extension returns the file extension for the format.
func (f OutputFormat) Extension() string {
	switch f {
	case OutputFormatCSV:
		return extCSV
	case OutputFormatTSV:
		return extTSV
	case OutputFormatXLSX:
		return extXLSX
	case OutputFormatSQLite:
		return ".db"
	default:
		return extCSV
	}
}

// CompressionType represents the export compression type. Compression
// applies to text formats only; XLSX and SQLite files are written as-is.
type CompressionType int

const (
	// CompressionNone means no compression
	CompressionNone CompressionType = iota
	// CompressionGZ means gzip compression
	CompressionGZ
	// CompressionXZ means xz compression
	CompressionXZ
	// CompressionZSTD means zstandard compression
	CompressionZSTD
)

// Extension returns the file extension for the compression type.
func (c CompressionType) Extension() string {
	switch c {
	case CompressionGZ:
		return extGZ
	case CompressionXZ:
		return extXZ
	case CompressionZSTD:
		return extZSTD
	default:
		return ""
	}
}

// newCompressedWriter wraps w with a compression writer if needed.
func (c CompressionType) newCompressedWriter(w io.Writer) (io.Writer, func() error, error) {
	switch c {
	case CompressionNone:
		return w, func() error { return nil }, nil
	case CompressionGZ:
		gzWriter := gzip.NewWriter(w)
		return gzWriter, gzWriter.Close, nil
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
		return nil, nil, fmt.Errorf("unsupported compression type: %v", c)
	}
}

// ExportOptions configures table export.
type ExportOptions struct {
	// Format is the output format (default CSV).
	Format OutputFormat
	// Compression is the compression for text formats (default none).
	Compression CompressionType
}

// NewExportOptions creates export options with default settings.
func NewExportOptions() ExportOptions {
	return ExportOptions{
		Format:      OutputFormatCSV,
		Compression: CompressionNone,
	}
}

// WithFormat returns options with the specified output format.
func (o ExportOptions) WithFormat(format OutputFormat) ExportOptions {
	o.Format = format
	return o
}

// WithCompression returns options with the specified compression type.
func (o ExportOptions) WithCompression(compression CompressionType) ExportOptions {
	o.Compression = compression
	return o
}

// FileExtension returns the full file extension including compression.
func (o ExportOptions) FileExtension() string {
	if o.Format == OutputFormatXLSX || o.Format == OutputFormatSQLite {
		return o.Format.Extension()
	}
	return o.Format.Extension() + o.Compression.Extension()
}

// EncodeCSV serializes a table back into export text using the given
// delimiter. Only present columns are written, in catalog order, so a
// parse/encode/parse round trip reproduces the same rows.
func EncodeCSV(table *model.KeywordTable, delimiter rune) string {
	cols := table.PresentColumns().Columns()
	var b strings.Builder

	cells := make([]string, len(cols))
	for i, col := range cols {
		cells[i] = string(col)
	}
	b.WriteString(strings.Join(cells, string(delimiter)))
	b.WriteByte('\n')

	for _, row := range table.Rows() {
		for i, col := range cols {
			cells[i] = encodeCell(row, col)
		}
		b.WriteString(strings.Join(cells, string(delimiter)))
		b.WriteByte('\n')
	}
	return b.String()
}

// encodeCell renders one field as dataset text. Absent values render as
// empty cells.
func encodeCell(row model.KeywordRow, col model.Column) string {
	switch col {
	case model.ColumnKeyword:
		return row.Keyword
	case model.ColumnSearchVolume:
		return encodeOptionalInt(row.SearchVolume)
	case model.ColumnCPC:
		return encodeOptionalFloat(row.CPC)
	case model.ColumnCompetition:
		return encodeOptionalFloat(row.Competition)
	case model.ColumnResults:
		return encodeOptionalInt(row.Results)
	case model.ColumnTrends:
		return encodeFloatList(row.Trends)
	case model.ColumnRelatedRelevance:
		return encodeOptionalFloat(row.RelatedRelevance)
	case model.ColumnSerpFeatures:
		return encodeIntList(row.SerpFeatures)
	case model.ColumnIntent:
		return encodeIntList(row.IntentCodes)
	case model.ColumnDifficulty:
		return encodeOptionalFloat(row.Difficulty)
	default:
		return ""
	}
}

func encodeOptionalInt(v model.Option[int64]) string {
	if n, ok := v.Value(); ok {
		return strconv.FormatInt(n, 10)
	}
	return ""
}

func encodeOptionalFloat(v model.Option[float64]) string {
	if f, ok := v.Value(); ok {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return ""
}

func encodeFloatList(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strings.Join(parts, ",")
}

func encodeIntList(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

// Export writes the session's table to w. XLSX is written as a
// workbook; CSV and TSV are written as text with optional compression.
// SQLite output needs a file path, use ExportFile instead.
func (s *Session) Export(w io.Writer, opts ExportOptions) error {
	switch opts.Format {
	case OutputFormatCSV, OutputFormatTSV:
		delimiter := Delimiter
		if opts.Format == OutputFormatTSV {
			delimiter = '\t'
		}
		writer, closer, err := opts.Compression.newCompressedWriter(w)
		if err != nil {
			return err
		}
		if _, err := io.WriteString(writer, EncodeCSV(s.table, delimiter)); err != nil {
			_ = closer()
			return err
		}
		return closer()
	case OutputFormatXLSX:
		return exportXLSX(s.table, w)
	case OutputFormatSQLite:
		return errors.New("kwtable: sqlite export requires a file path, use ExportFile")
	default:
		return fmt.Errorf("unsupported output format: %v", opts.Format)
	}
}

// ExportFile writes the session's table to the file at path.
func (s *Session) ExportFile(path string, opts ExportOptions) error {
	if opts.Format == OutputFormatSQLite {
		return exportSQLite(s.table, path)
	}
	handle, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if err := s.Export(handle, opts); err != nil {
		_ = handle.Close()
		return err
	}
	return handle.Close()
}

// exportXLSX writes the table as a single-sheet XLSX workbook.
func exportXLSX(table *model.KeywordTable, w io.Writer) error {
	workbook := excelize.NewFile()
	defer func() {
		_ = workbook.Close()
	}()
	sheet := workbook.GetSheetName(0)

	cols := table.PresentColumns().Columns()
	headerCells := make([]any, len(cols))
	for i, col := range cols {
		headerCells[i] = string(col)
	}
	if err := setSheetRow(workbook, sheet, 1, headerCells); err != nil {
		return err
	}

	for i, row := range table.Rows() {
		cells := make([]any, len(cols))
		for j, col := range cols {
			cells[j] = encodeCell(row, col)
		}
		if err := setSheetRow(workbook, sheet, i+2, cells); err != nil {
			return err
		}
	}
	return workbook.Write(w)
}

func setSheetRow(workbook *excelize.File, sheet string, rowNumber int, cells []any) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNumber)
	if err != nil {
		return err
	}
	return workbook.SetSheetRow(sheet, cell, &cells)
}

// exportSQLite dumps the table into an SQLite database file so the
// dataset can be analyzed with plain SQL downstream.
func exportSQLite(table *model.KeywordTable, path string) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("failed to open sqlite database: %w", err)
	}
	defer func() {
		_ = db.Close()
	}()

	const schema = `CREATE TABLE IF NOT EXISTS keywords (
		id INTEGER PRIMARY KEY,
		keyword TEXT NOT NULL,
		search_volume INTEGER,
		cpc REAL,
		competition REAL,
		results INTEGER,
		trends TEXT,
		related_relevance REAL,
		serp_features TEXT,
		intent TEXT,
		difficulty REAL
	)`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create keywords table: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	stmt, err := tx.Prepare(`INSERT INTO keywords (
		id, keyword, search_volume, cpc, competition, results,
		trends, related_relevance, serp_features, intent, difficulty
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer func() {
		_ = stmt.Close()
	}()

	for _, row := range table.Rows() {
		_, err := stmt.Exec(
			row.ID,
			row.Keyword,
			nullableInt(row.SearchVolume),
			nullableFloat(row.CPC),
			nullableFloat(row.Competition),
			nullableInt(row.Results),
			nullableText(encodeFloatList(row.Trends)),
			nullableFloat(row.RelatedRelevance),
			nullableText(encodeIntList(row.SerpFeatures)),
			nullableText(encodeIntList(row.IntentCodes)),
			nullableFloat(row.Difficulty),
		)
		if err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to insert row %d: %w", row.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

func nullableInt(v model.Option[int64]) any {
	if n, ok := v.Value(); ok {
		return n
	}
	return nil
}

func nullableFloat(v model.Option[float64]) any {
	if f, ok := v.Value(); ok {
		return f
	}
	return nil
}

func nullableText(s string) any {
	if s == "" {
		return nil
	}
	return s
}
