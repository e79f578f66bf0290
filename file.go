package kwtable

import (
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/apache/arrow/go/v18/arrow"
	"github.com/apache/arrow/go/v18/arrow/array"
	pqfile "github.com/apache/arrow/go/v18/parquet/file"
	"github.com/apache/arrow/go/v18/parquet/pqarrow"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
	"github.com/xuri/excelize/v2"

	"github.com/semlens/kwtable/domain/model"
)

// FileType represents supported input file types.
type FileType int

const (
	// FileTypeCSV represents a semicolon-delimited export
	FileTypeCSV FileType = iota
	// FileTypeTSV represents a tab-delimited export
	FileTypeTSV
	// FileTypeXLSX represents an Excel XLSX workbook export
	FileTypeXLSX
	// FileTypeParquet represents a Parquet export
	FileTypeParquet
	// FileTypeUnsupported represents an unsupported file type
	FileTypeUnsupported
)

// File extensions
const (
	// extCSV is the CSV file extension
	extCSV = ".csv"
	// extTSV is the TSV file extension
	extTSV = ".tsv"
	// extXLSX is the Excel XLSX file extension
	extXLSX = ".xlsx"
	// extParquet is the Parquet file extension
	extParquet = ".parquet"
	// extGZ is the gzip compression extension
	extGZ = ".gz"
	// extBZ2 is the bzip2 compression extension
	extBZ2 = ".bz2"
	// extXZ is the xz compression extension
	extXZ = ".xz"
	// extZSTD is the zstd compression extension
	extZSTD = ".zst"
)

// file represents an input file that can be decoded into a table.
type file struct {
	path     string
	fileType FileType
}

// newFile creates a new file.
func newFile(path string) *file {
	return &file{
		path:     path,
		fileType: detectFileType(path),
	}
}

// detectFileType detects the file type from the extension, ignoring a
// trailing compression extension.
func detectFileType(path string) FileType {
	base := strings.ToLower(path)
	for _, ext := range []string{extGZ, extBZ2, extXZ, extZSTD} {
		if strings.HasSuffix(base, ext) {
			base = strings.TrimSuffix(base, ext)
			break
		}
	}
	switch filepath.Ext(base) {
	case extCSV:
		return FileTypeCSV
	case extTSV:
		return FileTypeTSV
	case extXLSX:
		return FileTypeXLSX
	case extParquet:
		return FileTypeParquet
	default:
		return FileTypeUnsupported
	}
}

// isSupportedFile checks if the file has a supported extension.
func isSupportedFile(path string) bool {
	return detectFileType(path) != FileTypeUnsupported
}

// isGZ returns true if file is gzip compressed
func (f *file) isGZ() bool {
	return strings.HasSuffix(f.path, extGZ)
}

// isBZ2 returns true if file is bzip2 compressed
func (f *file) isBZ2() bool {
	return strings.HasSuffix(f.path, extBZ2)
}

// isXZ returns true if file is xz compressed
func (f *file) isXZ() bool {
	return strings.HasSuffix(f.path, extXZ)
}

// isZSTD returns true if file is zstd compressed
func (f *file) isZSTD() bool {
	return strings.HasSuffix(f.path, extZSTD)
}

// openReader opens the file and returns a reader that handles
// decompression.
func (f *file) openReader() (io.Reader, func() error, error) {
	handle, err := os.Open(f.path)
	if err != nil {
		return nil, nil, err
	}

	var reader io.Reader = handle
	closer := handle.Close

	switch {
	case f.isGZ():
		gzReader, err := gzip.NewReader(handle)
		if err != nil {
			_ = handle.Close()
			return nil, nil, err
		}
		reader = gzReader
		closer = func() error {
			_ = gzReader.Close()
			return handle.Close()
		}
	case f.isBZ2():
		reader = bzip2.NewReader(handle)
	case f.isXZ():
		xzReader, err := xz.NewReader(handle)
		if err != nil {
			_ = handle.Close()
			return nil, nil, err
		}
		reader = xzReader
	case f.isZSTD():
		decoder, err := zstd.NewReader(handle)
		if err != nil {
			_ = handle.Close()
			return nil, nil, err
		}
		reader = decoder
		closer = func() error {
			decoder.Close()
			return handle.Close()
		}
	}

	return reader, closer, nil
}

// toTable decodes the file contents into a keyword table.
func (f *file) toTable() (*model.KeywordTable, error) {
	reader, closer, err := f.openReader()
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = closer()
	}()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}

	switch f.fileType {
	case FileTypeCSV:
		return parseText(string(data), Delimiter)
	case FileTypeTSV:
		return parseText(string(data), '\t')
	case FileTypeXLSX:
		return parseXLSX(data)
	case FileTypeParquet:
		return parseParquet(data)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, f.path)
	}
}

// parseXLSX decodes the first sheet of an XLSX workbook. Sheet rows map
// onto dataset lines: the first non-blank row is the header.
func parseXLSX(data []byte) (*model.KeywordTable, error) {
	workbook, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = workbook.Close()
	}()

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", ErrEmptyData)
	}
	rows, err := workbook.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}
	return ParseRows(rows)
}

// parseParquet decodes a Parquet export. Parquet needs random access,
// so the data is held in memory and each cell is rendered back to text
// before flowing through the regular record decoder.
func parseParquet(data []byte) (*model.KeywordTable, error) {
	pqReader, err := pqfile.NewParquetReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create parquet reader: %w", err)
	}
	defer pqReader.Close()

	arrowReader, err := pqarrow.NewFileReader(pqReader, pqarrow.ArrowReadProperties{}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create arrow reader: %w", err)
	}

	table, err := arrowReader.ReadTable(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to read parquet table: %w", err)
	}
	defer table.Release()

	schema := table.Schema()
	headerRow := make([]string, schema.NumFields())
	for i, field := range schema.Fields() {
		headerRow[i] = field.Name
	}

	rows := [][]string{headerRow}
	tableReader := array.NewTableReader(table, 0)
	defer tableReader.Release()

	for tableReader.Next() {
		batch := tableReader.Record()
		numRows := batch.NumRows()
		for i := int64(0); i < numRows; i++ {
			row := make([]string, batch.NumCols())
			for j, col := range batch.Columns() {
				row[j] = arrowCellText(col, int(i))
			}
			rows = append(rows, row)
		}
	}
	if err := tableReader.Err(); err != nil {
		return nil, fmt.Errorf("error reading parquet records: %w", err)
	}

	return ParseRows(rows)
}

// arrowCellText renders one arrow cell as dataset text. Nulls become
// empty cells, which the record decoder treats as absent values.
func arrowCellText(col arrow.Array, i int) string {
	if col.IsNull(i) {
		return ""
	}
	switch a := col.(type) {
	case *array.String:
		return a.Value(i)
	case *array.LargeString:
		return a.Value(i)
	case *array.Int64:
		return strconv.FormatInt(a.Value(i), 10)
	case *array.Int32:
		return strconv.FormatInt(int64(a.Value(i)), 10)
	case *array.Float64:
		return strconv.FormatFloat(a.Value(i), 'f', -1, 64)
	case *array.Float32:
		return strconv.FormatFloat(float64(a.Value(i)), 'f', -1, 32)
	default:
		return col.ValueStr(i)
	}
}

// LoadFile reads a keyword export from disk and, on success, replaces
// the session's table. Supported formats are .csv (semicolon
// delimited), .tsv, .xlsx, and .parquet, each optionally compressed
// with .gz, .bz2, .xz, or .zst.
func (s *Session) LoadFile(path string) (LoadSummary, error) {
	if !isSupportedFile(path) {
		return LoadSummary{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	table, err := newFile(path).toTable()
	if err != nil {
		return LoadSummary{}, err
	}
	s.install(table)
	return s.summary(), nil
}
