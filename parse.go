package kwtable

import (
	"strings"

	"github.com/semlens/kwtable/domain/model"
)

// Delimiter is the column delimiter of keyword export text.
const Delimiter = ';'

// rawRecord pairs one split data line with its physical line number in
// the source, so errors can point at the exact line even when blank
// lines were discarded.
type rawRecord struct {
	line   int
	fields []string
}

// ParseDataset decodes raw keyword export text into a table. Line
// endings are normalized, lines are trimmed, and blank lines are
// discarded. The first non-blank line is the header; every recognized
// cell contributes to the header map and the present-columns set, and
// unrecognized header cells are ignored.
//
// Entirely blank input yields an empty table with the full recognized
// column catalog marked present. A header without "Keyword" fails with
// model.ErrMissingKeywordColumn. The first failing data line aborts the
// whole parse; a partial table is never returned.
func ParseDataset(text string) (*model.KeywordTable, error) {
	return parseText(text, Delimiter)
}

func parseText(text string, delimiter rune) (*model.KeywordTable, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")

	records := make([]rawRecord, 0, len(lines))
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		records = append(records, rawRecord{
			line:   i + 1,
			fields: strings.Split(line, string(delimiter)),
		})
	}
	return parseRecords(records)
}

// ParseRows decodes pre-split rows, as produced by XLSX or Parquet
// ingestion. The first non-blank row is the header; row numbers are
// 1-based positions in rows.
func ParseRows(rows [][]string) (*model.KeywordTable, error) {
	records := make([]rawRecord, 0, len(rows))
	for i, cells := range rows {
		if blankRow(cells) {
			continue
		}
		records = append(records, rawRecord{line: i + 1, fields: cells})
	}
	return parseRecords(records)
}

func blankRow(cells []string) bool {
	for _, cell := range cells {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func parseRecords(records []rawRecord) (*model.KeywordTable, error) {
	if len(records) == 0 {
		// Degenerate case: nothing to discover, so every recognized
		// column counts as present.
		return model.NewKeywordTable(nil, model.FullColumnSet()), nil
	}

	header := records[0]
	headers := model.NewHeaderMap(header.fields)
	if !headers.Present(model.ColumnKeyword) {
		return nil, &model.ParseError{
			Line:   header.line,
			Column: model.ColumnKeyword,
			Err:    model.ErrMissingKeywordColumn,
		}
	}

	rows := make([]model.KeywordRow, 0, len(records)-1)
	for i, record := range records[1:] {
		row, err := model.DecodeRow(record.fields, headers, record.line, i+1)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return model.NewKeywordTable(rows, headers.PresentColumns()), nil
}
