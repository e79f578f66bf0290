package model

import (
	"slices"
	"sort"
	"strings"
)

// TrendsLength is the required number of entries in a Trends cell.
const TrendsLength = 12

// KeywordRow is one decoded data row. ID is the 1-based position of the
// row among the dataset's data lines; it is stable for the dataset's
// lifetime and never reused across loads. Every field other than Keyword
// is present or absent depending on whether its column existed in the
// header: numeric fields decode to None and list fields to empty
// sequences when absent.
type KeywordRow struct {
	ID               int
	Keyword          string
	SearchVolume     Option[int64]
	CPC              Option[float64]
	Competition      Option[float64]
	Results          Option[int64]
	Trends           []float64
	RelatedRelevance Option[float64]
	SerpFeatures     []int
	IntentCodes      []int
	Difficulty       Option[float64]
}

// Equal compares two rows field by field.
func (r KeywordRow) Equal(other KeywordRow) bool {
	return r.ID == other.ID &&
		r.Keyword == other.Keyword &&
		r.SearchVolume == other.SearchVolume &&
		r.CPC == other.CPC &&
		r.Competition == other.Competition &&
		r.Results == other.Results &&
		slices.Equal(r.Trends, other.Trends) &&
		r.RelatedRelevance == other.RelatedRelevance &&
		slices.Equal(r.SerpFeatures, other.SerpFeatures) &&
		slices.Equal(r.IntentCodes, other.IntentCodes) &&
		r.Difficulty == other.Difficulty
}

// HasTags reports whether the row's SERP feature codes contain every
// code in tags (AND semantics).
func (r KeywordRow) HasTags(tags []int) bool {
	for _, tag := range tags {
		if !slices.Contains(r.SerpFeatures, tag) {
			return false
		}
	}
	return true
}

// DecodeRow decodes the fields of one data line into a KeywordRow.
// Columns absent from the header map decode as absent. A field position
// past the end of a short line is treated as an empty cell, the same as
// an absent optional column.
func DecodeRow(fields []string, headers HeaderMap, lineNumber, id int) (KeywordRow, error) {
	row := KeywordRow{ID: id}

	keyword := strings.TrimSpace(fieldAt(fields, headers, ColumnKeyword))
	if keyword == "" {
		return KeywordRow{}, &ParseError{Line: lineNumber, Column: ColumnKeyword, Err: ErrEmptyKeyword}
	}
	row.Keyword = keyword

	var err error
	if row.SearchVolume, err = optionalInt(fields, headers, ColumnSearchVolume, lineNumber); err != nil {
		return KeywordRow{}, err
	}
	if row.CPC, err = optionalFloat(fields, headers, ColumnCPC, lineNumber); err != nil {
		return KeywordRow{}, err
	}
	if row.Competition, err = optionalFloat(fields, headers, ColumnCompetition, lineNumber); err != nil {
		return KeywordRow{}, err
	}
	if row.Results, err = optionalInt(fields, headers, ColumnResults, lineNumber); err != nil {
		return KeywordRow{}, err
	}
	if row.RelatedRelevance, err = optionalFloat(fields, headers, ColumnRelatedRelevance, lineNumber); err != nil {
		return KeywordRow{}, err
	}
	if row.Difficulty, err = optionalFloat(fields, headers, ColumnDifficulty, lineNumber); err != nil {
		return KeywordRow{}, err
	}

	if row.Trends, err = decodeTrends(fields, headers, lineNumber); err != nil {
		return KeywordRow{}, err
	}
	if row.SerpFeatures, err = tagList(fields, headers, ColumnSerpFeatures, lineNumber); err != nil {
		return KeywordRow{}, err
	}
	if row.IntentCodes, err = tagList(fields, headers, ColumnIntent, lineNumber); err != nil {
		return KeywordRow{}, err
	}

	return row, nil
}

// fieldAt reads the cell mapped to col. Columns not in the header map
// and positions past the end of the line both yield an empty cell.
func fieldAt(fields []string, headers HeaderMap, col Column) string {
	pos, ok := headers[col]
	if !ok || pos >= len(fields) {
		return ""
	}
	return fields[pos]
}

func optionalFloat(fields []string, headers HeaderMap, col Column, line int) (Option[float64], error) {
	return decodeOptionalNumber(col, line, fieldAt(fields, headers, col), false)
}

func optionalInt(fields []string, headers HeaderMap, col Column, line int) (Option[int64], error) {
	v, err := decodeOptionalNumber(col, line, fieldAt(fields, headers, col), true)
	if err != nil {
		return None[int64](), err
	}
	if f, ok := v.Value(); ok {
		return Some(int64(f)), nil
	}
	return None[int64](), nil
}

// decodeTrends parses the Trends cell. A non-empty cell must contain
// exactly TrendsLength values; the length check runs before clamping.
// Values outside [0, 1] are silently clamped, not rejected.
func decodeTrends(fields []string, headers HeaderMap, line int) ([]float64, error) {
	raw := fieldAt(fields, headers, ColumnTrends)
	values, err := decodeFloatList(ColumnTrends, line, raw)
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, nil
	}
	if len(values) != TrendsLength {
		return nil, &ParseError{Line: line, Column: ColumnTrends, Raw: raw, Err: ErrTrendsLength}
	}
	for i, v := range values {
		values[i] = min(max(v, 0), 1)
	}
	return values, nil
}

// tagList parses a comma-separated code list and orders it ascending.
// Source order carries no meaning; duplicates are preserved.
func tagList(fields []string, headers HeaderMap, col Column, line int) ([]int, error) {
	codes, err := decodeIntList(col, line, fieldAt(fields, headers, col))
	if err != nil {
		return nil, err
	}
	sort.Ints(codes)
	return codes, nil
}
