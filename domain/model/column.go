package model

import "strings"

// Column is a recognized column name from a keyword export header.
// Matching is exact and case-sensitive.
type Column string

// Recognized columns. ColumnKeyword is mandatory; all others are
// optional per dataset.
const (
	// ColumnKeyword is the keyword phrase itself
	ColumnKeyword Column = "Keyword"
	// ColumnSearchVolume is the average monthly search volume
	ColumnSearchVolume Column = "Search Volume"
	// ColumnCPC is the average cost per click
	ColumnCPC Column = "CPC"
	// ColumnCompetition is the paid competition density
	ColumnCompetition Column = "Competition"
	// ColumnResults is the number of organic results
	ColumnResults Column = "Number of Results"
	// ColumnTrends is the 12-month search interest trend
	ColumnTrends Column = "Trends"
	// ColumnRelatedRelevance is the relevance score of a related keyword
	ColumnRelatedRelevance Column = "Related Relevance"
	// ColumnSerpFeatures is the comma-separated SERP feature codes
	ColumnSerpFeatures Column = "Keywords SERP Features"
	// ColumnIntent is the comma-separated search intent codes
	ColumnIntent Column = "Intent"
	// ColumnDifficulty is the keyword difficulty index
	ColumnDifficulty Column = "Keyword Difficulty Index"
)

// Catalog returns all recognized columns in canonical order. The order
// is used for serialization only; input files may order columns freely.
func Catalog() []Column {
	return []Column{
		ColumnKeyword,
		ColumnSearchVolume,
		ColumnCPC,
		ColumnCompetition,
		ColumnResults,
		ColumnTrends,
		ColumnRelatedRelevance,
		ColumnSerpFeatures,
		ColumnIntent,
		ColumnDifficulty,
	}
}

// HeaderMap maps each recognized column found in a dataset header to its
// zero-based field position. It is built once per load and reused for
// every data line.
type HeaderMap map[Column]int

// NewHeaderMap discovers recognized columns in header cells. Cells are
// trimmed before matching; unrecognized names are ignored. If a
// recognized name appears more than once, the first occurrence wins.
func NewHeaderMap(cells []string) HeaderMap {
	headers := make(HeaderMap, len(Catalog()))
	for pos, cell := range cells {
		col := Column(strings.TrimSpace(cell))
		if !isRecognized(col) {
			continue
		}
		if _, ok := headers[col]; ok {
			continue
		}
		headers[col] = pos
	}
	return headers
}

// Present reports whether the column was found in the header.
func (h HeaderMap) Present(col Column) bool {
	_, ok := h[col]
	return ok
}

// PresentColumns returns the set of columns discovered in the header.
func (h HeaderMap) PresentColumns() ColumnSet {
	set := make(ColumnSet, len(h))
	for col := range h {
		set[col] = true
	}
	return set
}

func isRecognized(col Column) bool {
	for _, c := range Catalog() {
		if c == col {
			return true
		}
	}
	return false
}

// ColumnSet is the set of recognized columns present in a dataset.
type ColumnSet map[Column]bool

// FullColumnSet returns a set containing every recognized column.
func FullColumnSet() ColumnSet {
	set := make(ColumnSet, len(Catalog()))
	for _, col := range Catalog() {
		set[col] = true
	}
	return set
}

// Has reports whether the column is in the set.
func (s ColumnSet) Has(col Column) bool {
	return s[col]
}

// Columns returns the members of the set in catalog order.
func (s ColumnSet) Columns() []Column {
	cols := make([]Column, 0, len(s))
	for _, col := range Catalog() {
		if s[col] {
			cols = append(cols, col)
		}
	}
	return cols
}

// Equal compares two column sets.
func (s ColumnSet) Equal(other ColumnSet) bool {
	if len(s) != len(other) {
		return false
	}
	for col := range s {
		if !other[col] {
			return false
		}
	}
	return true
}
