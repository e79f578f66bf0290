package model

// KeywordTable is the ordered sequence of rows decoded from one dataset
// plus the set of columns present in its header. A table is never
// mutated after construction; a new load replaces it wholesale.
type KeywordTable struct {
	rows    []KeywordRow
	present ColumnSet
}

// NewKeywordTable creates a new KeywordTable.
func NewKeywordTable(rows []KeywordRow, present ColumnSet) *KeywordTable {
	return &KeywordTable{rows: rows, present: present}
}

// Rows returns the decoded rows in file order.
func (t *KeywordTable) Rows() []KeywordRow {
	return t.rows
}

// Len returns the number of rows.
func (t *KeywordTable) Len() int {
	return len(t.rows)
}

// PresentColumns returns the set of columns discovered in the header.
func (t *KeywordTable) PresentColumns() ColumnSet {
	return t.present
}

// Equal compares two tables row by row.
func (t *KeywordTable) Equal(other *KeywordTable) bool {
	if !t.present.Equal(other.present) {
		return false
	}
	if len(t.rows) != len(other.rows) {
		return false
	}
	for i, row := range t.rows {
		if !row.Equal(other.rows[i]) {
			return false
		}
	}
	return true
}
