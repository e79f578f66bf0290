package model

import "testing"

func TestKeywordTable(t *testing.T) {
	t.Parallel()

	rows := []KeywordRow{
		{ID: 1, Keyword: "vpn"},
		{ID: 2, Keyword: "vpn free"},
	}
	present := NewHeaderMap([]string{"Keyword"}).PresentColumns()

	t.Run("Holds rows and presence set", func(t *testing.T) {
		t.Parallel()

		table := NewKeywordTable(rows, present)
		if table.Len() != 2 {
			t.Errorf("expected 2 rows, got %d", table.Len())
		}
		if !table.PresentColumns().Has(ColumnKeyword) {
			t.Error("expected Keyword to be present")
		}
	})

	t.Run("Equal", func(t *testing.T) {
		t.Parallel()

		a := NewKeywordTable(rows, present)
		b := NewKeywordTable(rows, present)
		if !a.Equal(b) {
			t.Error("expected tables to be equal")
		}

		c := NewKeywordTable(rows[:1], present)
		if a.Equal(c) {
			t.Error("expected tables with different row counts to be not equal")
		}

		d := NewKeywordTable(rows, FullColumnSet())
		if a.Equal(d) {
			t.Error("expected tables with different presence sets to be not equal")
		}
	})
}
