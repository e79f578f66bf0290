package model

import (
	"testing"
)

func TestNewHeaderMap(t *testing.T) {
	t.Parallel()

	t.Run("Discovers recognized columns at their positions", func(t *testing.T) {
		t.Parallel()

		headers := NewHeaderMap([]string{"Keyword", "Search Volume", "CPC"})
		if len(headers) != 3 {
			t.Fatalf("expected 3 mapped columns, got %d", len(headers))
		}
		if pos := headers[ColumnKeyword]; pos != 0 {
			t.Errorf("expected Keyword at 0, got %d", pos)
		}
		if pos := headers[ColumnSearchVolume]; pos != 1 {
			t.Errorf("expected Search Volume at 1, got %d", pos)
		}
		if pos := headers[ColumnCPC]; pos != 2 {
			t.Errorf("expected CPC at 2, got %d", pos)
		}
	})

	t.Run("Columns may appear in any order", func(t *testing.T) {
		t.Parallel()

		headers := NewHeaderMap([]string{"CPC", "Keyword"})
		if pos := headers[ColumnCPC]; pos != 0 {
			t.Errorf("expected CPC at 0, got %d", pos)
		}
		if pos := headers[ColumnKeyword]; pos != 1 {
			t.Errorf("expected Keyword at 1, got %d", pos)
		}
	})

	t.Run("Unrecognized names are ignored", func(t *testing.T) {
		t.Parallel()

		headers := NewHeaderMap([]string{"Keyword", "SERP Features by Keyword", "Position"})
		if len(headers) != 1 {
			t.Errorf("expected 1 mapped column, got %d", len(headers))
		}
	})

	t.Run("Matching is case-sensitive", func(t *testing.T) {
		t.Parallel()

		headers := NewHeaderMap([]string{"keyword", "KEYWORD"})
		if headers.Present(ColumnKeyword) {
			t.Error("expected lowercase header not to match Keyword")
		}
	})

	t.Run("Header cells are trimmed before matching", func(t *testing.T) {
		t.Parallel()

		headers := NewHeaderMap([]string{"  Keyword  ", " CPC"})
		if !headers.Present(ColumnKeyword) || !headers.Present(ColumnCPC) {
			t.Error("expected trimmed cells to match")
		}
	})

	t.Run("First occurrence wins on duplicates", func(t *testing.T) {
		t.Parallel()

		headers := NewHeaderMap([]string{"Keyword", "Keyword"})
		if pos := headers[ColumnKeyword]; pos != 0 {
			t.Errorf("expected first occurrence at 0, got %d", pos)
		}
	})
}

func TestColumnSet(t *testing.T) {
	t.Parallel()

	t.Run("PresentColumns reflects the header", func(t *testing.T) {
		t.Parallel()

		set := NewHeaderMap([]string{"Keyword", "Intent"}).PresentColumns()
		if !set.Has(ColumnKeyword) || !set.Has(ColumnIntent) {
			t.Error("expected mapped columns to be present")
		}
		if set.Has(ColumnCPC) {
			t.Error("expected unmapped column to be absent")
		}
	})

	t.Run("Columns returns members in catalog order", func(t *testing.T) {
		t.Parallel()

		set := NewHeaderMap([]string{"Intent", "Keyword", "CPC"}).PresentColumns()
		cols := set.Columns()
		want := []Column{ColumnKeyword, ColumnCPC, ColumnIntent}
		if len(cols) != len(want) {
			t.Fatalf("expected %d columns, got %d", len(want), len(cols))
		}
		for i, col := range want {
			if cols[i] != col {
				t.Errorf("expected %q at %d, got %q", col, i, cols[i])
			}
		}
	})

	t.Run("FullColumnSet contains the whole catalog", func(t *testing.T) {
		t.Parallel()

		set := FullColumnSet()
		if len(set.Columns()) != len(Catalog()) {
			t.Errorf("expected %d columns, got %d", len(Catalog()), len(set.Columns()))
		}
	})

	t.Run("Equal", func(t *testing.T) {
		t.Parallel()

		a := NewHeaderMap([]string{"Keyword", "CPC"}).PresentColumns()
		b := NewHeaderMap([]string{"CPC", "Keyword"}).PresentColumns()
		c := NewHeaderMap([]string{"Keyword"}).PresentColumns()
		if !a.Equal(b) {
			t.Error("expected sets with same members to be equal")
		}
		if a.Equal(c) {
			t.Error("expected sets with different members to be not equal")
		}
	})
}
