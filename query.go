package kwtable

import (
	"sort"
	"strings"

	"github.com/semlens/kwtable/domain/model"
)

// SortKey selects the column a view is ordered by.
type SortKey int

const (
	// SortByKeyword orders by the keyword text
	SortByKeyword SortKey = iota
	// SortBySearchVolume orders by monthly search volume
	SortBySearchVolume
	// SortByCPC orders by cost per click
	SortByCPC
	// SortByCompetition orders by competition density
	SortByCompetition
	// SortByResults orders by number of organic results
	SortByResults
	// SortByRelatedRelevance orders by related-keyword relevance
	SortByRelatedRelevance
	// SortByDifficulty orders by keyword difficulty index
	SortByDifficulty
	// SortByIntent orders lexicographically over the ascending intent codes
	SortByIntent
)

// SortDirection is the direction of a sorted view.
type SortDirection int

const (
	// Ascending sorts smallest first, with absent values before present ones
	Ascending SortDirection = iota
	// Descending sorts largest first, with absent values after present ones
	Descending
)

// QueryState is the caller-owned, session-scoped view state. The query
// engine itself is a pure function of (table, state) and never stores
// state of its own. Debouncing of interactive filter input is a
// caller-side scheduling policy (see Debouncer); the engine is
// synchronous and stateless per call.
type QueryState struct {
	// Filter is a free-text keyword filter; empty matches all rows.
	Filter string
	// SelectedOnly restricts the view to selected rows.
	SelectedOnly bool
	// Selected is the set of selected row IDs.
	Selected map[int]struct{}
	// Tags is the set of active SERP-feature tag filters (AND semantics).
	Tags map[int]struct{}
	// Sort is the active sort key.
	Sort SortKey
	// Direction is the active sort direction.
	Direction SortDirection
}

// NewQueryState returns an empty query state ordered by keyword ascending.
func NewQueryState() QueryState {
	return QueryState{
		Selected: make(map[int]struct{}),
		Tags:     make(map[int]struct{}),
	}
}

// ApplyQuery filters and orders the table rows according to state and
// returns a new ordered sequence. Neither the table nor the state is
// mutated. The sort is stable: ties keep the original table order via an
// explicit original-index tiebreak.
func ApplyQuery(table *model.KeywordTable, state QueryState) []model.KeywordRow {
	type indexed struct {
		row model.KeywordRow
		pos int
	}

	filter := strings.ToLower(strings.TrimSpace(state.Filter))
	tags := make([]int, 0, len(state.Tags))
	for tag := range state.Tags {
		tags = append(tags, tag)
	}

	view := make([]indexed, 0, table.Len())
	for pos, row := range table.Rows() {
		if filter != "" && !strings.Contains(strings.ToLower(row.Keyword), filter) {
			continue
		}
		if state.SelectedOnly {
			if _, ok := state.Selected[row.ID]; !ok {
				continue
			}
		}
		if len(tags) > 0 && !row.HasTags(tags) {
			continue
		}
		view = append(view, indexed{row: row, pos: pos})
	}

	sort.Slice(view, func(i, j int) bool {
		c := compareRows(view[i].row, view[j].row, state.Sort)
		if state.Direction == Descending {
			c = -c
		}
		if c != 0 {
			return c < 0
		}
		return view[i].pos < view[j].pos
	})

	rows := make([]model.KeywordRow, len(view))
	for i, v := range view {
		rows[i] = v.row
	}
	return rows
}

// compareRows compares two rows by the sort key with nullable-aware
// ordering: an absent value sorts before any present value.
func compareRows(a, b model.KeywordRow, key SortKey) int {
	switch key {
	case SortByKeyword:
		return strings.Compare(a.Keyword, b.Keyword)
	case SortBySearchVolume:
		return compareOptionInt(a.SearchVolume, b.SearchVolume)
	case SortByCPC:
		return compareOptionFloat(a.CPC, b.CPC)
	case SortByCompetition:
		return compareOptionFloat(a.Competition, b.Competition)
	case SortByResults:
		return compareOptionInt(a.Results, b.Results)
	case SortByRelatedRelevance:
		return compareOptionFloat(a.RelatedRelevance, b.RelatedRelevance)
	case SortByDifficulty:
		return compareOptionFloat(a.Difficulty, b.Difficulty)
	case SortByIntent:
		return compareCodes(a.IntentCodes, b.IntentCodes)
	default:
		return 0
	}
}

func compareOptionFloat(a, b model.Option[float64]) int {
	av, aok := a.Value()
	bv, bok := b.Value()
	switch {
	case !aok && !bok:
		return 0
	case !aok:
		return -1
	case !bok:
		return 1
	case av < bv:
		return -1
	case av > bv:
		return 1
	default:
		return 0
	}
}

func compareOptionInt(a, b model.Option[int64]) int {
	av, aok := a.Value()
	bv, bok := b.Value()
	switch {
	case !aok && !bok:
		return 0
	case !aok:
		return -1
	case !bok:
		return 1
	case av < bv:
		return -1
	case av > bv:
		return 1
	default:
		return 0
	}
}

// compareCodes compares two ascending code sequences position by
// position. A shorter sequence behaves as if padded with trailing
// "no value" entries, which sort before any present code.
func compareCodes(a, b []int) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}
