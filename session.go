package kwtable

import (
	"github.com/semlens/kwtable/domain/model"
)

// LoadSummary describes a successful dataset load.
type LoadSummary struct {
	// RowCount is the number of decoded data rows.
	RowCount int
	// PresentColumns lists the recognized columns found in the header,
	// in catalog order.
	PresentColumns []model.Column
}

// Session owns the currently loaded keyword table and its view state.
// A successful load swaps the table wholesale and resets the selection
// and tag filters; the sort key and direction persist across loads. A
// failed load leaves the previous table and state untouched.
//
// Session is not safe for concurrent use; it models a single-user,
// single-threaded viewer session.
type Session struct {
	table *model.KeywordTable
	state QueryState
}

// NewSession creates a session with an empty table.
func NewSession() *Session {
	return &Session{
		table: model.NewKeywordTable(nil, model.FullColumnSet()),
		state: NewQueryState(),
	}
}

// LoadDataset parses raw export text and, on success, replaces the
// current table. The selection set and tag filters reset; the text
// filter and sort persist.
func (s *Session) LoadDataset(text string) (LoadSummary, error) {
	table, err := ParseDataset(text)
	if err != nil {
		return LoadSummary{}, err
	}
	s.install(table)
	return s.summary(), nil
}

// install swaps in a freshly parsed table and resets load-scoped state.
func (s *Session) install(table *model.KeywordTable) {
	s.table = table
	s.state.Selected = make(map[int]struct{})
	s.state.Tags = make(map[int]struct{})
}

func (s *Session) summary() LoadSummary {
	return LoadSummary{
		RowCount:       s.table.Len(),
		PresentColumns: s.table.PresentColumns().Columns(),
	}
}

// Table returns the currently loaded table.
func (s *Session) Table() *model.KeywordTable {
	return s.table
}

// Query returns a copy of the current query state.
func (s *Session) Query() QueryState {
	return s.state
}

// SetFilter sets the free-text keyword filter. Callers driving the
// filter from keystrokes should debounce input (see Debouncer) before
// calling; the session applies the value as-is.
func (s *Session) SetFilter(text string) {
	s.state.Filter = text
}

// SetSelectedOnly restricts or widens the view to selected rows.
func (s *Session) SetSelectedOnly(selectedOnly bool) {
	s.state.SelectedOnly = selectedOnly
}

// SetSort sets the sort key and direction.
func (s *Session) SetSort(key SortKey, direction SortDirection) {
	s.state.Sort = key
	s.state.Direction = direction
}

// ToggleTag adds the SERP-feature code to the active tag filters, or
// removes it when already active.
func (s *Session) ToggleTag(code int) {
	if _, ok := s.state.Tags[code]; ok {
		delete(s.state.Tags, code)
		return
	}
	s.state.Tags[code] = struct{}{}
}

// ToggleSelection flips the selection state of the row with the given ID.
func (s *Session) ToggleSelection(id int) {
	if _, ok := s.state.Selected[id]; ok {
		delete(s.state.Selected, id)
		return
	}
	s.state.Selected[id] = struct{}{}
}

// IsSelected reports whether the row with the given ID is selected.
func (s *Session) IsSelected(id int) bool {
	_, ok := s.state.Selected[id]
	return ok
}

// SelectAllVisible selects or deselects every row in the current view.
func (s *Session) SelectAllVisible(selected bool) {
	for _, row := range s.View() {
		if selected {
			s.state.Selected[row.ID] = struct{}{}
		} else {
			delete(s.state.Selected, row.ID)
		}
	}
}

// View returns the rows of the current table, filtered and ordered by
// the session's query state.
func (s *Session) View() []model.KeywordRow {
	return ApplyQuery(s.table, s.state)
}
