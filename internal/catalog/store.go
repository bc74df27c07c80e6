package catalog

// Store is the client-held snapshot of the last successful fetch plus any
// optimistic mutations applied since then. Items keep server order and are
// never re-sorted locally. Total is replaced wholesale by fetches and
// decremented exactly once per confirmed delete, never incremented by the
// client.
//
// Store is owned by a single logical thread of control (the TUI update
// loop); it has no internal locking.
type Store struct {
	Items []Document
	Total int

	// Stale is set when a failed fetch emptied Items while Total was held
	// from the previous snapshot. Rendering surfaces it instead of
	// presenting the old total as live.
	Stale bool
}

// Replace installs a fetch response wholesale and clears the stale flag.
func (s *Store) Replace(items []Document, total int) {
	s.Items = items
	s.Total = total
	s.Stale = false
}

// Invalidate records a failed fetch: items are emptied, the total is held
// from the previous snapshot and the store is marked stale.
func (s *Store) Invalidate() {
	s.Items = nil
	s.Stale = true
}

// Find returns a pointer into the current snapshot, or nil if the id is
// not visible.
func (s *Store) Find(id string) *Document {
	for i := range s.Items {
		if s.Items[i].ID == id {
			return &s.Items[i]
		}
	}
	return nil
}

// ApplyStar applies a remotely confirmed flag change. The target is
// re-validated against the current snapshot so a confirmation landing
// after a refresh cannot resurrect an edit on data that is no longer
// visible. Reports whether the record was present.
func (s *Store) ApplyStar(id string, starred bool) bool {
	doc := s.Find(id)
	if doc == nil {
		return false
	}
	doc.Starred = starred
	return true
}

// ApplyDelete removes a remotely confirmed delete from the snapshot and
// decrements Total by exactly one. Like ApplyStar it re-validates the
// target first; a record already displaced by a newer fetch is left alone
// and Total is not touched. Reports whether the record was present.
func (s *Store) ApplyDelete(id string) bool {
	for i := range s.Items {
		if s.Items[i].ID == id {
			s.Items = append(s.Items[:i], s.Items[i+1:]...)
			if s.Total > 0 {
				s.Total--
			}
			return true
		}
	}
	return false
}
