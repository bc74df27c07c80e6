package stub

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/docdeck/docdeck/internal/catalog"
)

// memStore is the in-memory record table behind the stub server. Unlike
// the client-side Store it is hit from concurrent handlers and locks.
type memStore struct {
	mu   sync.RWMutex
	docs []catalog.Document
}

func newMemStore() *memStore {
	return &memStore{}
}

// list applies the search/orgUnit/category filters the way the real store
// does: free text matches title, summary, tags or content
// (case-insensitive substring); empty axis parameters and the sentinels
// mean "unconstrained". Records come back newest first.
func (s *memStore) list(search, orgUnit, category string, page, limit int) ([]catalog.Document, int, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []catalog.Document
	needle := strings.ToLower(search)
	for _, doc := range s.docs {
		if needle != "" && !matchesText(doc, needle) {
			continue
		}
		if orgUnit != "" && orgUnit != catalog.OrgUnitAll && doc.OrgUnit != orgUnit {
			continue
		}
		if category != "" && category != catalog.CategoryAll && !categoryMatches(doc.Category, category) {
			continue
		}
		matched = append(matched, doc)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Date > matched[j].Date
	})

	total := len(matched)
	if limit <= 0 {
		limit = 10
	}
	if page <= 0 {
		page = 1
	}
	pages := (total + limit - 1) / limit

	start := (page - 1) * limit
	if start >= total {
		return []catalog.Document{}, total, pages
	}
	end := start + limit
	if end > total {
		end = total
	}
	return append([]catalog.Document(nil), matched[start:end]...), total, pages
}

func matchesText(doc catalog.Document, needle string) bool {
	if strings.Contains(strings.ToLower(doc.Title), needle) ||
		strings.Contains(strings.ToLower(doc.Summary), needle) ||
		strings.Contains(strings.ToLower(doc.Content), needle) {
		return true
	}
	for _, tag := range doc.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

// categoryMatches accepts either the stored display form ("Safety
// Circular") or the slug the console sends ("safety-circular").
func categoryMatches(stored, requested string) bool {
	if strings.EqualFold(stored, requested) {
		return true
	}
	formatted := strings.ReplaceAll(requested, "-", " ")
	return strings.EqualFold(stored, formatted)
}

func (s *memStore) get(id string) (catalog.Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, doc := range s.docs {
		if doc.ID == id {
			return doc, true
		}
	}
	return catalog.Document{}, false
}

func (s *memStore) insert(doc catalog.Document) catalog.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	if doc.ID == "" {
		doc.ID = uuid.New().String()
	}
	if doc.Date == "" {
		doc.Date = time.Now().UTC().Format(time.RFC3339)
	}
	s.docs = append(s.docs, doc)
	return doc
}

func (s *memStore) delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.docs {
		if s.docs[i].ID == id {
			s.docs = append(s.docs[:i], s.docs[i+1:]...)
			return true
		}
	}
	return false
}

// update applies the provided optional fields, mirroring the PUT contract.
func (s *memStore) update(id string, starred *bool, status *string, tags []string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.docs {
		if s.docs[i].ID != id {
			continue
		}
		if starred != nil {
			s.docs[i].Starred = *starred
		}
		if status != nil {
			s.docs[i].Status = *status
		}
		if tags != nil {
			s.docs[i].Tags = tags
		}
		return true
	}
	return false
}

func (s *memStore) all() []catalog.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]catalog.Document(nil), s.docs...)
}

func (s *memStore) stats() (total, urgent, today int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	midnight := time.Now().UTC().Truncate(24 * time.Hour).Format(time.RFC3339)
	for _, doc := range s.docs {
		total++
		if doc.Status == catalog.StatusUrgent {
			urgent++
		}
		if doc.Date >= midnight {
			today++
		}
	}
	return
}
