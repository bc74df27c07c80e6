package tui

import (
	"github.com/docdeck/docdeck/internal/api"
	"github.com/docdeck/docdeck/internal/catalog"
)

// debounceMsg fires when a scheduled filter quiescence window elapses. It
// carries the generation it was scheduled for; a stale generation means a
// newer filter write superseded it.
type debounceMsg struct {
	gen int
}

// refreshNowMsg requests an immediate list refresh, bypassing the
// debounce window (startup, explicit submit, post-upload).
type refreshNowMsg struct{}

// documentsMsg is the completion of a list fetch. Seq identifies the
// fetch; completions that are no longer the latest issued are discarded.
type documentsMsg struct {
	seq   uint64
	docs  []catalog.Document
	total int
	pages int
	err   error
}

// starredMsg is the remote confirmation (or failure) of a flag change.
type starredMsg struct {
	id      string
	starred bool
	err     error
}

// deletedMsg is the remote confirmation (or failure) of a delete.
type deletedMsg struct {
	id  string
	err error
}

// uploadedMsg is the outcome of a file upload.
type uploadedMsg struct {
	path  string
	title string
	err   error
}

// semanticMsg is the outcome of a one-shot natural-language search.
type semanticMsg struct {
	results []api.SemanticResult
	err     error
}

// statsMsg carries refreshed catalog counters.
type statsMsg struct {
	stats *api.Stats
	err   error
}
