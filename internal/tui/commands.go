package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/docdeck/docdeck/internal/api"
	"github.com/docdeck/docdeck/internal/catalog"
	"github.com/docdeck/docdeck/internal/storage"
)

// debounceTick schedules the end of a filter quiescence window. Each new
// filter write schedules a fresh tick with a bumped generation, which
// implicitly cancels every earlier one: their generations no longer match
// when they fire.
func debounceTick(d time.Duration, gen int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return debounceMsg{gen: gen}
	})
}

// fetchDocuments runs the list query for one consistent snapshot of the
// filter vector. The sequence number travels with the completion so stale
// responses can be discarded.
func fetchDocuments(ctx context.Context, client *api.Client, f catalog.Filter, seq uint64, page, limit int) tea.Cmd {
	return func() tea.Msg {
		result, err := client.List(ctx, f, page, limit)
		if err != nil {
			return documentsMsg{seq: seq, err: err}
		}
		return documentsMsg{
			seq:   seq,
			docs:  result.Documents,
			total: result.Pagination.Total,
			pages: result.Pagination.Pages,
		}
	}
}

// setStarred sends the inverted flag; the local record is only touched
// once the confirmation comes back.
func setStarred(ctx context.Context, client *api.Client, id string, starred bool) tea.Cmd {
	return func() tea.Msg {
		err := client.SetStarred(ctx, id, starred)
		return starredMsg{id: id, starred: starred, err: err}
	}
}

func deleteDocument(ctx context.Context, client *api.Client, id string) tea.Cmd {
	return func() tea.Msg {
		return deletedMsg{id: id, err: client.Delete(ctx, id)}
	}
}

func uploadDocument(ctx context.Context, client *api.Client, path string) tea.Cmd {
	return func() tea.Msg {
		doc, err := client.Upload(ctx, path)
		if err != nil {
			return uploadedMsg{path: path, err: err}
		}
		return uploadedMsg{path: path, title: doc.Title}
	}
}

func semanticSearch(ctx context.Context, client *api.Client, query string) tea.Cmd {
	return func() tea.Msg {
		results, err := client.Semantic(ctx, query)
		return semanticMsg{results: results, err: err}
	}
}

func fetchStats(ctx context.Context, client *api.Client) tea.Cmd {
	return func() tea.Msg {
		stats, err := client.Stats(ctx)
		return statsMsg{stats: stats, err: err}
	}
}

// saveSearch records a submitted query in local history. Best effort; a
// nil history store or a write failure never disturbs the session.
func saveSearch(history *storage.DB, query string, total int) tea.Cmd {
	if history == nil {
		return nil
	}
	return func() tea.Msg {
		_ = history.AddSearch(query, total)
		return nil
	}
}

// logUpload records an upload attempt in local history. Best effort.
func logUpload(history *storage.DB, path, title string, err error) tea.Cmd {
	if history == nil {
		return nil
	}
	return func() tea.Msg {
		errMsg := ""
		if err != nil {
			errMsg = err.Error()
		}
		_ = history.LogUpload(path, title, err == nil, errMsg)
		return nil
	}
}
