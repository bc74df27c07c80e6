package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/docdeck/docdeck/internal/api"
	"github.com/docdeck/docdeck/internal/catalog"
	"github.com/docdeck/docdeck/internal/config"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	client := api.NewClient("http://127.0.0.1:1", time.Second)
	return NewModel(context.Background(), client, nil, zap.NewNop(), config.DefaultConfig())
}

func testDocs() []catalog.Document {
	return []catalog.Document{
		{ID: "doc-1", Title: "Safety Circular 12", Status: catalog.StatusUrgent},
		{ID: "doc-2", Title: "Q3 Vendor Invoice", Starred: true},
	}
}

func TestDebounceGeneration(t *testing.T) {
	m := newTestModel(t)

	t.Run("superseded window is dropped", func(t *testing.T) {
		if cmd := m.scheduleRefresh(); cmd == nil {
			t.Fatal("expected a scheduled tick")
		}
		stale := m.debounceGen
		if cmd := m.scheduleRefresh(); cmd == nil {
			t.Fatal("expected a scheduled tick")
		}

		model, cmd := m.Update(debounceMsg{gen: stale})
		m = model.(Model)
		if cmd != nil {
			t.Error("stale generation must not trigger a refresh")
		}
		if m.loading {
			t.Error("stale generation must not flip the loading flag")
		}
	})

	t.Run("current window fires", func(t *testing.T) {
		model, cmd := m.Update(debounceMsg{gen: m.debounceGen})
		m = model.(Model)
		if cmd == nil {
			t.Fatal("current generation must trigger a refresh")
		}
		if !m.loading {
			t.Error("refresh must set the loading flag")
		}
	})
}

func TestDocumentsSequencing(t *testing.T) {
	m := newTestModel(t)
	older := m.coord.NextSeq()
	newer := m.coord.NextSeq()

	model, _ := m.Update(documentsMsg{seq: newer, docs: testDocs(), total: 12, pages: 2})
	m = model.(Model)
	if len(m.store.Items) != 2 || m.store.Total != 12 {
		t.Fatalf("latest fetch must install the snapshot, got %d items total %d",
			len(m.store.Items), m.store.Total)
	}

	model, _ = m.Update(documentsMsg{seq: older, docs: nil, total: 0, pages: 0})
	m = model.(Model)
	if len(m.store.Items) != 2 || m.store.Total != 12 {
		t.Error("an older completion must not overwrite a newer snapshot")
	}
}

func TestDocumentsFailureInvalidatesStore(t *testing.T) {
	m := newTestModel(t)
	seq := m.coord.NextSeq()
	model, _ := m.Update(documentsMsg{seq: seq, docs: testDocs(), total: 12, pages: 2})
	m = model.(Model)

	seq = m.coord.NextSeq()
	model, _ = m.Update(documentsMsg{seq: seq, err: errors.New("connection refused")})
	m = model.(Model)

	if len(m.store.Items) != 0 {
		t.Error("a failed refresh must empty the visible items")
	}
	if m.store.Total != 12 {
		t.Errorf("total holds the last known count, got %d", m.store.Total)
	}
	if !m.store.Stale {
		t.Error("a failed refresh must flag the store stale")
	}
	if m.pages != 0 {
		t.Errorf("a failed refresh must drop the stale page count, got %d", m.pages)
	}
	if m.errMsg == "" {
		t.Error("a failed refresh must surface an error message")
	}
}

func TestStarConfirmation(t *testing.T) {
	m := newTestModel(t)
	m.store.Replace(testDocs(), 2)

	if !m.coord.BeginMutation("doc-1") {
		t.Fatal("first mutation on an id must be accepted")
	}

	model, _ := m.Update(starredMsg{id: "doc-1", starred: true})
	m = model.(Model)
	if doc := m.store.Find("doc-1"); doc == nil || !doc.Starred {
		t.Error("confirmed star must flip the local flag")
	}
	if m.coord.MutationPending("doc-1") {
		t.Error("confirmation must release the in-flight marker")
	}

	t.Run("confirmation for a displaced record is dropped", func(t *testing.T) {
		m.coord.BeginMutation("gone")
		model, _ := m.Update(starredMsg{id: "gone", starred: true})
		m = model.(Model)
		if m.errMsg != "" {
			t.Error("a displaced record is not an error")
		}
	})

	t.Run("failure leaves the flag untouched", func(t *testing.T) {
		m.coord.BeginMutation("doc-2")
		model, _ := m.Update(starredMsg{id: "doc-2", starred: false, err: errors.New("boom")})
		m = model.(Model)
		if doc := m.store.Find("doc-2"); doc == nil || !doc.Starred {
			t.Error("a failed star change must not touch the record")
		}
		if m.errMsg == "" {
			t.Error("a failed star change must surface an error")
		}
	})
}

func TestDeleteConfirmation(t *testing.T) {
	m := newTestModel(t)
	m.store.Replace(testDocs(), 12)
	m.coord.BeginMutation("doc-1")

	model, _ := m.Update(deletedMsg{id: "doc-1"})
	m = model.(Model)
	if m.store.Find("doc-1") != nil {
		t.Error("confirmed delete must remove the record")
	}
	if m.store.Total != 11 {
		t.Errorf("confirmed delete decrements total by one, got %d", m.store.Total)
	}

	// Repeated confirmation for the same id must not decrement again.
	m.coord.BeginMutation("doc-1")
	model, _ = m.Update(deletedMsg{id: "doc-1"})
	m = model.(Model)
	if m.store.Total != 11 {
		t.Errorf("delete of an absent record must not change total, got %d", m.store.Total)
	}
}

func TestDetailReResolution(t *testing.T) {
	m := newTestModel(t)
	seq := m.coord.NextSeq()
	model, _ := m.Update(documentsMsg{seq: seq, docs: testDocs(), total: 2, pages: 1})
	m = model.(Model)

	m.detailOpen = true
	m.detailDoc = m.store.Items[0]

	// Refresh without the inspected record: the view stays open but is
	// flagged stale.
	seq = m.coord.NextSeq()
	model, _ = m.Update(documentsMsg{seq: seq, docs: testDocs()[1:], total: 1, pages: 1})
	m = model.(Model)
	if !m.detailOpen {
		t.Error("detail view must stay open across refreshes")
	}
	if !m.detailStale {
		t.Error("a vanished inspection target must be flagged stale")
	}

	// The record comes back: the flag clears and fields are rebound.
	seq = m.coord.NextSeq()
	fresh := testDocs()
	fresh[0].Starred = true
	model, _ = m.Update(documentsMsg{seq: seq, docs: fresh, total: 2, pages: 1})
	m = model.(Model)
	if m.detailStale {
		t.Error("a re-appearing target clears the stale flag")
	}
	if !m.detailDoc.Starred {
		t.Error("re-resolution must rebind the record to the new snapshot")
	}
}

func TestSemanticResultsDoNotTouchStore(t *testing.T) {
	m := newTestModel(t)
	m.store.Replace(testDocs(), 2)

	model, _ := m.Update(semanticMsg{results: []api.SemanticResult{
		{ID: "doc-9", Title: "Bridge Inspection", Similarity: 0.91},
	}})
	m = model.(Model)

	if len(m.semResults) != 1 {
		t.Fatal("semantic results must be installed")
	}
	if len(m.store.Items) != 2 || m.store.Total != 2 {
		t.Error("semantic results must never feed the document store")
	}
}
