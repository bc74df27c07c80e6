package catalog

import "testing"

func sampleDocs() []Document {
	return []Document{
		{ID: "d1", Title: "Circular 12", Status: StatusUrgent, OrgUnit: "Safety"},
		{ID: "d2", Title: "Q3 Invoice", Status: StatusApproved, OrgUnit: "Finance", Starred: true},
		{ID: "d3", Title: "Track Maintenance Plan", Status: StatusReview, OrgUnit: "Engineering"},
	}
}

func TestStoreReplace(t *testing.T) {
	var s Store
	s.Replace(sampleDocs(), 42)

	if len(s.Items) != 3 || s.Total != 42 {
		t.Fatalf("Expected 3 items / total 42, got %d / %d", len(s.Items), s.Total)
	}

	t.Run("Replace is wholesale regardless of prior content", func(t *testing.T) {
		s.Replace([]Document{{ID: "d9", Title: "Tender Notice"}}, 1)
		if len(s.Items) != 1 || s.Items[0].ID != "d9" || s.Total != 1 {
			t.Errorf("Expected [d9]/1, got %v / %d", s.Items, s.Total)
		}
		if s.Stale {
			t.Error("Replace must clear the stale flag")
		}
	})

	t.Run("Invalidate empties items and holds total", func(t *testing.T) {
		s.Replace(sampleDocs(), 42)
		s.Invalidate()
		if len(s.Items) != 0 {
			t.Errorf("Expected empty items, got %d", len(s.Items))
		}
		if s.Total != 42 {
			t.Errorf("Expected total held at 42, got %d", s.Total)
		}
		if !s.Stale {
			t.Error("Expected store to be marked stale")
		}
	})
}

func TestStoreApplyDelete(t *testing.T) {
	t.Run("Confirmed delete removes record and decrements total once", func(t *testing.T) {
		var s Store
		s.Replace(sampleDocs(), 3)
		if !s.ApplyDelete("d2") {
			t.Fatal("Expected delete of visible record to apply")
		}
		if len(s.Items) != 2 || s.Total != 2 {
			t.Errorf("Expected 2 items / total 2, got %d / %d", len(s.Items), s.Total)
		}
		if s.Find("d2") != nil {
			t.Error("d2 should be gone")
		}
		// Server order of survivors is preserved.
		if s.Items[0].ID != "d1" || s.Items[1].ID != "d3" {
			t.Errorf("Expected order d1,d3 got %s,%s", s.Items[0].ID, s.Items[1].ID)
		}
	})

	t.Run("Delete of displaced record is a no-op", func(t *testing.T) {
		var s Store
		s.Replace(sampleDocs(), 3)
		if s.ApplyDelete("gone") {
			t.Error("Expected delete of unknown id to report false")
		}
		if len(s.Items) != 3 || s.Total != 3 {
			t.Errorf("Store must be unchanged, got %d items / total %d", len(s.Items), s.Total)
		}
	})

	t.Run("Total never goes negative", func(t *testing.T) {
		var s Store
		s.Replace([]Document{{ID: "d1"}}, 0)
		s.ApplyDelete("d1")
		if s.Total != 0 {
			t.Errorf("Expected total 0, got %d", s.Total)
		}
	})
}

func TestStoreApplyStar(t *testing.T) {
	var s Store
	s.Replace(sampleDocs(), 3)

	t.Run("Confirmation flips the visible record", func(t *testing.T) {
		if !s.ApplyStar("d1", true) {
			t.Fatal("Expected star of visible record to apply")
		}
		if !s.Find("d1").Starred {
			t.Error("d1 should be starred")
		}
	})

	t.Run("Unstar then star restores the original flag", func(t *testing.T) {
		orig := s.Find("d2").Starred
		s.ApplyStar("d2", !orig)
		s.ApplyStar("d2", orig)
		if s.Find("d2").Starred != orig {
			t.Errorf("Expected flag restored to %v", orig)
		}
	})

	t.Run("Late confirmation for displaced record is dropped", func(t *testing.T) {
		s.Replace([]Document{{ID: "d7"}}, 1)
		if s.ApplyStar("d1", true) {
			t.Error("Expected star of displaced record to report false")
		}
	})
}

func TestCoordinator(t *testing.T) {
	t.Run("Only the latest fetch sequence wins", func(t *testing.T) {
		var c Coordinator
		first := c.NextSeq()
		second := c.NextSeq()
		if c.Latest(first) {
			t.Error("Superseded sequence must not be latest")
		}
		if !c.Latest(second) {
			t.Error("Newest sequence must be latest")
		}
	})

	t.Run("Concurrent mutations on one id are rejected", func(t *testing.T) {
		var c Coordinator
		if !c.BeginMutation("d1") {
			t.Fatal("First mutation should be admitted")
		}
		if c.BeginMutation("d1") {
			t.Error("Second mutation on same id should be rejected")
		}
		if !c.BeginMutation("d2") {
			t.Error("Mutation on a different id should be independent")
		}
		c.EndMutation("d1")
		if !c.BeginMutation("d1") {
			t.Error("Mutation should be admitted again after completion")
		}
	})
}
