package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/docdeck/docdeck/internal/catalog"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	return NewClient(server.URL, 5*time.Second), server
}

func TestList(t *testing.T) {
	t.Run("Sentinel axes are absent from the request", func(t *testing.T) {
		var gotQuery map[string][]string
		client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.Query()
			json.NewEncoder(w).Encode(ListResult{
				Documents:  []catalog.Document{{ID: "d1", Title: "Circular 12"}},
				Pagination: Pagination{Total: 1, Page: 1, Limit: 10, Pages: 1},
			})
		})
		defer server.Close()

		result, err := client.List(context.Background(), catalog.Filter{
			Query:    "safety",
			OrgUnit:  catalog.OrgUnitAll,
			Category: catalog.CategoryAll,
		}, 1, 10)
		if err != nil {
			t.Fatal(err)
		}

		if got := gotQuery["search"]; len(got) != 1 || got[0] != "safety" {
			t.Errorf("Expected search=safety, got %v", got)
		}
		if _, ok := gotQuery["orgUnit"]; ok {
			t.Error("orgUnit sentinel must be omitted")
		}
		if _, ok := gotQuery["category"]; ok {
			t.Error("category sentinel must be omitted")
		}
		if len(result.Documents) != 1 || result.Pagination.Total != 1 {
			t.Errorf("Unexpected result: %+v", result)
		}
	})

	t.Run("Server error surfaces as RequestError", func(t *testing.T) {
		client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"error": "index offline"})
		})
		defer server.Close()

		_, err := client.List(context.Background(), catalog.NewFilter(), 1, 10)
		reqErr := AsRequestError(err)
		if reqErr == nil {
			t.Fatalf("Expected RequestError, got %v", err)
		}
		if reqErr.Status != http.StatusInternalServerError || reqErr.Message != "index offline" {
			t.Errorf("Unexpected error: %+v", reqErr)
		}
	})

	t.Run("Transport failure is not a RequestError", func(t *testing.T) {
		client := NewClient("http://127.0.0.1:1", 200*time.Millisecond)
		_, err := client.List(context.Background(), catalog.NewFilter(), 1, 10)
		if err == nil {
			t.Fatal("Expected transport error")
		}
		if AsRequestError(err) != nil {
			t.Errorf("Transport failure misclassified as remote rejection: %v", err)
		}
	})
}

func TestSetStarred(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody map[string]bool
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusOK)
	})
	defer server.Close()

	if err := client.SetStarred(context.Background(), "d1", true); err != nil {
		t.Fatal(err)
	}
	if gotMethod != http.MethodPut || gotPath != "/api/documents/d1" {
		t.Errorf("Expected PUT /api/documents/d1, got %s %s", gotMethod, gotPath)
	}
	if starred, ok := gotBody["starred"]; !ok || !starred {
		t.Errorf("Expected body {starred:true}, got %v", gotBody)
	}
}

func TestDelete(t *testing.T) {
	t.Run("Success is quiet", func(t *testing.T) {
		client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodDelete {
				t.Errorf("Expected DELETE, got %s", r.Method)
			}
			w.WriteHeader(http.StatusOK)
		})
		defer server.Close()

		if err := client.Delete(context.Background(), "d1"); err != nil {
			t.Fatal(err)
		}
	})

	t.Run("Missing record reports the server message", func(t *testing.T) {
		client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"error": "Document not found"})
		})
		defer server.Close()

		err := client.Delete(context.Background(), "gone")
		if err == nil || err.Error() != "Document not found" {
			t.Errorf("Expected verbatim server message, got %v", err)
		}
	})
}

func TestUpload(t *testing.T) {
	tmp := filepath.Join(t.TempDir(), "report.txt")
	if err := os.WriteFile(tmp, []byte("quarterly safety figures"), 0644); err != nil {
		t.Fatal(err)
	}

	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		file, header, err := r.FormFile("file")
		if err != nil {
			t.Errorf("Expected multipart field 'file': %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer file.Close()
		if header.Filename != "report.txt" {
			t.Errorf("Expected filename report.txt, got %s", header.Filename)
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(catalog.Document{ID: "d5", Title: "Q3 Report"})
	})
	defer server.Close()

	doc, err := client.Upload(context.Background(), tmp)
	if err != nil {
		t.Fatal(err)
	}
	if doc.ID != "d5" || doc.Title != "Q3 Report" {
		t.Errorf("Unexpected summary: %+v", doc)
	}
}

func TestSemantic(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/search/semantic" {
			t.Errorf("Unexpected path %s", r.URL.Path)
		}
		var q map[string]string
		json.NewDecoder(r.Body).Decode(&q)
		if q["query"] != "platform safety" {
			t.Errorf("Expected query passthrough, got %v", q)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"results": []SemanticResult{{ID: "d1", Title: "Circular 12", Similarity: 0.83}},
		})
	})
	defer server.Close()

	results, err := client.Semantic(context.Background(), "platform safety")
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 || results[0].Similarity != 0.83 {
		t.Errorf("Unexpected results: %+v", results)
	}
}

func TestStats(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(Stats{TotalDocuments: 12, UrgentItems: 2, DocumentsToday: 1})
	})
	defer server.Close()

	stats, err := client.Stats(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if stats.TotalDocuments != 12 || stats.UrgentItems != 2 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
}
