package stub

import (
	"io"
	"net/http"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/docdeck/docdeck/internal/api"
	"github.com/docdeck/docdeck/internal/catalog"
)

type handlers struct {
	store  *memStore
	logger *zap.Logger
}

type listResponse struct {
	Documents  []catalog.Document `json:"documents"`
	Pagination api.Pagination     `json:"pagination"`
}

type updateRequest struct {
	Starred *bool    `json:"starred"`
	Status  *string  `json:"status"`
	Tags    []string `json:"tags"`
}

type semanticRequest struct {
	Query string `json:"query"`
}

func (h *handlers) listDocuments(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	docs, total, pages := h.store.list(
		c.Query("search"),
		c.Query("orgUnit"),
		c.Query("category"),
		page, limit,
	)

	c.JSON(http.StatusOK, listResponse{
		Documents: docs,
		Pagination: api.Pagination{
			Total: total,
			Page:  page,
			Limit: limit,
			Pages: pages,
		},
	})
}

func (h *handlers) getDocument(c *gin.Context) {
	doc, ok := h.store.get(c.Param("id"))
	if !ok {
		h.handleError(c, http.StatusNotFound, "Document not found", nil)
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (h *handlers) uploadDocument(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		h.handleError(c, http.StatusBadRequest, "No file provided", err)
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext != ".txt" && ext != ".pdf" && ext != ".docx" {
		h.handleError(c, http.StatusBadRequest, "Unsupported file type or error reading file", nil)
		return
	}

	// The real store runs text extraction and AI analysis here; the stub
	// only extracts plain text and applies deterministic heuristics.
	var content string
	if ext == ".txt" {
		data, err := io.ReadAll(file)
		if err != nil {
			h.handleError(c, http.StatusBadRequest, "Error reading file", err)
			return
		}
		content = string(data)
		if strings.TrimSpace(content) == "" {
			h.handleError(c, http.StatusBadRequest, "File appears to be empty", nil)
			return
		}
	}

	doc := h.store.insert(catalog.Document{
		Title:    titleFromFilename(header.Filename),
		Summary:  summarize(content),
		Status:   statusHeuristic(header.Filename, content),
		OrgUnit:  "Operations",
		Category: "Report",
		Language: "English",
		Tags:     topWords(content, 3),
		Source:   "uploaded",
		Content:  content,
	})

	h.logger.Info("document ingested",
		zap.String("id", doc.ID),
		zap.String("filename", header.Filename),
		zap.Int64("size", header.Size),
	)

	c.JSON(http.StatusCreated, doc)
}

func (h *handlers) deleteDocument(c *gin.Context) {
	if !h.store.delete(c.Param("id")) {
		h.handleError(c, http.StatusNotFound, "Document not found", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Document deleted successfully"})
}

func (h *handlers) updateDocument(c *gin.Context) {
	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.Starred == nil && req.Status == nil && req.Tags == nil {
		h.handleError(c, http.StatusBadRequest, "No update fields provided", nil)
		return
	}
	if !h.store.update(c.Param("id"), req.Starred, req.Status, req.Tags) {
		h.handleError(c, http.StatusNotFound, "Document not found", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Document updated successfully"})
}

func (h *handlers) semanticSearch(c *gin.Context) {
	var req semanticRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Query == "" {
		h.handleError(c, http.StatusBadRequest, "Query is required", err)
		return
	}

	scored := semanticSearch(req.Query, h.store.all(), 10)
	results := make([]api.SemanticResult, len(scored))
	for i, s := range scored {
		results[i] = api.SemanticResult{
			ID:         s.doc.ID,
			Title:      s.doc.Title,
			Summary:    s.doc.Summary,
			Similarity: s.score,
			OrgUnit:    s.doc.OrgUnit,
			Category:   s.doc.Category,
			Date:       s.doc.Date,
			Tags:       s.doc.Tags,
		}
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}

func (h *handlers) getStats(c *gin.Context) {
	total, urgent, today := h.store.stats()
	c.JSON(http.StatusOK, gin.H{
		"total_documents": total,
		"urgent_items":    urgent,
		"documents_today": today,
	})
}

func (h *handlers) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

func (h *handlers) handleError(c *gin.Context, status int, message string, err error) {
	h.logger.Error(message,
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
	c.JSON(status, gin.H{"error": message})
}

func titleFromFilename(name string) string {
	base := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	base = strings.NewReplacer("-", " ", "_", " ").Replace(base)
	words := strings.Fields(base)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func summarize(content string) string {
	if content == "" {
		return "No text content extracted."
	}
	fields := strings.Fields(content)
	if len(fields) > 40 {
		fields = fields[:40]
		return strings.Join(fields, " ") + "..."
	}
	return strings.Join(fields, " ")
}

// statusHeuristic stands in for the analysis step of the real store:
// incident material is urgent, finalized material is approved, everything
// else needs review.
func statusHeuristic(filename, content string) string {
	text := strings.ToLower(filename + " " + content)
	switch {
	case strings.Contains(text, "incident") || strings.Contains(text, "urgent"):
		return catalog.StatusUrgent
	case strings.Contains(text, "policy") || strings.Contains(text, "minutes"):
		return catalog.StatusApproved
	default:
		return catalog.StatusReview
	}
}

func topWords(content string, k int) []string {
	freq := textVector(content)
	type wordCount struct {
		word  string
		count int
	}
	var counts []wordCount
	for word, count := range freq {
		if len(word) > 3 {
			counts = append(counts, wordCount{word, count})
		}
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].count != counts[j].count {
			return counts[i].count > counts[j].count
		}
		return counts[i].word < counts[j].word
	})
	if len(counts) > k {
		counts = counts[:k]
	}
	words := make([]string, len(counts))
	for i, c := range counts {
		words[i] = c.word
	}
	return words
}

// Seed fills the store with a small deterministic corpus for demos and
// tests.
func Seed(s *Server) {
	now := time.Now().UTC()
	samples := []catalog.Document{
		{
			Title: "Safety Circular 12", Summary: "Immediate platform safety directive for all stations.",
			Status: catalog.StatusUrgent, OrgUnit: "Safety", Category: "Safety Circular",
			Language: "English", Tags: []string{"platform", "directive"}, Source: "scanned",
			Content: "All station controllers must verify platform edge markings before first service.",
		},
		{
			Title: "Q3 Vendor Invoice", Summary: "Invoice for rolling stock spares, third quarter.",
			Status: catalog.StatusApproved, OrgUnit: "Finance", Category: "Invoice",
			Language: "English", Tags: []string{"spares", "procurement"}, Source: "uploaded", Starred: true,
			Content: "Invoice total and line items for traction motor spares.",
			Tables: []catalog.Table{{
				Caption: "Line items",
				Data: [][]string{
					{"Item", "Qty", "Amount"},
					{"Traction motor", "2", "140000"},
					{"Brake pads", "40", "12000"},
				},
			}},
		},
		{
			Title: "Track Maintenance Plan", Summary: "Annual maintenance schedule for viaduct sections.",
			Status: catalog.StatusReview, OrgUnit: "Engineering", Category: "Tender Document",
			Language: "English", Tags: []string{"track", "schedule"}, Source: "uploaded",
			Content: "Proposed night block windows for tamping and rail grinding.",
		},
	}
	for i, doc := range samples {
		doc.Date = now.Add(-time.Duration(i) * 24 * time.Hour).Format(time.RFC3339)
		s.store.insert(doc)
	}
}
