package api

import "github.com/docdeck/docdeck/internal/catalog"

// Pagination mirrors the list endpoint's pagination block.
type Pagination struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Pages int `json:"pages"`
}

// ListResult is the response of the document list endpoint. Documents keep
// the server-determined order.
type ListResult struct {
	Documents  []catalog.Document `json:"documents"`
	Pagination Pagination         `json:"pagination"`
}

// SemanticResult is one hit of the natural-language search endpoint. It is
// consumed outside the Document Store pipeline.
type SemanticResult struct {
	ID         string   `json:"_id"`
	Title      string   `json:"title"`
	Summary    string   `json:"summary"`
	Similarity float64  `json:"similarity"`
	OrgUnit    string   `json:"department"`
	Category   string   `json:"type"`
	Date       string   `json:"date,omitempty"`
	Tags       []string `json:"tags,omitempty"`
}

type semanticResponse struct {
	Results []SemanticResult `json:"results"`
}

// Stats are the catalog-wide counters.
type Stats struct {
	TotalDocuments int `json:"total_documents"`
	UrgentItems    int `json:"urgent_items"`
	DocumentsToday int `json:"documents_today"`
}

type errorBody struct {
	Error string `json:"error"`
}

type starredUpdate struct {
	Starred bool `json:"starred"`
}

type statusUpdate struct {
	Status string `json:"status"`
}

type tagsUpdate struct {
	Tags []string `json:"tags"`
}

type semanticQuery struct {
	Query string `json:"query"`
}
