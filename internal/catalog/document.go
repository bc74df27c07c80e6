package catalog

// Document statuses form a closed set assigned by the remote store.
// The client never infers or invents one.
const (
	StatusUrgent    = "urgent"
	StatusPending   = "pending"
	StatusReview    = "review"
	StatusApproved  = "approved"
	StatusPublished = "published"
)

// Table is a rectangular grid of extracted text cells.
// Row 0 is treated as the header row.
type Table struct {
	Caption string     `json:"caption"`
	Data    [][]string `json:"data"`
}

// Document is a record owned by the remote document store. Identifiers,
// statuses and all extracted metadata originate remotely; the client only
// mirrors them.
type Document struct {
	ID       string   `json:"_id"`
	Title    string   `json:"title"`
	Summary  string   `json:"summary"`
	Status   string   `json:"status,omitempty"`
	OrgUnit  string   `json:"department"`
	Category string   `json:"type"`
	Date     string   `json:"date,omitempty"`
	Language string   `json:"language,omitempty"`
	Tags     []string `json:"tags,omitempty"`
	Source   string   `json:"source,omitempty"`
	Starred  bool     `json:"starred"`
	Content  string   `json:"content,omitempty"`
	Tables   []Table  `json:"tables_data,omitempty"`
}
