package format

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/docdeck/docdeck/internal/api"
	"github.com/docdeck/docdeck/internal/catalog"
	"github.com/docdeck/docdeck/internal/storage"
)

// Format is the CLI output format type.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// OutputDocumentList prints a document page plus the total match count.
func OutputDocumentList(docs []catalog.Document, total int, format Format) error {
	if format == FormatJSON {
		return outputJSON(map[string]interface{}{
			"documents":    docs,
			"totalMatches": total,
		})
	}

	if len(docs) == 0 {
		fmt.Println("No documents found")
		return nil
	}
	for _, doc := range docs {
		star := " "
		if doc.Starred {
			star = "*"
		}
		fmt.Printf("%s %-26s  %-10s  %-14s  %-18s  %s\n",
			star, doc.ID, orDefault(doc.Status, "-"), doc.OrgUnit, doc.Category, doc.Title)
	}
	fmt.Printf("\n%d of %d matching document(s)\n", len(docs), total)
	return nil
}

// OutputDocumentDetail prints a single record; full includes the extracted
// text and tables.
func OutputDocumentDetail(doc *catalog.Document, format Format, full bool) error {
	if format == FormatJSON {
		return outputJSON(doc)
	}

	fmt.Printf("ID:       %s\n", doc.ID)
	fmt.Printf("Title:    %s\n", doc.Title)
	fmt.Printf("Status:   %s\n", orDefault(doc.Status, "-"))
	fmt.Printf("Unit:     %s\n", doc.OrgUnit)
	fmt.Printf("Category: %s\n", doc.Category)
	fmt.Printf("Date:     %s\n", doc.Date)
	fmt.Printf("Language: %s\n", orDefault(doc.Language, "-"))
	fmt.Printf("Source:   %s\n", orDefault(doc.Source, "-"))
	fmt.Printf("Starred:  %v\n", doc.Starred)
	if len(doc.Tags) > 0 {
		fmt.Printf("Tags:     %s\n", strings.Join(doc.Tags, ", "))
	}
	fmt.Printf("\n%s\n", doc.Summary)

	if full {
		if doc.Content != "" {
			fmt.Printf("\n--- Extracted text ---\n%s\n", doc.Content)
		}
		for _, table := range doc.Tables {
			fmt.Printf("\n--- Table: %s ---\n", orDefault(table.Caption, "untitled"))
			for i, row := range table.Data {
				fmt.Println(strings.Join(row, " | "))
				if i == 0 {
					fmt.Println(strings.Repeat("-", len(strings.Join(row, " | "))))
				}
			}
		}
	}
	return nil
}

// OutputSemanticResults prints natural-language search hits.
func OutputSemanticResults(results []api.SemanticResult, format Format) error {
	if format == FormatJSON {
		return outputJSON(results)
	}

	if len(results) == 0 {
		fmt.Println("No results found")
		return nil
	}
	for _, r := range results {
		fmt.Printf("%.3f  %-26s  %s\n", r.Similarity, r.ID, r.Title)
		if r.Summary != "" {
			fmt.Printf("       %s\n", r.Summary)
		}
	}
	return nil
}

// OutputStats prints the catalog counters.
func OutputStats(stats *api.Stats, format Format) error {
	if format == FormatJSON {
		return outputJSON(stats)
	}
	fmt.Printf("Total documents: %d\n", stats.TotalDocuments)
	fmt.Printf("Urgent items:    %d\n", stats.UrgentItems)
	fmt.Printf("Added today:     %d\n", stats.DocumentsToday)
	return nil
}

// OutputHistory prints local search history entries.
func OutputHistory(searches []storage.SearchEntry, uploads []storage.UploadEntry, format Format) error {
	if format == FormatJSON {
		return outputJSON(map[string]interface{}{
			"searches": searches,
			"uploads":  uploads,
		})
	}

	if len(searches) > 0 {
		fmt.Println("Recent searches:")
		for _, e := range searches {
			fmt.Printf("  %s  %-30q  %d match(es)\n",
				e.CreatedAt.Format("2006-01-02 15:04"), e.Query, e.TotalMatches)
		}
	}
	if len(uploads) > 0 {
		fmt.Println("Recent uploads:")
		for _, e := range uploads {
			outcome := "ok"
			if !e.Succeeded {
				outcome = "failed: " + e.Error
			}
			fmt.Printf("  %s  %-40s  %s\n",
				e.CreatedAt.Format("2006-01-02 15:04"), e.Path, outcome)
		}
	}
	if len(searches) == 0 && len(uploads) == 0 {
		fmt.Println("No history")
	}
	return nil
}

func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
