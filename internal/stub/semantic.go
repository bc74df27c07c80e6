package stub

import (
	"math"
	"sort"
	"strings"

	"github.com/docdeck/docdeck/internal/catalog"
)

// textVector converts text to a word frequency vector.
func textVector(text string) map[string]int {
	vec := make(map[string]int)
	for _, word := range strings.Fields(strings.ToLower(text)) {
		vec[word]++
	}
	return vec
}

// cosineSim computes cosine similarity between two frequency vectors.
// Zero vectors score 0.
func cosineSim(a, b map[string]int) float64 {
	var dot, normA, normB float64
	for word, va := range a {
		if vb, ok := b[word]; ok {
			dot += float64(va) * float64(vb)
		}
		normA += float64(va) * float64(va)
	}
	for _, vb := range b {
		normB += float64(vb) * float64(vb)
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / math.Sqrt(normA*normB)
}

type scoredDoc struct {
	doc   catalog.Document
	score float64
}

// semanticSearch ranks every document against the query by cosine
// similarity over title, summary, content and tags, returning the topK
// non-zero scorers in descending order.
func semanticSearch(query string, docs []catalog.Document, topK int) []scoredDoc {
	queryVec := textVector(query)

	var results []scoredDoc
	for _, doc := range docs {
		fullText := doc.Title + " " + doc.Summary + " " + doc.Content + " " + strings.Join(doc.Tags, " ")
		if score := cosineSim(queryVec, textVector(fullText)); score > 0 {
			results = append(results, scoredDoc{doc: doc, score: score})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].score > results[j].score
	})

	if topK > 0 && len(results) > topK {
		results = results[:topK]
	}
	return results
}
