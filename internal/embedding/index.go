package embedding

import (
	"math"
	"sort"
)

// Item is a stored entry in the index.
type Item struct {
	ID       int
	Text     string
	Vector   []float64
	Metadata map[string]string
}

// Result pairs a stored item with its similarity to a query.
type Result struct {
	ID         int
	Similarity float64
	Metadata   map[string]string
}

// Index is an in-memory vector index. It is not safe for concurrent use.
type Index struct {
	backend Backend
	items   []Item
	nextID  int
}

// NewIndex returns an empty index using the given backend, or HashBackend
// when nil.
func NewIndex(backend Backend) *Index {
	if backend == nil {
		backend = HashBackend{}
	}
	return &Index{backend: backend, nextID: 1}
}

// Embed exposes the backend's vector for a single text.
func (ix *Index) Embed(text string) []float64 {
	return ix.backend.Embed(text)
}

// Add embeds each text and stores it with its metadata, returning the ids
// assigned in input order. Ids start at 1 and increase monotonically.
func (ix *Index) Add(texts []string, metadatas []map[string]string) []int {
	ids := make([]int, 0, len(texts))
	for i, text := range texts {
		var meta map[string]string
		if i < len(metadatas) {
			meta = metadatas[i]
		}
		ix.items = append(ix.items, Item{
			ID:       ix.nextID,
			Text:     text,
			Vector:   ix.backend.Embed(text),
			Metadata: meta,
		})
		ids = append(ids, ix.nextID)
		ix.nextID++
	}
	return ids
}

// Query returns up to topK items ranked by cosine similarity to the query
// text, highest first. Ties keep insertion order.
func (ix *Index) Query(text string, topK int) []Result {
	qv := ix.backend.Embed(text)
	results := make([]Result, 0, len(ix.items))
	for _, it := range ix.items {
		results = append(results, Result{
			ID:         it.ID,
			Similarity: Cosine(qv, it.Vector),
			Metadata:   it.Metadata,
		})
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Similarity > results[j].Similarity
	})
	if topK >= 0 && len(results) > topK {
		results = results[:topK]
	}
	return results
}

// Len reports the number of stored items.
func (ix *Index) Len() int {
	return len(ix.items)
}

// Cosine computes cosine similarity between two vectors. A small epsilon in
// the denominator keeps zero vectors from dividing by zero.
func Cosine(a, b []float64) float64 {
	var dot, na, nb float64
	for i := range a {
		if i >= len(b) {
			break
		}
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	return dot / (math.Sqrt(na)*math.Sqrt(nb) + 1e-12)
}
