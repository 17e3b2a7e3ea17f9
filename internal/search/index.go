// Package search matches free-text queries against the site's fixed
// document catalog.
package search

import (
	"strings"

	"github.com/mindwell/intake-platform/internal/catalog"
)

// MinQueryLength is the shortest trimmed query worth scanning for.
const MinQueryLength = 2

// Index holds an immutable snapshot of searchable documents.
type Index struct {
	docs     []catalog.SearchDocument
	keywords []string
}

// NewIndex builds an index over the documents, precomputing keyword text.
// The slice is copied; later mutation of the caller's slice has no effect.
func NewIndex(docs []catalog.SearchDocument) *Index {
	ix := &Index{
		docs:     make([]catalog.SearchDocument, len(docs)),
		keywords: make([]string, len(docs)),
	}
	copy(ix.docs, docs)
	for i := range ix.docs {
		ix.keywords[i] = ix.docs[i].KeywordText()
	}
	return ix
}

// Match returns every document whose keyword text contains the lowercased
// query as a substring, in catalog insertion order. Queries shorter than
// MinQueryLength after trimming return nil without scanning. No relevance
// ranking is applied.
func (ix *Index) Match(query string) []catalog.SearchDocument {
	q := strings.ToLower(strings.TrimSpace(query))
	if len(q) < MinQueryLength {
		return nil
	}
	var out []catalog.SearchDocument
	for i := range ix.docs {
		if strings.Contains(ix.keywords[i], q) {
			out = append(out, ix.docs[i])
		}
	}
	return out
}

// Size reports how many documents the index holds.
func (ix *Index) Size() int {
	return len(ix.docs)
}
