package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindwell/intake-platform/internal/catalog"
)

func TestMatchShortCircuitsShortQueries(t *testing.T) {
	ix := NewIndex(catalog.Default().Documents)

	assert.Nil(t, ix.Match(""))
	assert.Nil(t, ix.Match("a"))
	assert.Nil(t, ix.Match("  a  "))
}

func TestMatchSubstringCaseInsensitive(t *testing.T) {
	ix := NewIndex(catalog.Default().Documents)

	results := ix.Match("couples")
	require.NotEmpty(t, results)

	var foundService bool
	for _, doc := range results {
		if doc.Title == "Couples Therapy" {
			foundService = true
		}
	}
	assert.True(t, foundService, "expected the Couples Therapy document in results")

	// case should not matter
	assert.Equal(t, len(results), len(ix.Match("COUPLES")))
}

func TestMatchPreservesCatalogOrder(t *testing.T) {
	docs := []catalog.SearchDocument{
		{ID: "a", Title: "Anxiety First", Description: "", Category: "Service"},
		{ID: "b", Title: "Unrelated", Description: "anxiety mentioned here", Category: "FAQ"},
		{ID: "c", Title: "Anxiety Last", Description: "", Category: "Service"},
	}
	ix := NewIndex(docs)

	results := ix.Match("anxiety")
	require.Len(t, results, 3)
	assert.Equal(t, "a", results[0].ID)
	assert.Equal(t, "b", results[1].ID)
	assert.Equal(t, "c", results[2].ID)
}

func TestMatchAgainstCategory(t *testing.T) {
	ix := NewIndex(catalog.Default().Documents)

	// every location document carries the Location category
	results := ix.Match("location")
	require.Len(t, results, 3)
	for _, doc := range results {
		assert.Equal(t, catalog.DocLocation, doc.Type)
	}
}

func TestMatchNoResults(t *testing.T) {
	ix := NewIndex(catalog.Default().Documents)
	assert.Empty(t, ix.Match("zzzzz"))
}
