package canon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docdex/docdex/core"
)

func vocabularyFixture() []*core.Document {
	return []*core.Document{
		{Owner: "John Doe", Type: "Passport", Country: "Denmark", FileName: "a.pdf"},
		{Owner: "Jon Doe", Type: "Passport", Country: "Denmark", FileName: "b.pdf"},
		{Owner: "Jane Smith", Type: "Invoice", Company: "Acme Corporation", FileName: "c.pdf"},
		{Owner: "Jane Smith", Type: "Drivers License", Company: "Acme Corporation", FileName: "d.pdf"},
	}
}

func TestBuildVocabulary(t *testing.T) {
	vocab := BuildVocabulary(vocabularyFixture(), nil)

	t.Run("near duplicates collapse to one option", func(t *testing.T) {
		assert.Equal(t, []string{"Jane Smith", "John Doe"}, vocab.Options(core.CategoryOwner))
	})

	t.Run("options are sorted for display", func(t *testing.T) {
		assert.Equal(t, []string{"Drivers License", "Invoice", "Passport"}, vocab.Options(core.CategoryType))
	})

	t.Run("absent fields admit no empty option", func(t *testing.T) {
		assert.Equal(t, []string{"Acme Corporation"}, vocab.Options(core.CategoryCompany))
		assert.NotContains(t, vocab.Options(core.CategoryCountry), "")
	})

	t.Run("raw value maps to its canonical bucket", func(t *testing.T) {
		assert.Equal(t, "John Doe", vocab.Canonical(core.CategoryOwner, "Jon Doe"))
		assert.Equal(t, "John Doe", vocab.Canonical(core.CategoryOwner, "John Doe"))
	})

	t.Run("processing documents contribute nothing", func(t *testing.T) {
		docs := append(vocabularyFixture(), &core.Document{
			Owner: "Processing...", Type: "Processing", FileName: "new.pdf", IsProcessing: true,
		})
		vocab := BuildVocabulary(docs, nil)
		assert.NotContains(t, vocab.Options(core.CategoryOwner), "Processing...")
	})

	t.Run("first spelling seen becomes the label", func(t *testing.T) {
		reordered := vocabularyFixture()
		reordered[0], reordered[1] = reordered[1], reordered[0]
		vocab := BuildVocabulary(reordered, nil)
		// Known order sensitivity: the label follows insertion order.
		assert.Contains(t, vocab.Options(core.CategoryOwner), "Jon Doe")
		assert.NotContains(t, vocab.Options(core.CategoryOwner), "John Doe")
	})
}

func TestFilterOptions(t *testing.T) {
	vocab := BuildVocabulary(vocabularyFixture(), nil)

	t.Run("empty query returns everything", func(t *testing.T) {
		assert.Equal(t, vocab.Options(core.CategoryType), vocab.FilterOptions(core.CategoryType, ""))
	})

	t.Run("typed query narrows the list", func(t *testing.T) {
		got := vocab.FilterOptions(core.CategoryType, "pass")
		require.Equal(t, []string{"Passport"}, got)
	})

	t.Run("no match yields an empty list, not an error", func(t *testing.T) {
		assert.Empty(t, vocab.FilterOptions(core.CategoryType, "zzzzz"))
	})

	t.Run("unknown category yields nil", func(t *testing.T) {
		assert.Nil(t, vocab.FilterOptions(core.FilterCategory(99), "x"))
	})
}
