package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIDFromContent(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		id1 := IDFromContent("passport scan for John Doe")
		id2 := IDFromContent("passport scan for John Doe")
		assert.Equal(t, id1, id2)
	})

	t.Run("different content different id", func(t *testing.T) {
		id1 := IDFromContent("passport scan")
		id2 := IDFromContent("invoice scan")
		assert.NotEqual(t, id1, id2)
	})

	t.Run("empty content is valid", func(t *testing.T) {
		// Zero-length input still produces a stable hash
		assert.Equal(t, IDFromContent(""), IDFromContent(""))
	})
}

func TestFieldValue(t *testing.T) {
	doc := &Document{
		Owner:   "John Doe",
		Type:    "Passport",
		Company: "Acme Corporation",
		Country: "Denmark",
	}

	assert.Equal(t, "John Doe", doc.FieldValue(CategoryOwner))
	assert.Equal(t, "Passport", doc.FieldValue(CategoryType))
	assert.Equal(t, "Acme Corporation", doc.FieldValue(CategoryCompany))
	assert.Equal(t, "Denmark", doc.FieldValue(CategoryCountry))
	assert.Equal(t, "", doc.FieldValue(FilterCategory(99)))
}

func TestFilterCategoryString(t *testing.T) {
	assert.Equal(t, "owner", CategoryOwner.String())
	assert.Equal(t, "type", CategoryType.String())
	assert.Equal(t, "company", CategoryCompany.String())
	assert.Equal(t, "country", CategoryCountry.String())
	assert.Equal(t, "unknown", FilterCategory(0).String())
}
