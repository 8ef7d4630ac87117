package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDocument() *Document {
	return &Document{
		Id:         IDFromContent("test document"),
		Owner:      "John Doe",
		Type:       "Passport",
		FileName:   "passport.pdf",
		UploadedAt: time.Now().UTC().Add(-time.Hour),
	}
}

func TestValidateDocument(t *testing.T) {
	t.Run("valid processed document", func(t *testing.T) {
		require.NoError(t, ValidateDocument(validDocument()))
	})

	t.Run("nil document", func(t *testing.T) {
		err := ValidateDocument(nil)
		assert.ErrorIs(t, err, ErrInvalidDocument)
	})

	t.Run("empty file name", func(t *testing.T) {
		doc := validDocument()
		doc.FileName = ""
		err := ValidateDocument(doc)
		assert.ErrorIs(t, err, ErrInvalidDocument)
		assert.ErrorIs(t, err, ErrEmptyFileName)
	})

	t.Run("future upload time", func(t *testing.T) {
		doc := validDocument()
		doc.UploadedAt = time.Now().Add(time.Hour)
		err := ValidateDocument(doc)
		assert.ErrorIs(t, err, ErrInvalidUploadTime)
	})

	t.Run("processed document without owner", func(t *testing.T) {
		doc := validDocument()
		doc.Owner = ""
		err := ValidateDocument(doc)
		assert.ErrorIs(t, err, ErrEmptyOwner)
	})

	t.Run("processed document without type", func(t *testing.T) {
		doc := validDocument()
		doc.Type = ""
		err := ValidateDocument(doc)
		assert.ErrorIs(t, err, ErrEmptyType)
	})

	t.Run("processing document may have placeholder fields", func(t *testing.T) {
		doc := validDocument()
		doc.Owner = ""
		doc.Type = ""
		doc.IsProcessing = true
		require.NoError(t, ValidateDocument(doc))
	})
}

func TestValidateCategory(t *testing.T) {
	for _, category := range Categories {
		assert.NoError(t, ValidateCategory(category))
	}
	assert.ErrorIs(t, ValidateCategory(FilterCategory(0)), ErrInvalidCategory)
	assert.ErrorIs(t, ValidateCategory(FilterCategory(42)), ErrInvalidCategory)
}
