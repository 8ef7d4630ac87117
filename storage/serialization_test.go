package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docdex/docdex/core"
)

func TestMarshalUnmarshalID(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		id := core.IDFromContent("passport scan")
		got, err := UnmarshalID(MarshalID(id))
		require.NoError(t, err)
		assert.Equal(t, id, got)
	})

	t.Run("zero id", func(t *testing.T) {
		got, err := UnmarshalID(MarshalID(core.ID(0)))
		require.NoError(t, err)
		assert.Equal(t, core.ID(0), got)
	})

	t.Run("garbage fails", func(t *testing.T) {
		_, err := UnmarshalID([]byte{})
		assert.Error(t, err)
	})
}

func TestMarshalUnmarshalDocument(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)
	doc := &core.Document{
		Id:          42,
		Owner:       "John Doe",
		Company:     "Acme Corporation",
		Type:        "Passport",
		Country:     "Denmark",
		Keywords:    []string{"travel", "identity"},
		Summary:     "A Danish passport.",
		TextContent: "KINGDOM OF DENMARK PASSPORT",
		FileName:    "passport.pdf",
		Expiry:      now.AddDate(5, 0, 0),
		UploadedAt:  now,
		InsertedAt:  now,
		UpdatedAt:   now,
	}

	got, err := UnmarshalDocument(MarshalDocument(doc))
	require.NoError(t, err)
	assert.Equal(t, doc.Id, got.Id)
	assert.Equal(t, doc.Owner, got.Owner)
	assert.Equal(t, doc.Keywords, got.Keywords)
	assert.True(t, doc.Expiry.Equal(got.Expiry))
	assert.True(t, doc.UploadedAt.Equal(got.UploadedAt))
	assert.False(t, got.IsProcessing)
}

func TestUnmarshalDocumentTruncated(t *testing.T) {
	data := MarshalDocument(&core.Document{Id: 7, Owner: "John Doe", FileName: "a.pdf"})
	_, err := UnmarshalDocument(data[:len(data)/2])
	assert.Error(t, err)
}
