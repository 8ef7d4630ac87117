package feed

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docdex/docdex/core"
	"github.com/docdex/docdex/storage/badger"
)

func feedFixture(t *testing.T) (*Feed, func(...*core.Document)) {
	t.Helper()

	repo, backend, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.Close()
		backend.Close()
	})

	feed, err := NewFeed(repo)
	require.NoError(t, err)

	add := func(docs ...*core.Document) {
		_, err := repo.AddDocuments(context.Background(), docs...)
		require.NoError(t, err)
	}
	return feed, add
}

func TestNewFeed(t *testing.T) {
	t.Run("requires a repository", func(t *testing.T) {
		_, err := NewFeed(nil)
		assert.ErrorIs(t, err, ErrRepositoryRequired)
	})
}

func TestFeedRefresh(t *testing.T) {
	feed, add := feedFixture(t)
	ctx := context.Background()

	t.Run("empty storage yields empty snapshot", func(t *testing.T) {
		docs, err := feed.Refresh(ctx)
		require.NoError(t, err)
		assert.Empty(t, docs)
		assert.Empty(t, feed.Snapshot())
	})

	t.Run("snapshot is newest first", func(t *testing.T) {
		base := time.Now().UTC().Add(-time.Hour)
		add(
			&core.Document{FileName: "old.pdf", TextContent: "old", UploadedAt: base},
			&core.Document{FileName: "new.pdf", TextContent: "new", UploadedAt: base.Add(time.Minute)},
		)

		docs, err := feed.Refresh(ctx)
		require.NoError(t, err)
		require.Len(t, docs, 2)
		assert.Equal(t, "new.pdf", docs[0].FileName)
		assert.Equal(t, "old.pdf", docs[1].FileName)
	})

	t.Run("subscribers see every refresh", func(t *testing.T) {
		var received [][]*core.Document
		feed.Subscribe(func(docs []*core.Document) {
			received = append(received, docs)
		})

		_, err := feed.Refresh(ctx)
		require.NoError(t, err)
		add(&core.Document{FileName: "third.pdf", TextContent: "third", UploadedAt: time.Now().UTC()})
		_, err = feed.Refresh(ctx)
		require.NoError(t, err)

		require.Len(t, received, 2)
		assert.Len(t, received[0], 2)
		assert.Len(t, received[1], 3)
	})

	t.Run("nil subscriber is ignored", func(t *testing.T) {
		feed.Subscribe(nil)
		_, err := feed.Refresh(ctx)
		require.NoError(t, err)
	})
}

func TestFeedExpiringWithin(t *testing.T) {
	feed, add := feedFixture(t)
	ctx := context.Background()
	now := time.Now().UTC()

	add(
		&core.Document{FileName: "soon.pdf", TextContent: "soon", UploadedAt: now, Expiry: now.Add(10 * 24 * time.Hour)},
		&core.Document{FileName: "later.pdf", TextContent: "later", UploadedAt: now, Expiry: now.Add(300 * 24 * time.Hour)},
		&core.Document{FileName: "never.pdf", TextContent: "never", UploadedAt: now},
	)
	_, err := feed.Refresh(ctx)
	require.NoError(t, err)

	expiring := feed.ExpiringWithin(now, 30*24*time.Hour)
	require.Len(t, expiring, 1)
	assert.Equal(t, "soon.pdf", expiring[0].FileName)
}
