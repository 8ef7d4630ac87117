package docdex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docdex/docdex/ai/mock"
	"github.com/docdex/docdex/search"
)

func TestNewDatabase(t *testing.T) {
	t.Run("create new database", func(t *testing.T) {
		tmpDir := filepath.Join(t.TempDir(), "test_db")
		db, err := NewDatabase(tmpDir)
		require.NoError(t, err)
		require.NotNil(t, db)
		defer db.Close()

		// Verify components are initialized
		assert.NotNil(t, db.DocumentRepository())
		assert.NotNil(t, db.AIProvider())
		assert.NotNil(t, db.backend)
		assert.NotNil(t, db.logger)
	})

	t.Run("error with invalid path", func(t *testing.T) {
		// Try to create a database at a file path instead of directory
		tmpFile := filepath.Join(t.TempDir(), "not_a_dir")
		err := os.WriteFile(tmpFile, []byte("test"), 0644)
		require.NoError(t, err)

		db, err := NewDatabase(tmpFile)
		assert.Error(t, err)
		assert.Nil(t, db)
	})

	t.Run("in-memory database", func(t *testing.T) {
		db, err := NewDatabase("", WithInMemory(), WithAIProvider(mock.NewMockProvider()))
		require.NoError(t, err)
		require.NotNil(t, db)
		assert.NoError(t, db.Close())
	})
}

func TestDatabase_Close(t *testing.T) {
	tmpDir := t.TempDir()
	db, err := NewDatabase(tmpDir)
	require.NoError(t, err)
	require.NotNil(t, db)

	// Close the database
	err = db.Close()
	assert.NoError(t, err)
}

func TestDatabase_FactoryMethods(t *testing.T) {
	db, err := NewDatabase("", WithInMemory(), WithAIProvider(mock.NewMockProvider()))
	require.NoError(t, err)
	require.NotNil(t, db)
	defer db.Close()

	t.Run("can create ingest pipeline", func(t *testing.T) {
		pipeline, err := db.NewIngestPipeline()
		require.NoError(t, err)
		require.NotNil(t, pipeline)
		pipeline.Release()
	})

	t.Run("can create feed", func(t *testing.T) {
		f, err := db.NewFeed()
		require.NoError(t, err)
		require.NotNil(t, f)
	})

	t.Run("can create search runner", func(t *testing.T) {
		engine, err := db.NewFilterEngine()
		require.NoError(t, err)

		strategy, err := db.NewDirectStrategy()
		require.NoError(t, err)

		runner, err := db.NewSearchRunner(engine, strategy)
		require.NoError(t, err)
		require.NotNil(t, runner)
	})

	t.Run("can create criteria strategy", func(t *testing.T) {
		strategy, err := db.NewCriteriaStrategy()
		require.NoError(t, err)
		require.NotNil(t, strategy)
	})

	t.Run("strategies carry the resilience wrapper", func(t *testing.T) {
		direct, err := db.NewDirectStrategy()
		require.NoError(t, err)
		assert.IsType(t, &search.Resilient{}, direct)

		criteria, err := db.NewCriteriaStrategy()
		require.NoError(t, err)
		assert.IsType(t, &search.Resilient{}, criteria)
	})

	t.Run("can create reprocessor", func(t *testing.T) {
		r, err := db.NewReprocessor(nil, os.Stderr)
		require.NoError(t, err)
		require.NotNil(t, r)
	})
}
