package filestore

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orderdocs/orderdocs/internal/config"
	"github.com/orderdocs/orderdocs/internal/logger"
	"github.com/orderdocs/orderdocs/internal/types"
)

func newTestStore(t *testing.T) (Store, string) {
	t.Helper()

	root := t.TempDir()
	cfg := config.GetDefaultConfig()
	cfg.Storage.Root = root
	cfg.Storage.PublicBaseURL = "https://cdn.example.com/docs/"

	return NewStore(cfg, logger.NewNop()), root
}

func TestSaveWritesRetrievableFile(t *testing.T) {
	store, root := newTestStore(t)

	path, err := store.Save(context.Background(), types.DocumentKindPDFInvoice, 1042, []byte("%PDF-1.4 test"))
	require.NoError(t, err)

	assert.True(t, filepath.IsAbs(path))
	assert.Equal(t, root, filepath.Dir(path))

	name := filepath.Base(path)
	assert.Contains(t, name, "invoice-1042-")
	assert.Equal(t, ".pdf", filepath.Ext(name))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestSaveProducesDistinctFilesPerCall(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	first, err := store.Save(ctx, types.DocumentKindUBLInvoice, 7, []byte("<Invoice/>"))
	require.NoError(t, err)
	second, err := store.Save(ctx, types.DocumentKindUBLInvoice, 7, []byte("<Invoice/>"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)

	for _, path := range []string{first, second} {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	}
}

func TestSaveBlocksDirectoryListing(t *testing.T) {
	store, root := newTestStore(t)

	_, err := store.Save(context.Background(), types.DocumentKindPackingSlip, 3, []byte("body"))
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(root, "index.html"))
	assert.NoError(t, err)
}

func TestPublicURLSwapsStorageRootPrefix(t *testing.T) {
	store, _ := newTestStore(t)

	path, err := store.Save(context.Background(), types.DocumentKindPDFInvoice, 11, []byte("pdf"))
	require.NoError(t, err)

	url := store.PublicURL(path)
	assert.Equal(t, "https://cdn.example.com/docs/"+filepath.Base(path), url)
}

func TestPublicURLLeavesForeignPathsAlone(t *testing.T) {
	store, _ := newTestStore(t)

	assert.Equal(t, "/elsewhere/file.pdf", store.PublicURL("/elsewhere/file.pdf"))
}

func TestSweepRemovesOnlyStaleGeneratedFiles(t *testing.T) {
	store, root := newTestStore(t)
	ctx := context.Background()

	stale, err := store.Save(ctx, types.DocumentKindPDFInvoice, 1, []byte("old"))
	require.NoError(t, err)
	fresh, err := store.Save(ctx, types.DocumentKindPDFInvoice, 2, []byte("new"))
	require.NoError(t, err)

	// unrelated files are never swept
	other := filepath.Join(root, "notes.txt")
	require.NoError(t, os.WriteFile(other, []byte("keep"), 0o640))

	old := time.Now().Add(-2 * time.Hour)
	require.NoError(t, os.Chtimes(stale, old, old))
	require.NoError(t, os.Chtimes(other, old, old))

	removed, err := store.Sweep(time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	_, err = os.Stat(stale)
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(fresh)
	assert.NoError(t, err)
	_, err = os.Stat(other)
	assert.NoError(t, err)
}
