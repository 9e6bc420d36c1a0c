package filestore

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/orderdocs/orderdocs/internal/config"
	ierr "github.com/orderdocs/orderdocs/internal/errors"
	"github.com/orderdocs/orderdocs/internal/logger"
	"github.com/orderdocs/orderdocs/internal/types"
)

// Store persists rendered document bodies under the storage root and hands
// back retrievable paths.
type Store interface {
	Save(ctx context.Context, kind types.DocumentKind, orderID int, body []byte) (string, error)
	// PublicURL maps an absolute file path to its download URL by swapping
	// the storage root prefix for the public base URL. Stateless; used only
	// by the HTTP layer.
	PublicURL(path string) string
	// Sweep removes generated files older than the given age and returns
	// how many were deleted.
	Sweep(olderThan time.Duration) (int, error)
}

type diskStore struct {
	root          string
	publicBaseURL string
	logger        *logger.Logger

	initOnce sync.Once
	initErr  error
	entropy  *ulid.MonotonicEntropy
	mu       sync.Mutex
}

func NewStore(cfg *config.Configuration, logger *logger.Logger) Store {
	return &diskStore{
		root:          cfg.Storage.Root,
		publicBaseURL: strings.TrimSuffix(cfg.Storage.PublicBaseURL, "/"),
		logger:        logger,
		entropy:       ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0),
	}
}

// ensureRoot creates the storage root on first use. The empty index.html
// keeps naive static servers from listing the directory.
func (s *diskStore) ensureRoot() error {
	s.initOnce.Do(func() {
		if err := os.MkdirAll(s.root, 0o750); err != nil {
			s.initErr = ierr.WithError(err).
				WithHint("failed to create document storage directory").
				Mark(ierr.ErrSystem)
			return
		}
		indexPath := filepath.Join(s.root, "index.html")
		if _, err := os.Stat(indexPath); os.IsNotExist(err) {
			if err := os.WriteFile(indexPath, []byte{}, 0o640); err != nil {
				s.logger.Warnw("failed to write directory index blocker", "error", err)
			}
		}
	})
	return s.initErr
}

// fileName builds the unique name for one generation. The unix timestamp
// matches the historical naming scheme; the ulid suffix closes the
// same-second collision window between concurrent generations.
func (s *diskStore) fileName(kind types.DocumentKind, orderID int) string {
	s.mu.Lock()
	suffix := ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy).String()
	s.mu.Unlock()

	return fmt.Sprintf("%s-%d-%d-%s.%s",
		kind.FilePrefix(), orderID, time.Now().Unix(), suffix, kind.Extension())
}

func (s *diskStore) Save(ctx context.Context, kind types.DocumentKind, orderID int, body []byte) (string, error) {
	if err := s.ensureRoot(); err != nil {
		return "", err
	}

	path := filepath.Join(s.root, s.fileName(kind, orderID))

	if err := os.WriteFile(path, body, 0o640); err != nil {
		return "", ierr.WithError(err).
			WithHint("failed to write generated document").
			WithReportableDetails(map[string]any{
				"kind":     kind,
				"order_id": orderID,
			}).
			Mark(ierr.ErrSystem)
	}

	// Re-check that the write landed; a vanished or empty file means the
	// storage root is not trustworthy.
	info, err := os.Stat(path)
	if err != nil || info.Size() == 0 {
		return "", ierr.NewError("generated document did not persist").
			WithHint("failed to write generated document").
			Mark(ierr.ErrSystem)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return path, nil
	}
	return abs, nil
}

func (s *diskStore) PublicURL(path string) string {
	if s.publicBaseURL == "" {
		return path
	}
	absRoot, err := filepath.Abs(s.root)
	if err != nil {
		absRoot = s.root
	}
	rel, err := filepath.Rel(absRoot, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return s.publicBaseURL + "/" + filepath.ToSlash(rel)
}

func (s *diskStore) Sweep(olderThan time.Duration) (int, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, ierr.WithError(err).
			WithHint("failed to read document storage directory").
			Mark(ierr.ErrSystem)
	}

	cutoff := time.Now().Add(-olderThan)
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() || !isGeneratedDocument(entry.Name()) {
			continue
		}
		info, err := entry.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}
		if err := os.Remove(filepath.Join(s.root, entry.Name())); err != nil {
			s.logger.Warnw("failed to remove stale document", "file", entry.Name(), "error", err)
			continue
		}
		removed++
	}

	if removed > 0 {
		s.logger.Infow("swept stale generated documents", "removed", removed)
	}
	return removed, nil
}

func isGeneratedDocument(name string) bool {
	for _, kind := range []types.DocumentKind{
		types.DocumentKindPDFInvoice,
		types.DocumentKindUBLInvoice,
		types.DocumentKindPackingSlip,
	} {
		if strings.HasPrefix(name, kind.FilePrefix()+"-") && strings.HasSuffix(name, "."+kind.Extension()) {
			return true
		}
	}
	return false
}
