package service

import (
	"context"
	"time"

	"github.com/orderdocs/orderdocs/internal/domain/document"
	"github.com/orderdocs/orderdocs/internal/domain/settings"
	ierr "github.com/orderdocs/orderdocs/internal/errors"
	"github.com/orderdocs/orderdocs/internal/filestore"
	"github.com/orderdocs/orderdocs/internal/logger"
	"github.com/orderdocs/orderdocs/internal/pdfgen"
	"github.com/orderdocs/orderdocs/internal/renderer"
	"github.com/orderdocs/orderdocs/internal/types"
)

// DocumentService is the generation orchestrator: normalize order data,
// render the document body, rasterize PDF kinds, persist, and return the
// stored handle. Each call is one-shot; retries are the caller's decision.
type DocumentService interface {
	Generate(ctx context.Context, orderID int, kind types.DocumentKind) (*document.GeneratedDocument, error)
}

type documentService struct {
	snapshotService SnapshotService
	companyService  CompanyService
	settingsRepo    settings.Repository
	renderers       map[types.DocumentKind]renderer.Renderer
	rasterizer      pdfgen.Rasterizer
	store           filestore.Store
	logger          *logger.Logger
}

func NewDocumentService(
	snapshotService SnapshotService,
	companyService CompanyService,
	settingsRepo settings.Repository,
	renderers map[types.DocumentKind]renderer.Renderer,
	rasterizer pdfgen.Rasterizer,
	store filestore.Store,
	logger *logger.Logger,
) DocumentService {
	return &documentService{
		snapshotService: snapshotService,
		companyService:  companyService,
		settingsRepo:    settingsRepo,
		renderers:       renderers,
		rasterizer:      rasterizer,
		store:           store,
		logger:          logger,
	}
}

func (s *documentService) Generate(ctx context.Context, orderID int, kind types.DocumentKind) (*document.GeneratedDocument, error) {
	if err := kind.Validate(); err != nil {
		return nil, err
	}
	if orderID <= 0 {
		return nil, ierr.NewError("invalid order id").
			WithHint("Please provide a valid order id").
			Mark(ierr.ErrValidation)
	}

	st, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if !st.Enabled(kind) {
		return nil, ierr.NewErrorf("document kind %s is disabled", kind).
			WithHint("This document type is disabled in settings").
			Mark(ierr.ErrInvalidOperation)
	}

	snap, err := s.snapshotService.GetOrderSnapshot(ctx, orderID)
	if err != nil {
		return nil, err
	}

	profile, err := s.companyService.GetCompanyProfile(ctx)
	if err != nil {
		return nil, err
	}

	r, ok := s.renderers[kind]
	if !ok {
		return nil, ierr.NewErrorf("no renderer for document kind %s", kind).
			Mark(ierr.ErrSystem)
	}

	body, err := r.Render(ctx, snap, profile)
	if err != nil {
		return nil, err
	}

	payload := []byte(body)
	if kind.RequiresRasterization() {
		payload, err = s.rasterizer.Rasterize(ctx, body)
		if err != nil {
			return nil, err
		}
	}

	path, err := s.store.Save(ctx, kind, orderID, payload)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("generated document",
		"kind", kind,
		"order_id", orderID,
		"path", path,
	)

	return &document.GeneratedDocument{
		Kind:      kind,
		OrderID:   orderID,
		FilePath:  path,
		CreatedAt: time.Now().UTC(),
	}, nil
}
