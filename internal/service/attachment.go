package service

import (
	"context"

	"github.com/orderdocs/orderdocs/internal/domain/settings"
	"github.com/orderdocs/orderdocs/internal/logger"
	"github.com/orderdocs/orderdocs/internal/types"
)

// AttachmentService resolves which generated documents to attach to an
// outgoing email. A failed generation for one kind never blocks the others
// and never fails the email send; the kind is simply skipped.
type AttachmentService interface {
	Resolve(ctx context.Context, trigger types.EmailTrigger, ref types.OrderRef) []string
}

type attachmentService struct {
	documentService DocumentService
	settingsRepo    settings.Repository
	logger          *logger.Logger
}

func NewAttachmentService(
	documentService DocumentService,
	settingsRepo settings.Repository,
	logger *logger.Logger,
) AttachmentService {
	return &attachmentService{
		documentService: documentService,
		settingsRepo:    settingsRepo,
		logger:          logger,
	}
}

// attachableKinds lists the kinds that carry attach sets, in attachment
// order. UBL invoices are download-only.
var attachableKinds = []types.DocumentKind{
	types.DocumentKindPDFInvoice,
	types.DocumentKindPackingSlip,
}

func (s *attachmentService) Resolve(ctx context.Context, trigger types.EmailTrigger, ref types.OrderRef) []string {
	orderID, ok := ref.Resolve()
	if !ok {
		s.logger.Debugw("attachment hook called with unresolvable order ref", "trigger", trigger)
		return nil
	}

	st, err := s.settingsRepo.Get(ctx)
	if err != nil {
		s.logger.Errorw("failed to load settings for attachment resolution",
			"trigger", trigger,
			"order_id", orderID,
			"error", err,
		)
		return nil
	}

	var paths []string
	for _, kind := range attachableKinds {
		if !st.AttachesTo(kind, trigger) {
			continue
		}

		doc, err := s.documentService.Generate(ctx, orderID, kind)
		if err != nil {
			s.logger.Errorw("skipping attachment after failed generation",
				"kind", kind,
				"trigger", trigger,
				"order_id", orderID,
				"error", err,
			)
			continue
		}
		paths = append(paths, doc.FilePath)
	}

	return paths
}
