package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orderdocs/orderdocs/internal/api/dto"
	ierr "github.com/orderdocs/orderdocs/internal/errors"
	"github.com/orderdocs/orderdocs/internal/filestore"
	"github.com/orderdocs/orderdocs/internal/logger"
	"github.com/orderdocs/orderdocs/internal/service"
	"github.com/orderdocs/orderdocs/internal/types"
)

type DocumentHandler struct {
	documentService service.DocumentService
	store           filestore.Store
	logger          *logger.Logger
}

func NewDocumentHandler(documentService service.DocumentService, store filestore.Store, logger *logger.Logger) *DocumentHandler {
	return &DocumentHandler{
		documentService: documentService,
		store:           store,
		logger:          logger,
	}
}

// Generate handles the interactive generation request from the admin
// surface. Authorization and the anti-forgery token are checked by
// middleware before this runs.
func (h *DocumentHandler) Generate(c *gin.Context) {
	var req dto.GenerateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Errorw("failed to bind request", "error", err)
		c.Error(ierr.WithError(err).WithHint("invalid request").Mark(ierr.ErrValidation))
		return
	}
	if err := req.Validate(); err != nil {
		c.Error(err)
		return
	}

	doc, err := h.documentService.Generate(c.Request.Context(), req.OrderID, req.Kind)
	if err != nil {
		h.logger.Errorw("failed to generate document",
			"order_id", req.OrderID,
			"kind", req.Kind,
			"error", err,
		)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.GenerateDocumentResponse{
		Success:     true,
		Message:     successMessage(doc.Kind),
		DownloadURL: h.store.PublicURL(doc.FilePath),
	})
}

func successMessage(kind types.DocumentKind) string {
	switch kind {
	case types.DocumentKindUBLInvoice:
		return "UBL invoice generated successfully"
	case types.DocumentKindPackingSlip:
		return "Packing slip generated successfully"
	default:
		return "PDF invoice generated successfully"
	}
}
