package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orderdocs/orderdocs/internal/api/dto"
	ierr "github.com/orderdocs/orderdocs/internal/errors"
	"github.com/orderdocs/orderdocs/internal/logger"
	"github.com/orderdocs/orderdocs/internal/service"
	"github.com/orderdocs/orderdocs/internal/types"
)

type EmailHandler struct {
	attachmentService service.AttachmentService
	logger            *logger.Logger
}

func NewEmailHandler(attachmentService service.AttachmentService, logger *logger.Logger) *EmailHandler {
	return &EmailHandler{
		attachmentService: attachmentService,
		logger:            logger,
	}
}

// Attachments is the hook the email system calls before sending. The
// response lists file paths to merge into the email's attachment list; it
// is always a 200, possibly with an empty list, so a generation failure
// never blocks the send.
func (h *EmailHandler) Attachments(c *gin.Context) {
	trigger := types.EmailTrigger(c.Param("trigger_id"))
	if trigger == "" {
		c.Error(ierr.NewError("missing email trigger id").
			WithHint("invalid request").
			Mark(ierr.ErrValidation))
		return
	}

	var req dto.EmailAttachmentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Errorw("failed to bind attachment hook payload", "error", err)
		c.Error(ierr.WithError(err).WithHint("invalid request").Mark(ierr.ErrValidation))
		return
	}

	paths := h.attachmentService.Resolve(c.Request.Context(), trigger, req.Ref())

	c.JSON(http.StatusOK, dto.EmailAttachmentsResponse{
		Attachments: paths,
	})
}
