package dto

import (
	"github.com/orderdocs/orderdocs/internal/types"
	"github.com/orderdocs/orderdocs/internal/validator"
)

// GenerateDocumentRequest is the interactive generation request body.
type GenerateDocumentRequest struct {
	OrderID int                `json:"order_id" validate:"required,gt=0"`
	Kind    types.DocumentKind `json:"kind" validate:"required"`
}

func (r *GenerateDocumentRequest) Validate() error {
	return validator.ValidateRequest(r)
}

// GenerateDocumentResponse is the tagged success envelope returned to the
// admin surface.
type GenerateDocumentResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	DownloadURL string `json:"download_url"`
}
