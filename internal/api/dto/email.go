package dto

import (
	"github.com/orderdocs/orderdocs/internal/types"
)

// OrderPayload is an order object embedded in an email hook payload. Only
// the id is read; the rest of the object is the caller's business.
type OrderPayload struct {
	ID int `json:"id"`
}

func (p *OrderPayload) OrderID() int {
	return p.ID
}

// EmailAttachmentsRequest is the attachment hook payload. Email systems
// identify the order in one of two shapes: a bare numeric id or a wrapped
// order object. Both normalize to an OrderRef.
type EmailAttachmentsRequest struct {
	OrderID int           `json:"order_id,omitempty"`
	Order   *OrderPayload `json:"order,omitempty"`
}

func (r *EmailAttachmentsRequest) Ref() types.OrderRef {
	if r.OrderID > 0 {
		return types.OrderRefFromID(r.OrderID)
	}
	if r.Order != nil {
		return types.OrderRefFromHandle(r.Order)
	}
	return types.OrderRef{}
}

// EmailAttachmentsResponse carries the file paths to merge into the
// outgoing email's attachment list.
type EmailAttachmentsResponse struct {
	Attachments []string `json:"attachments"`
}
