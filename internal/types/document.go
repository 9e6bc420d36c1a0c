package types

import (
	ierr "github.com/orderdocs/orderdocs/internal/errors"
	"github.com/samber/lo"
)

// DocumentKind identifies one of the generated order documents.
type DocumentKind string

const (
	// DocumentKindPDFInvoice is the customer-facing invoice rendered to PDF
	DocumentKindPDFInvoice DocumentKind = "PDF_INVOICE"
	// DocumentKindUBLInvoice is the UBL 2.1 XML rendition of the invoice
	DocumentKindUBLInvoice DocumentKind = "UBL_INVOICE"
	// DocumentKindPackingSlip is the warehouse packing slip rendered to PDF
	DocumentKindPackingSlip DocumentKind = "PACKING_SLIP"
)

func (k DocumentKind) String() string {
	return string(k)
}

func (k DocumentKind) Validate() error {
	allowed := []DocumentKind{
		DocumentKindPDFInvoice,
		DocumentKindUBLInvoice,
		DocumentKindPackingSlip,
	}
	if !lo.Contains(allowed, k) {
		return ierr.NewError("invalid document kind").
			WithHint("Please provide a valid document kind").
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// FilePrefix returns the filename prefix used by the file store for this kind.
func (k DocumentKind) FilePrefix() string {
	switch k {
	case DocumentKindUBLInvoice:
		return "ubl-invoice"
	case DocumentKindPackingSlip:
		return "packing-slip"
	default:
		return "invoice"
	}
}

// Extension returns the file extension without the leading dot.
func (k DocumentKind) Extension() string {
	if k == DocumentKindUBLInvoice {
		return "xml"
	}
	return "pdf"
}

// RequiresRasterization reports whether the rendered body must be passed
// through the PDF rasterizer before storage. UBL invoices are stored as
// raw XML text.
func (k DocumentKind) RequiresRasterization() bool {
	return k != DocumentKindUBLInvoice
}

func (k DocumentKind) ContentType() string {
	if k == DocumentKindUBLInvoice {
		return "application/xml"
	}
	return "application/pdf"
}
