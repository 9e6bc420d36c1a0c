package settings

import (
	"github.com/samber/lo"

	"github.com/orderdocs/orderdocs/internal/types"
)

// Setting keys as persisted in the flat key-value settings store.
const (
	KeyCompanyName          = "company_name"
	KeyCompanyAddress       = "company_address"
	KeyCompanyEmail         = "company_email"
	KeyCompanyPhone         = "company_phone"
	KeyCompanyLogo          = "company_logo"
	KeyPDFEnabled           = "pdf_enabled"
	KeyUBLEnabled           = "ubl_enabled"
	KeyPackingSlipsEnabled  = "packing_slips_enabled"
	KeyAttachInvoicesTo     = "attach_invoices_to"
	KeyAttachPackingSlipsTo = "attach_packing_slips_to"
)

// Settings is the typed view of the document settings. Repositories apply
// defaults for missing keys: document kinds default to enabled, attach sets
// to empty.
type Settings struct {
	CompanyName    string
	CompanyAddress string
	CompanyEmail   string
	CompanyPhone   string
	CompanyLogo    string

	PDFEnabled          bool
	UBLEnabled          bool
	PackingSlipsEnabled bool

	AttachInvoicesTo     []types.EmailTrigger
	AttachPackingSlipsTo []types.EmailTrigger
}

// DefaultSettings returns the settings applied when nothing has been
// persisted yet.
func DefaultSettings() *Settings {
	return &Settings{
		PDFEnabled:          true,
		UBLEnabled:          true,
		PackingSlipsEnabled: true,
	}
}

// Enabled reports whether generation of the given document kind is switched
// on.
func (s *Settings) Enabled(kind types.DocumentKind) bool {
	switch kind {
	case types.DocumentKindPDFInvoice:
		return s.PDFEnabled
	case types.DocumentKindUBLInvoice:
		return s.UBLEnabled
	case types.DocumentKindPackingSlip:
		return s.PackingSlipsEnabled
	default:
		return false
	}
}

// AttachesTo reports whether documents of the given kind should be attached
// to emails of the given trigger. Only PDF invoices and packing slips carry
// attach sets; UBL invoices are never auto-attached.
func (s *Settings) AttachesTo(kind types.DocumentKind, trigger types.EmailTrigger) bool {
	if !s.Enabled(kind) {
		return false
	}
	switch kind {
	case types.DocumentKindPDFInvoice:
		return lo.Contains(s.AttachInvoicesTo, trigger)
	case types.DocumentKindPackingSlip:
		return lo.Contains(s.AttachPackingSlipsTo, trigger)
	default:
		return false
	}
}
