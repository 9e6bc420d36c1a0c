package renderer

import (
	"context"
	"encoding/xml"

	ierr "github.com/orderdocs/orderdocs/internal/errors"

	"github.com/orderdocs/orderdocs/internal/domain/company"
	"github.com/orderdocs/orderdocs/internal/domain/document"
)

const ublInvoiceNamespace = "urn:oasis:names:specification:ubl:schema:xsd:Invoice-2"

// Struct field order mirrors the element order UBL 2.1 requires for the
// Invoice document; encoding/xml emits fields in declaration order.
type ublInvoice struct {
	XMLName              xml.Name `xml:"Invoice"`
	Namespace            string   `xml:"xmlns,attr"`
	UBLVersionID         string   `xml:"UBLVersionID"`
	ID                   string   `xml:"ID"`
	IssueDate            string   `xml:"IssueDate"`
	InvoiceTypeCode      string   `xml:"InvoiceTypeCode"`
	DocumentCurrencyCode string   `xml:"DocumentCurrencyCode"`
	SupplierParty        ublParty `xml:"AccountingSupplierParty"`
	CustomerParty        ublParty `xml:"AccountingCustomerParty"`
	InvoiceLines         []ublInvoiceLine `xml:"InvoiceLine"`
	MonetaryTotal        ublMonetaryTotal `xml:"LegalMonetaryTotal"`
}

type ublParty struct {
	Name string `xml:"Party>PartyName>Name"`
}

type ublInvoiceLine struct {
	ID               int    `xml:"ID"`
	InvoicedQuantity int    `xml:"InvoicedQuantity"`
	ItemName         string `xml:"Item>Name"`
}

type ublMonetaryTotal struct {
	TaxExclusiveAmount string `xml:"TaxExclusiveAmount"`
	PayableAmount      string `xml:"PayableAmount"`
}

// UBLRenderer emits a UBL 2.1 commercial invoice (InvoiceTypeCode 380).
// Tax and shipping are not broken out: TaxExclusiveAmount and PayableAmount
// both carry the order total, matching the upstream data model.
type UBLRenderer struct{}

func NewUBLRenderer() *UBLRenderer {
	return &UBLRenderer{}
}

func (r *UBLRenderer) Render(ctx context.Context, snap *document.Snapshot, profile *company.Profile) (string, error) {
	inv := ublInvoice{
		Namespace:            ublInvoiceNamespace,
		UBLVersionID:         "2.1",
		ID:                   snap.OrderNumber,
		IssueDate:            formatDate(snap.OrderDate),
		InvoiceTypeCode:      "380",
		DocumentCurrencyCode: snap.Currency,
		SupplierParty:        ublParty{Name: profile.Name},
		CustomerParty:        ublParty{Name: snap.Billing.FullName()},
		MonetaryTotal: ublMonetaryTotal{
			TaxExclusiveAmount: snap.Total.String(),
			PayableAmount:      snap.Total.String(),
		},
	}

	// Line ids are 1-based and sequential in input order.
	inv.InvoiceLines = make([]ublInvoiceLine, 0, len(snap.Items))
	for i, item := range snap.Items {
		inv.InvoiceLines = append(inv.InvoiceLines, ublInvoiceLine{
			ID:               i + 1,
			InvoicedQuantity: item.Quantity,
			ItemName:         item.Name,
		})
	}

	body, err := xml.MarshalIndent(inv, "", "  ")
	if err != nil {
		return "", ierr.WithError(err).
			WithHint("failed to render UBL invoice").
			Mark(ierr.ErrSystem)
	}

	return xml.Header + string(body) + "\n", nil
}
