package renderer

import (
	"context"
	"encoding/xml"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orderdocs/orderdocs/internal/domain/document"
)

// parsedInvoice mirrors the emitted structure for round-trip checks.
type parsedInvoice struct {
	UBLVersionID         string `xml:"UBLVersionID"`
	ID                   string `xml:"ID"`
	IssueDate            string `xml:"IssueDate"`
	InvoiceTypeCode      string `xml:"InvoiceTypeCode"`
	DocumentCurrencyCode string `xml:"DocumentCurrencyCode"`
	SupplierName         string `xml:"AccountingSupplierParty>Party>PartyName>Name"`
	CustomerName         string `xml:"AccountingCustomerParty>Party>PartyName>Name"`
	Lines                []struct {
		ID               int    `xml:"ID"`
		InvoicedQuantity int    `xml:"InvoicedQuantity"`
		ItemName         string `xml:"Item>Name"`
	} `xml:"InvoiceLine"`
	TaxExclusiveAmount string `xml:"LegalMonetaryTotal>TaxExclusiveAmount"`
	PayableAmount      string `xml:"LegalMonetaryTotal>PayableAmount"`
}

func TestUBLRendererRoundTrips(t *testing.T) {
	r := NewUBLRenderer()

	out, err := r.Render(context.Background(), widgetSnapshot(), testProfile())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.Contains(t, out, `xmlns="urn:oasis:names:specification:ubl:schema:xsd:Invoice-2"`)
	assert.Contains(t, out, "<InvoicedQuantity>3</InvoicedQuantity>")
	assert.Contains(t, out, "<PayableAmount>29.97</PayableAmount>")

	var parsed parsedInvoice
	require.NoError(t, xml.Unmarshal([]byte(out), &parsed))

	assert.Equal(t, "2.1", parsed.UBLVersionID)
	assert.Equal(t, "1042", parsed.ID)
	assert.Equal(t, "2026-03-14", parsed.IssueDate)
	assert.Equal(t, "380", parsed.InvoiceTypeCode)
	assert.Equal(t, "USD", parsed.DocumentCurrencyCode)
	assert.Equal(t, "Acme Outfitters", parsed.SupplierName)
	assert.Equal(t, "Jamie Rivera", parsed.CustomerName)
	assert.Equal(t, "29.97", parsed.TaxExclusiveAmount)
	assert.Equal(t, "29.97", parsed.PayableAmount)
}

func TestUBLRendererLineOrderAndIDs(t *testing.T) {
	r := NewUBLRenderer()

	snap := widgetSnapshot()
	snap.Items = []document.LineItem{
		{Name: "Widget", Quantity: 3, Total: decimal.RequireFromString("29.97")},
		{Name: "Gadget", Quantity: 1, Total: decimal.RequireFromString("5.00")},
		{Name: "Gizmo", Quantity: 2, Total: decimal.RequireFromString("8.00")},
	}

	out, err := r.Render(context.Background(), snap, testProfile())
	require.NoError(t, err)

	var parsed parsedInvoice
	require.NoError(t, xml.Unmarshal([]byte(out), &parsed))

	require.Len(t, parsed.Lines, 3)
	for i, line := range parsed.Lines {
		assert.Equal(t, i+1, line.ID)
		assert.Equal(t, snap.Items[i].Name, line.ItemName)
		assert.Equal(t, snap.Items[i].Quantity, line.InvoicedQuantity)
	}
}

func TestUBLRendererEscapesMarkup(t *testing.T) {
	r := NewUBLRenderer()

	snap := widgetSnapshot()
	snap.Items[0].Name = "Widget & Co <Deluxe>"

	out, err := r.Render(context.Background(), snap, testProfile())
	require.NoError(t, err)

	var parsed parsedInvoice
	require.NoError(t, xml.Unmarshal([]byte(out), &parsed))
	require.Len(t, parsed.Lines, 1)
	assert.Equal(t, "Widget & Co <Deluxe>", parsed.Lines[0].ItemName)
}
