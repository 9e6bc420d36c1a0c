package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDocumentKindValidate(t *testing.T) {
	for _, kind := range []DocumentKind{DocumentKindPDFInvoice, DocumentKindUBLInvoice, DocumentKindPackingSlip} {
		assert.NoError(t, kind.Validate())
	}
	assert.Error(t, DocumentKind("").Validate())
	assert.Error(t, DocumentKind("pdf_invoice").Validate())
	assert.Error(t, DocumentKind("RECEIPT").Validate())
}

func TestDocumentKindFileNaming(t *testing.T) {
	assert.Equal(t, "invoice", DocumentKindPDFInvoice.FilePrefix())
	assert.Equal(t, "ubl-invoice", DocumentKindUBLInvoice.FilePrefix())
	assert.Equal(t, "packing-slip", DocumentKindPackingSlip.FilePrefix())

	assert.Equal(t, "pdf", DocumentKindPDFInvoice.Extension())
	assert.Equal(t, "xml", DocumentKindUBLInvoice.Extension())
	assert.Equal(t, "pdf", DocumentKindPackingSlip.Extension())
}

func TestDocumentKindRasterization(t *testing.T) {
	assert.True(t, DocumentKindPDFInvoice.RequiresRasterization())
	assert.True(t, DocumentKindPackingSlip.RequiresRasterization())
	assert.False(t, DocumentKindUBLInvoice.RequiresRasterization())
}

func TestOrderRefResolve(t *testing.T) {
	id, ok := OrderRefFromID(42).Resolve()
	assert.True(t, ok)
	assert.Equal(t, 42, id)

	_, ok = OrderRef{}.Resolve()
	assert.False(t, ok)

	_, ok = OrderRefFromID(0).Resolve()
	assert.False(t, ok)

	id, ok = OrderRefFromHandle(stubHandle(7)).Resolve()
	assert.True(t, ok)
	assert.Equal(t, 7, id)

	_, ok = OrderRefFromHandle(stubHandle(0)).Resolve()
	assert.False(t, ok)
}

type stubHandle int

func (h stubHandle) OrderID() int { return int(h) }
