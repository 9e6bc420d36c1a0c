package renderer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackingSlipRenderer(t *testing.T) {
	r := NewPackingSlipRenderer()

	snap := widgetSnapshot()
	snap.Shipping.Company = "Rivera Imports"
	snap.CustomerNote = "Leave at the back door"

	html, err := r.Render(context.Background(), snap, testProfile())
	require.NoError(t, err)

	assert.Contains(t, html, "Packing Slip")
	assert.Contains(t, html, "Ship To:")
	assert.Contains(t, html, "Rivera Imports")
	assert.Contains(t, html, "Ordered Qty")
	// blank column for manual fulfillment checking
	assert.Contains(t, html, "Packed Qty")
	assert.Contains(t, html, "_______")
	assert.Contains(t, html, "Customer Notes:")
	assert.Contains(t, html, "Leave at the back door")
	// packing slips carry no prices
	assert.NotContains(t, html, "USD")
}

func TestPackingSlipRendererOmitsEmptyCompanyLine(t *testing.T) {
	r := NewPackingSlipRenderer()

	snap := widgetSnapshot()
	snap.Shipping.Company = ""

	html, err := r.Render(context.Background(), snap, testProfile())
	require.NoError(t, err)

	assert.Contains(t, html, "Jamie Rivera")
	assert.NotContains(t, html, "Rivera Imports")
}

func TestPackingSlipRendererOmitsEmptyNotes(t *testing.T) {
	r := NewPackingSlipRenderer()

	snap := widgetSnapshot()
	snap.CustomerNote = ""

	html, err := r.Render(context.Background(), snap, testProfile())
	require.NoError(t, err)

	assert.NotContains(t, html, "Customer Notes:")
}
