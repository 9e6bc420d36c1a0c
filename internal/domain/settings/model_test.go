package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/orderdocs/orderdocs/internal/types"
)

func TestDefaultSettingsEnableAllKinds(t *testing.T) {
	st := DefaultSettings()
	assert.True(t, st.Enabled(types.DocumentKindPDFInvoice))
	assert.True(t, st.Enabled(types.DocumentKindUBLInvoice))
	assert.True(t, st.Enabled(types.DocumentKindPackingSlip))
	assert.False(t, st.Enabled(types.DocumentKind("RECEIPT")))
}

func TestAttachesToRequiresBothEnabledAndListed(t *testing.T) {
	st := DefaultSettings()
	st.AttachInvoicesTo = []types.EmailTrigger{types.EmailTriggerCompletedOrder}

	assert.True(t, st.AttachesTo(types.DocumentKindPDFInvoice, types.EmailTriggerCompletedOrder))
	assert.False(t, st.AttachesTo(types.DocumentKindPDFInvoice, types.EmailTriggerNewOrder))
	assert.False(t, st.AttachesTo(types.DocumentKindPackingSlip, types.EmailTriggerCompletedOrder))

	st.PDFEnabled = false
	assert.False(t, st.AttachesTo(types.DocumentKindPDFInvoice, types.EmailTriggerCompletedOrder))
}

func TestUBLInvoicesNeverAttach(t *testing.T) {
	st := DefaultSettings()
	for _, trigger := range types.KnownEmailTriggers() {
		assert.False(t, st.AttachesTo(types.DocumentKindUBLInvoice, trigger))
	}
}
