package types

// EmailTrigger identifies an outgoing transactional email type. Attachment
// policy keys off these ids.
type EmailTrigger string

const (
	EmailTriggerNewOrder        EmailTrigger = "new_order"
	EmailTriggerProcessingOrder EmailTrigger = "customer_processing_order"
	EmailTriggerCompletedOrder  EmailTrigger = "customer_completed_order"
	EmailTriggerRefundedOrder   EmailTrigger = "customer_refunded_order"
	EmailTriggerCustomerInvoice EmailTrigger = "customer_invoice"
	EmailTriggerCustomerNote    EmailTrigger = "customer_note"
	// EmailTriggerShippedOrder fires when an order transitions to the shipped
	// status and usually carries tracking information.
	EmailTriggerShippedOrder EmailTrigger = "customer_shipped_order"
)

func (t EmailTrigger) String() string {
	return string(t)
}

// KnownEmailTriggers lists the trigger ids the attachment settings UI offers.
func KnownEmailTriggers() []EmailTrigger {
	return []EmailTrigger{
		EmailTriggerNewOrder,
		EmailTriggerProcessingOrder,
		EmailTriggerCompletedOrder,
		EmailTriggerRefundedOrder,
		EmailTriggerCustomerInvoice,
		EmailTriggerCustomerNote,
		EmailTriggerShippedOrder,
	}
}
