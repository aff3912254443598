package procurement

import "time"

// Order statuses. The pages that fed this data used slightly different label
// sets; the union is kept and "Partially Fulfilled" is normalized to Partial.
const (
	StatusPending   = "Pending"
	StatusApproved  = "Approved"
	StatusCompleted = "Completed"
	StatusPartial   = "Partial"
	StatusOverdue   = "Overdue"
)

// Payment statuses.
const (
	PaymentPaid    = "Paid"
	PaymentUnpaid  = "Unpaid"
	PaymentPending = "Pending"
)

// LineItem is one ordered part on a purchase order.
type LineItem struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Received  int     `json:"received"`
	UnitPrice float64 `json:"unit_price"`
}

// PurchaseOrder is a supplier order. Total is stored as supplied and is not
// reconciled against the line items; the source data carries both
// independently.
type PurchaseOrder struct {
	ID            string     `json:"id"`
	Supplier      string     `json:"supplier"`
	Date          time.Time  `json:"date"`
	DueDate       *time.Time `json:"due_date,omitempty"`
	Category      string     `json:"category,omitempty"`
	Items         []LineItem `json:"items"`
	Total         float64    `json:"total"`
	Status        string     `json:"status"`
	PaymentStatus string     `json:"payment_status"`
	DaysLate      int        `json:"days_late,omitempty"`
}

// ItemCount sums ordered quantities across line items.
func (o PurchaseOrder) ItemCount() int {
	var n int
	for _, item := range o.Items {
		n += item.Quantity
	}
	return n
}

// ReceivedCount sums received quantities across line items.
func (o PurchaseOrder) ReceivedCount() int {
	var n int
	for _, item := range o.Items {
		n += item.Received
	}
	return n
}
