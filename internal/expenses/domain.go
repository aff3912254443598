package expenses

import "time"

// Categories is the fixed expense category enumeration. Anything a form
// submits outside this list falls back to Other.
var Categories = []string{
	"Inventory",
	"Utilities",
	"Office",
	"Maintenance",
	"Shipping",
	"Insurance",
	"Marketing",
	"Travel",
	"Other",
}

// Payment statuses.
const (
	PaymentPaid    = "Paid"
	PaymentPending = "Pending"
)

// Expense is one outgoing payment.
type Expense struct {
	ID            string    `json:"id"`
	Date          time.Time `json:"date"`
	Vendor        string    `json:"vendor"`
	Category      string    `json:"category"`
	Amount        float64   `json:"amount"`
	PaymentStatus string    `json:"payment_status"`
	PaymentMethod string    `json:"payment_method"`
	ReceiptURL    string    `json:"receipt_url,omitempty"`
	Notes         string    `json:"notes,omitempty"`
}

// NormalizeCategory maps free input onto the fixed enumeration.
func NormalizeCategory(category string) string {
	for _, c := range Categories {
		if c == category {
			return c
		}
	}
	return "Other"
}
