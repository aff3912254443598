package returns

import "time"

// Reasons is the fixed return-reason enumeration.
var Reasons = []string{
	ReasonDefective,
	ReasonWrongItem,
	ReasonDamagedInTransit,
	ReasonChangedMind,
	ReasonWrongSpecifications,
}

const (
	ReasonDefective           = "Defective"
	ReasonWrongItem           = "Wrong Item"
	ReasonDamagedInTransit    = "Damaged in Transit"
	ReasonChangedMind         = "Customer Changed Mind"
	ReasonWrongSpecifications = "Wrong Specifications"
)

// Resolution actions.
const (
	ActionRefund      = "Refund"
	ActionReplacement = "Replacement"
)

// Processing statuses.
const (
	StatusPending   = "Pending"
	StatusProcessed = "Processed"
)

// ReturnedItem is one customer return.
type ReturnedItem struct {
	ID         string    `json:"id"`
	OrderRef   string    `json:"order_ref"`
	Customer   string    `json:"customer"`
	Date       time.Time `json:"date"`
	Item       string    `json:"item"`
	Quantity   int       `json:"quantity"`
	UnitPrice  float64   `json:"unit_price"`
	TotalValue float64   `json:"total_value"`
	Reason     string    `json:"reason"`
	Status     string    `json:"status"`
	Action     string    `json:"action"`
	Notes      string    `json:"notes,omitempty"`
}
