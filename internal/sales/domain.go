package sales

import "time"

// Customer types.
const (
	TypeWholesale = "Wholesale"
	TypeRetail    = "Retail"
)

// Customer statuses.
const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

// Invoice statuses.
const (
	InvoicePaid    = "paid"
	InvoicePending = "pending"
	InvoiceOverdue = "overdue"
)

// OrderLine is one part on a sales order.
type OrderLine struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// Order is one entry in a customer's order history.
type Order struct {
	OrderID string      `json:"order_id"`
	Date    time.Time   `json:"date"`
	Items   []OrderLine `json:"items"`
	Status  string      `json:"status"`
	Total   float64     `json:"total"`
}

// Customer is a buying account. TotalOrders and TotalSpent are supplied as
// stored aggregates; they are not derived from Orders and the two disagree in
// the sample data. Reports expose both figures side by side.
type Customer struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Contact     string    `json:"contact"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Location    string    `json:"location"`
	TotalOrders int       `json:"total_orders"`
	TotalSpent  float64   `json:"total_spent"`
	LastOrder   time.Time `json:"last_order"`
	Type        string    `json:"type"`
	Status      string    `json:"status"`
	Orders      []Order   `json:"orders,omitempty"`
}

// DerivedOrders counts the order-history entries actually on file.
func (c Customer) DerivedOrders() int {
	return len(c.Orders)
}

// DerivedSpent sums the order-history totals actually on file.
func (c Customer) DerivedSpent() float64 {
	var sum float64
	for _, o := range c.Orders {
		sum += o.Total
	}
	return sum
}

// InvoiceItem is one billed line.
type InvoiceItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Total    float64 `json:"total"`
}

// Address is a billing address.
type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
}

// CustomerInfo is the bill-to block on an invoice.
type CustomerInfo struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   string  `json:"phone"`
	Address Address `json:"address"`
}

// Invoice is a billed sales document.
type Invoice struct {
	ID            string        `json:"id"`
	Customer      CustomerInfo  `json:"customer"`
	Date          time.Time     `json:"date"`
	DueDate       time.Time     `json:"due_date"`
	Items         []InvoiceItem `json:"items"`
	Subtotal      float64       `json:"subtotal"`
	Tax           float64       `json:"tax"`
	Discount      float64       `json:"discount"`
	Total         float64       `json:"total"`
	Status        string        `json:"status"`
	PaymentMethod string        `json:"payment_method,omitempty"`
	Notes         string        `json:"notes,omitempty"`
}
