package procurement

import "time"

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dayPtr(y int, m time.Month, d int) *time.Time {
	t := day(y, m, d)
	return &t
}

// SampleOrders returns the demo purchase-order dataset. Callers get a fresh
// slice on every call so a report run can never leak mutations into the next.
func SampleOrders() []PurchaseOrder {
	return []PurchaseOrder{
		{
			ID: "PO-2023-001", Supplier: "Auto Parts Inc.", Date: day(2023, time.October, 15),
			Category: "Engine Parts",
			Items: []LineItem{
				{Name: "Air Filter", Quantity: 25, Received: 25, UnitPrice: 250},
				{Name: "Spark Plugs", Quantity: 50, Received: 50, UnitPrice: 120},
			},
			Total: 12500, Status: StatusCompleted, PaymentStatus: PaymentPaid,
		},
		{
			ID: "PO-2023-002", Supplier: "Brake Systems Ltd.", Date: day(2023, time.November, 2),
			Category: "Braking Systems",
			Items: []LineItem{
				{Name: "Brake Pads", Quantity: 30, Received: 30, UnitPrice: 180},
				{Name: "Brake Discs", Quantity: 15, Received: 15, UnitPrice: 290},
			},
			Total: 8750, Status: StatusApproved, PaymentStatus: PaymentPending,
		},
		{
			ID: "PO-2023-003", Supplier: "Engine Components Co.", Date: day(2023, time.November, 10),
			DueDate: dayPtr(2023, time.November, 25), Category: "Engine Parts",
			Items: []LineItem{
				{Name: "Timing Belt", Quantity: 20, Received: 0, UnitPrice: 320},
				{Name: "Engine Oil Filter", Quantity: 40, Received: 0, UnitPrice: 180},
			},
			Total: 15200, Status: StatusOverdue, PaymentStatus: PaymentUnpaid, DaysLate: 15,
		},
		{
			ID: "PO-2023-004", Supplier: "Electrical Parts Suppliers", Date: day(2023, time.November, 18),
			Category: "Electrical",
			Items: []LineItem{
				{Name: "Alternator", Quantity: 10, Received: 10, UnitPrice: 450},
				{Name: "Battery", Quantity: 10, Received: 10, UnitPrice: 1800},
			},
			Total: 6300, Status: StatusCompleted, PaymentStatus: PaymentPaid,
		},
		{
			ID: "PO-2023-005", Supplier: "Filter Manufacturers", Date: day(2023, time.November, 25),
			Category: "Filters",
			Items: []LineItem{
				{Name: "Air Filter", Quantity: 35, Received: 35, UnitPrice: 120},
			},
			Total: 4200, Status: StatusApproved, PaymentStatus: PaymentPending,
		},
		{
			ID: "PO-2023-006", Supplier: "Auto Lighting Solutions", Date: day(2023, time.December, 1),
			DueDate: dayPtr(2023, time.December, 15), Category: "Electrical",
			Items: []LineItem{
				{Name: "Headlight Assembly", Quantity: 18, Received: 0, UnitPrice: 540},
			},
			Total: 9800, Status: StatusOverdue, PaymentStatus: PaymentUnpaid, DaysLate: 5,
		},
		{
			ID: "PO-2023-007", Supplier: "Glass & Mirrors Co.", Date: day(2023, time.December, 5),
			DueDate: dayPtr(2023, time.December, 20), Category: "Body Parts",
			Items: []LineItem{
				{Name: "Windshield", Quantity: 10, Received: 0, UnitPrice: 750},
			},
			Total: 7500, Status: StatusPending, PaymentStatus: PaymentUnpaid,
		},
		{
			ID: "PO-2023-008", Supplier: "Brake Systems Ltd.", Date: day(2023, time.December, 7),
			DueDate: dayPtr(2023, time.December, 22), Category: "Braking Systems",
			Items: []LineItem{
				{Name: "Brake Fluid", Quantity: 25, Received: 10, UnitPrice: 512},
			},
			Total: 12800, Status: StatusPartial, PaymentStatus: PaymentPending,
		},
		{
			ID: "PO-2023-009", Supplier: "Auto Parts Inc.", Date: day(2023, time.December, 10),
			DueDate: dayPtr(2023, time.December, 25), Category: "Engine Parts",
			Items: []LineItem{
				{Name: "Fan Belt", Quantity: 15, Received: 8, UnitPrice: 433},
			},
			Total: 6500, Status: StatusPartial, PaymentStatus: PaymentPending,
		},
	}
}
