package expenses

import "time"

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SampleExpenses returns the demo expense ledger, a fresh slice per call.
// Reports always rebuild their working copy from here; filtered views are
// replaced wholesale, never patched.
func SampleExpenses() []Expense {
	return []Expense{
		{
			ID: "EXP-001", Date: day(2023, time.October, 10), Vendor: "AutoParts Inc.",
			Category: "Inventory", Amount: 2850.00, PaymentStatus: PaymentPaid,
			PaymentMethod: "Credit Card", Notes: "Quarterly stock replenishment",
		},
		{
			ID: "EXP-002", Date: day(2023, time.October, 15), Vendor: "City Electric",
			Category: "Utilities", Amount: 450.75, PaymentStatus: PaymentPaid,
			PaymentMethod: "Bank Transfer", Notes: "Monthly electricity bill",
		},
		{
			ID: "EXP-003", Date: day(2023, time.October, 20), Vendor: "Premium Auto Components",
			Category: "Inventory", Amount: 1250.00, PaymentStatus: PaymentPending,
			PaymentMethod: "Net 30", Notes: "Special order parts",
		},
		{
			ID: "EXP-004", Date: day(2023, time.October, 22), Vendor: "Office Supplies Co.",
			Category: "Office", Amount: 185.45, PaymentStatus: PaymentPaid,
			PaymentMethod: "Credit Card", Notes: "Printer ink and paper",
		},
		{
			ID: "EXP-005", Date: day(2023, time.October, 25), Vendor: "Maintenance Services",
			Category: "Maintenance", Amount: 550.00, PaymentStatus: PaymentPaid,
			PaymentMethod: "Cash", Notes: "Warehouse cleaning",
		},
		{
			ID: "EXP-006", Date: day(2023, time.October, 28), Vendor: "Logistics Partners",
			Category: "Shipping", Amount: 780.50, PaymentStatus: PaymentPending,
			PaymentMethod: "Net 15", Notes: "Outbound shipping costs",
		},
		{
			ID: "EXP-007", Date: day(2023, time.November, 1), Vendor: "City Water",
			Category: "Utilities", Amount: 125.00, PaymentStatus: PaymentPaid,
			PaymentMethod: "Bank Transfer", Notes: "Monthly water bill",
		},
		{
			ID: "EXP-008", Date: day(2023, time.November, 3), Vendor: "Insurance Provider",
			Category: "Insurance", Amount: 425.00, PaymentStatus: PaymentPaid,
			PaymentMethod: "Bank Transfer", Notes: "Monthly insurance premium",
		},
		{
			ID: "EXP-009", Date: day(2023, time.November, 5), Vendor: "Marketing Agency",
			Category: "Marketing", Amount: 1200.00, PaymentStatus: PaymentPending,
			PaymentMethod: "Net 30", Notes: "Q4 marketing campaign",
		},
		{
			ID: "EXP-010", Date: day(2023, time.November, 10), Vendor: "Elite Auto Parts",
			Category: "Inventory", Amount: 3500.00, PaymentStatus: PaymentPending,
			PaymentMethod: "Net 30", Notes: "Special order premium parts",
		},
	}
}
