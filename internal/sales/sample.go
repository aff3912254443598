package sales

import "time"

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SampleCustomers returns the demo customer book with order history, a fresh
// slice per call.
func SampleCustomers() []Customer {
	return []Customer{
		{
			ID: 1, Name: "Raj Automotive", Contact: "Raj Patel",
			Email: "raj@rajautomotive.com", Phone: "+91 9876543210", Location: "Mumbai",
			TotalOrders: 28, TotalSpent: 248000, LastOrder: day(2023, time.December, 15),
			Type: TypeWholesale, Status: StatusActive,
			Orders: []Order{
				{
					OrderID: "SO-2023-456", Date: day(2023, time.December, 15),
					Items: []OrderLine{
						{Name: "Brake Pads", Quantity: 30, UnitPrice: 180},
						{Name: "Air Filter", Quantity: 25, UnitPrice: 250},
						{Name: "Engine Oil Filter", Quantity: 20, UnitPrice: 180},
					},
					Status: "Delivered", Total: 13750,
				},
				{
					OrderID: "SO-2023-423", Date: day(2023, time.December, 1),
					Items: []OrderLine{
						{Name: "Spark Plugs", Quantity: 50, UnitPrice: 120},
						{Name: "Timing Belt", Quantity: 15, UnitPrice: 320},
					},
					Status: "Delivered", Total: 10800,
				},
				{
					OrderID: "SO-2023-398", Date: day(2023, time.November, 15),
					Items: []OrderLine{
						{Name: "Alternator", Quantity: 8, UnitPrice: 450},
						{Name: "Battery", Quantity: 5, UnitPrice: 1800},
					},
					Status: "Delivered", Total: 12600,
				},
			},
		},
		{
			ID: 2, Name: "Sharma Motors", Contact: "Vikram Sharma",
			Email: "info@sharmamotors.com", Phone: "+91 9123456789", Location: "Delhi",
			TotalOrders: 35, TotalSpent: 315000, LastOrder: day(2023, time.December, 10),
			Type: TypeWholesale, Status: StatusActive,
			Orders: []Order{
				{
					OrderID: "SO-2023-451", Date: day(2023, time.December, 10),
					Items: []OrderLine{
						{Name: "Headlight Assembly", Quantity: 10, UnitPrice: 950},
						{Name: "Brake Discs", Quantity: 20, UnitPrice: 290},
					},
					Status: "Delivered", Total: 15300,
				},
				{
					OrderID: "SO-2023-425", Date: day(2023, time.November, 20),
					Items: []OrderLine{
						{Name: "Radiator", Quantity: 5, UnitPrice: 850},
						{Name: "Shock Absorber", Quantity: 12, UnitPrice: 380},
					},
					Status: "Delivered", Total: 8810,
				},
			},
		},
		{
			ID: 3, Name: "Krishna Auto Parts", Contact: "Krishna Iyer",
			Email: "krishna@krishnaauto.com", Phone: "+91 9555123456", Location: "Chennai",
			TotalOrders: 22, TotalSpent: 186000, LastOrder: day(2023, time.December, 7),
			Type: TypeRetail, Status: StatusActive,
			Orders: []Order{
				{
					OrderID: "SO-2023-448", Date: day(2023, time.December, 7),
					Items: []OrderLine{
						{Name: "Brake Pads", Quantity: 20, UnitPrice: 180},
						{Name: "Spark Plugs", Quantity: 40, UnitPrice: 120},
					},
					Status: "Delivered", Total: 8400,
				},
			},
		},
		{
			ID: 4, Name: "Singh Mechanics", Contact: "Harpreet Singh",
			Email: "contact@singhmechs.com", Phone: "+91 9876123450", Location: "Chandigarh",
			TotalOrders: 15, TotalSpent: 93000, LastOrder: day(2023, time.November, 28),
			Type: TypeRetail, Status: StatusInactive,
			Orders: []Order{
				{
					OrderID: "SO-2023-412", Date: day(2023, time.November, 28),
					Items: []OrderLine{
						{Name: "Air Filter", Quantity: 15, UnitPrice: 250},
						{Name: "Engine Oil Filter", Quantity: 15, UnitPrice: 180},
					},
					Status: "Delivered", Total: 6450,
				},
			},
		},
		{
			ID: 5, Name: "Gupta Car Care", Contact: "Rahul Gupta",
			Email: "rahul@guptacarcare.com", Phone: "+91 9898767654", Location: "Kolkata",
			TotalOrders: 18, TotalSpent: 124000, LastOrder: day(2023, time.December, 5),
			Type: TypeRetail, Status: StatusActive,
			Orders: []Order{
				{
					OrderID: "SO-2023-442", Date: day(2023, time.December, 5),
					Items: []OrderLine{
						{Name: "Timing Belt", Quantity: 10, UnitPrice: 320},
						{Name: "Battery", Quantity: 3, UnitPrice: 1800},
					},
					Status: "Delivered", Total: 8600,
				},
			},
		},
	}
}

// SampleInvoices returns the demo invoice book, a fresh slice per call.
// Subtotals carry 18% GST; the stored totals follow subtotal + tax - discount.
func SampleInvoices() []Invoice {
	rajAutoWorks := CustomerInfo{
		Name: "Raj Auto Works", Email: "info@rajautoworks.com", Phone: "+91 98765 43210",
		Address: Address{Street: "123 Automotive Street", City: "Mumbai", State: "Maharashtra", PostalCode: "400001"},
	}
	singhMechanics := CustomerInfo{
		Name: "Singh Mechanics", Email: "contact@singhmechanics.in", Phone: "+91 87654 32109",
		Address: Address{Street: "45 Service Road", City: "Delhi", State: "Delhi", PostalCode: "110001"},
	}
	kumarVehicles := CustomerInfo{
		Name: "Kumar Vehicles", Email: "sales@kumarvehicles.com", Phone: "+91 76543 21098",
		Address: Address{Street: "789 Parts Avenue", City: "Bangalore", State: "Karnataka", PostalCode: "560001"},
	}
	patelCarService := CustomerInfo{
		Name: "Patel Car Service", Email: "service@patelcars.in", Phone: "+91 65432 10987",
		Address: Address{Street: "234 Repair Lane", City: "Ahmedabad", State: "Gujarat", PostalCode: "380001"},
	}
	sharmaMotors := CustomerInfo{
		Name: "Sharma Motors", Email: "info@sharmamotors.com", Phone: "+91 54321 09876",
		Address: Address{Street: "567 Engine Road", City: "Jaipur", State: "Rajasthan", PostalCode: "302001"},
	}
	mehtaAutoParts := CustomerInfo{
		Name: "Mehta Auto Parts", Email: "parts@mehtaauto.com", Phone: "+91 43210 98765",
		Address: Address{Street: "890 Component Street", City: "Chennai", State: "Tamil Nadu", PostalCode: "600001"},
	}

	return []Invoice{
		{
			ID: "INV-1000", Customer: rajAutoWorks,
			Date: day(2023, time.December, 1), DueDate: day(2023, time.December, 16),
			Items: []InvoiceItem{
				{ID: "ITEM-00", Name: "Engine Oil (5L)", Quantity: 2, Price: 2300, Total: 4600},
				{ID: "ITEM-01", Name: "Brake Pads (Front)", Quantity: 3, Price: 1200, Total: 3600},
			},
			Subtotal: 8200, Tax: 1476, Discount: 410, Total: 9266,
			Status: InvoicePaid, PaymentMethod: "UPI",
		},
		{
			ID: "INV-1001", Customer: singhMechanics,
			Date: day(2023, time.December, 3), DueDate: day(2023, time.December, 18),
			Items: []InvoiceItem{
				{ID: "ITEM-10", Name: "Battery (12V)", Quantity: 1, Price: 4500, Total: 4500},
				{ID: "ITEM-11", Name: "Spark Plugs (Set of 4)", Quantity: 2, Price: 800, Total: 1600},
				{ID: "ITEM-12", Name: "Air Filter", Quantity: 4, Price: 350, Total: 1400},
			},
			Subtotal: 7500, Tax: 1350, Discount: 0, Total: 8850,
			Status: InvoicePending,
		},
		{
			ID: "INV-1002", Customer: kumarVehicles,
			Date: day(2023, time.November, 20), DueDate: day(2023, time.December, 5),
			Items: []InvoiceItem{
				{ID: "ITEM-20", Name: "Alternator", Quantity: 1, Price: 6500, Total: 6500},
				{ID: "ITEM-21", Name: "Fan Belt", Quantity: 2, Price: 400, Total: 800},
			},
			Subtotal: 7300, Tax: 1314, Discount: 365, Total: 8249,
			Status: InvoiceOverdue,
		},
		{
			ID: "INV-1003", Customer: patelCarService,
			Date: day(2023, time.December, 8), DueDate: day(2023, time.December, 23),
			Items: []InvoiceItem{
				{ID: "ITEM-30", Name: "Clutch Kit", Quantity: 1, Price: 5500, Total: 5500},
				{ID: "ITEM-31", Name: "Transmission Fluid", Quantity: 2, Price: 950, Total: 1900},
			},
			Subtotal: 7400, Tax: 1332, Discount: 740, Total: 7992,
			Status: InvoicePaid, PaymentMethod: "Net Banking",
		},
		{
			ID: "INV-1004", Customer: sharmaMotors,
			Date: day(2023, time.December, 10), DueDate: day(2023, time.December, 25),
			Items: []InvoiceItem{
				{ID: "ITEM-40", Name: "Radiator", Quantity: 1, Price: 3200, Total: 3200},
				{ID: "ITEM-41", Name: "Coolant (1L)", Quantity: 4, Price: 550, Total: 2200},
				{ID: "ITEM-42", Name: "Thermostat", Quantity: 1, Price: 650, Total: 650},
			},
			Subtotal: 6050, Tax: 1089, Discount: 0, Total: 7139,
			Status: InvoicePending, Notes: "Customer requested express delivery",
		},
		{
			ID: "INV-1005", Customer: mehtaAutoParts,
			Date: day(2023, time.December, 12), DueDate: day(2023, time.December, 27),
			Items: []InvoiceItem{
				{ID: "ITEM-50", Name: "Timing Belt Kit", Quantity: 2, Price: 2800, Total: 5600},
				{ID: "ITEM-51", Name: "Water Pump", Quantity: 1, Price: 1800, Total: 1800},
				{ID: "ITEM-52", Name: "Oxygen Sensor", Quantity: 1, Price: 1700, Total: 1700},
			},
			Subtotal: 9100, Tax: 1638, Discount: 455, Total: 10283,
			Status: InvoicePaid, PaymentMethod: "Cheque",
		},
	}
}
