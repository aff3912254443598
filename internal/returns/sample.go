package returns

import "time"

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SampleReturns returns the demo returns dataset, a fresh slice per call.
func SampleReturns() []ReturnedItem {
	return []ReturnedItem{
		{
			ID: "RET-2023-001", OrderRef: "SO-2023-432", Customer: "Raj Automotive",
			Date: day(2023, time.December, 14), Item: "Brake Pads", Quantity: 5,
			UnitPrice: 180, TotalValue: 900, Reason: ReasonDefective,
			Status: StatusProcessed, Action: ActionRefund,
			Notes: "Customer received damaged items. Full refund processed.",
		},
		{
			ID: "RET-2023-002", OrderRef: "SO-2023-445", Customer: "Sharma Motors",
			Date: day(2023, time.December, 10), Item: "Headlight Assembly", Quantity: 2,
			UnitPrice: 950, TotalValue: 1900, Reason: ReasonWrongItem,
			Status: StatusProcessed, Action: ActionReplacement,
			Notes: "Wrong model sent. Replacement dispatched on 2023-12-12.",
		},
		{
			ID: "RET-2023-003", OrderRef: "SO-2023-448", Customer: "Krishna Auto Parts",
			Date: day(2023, time.December, 9), Item: "Spark Plugs", Quantity: 10,
			UnitPrice: 120, TotalValue: 1200, Reason: ReasonDefective,
			Status: StatusProcessed, Action: ActionRefund,
			Notes: "Items did not match quality standards. Refunded in full.",
		},
		{
			ID: "RET-2023-004", OrderRef: "SO-2023-455", Customer: "Gupta Car Care",
			Date: day(2023, time.December, 16), Item: "Timing Belt", Quantity: 3,
			UnitPrice: 320, TotalValue: 960, Reason: ReasonChangedMind,
			Status: StatusPending, Action: ActionRefund,
			Notes: "Customer requested return due to ordering error. Awaiting receipt of returned items.",
		},
		{
			ID: "RET-2023-005", OrderRef: "SO-2023-449", Customer: "Singh Mechanics",
			Date: day(2023, time.December, 8), Item: "Air Filter", Quantity: 8,
			UnitPrice: 250, TotalValue: 2000, Reason: ReasonDamagedInTransit,
			Status: StatusProcessed, Action: ActionReplacement,
			Notes: "Package was damaged during shipping. Replacement sent on 2023-12-11.",
		},
		{
			ID: "RET-2023-006", OrderRef: "SO-2023-457", Customer: "Raj Automotive",
			Date: day(2023, time.December, 17), Item: "Alternator", Quantity: 1,
			UnitPrice: 450, TotalValue: 450, Reason: ReasonWrongSpecifications,
			Status: StatusPending, Action: ActionReplacement,
			Notes: "Item doesn't match vehicle specifications. Awaiting return.",
		},
	}
}
