package order

// Status represents the fulfillment state of an order. It is derived from
// the fulfillment timestamps rather than stored, so state and timestamps
// cannot disagree.
//
// State transitions:
//
//	Pending ──> InProcess ──> Sent ──> Delivered
//
// Each transition writes one timestamp and is valid from exactly one state;
// out-of-order and re-entrant transitions are rejected by the aggregate.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status: the order has been placed but the
	// restaurant has not started preparing it.
	Pending

	// InProcess indicates the restaurant has started preparing the order.
	InProcess

	// Sent indicates the order has left the restaurant.
	Sent

	// Delivered indicates the order has reached the customer.
	// This is a final state with no further transitions allowed.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		InProcess: "in process",
		Sent:      "sent",
		Delivered: "delivered",
	}
}

// String returns the lower-case name of the status, matching the values
// accepted by the listing filters. Implements fmt.Stringer and is safe on
// any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
