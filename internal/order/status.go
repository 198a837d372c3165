package order

// Status follows the kitchen's order lifecycle as reported by the
// remote order service.
type Status string

const (
	StatusPending    Status = "pending"
	StatusApproved   Status = "approved"
	StatusCooking    Status = "cooking"
	StatusReady      Status = "ready"
	StatusInDelivery Status = "in-delivery"
	StatusCompleted  Status = "completed"
	StatusRejected   Status = "rejected"
)

var transitions = map[Status][]Status{
	StatusPending:    {StatusApproved, StatusRejected},
	StatusApproved:   {StatusCooking},
	StatusCooking:    {StatusReady},
	StatusReady:      {StatusInDelivery},
	StatusInDelivery: {StatusCompleted},
}

// ValidTransition reports whether an order may move from one status to
// the next. Terminal statuses (completed, rejected) allow nothing.
func ValidTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// LocalView collapses the kitchen statuses into the three-value view
// the local history screen shows.
func LocalView(s Status) string {
	switch s {
	case StatusCompleted:
		return "completed"
	case StatusRejected:
		return "cancelled"
	default:
		return "pending"
	}
}
