package common

// gig statuses
const (
	GigOpen     = "open"
	GigAssigned = "assigned"
)

// bid statuses
const (
	BidPending  = "pending"
	BidHired    = "hired"
	BidRejected = "rejected"
)
