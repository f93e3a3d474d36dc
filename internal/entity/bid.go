package entity

import (
	"github.com/google/uuid"
)

type Bid struct {
	Id           uuid.UUID `json:"id" db:"id"`
	GigId        uuid.UUID `json:"gigId" db:"gig_id"`
	FreelancerId uuid.UUID `json:"freelancerId" db:"freelancer_id"`
	Message      string    `json:"message" db:"message"`
	Status       string    `json:"status" db:"status"`
	CreatedAt    string    `json:"createdAt" db:"created_at"`
	UpdatedAt    string    `json:"updatedAt" db:"updated_at"`

	Freelancer *UserProjection `json:"freelancer,omitempty" db:"-"`
}

// service + repo input model
type CreateBidInput struct {
	GigId        uuid.UUID // given
	FreelancerId uuid.UUID // caller
	Message      string    // given
	// Status is always "pending" on creation
}

// controller model
type BidOutputModel struct {
	Id           string          `json:"id"`
	GigId        string          `json:"gigId"`
	FreelancerId string          `json:"freelancerId"`
	Freelancer   *UserProjection `json:"freelancer,omitempty"`
	Message      string          `json:"message"`
	Status       string          `json:"status"`
	CreatedAt    string          `json:"createdAt"`
	UpdatedAt    string          `json:"updatedAt"`
}
