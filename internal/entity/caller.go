package entity

import "github.com/google/uuid"

// Caller is the authenticated identity a request acts on behalf of.
// It is resolved by the auth middleware and passed explicitly to services.
type Caller struct {
	UserId uuid.UUID
}

func NewCaller(userId uuid.UUID) Caller {
	return Caller{UserId: userId}
}

func (c Caller) IsZero() bool {
	return c.UserId == uuid.Nil
}
