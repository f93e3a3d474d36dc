package entity

import "github.com/google/uuid"

type User struct {
	Id           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    string
	UpdatedAt    string
}

type CreateUserInput struct {
	Name         string
	Email        string
	PasswordHash string
}

// UserProjection is what other users may see about an account.
type UserProjection struct {
	Id    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
