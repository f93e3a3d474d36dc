package service

import (
	"context"
	"errors"
	"fmt"
	"gigflow-api/internal/entity"
	"gigflow-api/internal/repo"
	"gigflow-api/internal/repo/repo_errors"
	"net/mail"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 6

type UserService struct {
	userRepo repo.User
	tokens   Auth
	hashCost int
}

func NewUserService(repos *repo.Repositories, tokens Auth) *UserService {
	return &UserService{
		userRepo: repos.User,
		tokens:   tokens,
		hashCost: bcrypt.DefaultCost,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *UserService) Register(ctx context.Context, name, email, password string) (*entity.UserProjection, error) {
	name, email = strings.TrimSpace(name), normalizeEmail(email)
	if name == "" {
		return nil, validationError("Name is required")
	}
	if email == "" {
		return nil, validationError("Email is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, validationError("Email is not valid")
	}
	if len(password) < minPasswordLength {
		return nil, validationError("Password must be at least 6 characters long")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	id, err := s.userRepo.CreateUser(ctx, &entity.CreateUserInput{Name: name, Email: email, PasswordHash: string(hash)})
	if err != nil {
		if errors.Is(err, repo_errors.ErrConflict) {
			return nil, ErrEmailAlreadyExists
		}

		return nil, storeError("create user", err)
	}

	return &entity.UserProjection{Id: id.String(), Name: name, Email: email}, nil
}

// Login returns the user and a freshly issued token.
func (s *UserService) Login(ctx context.Context, email, password string) (*entity.UserProjection, string, error) {
	email = normalizeEmail(email)
	if email == "" {
		return nil, "", validationError("Email is required")
	}
	if len(password) < minPasswordLength {
		return nil, "", validationError("Password must be at least 6 characters long")
	}

	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}

		return nil, "", storeError("get user by email", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.IssueToken(user.Id)
	if err != nil {
		return nil, "", err
	}

	return mapUser(user), token, nil
}

func (s *UserService) Me(ctx context.Context, caller entity.Caller) (*entity.UserProjection, error) {
	if caller.IsZero() {
		return nil, ErrAuthenticationRequired
	}

	user, err := s.userRepo.GetUserById(ctx, caller.UserId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrInvalidToken
		}

		return nil, storeError("get user", err)
	}

	return mapUser(user), nil
}
