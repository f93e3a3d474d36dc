package service

import (
	"context"
	"fmt"
	"gigflow-api/internal/entity"
	"gigflow-api/internal/repo"
	"math"
	"strings"
)

// MaxBudget is the first budget the store can no longer hold.
const MaxBudget = 1e12

type GigService struct {
	gigRepo repo.Gig
}

func NewGigService(repos *repo.Repositories) *GigService {
	return &GigService{
		gigRepo: repos.Gig,
	}
}

func (s *GigService) CreateGig(ctx context.Context, caller entity.Caller, input *entity.CreateGigInput) (*entity.GigOutputModel, error) {
	if caller.IsZero() {
		return nil, ErrAuthenticationRequired
	}

	input.Title = strings.TrimSpace(input.Title)
	input.Description = strings.TrimSpace(input.Description)
	if input.Title == "" || input.Description == "" {
		return nil, validationError("All fields are required")
	}
	if input.Budget < 0 || math.IsNaN(input.Budget) || math.IsInf(input.Budget, 0) {
		return nil, validationError("Budget must be a positive number")
	}
	// budgets are stored in cents
	input.Budget = math.Round(input.Budget*100) / 100
	if input.Budget >= MaxBudget {
		return nil, validationError(fmt.Sprintf("Budget must be less than %.0f", MaxBudget))
	}

	input.OwnerId = caller.UserId
	id, err := s.gigRepo.CreateGig(ctx, input)
	if err != nil {
		return nil, storeError("create gig", err)
	}

	gig, err := s.gigRepo.GetGigById(ctx, id)
	if err != nil {
		return nil, storeError("get created gig", err)
	}

	return mapGig(gig), nil
}

// ListOpenGigs never caches: every call reads committed state.
func (s *GigService) ListOpenGigs(ctx context.Context, titleFilter string) ([]entity.GigOutputModel, error) {
	gigs, err := s.gigRepo.GetOpenGigs(ctx, strings.TrimSpace(titleFilter))
	if err != nil {
		return nil, storeError("list open gigs", err)
	}

	return mapGigs(gigs), nil
}
