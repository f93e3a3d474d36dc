package service

import (
	"context"
	"gigflow-api/internal/entity"
	"gigflow-api/internal/repo"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

type Diagnostics interface {
	Ping(ctx context.Context) error
}

type Auth interface {
	IssueToken(userId uuid.UUID) (string, error)
	ResolveCaller(token string) (entity.Caller, error)
}

type User interface {
	Register(ctx context.Context, name, email, password string) (*entity.UserProjection, error)
	Login(ctx context.Context, email, password string) (*entity.UserProjection, string, error)
	Me(ctx context.Context, caller entity.Caller) (*entity.UserProjection, error)
}

type Gig interface {
	CreateGig(ctx context.Context, caller entity.Caller, input *entity.CreateGigInput) (*entity.GigOutputModel, error)
	ListOpenGigs(ctx context.Context, titleFilter string) ([]entity.GigOutputModel, error)
}

type Bid interface {
	SubmitBid(ctx context.Context, caller entity.Caller, gigId, message string) (*entity.BidOutputModel, error)
	ListBidsForGig(ctx context.Context, caller entity.Caller, gigId string) ([]entity.BidOutputModel, error)
	Hire(ctx context.Context, caller entity.Caller, bidId string) (*entity.BidOutputModel, error)
}

type Services struct {
	Diagnostics Diagnostics
	Auth        Auth
	User        User
	Gig         Gig
	Bid         Bid
}

func NewServices(repos *repo.Repositories, tokens *TokenManager) *Services {
	return &Services{
		Diagnostics: NewDiagnosticsService(repos),
		Auth:        tokens,
		User:        NewUserService(repos, tokens),
		Gig:         NewGigService(repos),
		Bid:         NewBidService(repos),
	}
}
