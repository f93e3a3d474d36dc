package repo

import (
	"context"
	"gigflow-api/internal/entity"
	"gigflow-api/internal/repo/pgdb"
	"gigflow-api/pkg/postgres"

	"github.com/google/uuid"
)

//go:generate mockgen -source=repo.go -destination=mocks/mock_repo.go -package=mocks

type Diagnostics interface {
	Ping(ctx context.Context) error
}

type User interface {
	CreateUser(ctx context.Context, input *entity.CreateUserInput) (uuid.UUID, error)
	GetUserById(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
}

type Gig interface {
	CreateGig(ctx context.Context, input *entity.CreateGigInput) (uuid.UUID, error)
	GetGigById(ctx context.Context, id uuid.UUID) (*entity.Gig, error)
	GetOpenGigs(ctx context.Context, titleFilter string) ([]entity.Gig, error)
}

type Bid interface {
	// CreateBid runs check against the share-locked gig before inserting.
	CreateBid(ctx context.Context, input *entity.CreateBidInput, check pgdb.GigCheck) (uuid.UUID, error)
	GetBidById(ctx context.Context, id uuid.UUID) (*entity.Bid, error)
	GetGigBids(ctx context.Context, gigId uuid.UUID) ([]entity.Bid, error)
	// HireBid assigns the bid's gig, hires the bid and rejects its siblings in one transaction.
	// The gig row is locked before the bid row; check runs once both are held and a
	// non-nil result aborts everything.
	HireBid(ctx context.Context, bidId uuid.UUID, check pgdb.HireCheck) (*entity.Bid, error)
}

type Repositories struct {
	Diagnostics
	User
	Gig
	Bid
}

func NewRepositories(p *postgres.Postgres) *Repositories {
	return &Repositories{
		Diagnostics: pgdb.NewDiagnosticsRepo(p),
		User:        pgdb.NewUserRepo(p),
		Gig:         pgdb.NewGigRepo(p),
		Bid:         pgdb.NewBidRepo(p),
	}
}
