package service

import (
	"context"
	"gigflow-api/internal/common"
	"gigflow-api/internal/entity"
	"gigflow-api/internal/repo"
	"strings"

	"github.com/google/uuid"
)

type BidService struct {
	bidRepo repo.Bid
	gigRepo repo.Gig
}

func NewBidService(repos *repo.Repositories) *BidService {
	return &BidService{
		bidRepo: repos.Bid,
		gigRepo: repos.Gig,
	}
}

func requireOpenGig(gig *entity.Gig) error {
	if gig.Status != common.GigOpen {
		return ErrGigNotOpen
	}

	return nil
}

func (s *BidService) SubmitBid(ctx context.Context, caller entity.Caller, gigId string, message string) (*entity.BidOutputModel, error) {
	if caller.IsZero() {
		return nil, ErrAuthenticationRequired
	}

	gigId, message = strings.TrimSpace(gigId), strings.TrimSpace(message)
	if gigId == "" || message == "" {
		return nil, validationError("gigId and message are required")
	}

	// a malformed id can't name an existing gig
	gigUuid, err := uuid.Parse(gigId)
	if err != nil {
		return nil, ErrGigNotFound
	}

	input := &entity.CreateBidInput{
		GigId:        gigUuid,
		FreelancerId: caller.UserId,
		Message:      message,
	}

	bidId, err := s.bidRepo.CreateBid(ctx, input, requireOpenGig)
	if err != nil {
		return nil, translateRepoError("create bid", err)
	}

	bid, err := s.bidRepo.GetBidById(ctx, bidId)
	if err != nil {
		return nil, storeError("get created bid", err)
	}

	return mapBid(bid), nil
}

// Only the gig owner may see who bid on it
func (s *BidService) ListBidsForGig(ctx context.Context, caller entity.Caller, gigId string) ([]entity.BidOutputModel, error) {
	if caller.IsZero() {
		return nil, ErrAuthenticationRequired
	}

	gigUuid, err := uuid.Parse(strings.TrimSpace(gigId))
	if err != nil {
		return nil, ErrGigNotFound
	}

	gig, err := s.gigRepo.GetGigById(ctx, gigUuid)
	if err != nil {
		return nil, translateRepoError("get gig", err)
	}

	if gig.OwnerId != caller.UserId {
		return nil, ErrNotGigOwner
	}

	bids, err := s.bidRepo.GetGigBids(ctx, gigUuid)
	if err != nil {
		return nil, storeError("list gig bids", err)
	}

	return mapBids(bids), nil
}

// Hire assigns the bid's gig to its freelancer and rejects every other bid.
// Preconditions are checked by the store on locked rows, in order: bid
// exists, gig exists, caller owns the gig, gig is open. Nothing is written
// unless all of them hold. A failed hire is never retried here.
func (s *BidService) Hire(ctx context.Context, caller entity.Caller, bidId string) (*entity.BidOutputModel, error) {
	if caller.IsZero() {
		return nil, ErrAuthenticationRequired
	}

	bidId = strings.TrimSpace(bidId)
	if bidId == "" {
		return nil, validationError("bidId is required")
	}

	bidUuid, err := uuid.Parse(bidId)
	if err != nil {
		return nil, ErrBidNotFound
	}

	hired, err := s.bidRepo.HireBid(ctx, bidUuid, func(_ *entity.Bid, gig *entity.Gig) error {
		if gig.OwnerId != caller.UserId {
			return ErrNotGigOwner
		}

		return requireOpenGig(gig)
	})
	if err != nil {
		return nil, translateRepoError("hire bid", err)
	}

	return mapBid(hired), nil
}
