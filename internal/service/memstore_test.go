package service

import (
	"context"
	"gigflow-api/internal/common"
	"gigflow-api/internal/entity"
	"gigflow-api/internal/repo"
	"gigflow-api/internal/repo/pgdb"
	"gigflow-api/internal/repo/repo_errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// memStore is an in-memory gig and bid store. One mutex held for a whole
// operation serializes everything, so it checks service outcomes only; the
// postgres lock order is covered in pgdb.
type memStore struct {
	mu       sync.Mutex
	seq      int64
	gigs     map[uuid.UUID]*entity.Gig
	bids     map[uuid.UUID]*entity.Bid
	bidOrder []uuid.UUID
}

func newMemStore() *memStore {
	return &memStore{
		gigs: make(map[uuid.UUID]*entity.Gig),
		bids: make(map[uuid.UUID]*entity.Bid),
	}
}

func (m *memStore) repositories() *repo.Repositories {
	return &repo.Repositories{Gig: m, Bid: m}
}

func (m *memStore) now() string {
	m.seq++
	return time.Unix(1700000000+m.seq, 0).UTC().Format(time.RFC3339)
}

func (m *memStore) CreateGig(_ context.Context, input *entity.CreateGigInput) (uuid.UUID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ts := m.now()
	gig := &entity.Gig{
		Id: uuid.New(), Title: input.Title, Description: input.Description, Budget: input.Budget,
		OwnerId: input.OwnerId, Status: common.GigOpen, CreatedAt: ts, UpdatedAt: ts,
	}
	m.gigs[gig.Id] = gig

	return gig.Id, nil
}

func (m *memStore) GetGigById(_ context.Context, id uuid.UUID) (*entity.Gig, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	gig, ok := m.gigs[id]
	if !ok {
		return nil, repo_errors.ErrGigNotFound
	}
	cp := *gig

	return &cp, nil
}

func (m *memStore) GetOpenGigs(_ context.Context, titleFilter string) ([]entity.Gig, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	gigs := make([]entity.Gig, 0)
	for _, gig := range m.gigs {
		if gig.Status != common.GigOpen {
			continue
		}
		if !strings.Contains(strings.ToLower(gig.Title), strings.ToLower(titleFilter)) {
			continue
		}
		gigs = append(gigs, *gig)
	}
	sort.Slice(gigs, func(i, j int) bool { return gigs[i].CreatedAt > gigs[j].CreatedAt })

	return gigs, nil
}

func (m *memStore) CreateBid(_ context.Context, input *entity.CreateBidInput, check pgdb.GigCheck) (uuid.UUID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	gig, ok := m.gigs[input.GigId]
	if !ok {
		return uuid.Nil, repo_errors.ErrGigNotFound
	}
	cp := *gig
	if err := check(&cp); err != nil {
		return uuid.Nil, err
	}

	ts := m.now()
	bid := &entity.Bid{
		Id: uuid.New(), GigId: input.GigId, FreelancerId: input.FreelancerId, Message: input.Message,
		Status: common.BidPending, CreatedAt: ts, UpdatedAt: ts,
	}
	m.bids[bid.Id] = bid
	m.bidOrder = append(m.bidOrder, bid.Id)

	return bid.Id, nil
}

func (m *memStore) GetBidById(_ context.Context, id uuid.UUID) (*entity.Bid, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	bid, ok := m.bids[id]
	if !ok {
		return nil, repo_errors.ErrBidNotFound
	}
	cp := *bid

	return &cp, nil
}

func (m *memStore) GetGigBids(_ context.Context, gigId uuid.UUID) ([]entity.Bid, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	bids := make([]entity.Bid, 0)
	for _, id := range m.bidOrder {
		if bid := m.bids[id]; bid.GigId == gigId {
			bids = append(bids, *bid)
		}
	}

	return bids, nil
}

func (m *memStore) HireBid(_ context.Context, bidId uuid.UUID, check pgdb.HireCheck) (*entity.Bid, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	bid, ok := m.bids[bidId]
	if !ok {
		return nil, repo_errors.ErrBidNotFound
	}
	gig, ok := m.gigs[bid.GigId]
	if !ok {
		return nil, repo_errors.ErrGigNotFound
	}

	bidCopy, gigCopy := *bid, *gig
	if err := check(&bidCopy, &gigCopy); err != nil {
		return nil, err
	}
	if gig.Status != common.GigOpen {
		return nil, repo_errors.ErrNotOpen
	}

	ts := m.now()
	gig.Status, gig.UpdatedAt = common.GigAssigned, ts
	for _, other := range m.bids {
		if other.GigId != gig.Id {
			continue
		}
		if other.Id == bid.Id {
			other.Status = common.BidHired
		} else {
			other.Status = common.BidRejected
		}
		other.UpdatedAt = ts
	}
	cp := *bid

	return &cp, nil
}

// statuses returns every gig and bid status keyed by id.
func (m *memStore) statuses() map[uuid.UUID]string {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make(map[uuid.UUID]string, len(m.gigs)+len(m.bids))
	for id, gig := range m.gigs {
		out[id] = gig.Status
	}
	for id, bid := range m.bids {
		out[id] = bid.Status
	}

	return out
}

func (m *memStore) bidCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.bids)
}
