package service

import (
	"context"
	"errors"
	"gigflow-api/internal/common"
	"gigflow-api/internal/entity"
	"reflect"
	"sync"
	"testing"

	"github.com/google/uuid"
)

type marketplace struct {
	store *memStore
	gigs  *GigService
	bids  *BidService
}

func newMarketplace() *marketplace {
	store := newMemStore()
	repos := store.repositories()

	return &marketplace{store: store, gigs: NewGigService(repos), bids: NewBidService(repos)}
}

func newCaller() entity.Caller {
	return entity.NewCaller(uuid.New())
}

// checkHireInvariants fails when an assigned gig doesn't have exactly one
// hired bid with all other bids rejected, or an open gig has a decided bid.
func checkHireInvariants(t *testing.T, store *memStore) {
	t.Helper()
	store.mu.Lock()
	defer store.mu.Unlock()

	for _, gig := range store.gigs {
		hired, rejected, pending := 0, 0, 0
		for _, bid := range store.bids {
			if bid.GigId != gig.Id {
				continue
			}
			switch bid.Status {
			case common.BidHired:
				hired++
			case common.BidRejected:
				rejected++
			case common.BidPending:
				pending++
			default:
				t.Fatalf("bid %s has unknown status %q", bid.Id, bid.Status)
			}
		}

		switch gig.Status {
		case common.GigAssigned:
			if hired != 1 || pending != 0 {
				t.Fatalf("assigned gig %s: hired=%d rejected=%d pending=%d", gig.Id, hired, rejected, pending)
			}
		case common.GigOpen:
			if hired != 0 || rejected != 0 {
				t.Fatalf("open gig %s: hired=%d rejected=%d", gig.Id, hired, rejected)
			}
		default:
			t.Fatalf("gig %s has unknown status %q", gig.Id, gig.Status)
		}
	}
}

// scenarioA: U1 posts "Logo design", U2 and U3 bid, U1 hires U2's bid.
func scenarioA(t *testing.T, m *marketplace) (u1 entity.Caller, gig *entity.GigOutputModel, b1, b2 *entity.BidOutputModel) {
	t.Helper()
	ctx := context.Background()
	u1, u2, u3 := newCaller(), newCaller(), newCaller()

	gig, err := m.gigs.CreateGig(ctx, u1, &entity.CreateGigInput{Title: "Logo design", Description: "A logo for my shop", Budget: 500})
	if err != nil {
		t.Fatalf("create gig: %v", err)
	}
	if gig.Status != common.GigOpen {
		t.Fatalf("expected open gig, got %q", gig.Status)
	}

	b1, err = m.bids.SubmitBid(ctx, u2, gig.Id, "I can do this")
	if err != nil {
		t.Fatalf("submit b1: %v", err)
	}
	b2, err = m.bids.SubmitBid(ctx, u3, gig.Id, "Me too")
	if err != nil {
		t.Fatalf("submit b2: %v", err)
	}
	if b1.Status != common.BidPending || b2.Status != common.BidPending {
		t.Fatalf("expected pending bids, got %q and %q", b1.Status, b2.Status)
	}

	hired, err := m.bids.Hire(ctx, u1, b1.Id)
	if err != nil {
		t.Fatalf("hire: %v", err)
	}
	if hired.Id != b1.Id || hired.Status != common.BidHired {
		t.Fatalf("unexpected hired bid: %+v", hired)
	}

	return u1, gig, b1, b2
}

func TestLifecycle_ScenarioA(t *testing.T) {
	m := newMarketplace()
	_, gig, b1, b2 := scenarioA(t, m)

	statuses := m.store.statuses()
	if got := statuses[uuid.MustParse(gig.Id)]; got != common.GigAssigned {
		t.Fatalf("expected gig assigned, got %q", got)
	}
	if got := statuses[uuid.MustParse(b1.Id)]; got != common.BidHired {
		t.Fatalf("expected b1 hired, got %q", got)
	}
	if got := statuses[uuid.MustParse(b2.Id)]; got != common.BidRejected {
		t.Fatalf("expected b2 rejected, got %q", got)
	}
	checkHireInvariants(t, m.store)

	open, err := m.gigs.ListOpenGigs(context.Background(), "")
	if err != nil {
		t.Fatalf("list open gigs: %v", err)
	}
	if len(open) != 0 {
		t.Fatalf("assigned gig must not be listed as open, got %d gigs", len(open))
	}
}

func TestLifecycle_ScenarioB(t *testing.T) {
	t.Run("non owner hire is forbidden", func(t *testing.T) {
		m := newMarketplace()
		_, _, _, b2 := scenarioA(t, m)
		before := m.store.statuses()

		_, err := m.bids.Hire(context.Background(), entity.NewCaller(uuid.MustParse(b2.FreelancerId)), b2.Id)
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
		if !reflect.DeepEqual(before, m.store.statuses()) {
			t.Fatalf("state changed after forbidden hire")
		}
	})

	t.Run("owner hiring again fails on state", func(t *testing.T) {
		m := newMarketplace()
		u1, _, _, b2 := scenarioA(t, m)
		before := m.store.statuses()

		_, err := m.bids.Hire(context.Background(), u1, b2.Id)
		if !errors.Is(err, ErrInvalidState) {
			t.Fatalf("expected ErrInvalidState, got %v", err)
		}
		if !reflect.DeepEqual(before, m.store.statuses()) {
			t.Fatalf("state changed after rejected hire")
		}
		checkHireInvariants(t, m.store)
	})

	t.Run("hiring the same bid twice is an idempotent failure", func(t *testing.T) {
		m := newMarketplace()
		u1, _, b1, _ := scenarioA(t, m)
		before := m.store.statuses()

		_, err := m.bids.Hire(context.Background(), u1, b1.Id)
		if !errors.Is(err, ErrGigNotOpen) {
			t.Fatalf("expected ErrGigNotOpen, got %v", err)
		}
		if !reflect.DeepEqual(before, m.store.statuses()) {
			t.Fatalf("state changed after second hire")
		}
	})
}

func TestLifecycle_ScenarioC(t *testing.T) {
	m := newMarketplace()
	_, gig, _, _ := scenarioA(t, m)
	count := m.store.bidCount()

	_, err := m.bids.SubmitBid(context.Background(), newCaller(), gig.Id, "Late offer")
	if !errors.Is(err, ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState, got %v", err)
	}
	if m.store.bidCount() != count {
		t.Fatalf("bid on assigned gig must not be stored")
	}
}

func TestLifecycle_OnlyOwnerListsBids(t *testing.T) {
	m := newMarketplace()
	ctx := context.Background()
	owner, freelancer := newCaller(), newCaller()

	gig, err := m.gigs.CreateGig(ctx, owner, &entity.CreateGigInput{Title: "Website", Description: "Landing page", Budget: 0})
	if err != nil {
		t.Fatalf("create gig: %v", err)
	}
	if _, err := m.bids.SubmitBid(ctx, freelancer, gig.Id, "Hello"); err != nil {
		t.Fatalf("submit bid: %v", err)
	}

	if _, err := m.bids.ListBidsForGig(ctx, freelancer, gig.Id); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	bids, err := m.bids.ListBidsForGig(ctx, owner, gig.Id)
	if err != nil {
		t.Fatalf("list bids: %v", err)
	}
	if len(bids) != 1 || bids[0].FreelancerId != freelancer.UserId.String() {
		t.Fatalf("unexpected bids: %+v", bids)
	}
}

func TestLifecycle_ConcurrentHiresOnSameGig(t *testing.T) {
	m := newMarketplace()
	ctx := context.Background()
	owner := newCaller()

	gig, err := m.gigs.CreateGig(ctx, owner, &entity.CreateGigInput{Title: "Translation", Description: "EN to DE", Budget: 120})
	if err != nil {
		t.Fatalf("create gig: %v", err)
	}

	const bidders = 8
	bidIds := make([]string, 0, bidders)
	for i := 0; i < bidders; i++ {
		bid, err := m.bids.SubmitBid(ctx, newCaller(), gig.Id, "offer")
		if err != nil {
			t.Fatalf("submit bid: %v", err)
		}
		bidIds = append(bidIds, bid.Id)
	}

	var wg sync.WaitGroup
	results := make(chan error, bidders)
	for _, id := range bidIds {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			_, err := m.bids.Hire(ctx, owner, id)
			results <- err
		}(id)
	}
	wg.Wait()
	close(results)

	succeeded := 0
	for err := range results {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, ErrInvalidState):
		default:
			t.Fatalf("unexpected hire error: %v", err)
		}
	}
	if succeeded != 1 {
		t.Fatalf("expected exactly one successful hire, got %d", succeeded)
	}
	checkHireInvariants(t, m.store)
}

func TestLifecycle_ConcurrentBidsAndHire(t *testing.T) {
	m := newMarketplace()
	ctx := context.Background()
	owner := newCaller()

	gig, err := m.gigs.CreateGig(ctx, owner, &entity.CreateGigInput{Title: "Copywriting", Description: "Blog posts", Budget: 80})
	if err != nil {
		t.Fatalf("create gig: %v", err)
	}
	first, err := m.bids.SubmitBid(ctx, newCaller(), gig.Id, "first")
	if err != nil {
		t.Fatalf("submit bid: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := m.bids.SubmitBid(ctx, newCaller(), gig.Id, "racing offer")
			if err != nil && !errors.Is(err, ErrGigNotOpen) {
				t.Errorf("unexpected submit error: %v", err)
			}
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		if _, err := m.bids.Hire(ctx, owner, first.Id); err != nil {
			t.Errorf("hire: %v", err)
		}
	}()
	wg.Wait()

	// no bid may stay pending on the assigned gig
	checkHireInvariants(t, m.store)
}
