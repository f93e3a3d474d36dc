package pgdb

import (
	"context"
	"database/sql"
	"errors"
	"gigflow-api/internal/common"
	"gigflow-api/internal/entity"
	"gigflow-api/internal/repo/repo_errors"
	"gigflow-api/pkg/postgres"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

const bidColumns = "bid.id, bid.gig_id, bid.freelancer_id, bid.message, bid.status, bid.created_at, bid.updated_at"

type BidRepo struct {
	*postgres.Postgres
}

func NewBidRepo(pgdb *postgres.Postgres) *BidRepo {
	return &BidRepo{pgdb}
}

// CreateBid holds a share lock on the gig while inserting, so a hire of the
// same gig either waits for the new bid (and rejects it) or commits first
// and is seen by check.
func (r *BidRepo) CreateBid(ctx context.Context, input *entity.CreateBidInput, check GigCheck) (uuid.UUID, error) {
	tx, err := r.Database.BeginTx(ctx, txOptions)
	if err != nil {
		return uuid.Nil, err
	}

	lockGigSql, args, _ := r.SqlBuilder.
		Select(gigColumns).
		From("gig").
		Where("gig.id = ?", input.GigId).
		Suffix("FOR SHARE").
		RunWith(tx).
		ToSql()

	gig, err := scanGig(tx.QueryRowContext(ctx, lockGigSql, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return uuid.Nil, rollback(tx, repo_errors.ErrGigNotFound)
		}

		return uuid.Nil, rollback(tx, err)
	}

	if check != nil {
		if err := check(gig); err != nil {
			return uuid.Nil, rollback(tx, err)
		}
	}

	createBidSql, args, _ := r.SqlBuilder.
		Insert("bid").
		Columns("gig_id", "freelancer_id", "message", "status").
		Values(input.GigId, input.FreelancerId, input.Message, common.BidPending).
		Suffix("RETURNING id").
		RunWith(tx).
		ToSql()

	var bidId uuid.UUID
	if err = tx.QueryRowContext(ctx, createBidSql, args...).Scan(&bidId); err != nil {
		return uuid.Nil, rollback(tx, err)
	}

	if err = tx.Commit(); err != nil {
		return uuid.Nil, err
	}

	return bidId, nil
}

func (r *BidRepo) GetBidById(ctx context.Context, id uuid.UUID) (*entity.Bid, error) {
	getBidSql, args, err := r.SqlBuilder.
		Select(bidColumns).
		From("bid").
		Where("bid.id = ?", id).
		ToSql()
	if err != nil {
		return nil, err
	}

	bid, err := scanBid(r.Database.QueryRowContext(ctx, getBidSql, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrBidNotFound
		}

		return nil, err
	}

	return bid, nil
}

func (r *BidRepo) GetGigBids(ctx context.Context, gigId uuid.UUID) ([]entity.Bid, error) {
	getGigBidsSql, args, err := r.SqlBuilder.
		Select(bidColumns+", users.name, users.email").
		From("bid").
		LeftJoin("users on users.id = bid.freelancer_id").
		Where("bid.gig_id = ?", gigId).
		OrderBy("bid.created_at ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.Database.QueryContext(ctx, getGigBidsSql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bids := make([]entity.Bid, 0)
	for rows.Next() {
		var bid entity.Bid
		var createdAt, updatedAt time.Time
		var name, email sql.NullString
		if err := rows.Scan(&bid.Id, &bid.GigId, &bid.FreelancerId, &bid.Message, &bid.Status,
			&createdAt, &updatedAt, &name, &email); err != nil {
			return bids, err
		}
		bid.CreatedAt = formatTime(createdAt)
		bid.UpdatedAt = formatTime(updatedAt)
		if name.Valid {
			bid.Freelancer = &entity.UserProjection{Id: bid.FreelancerId.String(), Name: name.String, Email: email.String}
		}
		bids = append(bids, bid)
	}
	if err = rows.Err(); err != nil {
		return bids, err
	}

	return bids, nil
}

func (r *BidRepo) HireBid(ctx context.Context, bidId uuid.UUID, check HireCheck) (*entity.Bid, error) {
	tx, err := r.Database.BeginTx(ctx, txOptions)
	if err != nil {
		return nil, err
	}

	// Lock order is gig, then bid: every hire on a gig queues on the gig row
	// before it locks or rejects any bid row.
	findGigSql, args, _ := r.SqlBuilder.
		Select("bid.gig_id").
		From("bid").
		Where("bid.id = ?", bidId).
		RunWith(tx).
		ToSql()

	var gigId uuid.UUID
	if err = tx.QueryRowContext(ctx, findGigSql, args...).Scan(&gigId); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, rollback(tx, repo_errors.ErrBidNotFound)
		}

		return nil, rollback(tx, err)
	}

	lockGigSql, args, _ := r.SqlBuilder.
		Select(gigColumns).
		From("gig").
		Where("gig.id = ?", gigId).
		Suffix("FOR UPDATE").
		RunWith(tx).
		ToSql()

	gig, err := scanGig(tx.QueryRowContext(ctx, lockGigSql, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, rollback(tx, repo_errors.ErrGigNotFound)
		}

		return nil, rollback(tx, err)
	}

	lockBidSql, args, _ := r.SqlBuilder.
		Select(bidColumns).
		From("bid").
		Where("bid.id = ?", bidId).
		Suffix("FOR UPDATE").
		RunWith(tx).
		ToSql()

	bid, err := scanBid(tx.QueryRowContext(ctx, lockBidSql, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, rollback(tx, repo_errors.ErrBidNotFound)
		}

		return nil, rollback(tx, err)
	}

	if check != nil {
		if err := check(bid, gig); err != nil {
			return nil, rollback(tx, err)
		}
	}

	assignGigSql, args, _ := r.SqlBuilder.
		Update("gig").
		Set("status", common.GigAssigned).
		Set("updated_at", squirrel.Expr("now()")).
		Where("id = ?", gig.Id).
		Where("status = ?", common.GigOpen).
		RunWith(tx).
		ToSql()

	res, err := tx.ExecContext(ctx, assignGigSql, args...)
	if err != nil {
		return nil, rollback(tx, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, rollback(tx, err)
	}
	if affected != 1 {
		return nil, rollback(tx, repo_errors.ErrNotOpen)
	}

	hireBidSql, args, _ := r.SqlBuilder.
		Update("bid").
		Set("status", common.BidHired).
		Set("updated_at", squirrel.Expr("now()")).
		Where("id = ?", bid.Id).
		Suffix("RETURNING updated_at").
		RunWith(tx).
		ToSql()

	var updatedAt time.Time
	if err = tx.QueryRowContext(ctx, hireBidSql, args...).Scan(&updatedAt); err != nil {
		return nil, rollback(tx, err)
	}

	rejectOthersSql, args, _ := r.SqlBuilder.
		Update("bid").
		Set("status", common.BidRejected).
		Set("updated_at", squirrel.Expr("now()")).
		Where("gig_id = ?", gig.Id).
		Where("id <> ?", bid.Id).
		RunWith(tx).
		ToSql()

	if _, err = tx.ExecContext(ctx, rejectOthersSql, args...); err != nil {
		return nil, rollback(tx, err)
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}

	bid.Status = common.BidHired
	bid.UpdatedAt = formatTime(updatedAt)

	return bid, nil
}

func scanBid(row *sql.Row) (*entity.Bid, error) {
	var bid entity.Bid
	var createdAt, updatedAt time.Time
	err := row.Scan(&bid.Id, &bid.GigId, &bid.FreelancerId, &bid.Message, &bid.Status, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	bid.CreatedAt = formatTime(createdAt)
	bid.UpdatedAt = formatTime(updatedAt)

	return &bid, nil
}
