package pgdb

import (
	"database/sql"
	"errors"
	"gigflow-api/internal/entity"
	"time"
)

// GigCheck is evaluated against a locked gig row inside a store transaction.
type GigCheck func(gig *entity.Gig) error

// HireCheck is evaluated against the locked bid and gig rows of a hire.
type HireCheck func(bid *entity.Bid, gig *entity.Gig) error

var txOptions = &sql.TxOptions{Isolation: sql.LevelReadCommitted}

// rollback aborts tx and returns the error that caused the abort.
func rollback(tx *sql.Tx, cause error) error {
	if e := tx.Rollback(); e != nil && !errors.Is(e, sql.ErrTxDone) {
		return errors.Join(cause, e)
	}

	return cause
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
