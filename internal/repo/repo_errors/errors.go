package repo_errors

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound    = errors.New("record not found")
	ErrGigNotFound = fmt.Errorf("gig: %w", ErrNotFound)
	ErrBidNotFound = fmt.Errorf("bid: %w", ErrNotFound)

	// unique constraint violated
	ErrConflict = errors.New("record already exists")
	// conditional status update matched no row
	ErrNotOpen = errors.New("gig is not open")
)
