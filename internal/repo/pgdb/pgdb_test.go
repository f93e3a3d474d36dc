package pgdb

import (
	"database/sql"
	"gigflow-api/pkg/postgres"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

var (
	gigRowColumns = []string{"id", "title", "description", "budget", "owner_id", "status", "created_at", "updated_at"}
	bidRowColumns = []string{"id", "gig_id", "freelancer_id", "message", "status", "created_at", "updated_at"}

	fixedTime = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
)

func newMockPostgres(t *testing.T, matchers ...sqlmock.QueryMatcher) (*postgres.Postgres, sqlmock.Sqlmock) {
	t.Helper()
	var db *sql.DB
	var mock sqlmock.Sqlmock
	var err error
	switch len(matchers) {
	case 0:
		db, mock, err = sqlmock.New()
	case 1:
		db, mock, err = sqlmock.New(sqlmock.QueryMatcherOption(matchers[0]))
	default:
		t.Fatalf("newMockPostgres: at most one query matcher, got %d", len(matchers))
	}
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet expectations: %v", err)
		}
		db.Close()
	})

	return postgres.New(db), mock
}
