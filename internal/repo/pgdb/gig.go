package pgdb

import (
	"context"
	"database/sql"
	"errors"
	"gigflow-api/internal/common"
	"gigflow-api/internal/entity"
	"gigflow-api/internal/repo/repo_errors"
	"gigflow-api/pkg/postgres"
	"strings"
	"time"

	"github.com/google/uuid"
)

const gigColumns = "gig.id, gig.title, gig.description, gig.budget, gig.owner_id, gig.status, gig.created_at, gig.updated_at"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type GigRepo struct {
	*postgres.Postgres
}

func NewGigRepo(pgdb *postgres.Postgres) *GigRepo {
	return &GigRepo{pgdb}
}

func (r *GigRepo) CreateGig(ctx context.Context, input *entity.CreateGigInput) (uuid.UUID, error) {
	createGigSql, args, err := r.SqlBuilder.
		Insert("gig").
		Columns("title", "description", "budget", "owner_id", "status").
		Values(input.Title, input.Description, input.Budget, input.OwnerId, common.GigOpen).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return uuid.Nil, err
	}

	var gigId uuid.UUID
	if err = r.Database.QueryRowContext(ctx, createGigSql, args...).Scan(&gigId); err != nil {
		return uuid.Nil, err
	}

	return gigId, nil
}

func (r *GigRepo) GetGigById(ctx context.Context, id uuid.UUID) (*entity.Gig, error) {
	getGigSql, args, err := r.SqlBuilder.
		Select(gigColumns).
		From("gig").
		Where("gig.id = ?", id).
		ToSql()
	if err != nil {
		return nil, err
	}

	gig, err := scanGig(r.Database.QueryRowContext(ctx, getGigSql, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrGigNotFound
		}

		return nil, err
	}

	return gig, nil
}

// GetOpenGigs returns open gigs newest first; titleFilter is matched as a
// case-insensitive substring, wildcards in it are taken literally.
func (r *GigRepo) GetOpenGigs(ctx context.Context, titleFilter string) ([]entity.Gig, error) {
	builder := r.SqlBuilder.
		Select(gigColumns + ", users.name, users.email").
		From("gig").
		LeftJoin("users on users.id = gig.owner_id").
		Where("gig.status = ?", common.GigOpen)

	if titleFilter != "" {
		builder = builder.Where("gig.title ILIKE ?", "%"+likeEscaper.Replace(titleFilter)+"%")
	}

	sqlReq, args, err := builder.
		OrderBy("gig.created_at DESC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.Database.QueryContext(ctx, sqlReq, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	gigs := make([]entity.Gig, 0)
	for rows.Next() {
		var gig entity.Gig
		var createdAt, updatedAt time.Time
		var ownerName, ownerEmail sql.NullString
		if err := rows.Scan(&gig.Id, &gig.Title, &gig.Description, &gig.Budget, &gig.OwnerId, &gig.Status,
			&createdAt, &updatedAt, &ownerName, &ownerEmail); err != nil {
			return gigs, err
		}
		gig.CreatedAt = formatTime(createdAt)
		gig.UpdatedAt = formatTime(updatedAt)
		if ownerName.Valid {
			gig.Owner = &entity.UserProjection{Id: gig.OwnerId.String(), Name: ownerName.String, Email: ownerEmail.String}
		}
		gigs = append(gigs, gig)
	}
	if err = rows.Err(); err != nil {
		return gigs, err
	}

	return gigs, nil
}

// scanGig reads gigColumns from row; sql.ErrNoRows is returned as is.
func scanGig(row *sql.Row) (*entity.Gig, error) {
	var gig entity.Gig
	var createdAt, updatedAt time.Time
	err := row.Scan(&gig.Id, &gig.Title, &gig.Description, &gig.Budget, &gig.OwnerId, &gig.Status,
		&createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	gig.CreatedAt = formatTime(createdAt)
	gig.UpdatedAt = formatTime(updatedAt)

	return &gig, nil
}
