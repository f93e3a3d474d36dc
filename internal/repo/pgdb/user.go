package pgdb

import (
	"context"
	"database/sql"
	"errors"
	"gigflow-api/internal/entity"
	"gigflow-api/internal/repo/repo_errors"
	"gigflow-api/pkg/postgres"
	"time"

	"github.com/google/uuid"
)

const userColumns = "id, name, email, password_hash, created_at, updated_at"

type UserRepo struct {
	*postgres.Postgres
}

func NewUserRepo(pgdb *postgres.Postgres) *UserRepo {
	return &UserRepo{pgdb}
}

func (r *UserRepo) CreateUser(ctx context.Context, input *entity.CreateUserInput) (uuid.UUID, error) {
	sqlReq, args, err := r.SqlBuilder.
		Insert("users").
		Columns("name", "email", "password_hash").
		Values(input.Name, input.Email, input.PasswordHash).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return uuid.Nil, err
	}

	var userId uuid.UUID
	err = r.Database.QueryRowContext(ctx, sqlReq, args...).Scan(&userId)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return uuid.Nil, repo_errors.ErrConflict
		}

		return uuid.Nil, err
	}

	return userId, nil
}

func (r *UserRepo) GetUserById(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	sqlReq, args, err := r.SqlBuilder.
		Select(userColumns).
		From("users").
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return nil, err
	}

	return r.scanUser(r.Database.QueryRowContext(ctx, sqlReq, args...))
}

func (r *UserRepo) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	sqlReq, args, err := r.SqlBuilder.
		Select(userColumns).
		From("users").
		Where("email = ?", email).
		ToSql()
	if err != nil {
		return nil, err
	}

	return r.scanUser(r.Database.QueryRowContext(ctx, sqlReq, args...))
}

func (r *UserRepo) scanUser(row *sql.Row) (*entity.User, error) {
	var user entity.User
	var createdAt, updatedAt time.Time
	err := row.Scan(&user.Id, &user.Name, &user.Email, &user.PasswordHash, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}
	user.CreatedAt = formatTime(createdAt)
	user.UpdatedAt = formatTime(updatedAt)

	return &user, nil
}
