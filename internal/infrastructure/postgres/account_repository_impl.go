package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ShaikAbbuSofiyan/health-sign-up-oasis/internal/domain/entity"
	"github.com/ShaikAbbuSofiyan/health-sign-up-oasis/internal/domain/repository"
)

// uniqueViolation is the Postgres error code for a unique constraint breach.
const uniqueViolation = "23505"

type AccountRepository struct {
	pool *pgxpool.Pool
}

func NewAccountRepository(pool *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{pool: pool}
}

func (r *AccountRepository) Create(a *entity.Account) error {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO accounts (username, phone_number, email, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`, a.Username, a.PhoneNumber, a.Email, a.PasswordHash)

	if err := row.Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return mapDuplicate(err)
	}
	return nil
}

// mapDuplicate translates unique-violation errors to the repository's
// duplicate sentinels based on the violated constraint.
func mapDuplicate(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolation {
		return err
	}
	switch {
	case strings.Contains(pgErr.ConstraintName, "username"):
		return repository.ErrDuplicateUsername
	case strings.Contains(pgErr.ConstraintName, "email"):
		return repository.ErrDuplicateEmail
	}
	return err
}

func (r *AccountRepository) GetByID(id string) (*entity.Account, error) {
	return r.getBy(`id = $1`, id)
}

func (r *AccountRepository) GetByEmail(email string) (*entity.Account, error) {
	return r.getBy(`email = $1`, email)
}

func (r *AccountRepository) GetByUsername(username string) (*entity.Account, error) {
	return r.getBy(`username = $1`, username)
}

func (r *AccountRepository) getBy(where string, arg any) (*entity.Account, error) {
	ctx := context.Background()
	a := &entity.Account{}

	row := r.pool.QueryRow(ctx, `
		SELECT id, username, phone_number, email, password_hash, created_at, updated_at
		FROM accounts
		WHERE `+where, arg)

	if err := row.Scan(&a.ID, &a.Username, &a.PhoneNumber, &a.Email,
		&a.PasswordHash, &a.CreatedAt, &a.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return a, nil
}

var _ repository.AccountRepository = (*AccountRepository)(nil)
