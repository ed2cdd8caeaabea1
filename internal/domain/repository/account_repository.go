package repository

import (
	"errors"

	"github.com/ShaikAbbuSofiyan/health-sign-up-oasis/internal/domain/entity"
)

// ErrNotFound is returned by lookups that match no account.
var ErrNotFound = errors.New("account not found")

// Duplicate-key errors surfaced by Create.
var (
	ErrDuplicateUsername = errors.New("username already registered")
	ErrDuplicateEmail    = errors.New("email already registered")
)

// AccountRepository defines the persistence operations for accounts.
type AccountRepository interface {
	Create(a *entity.Account) error
	GetByID(id string) (*entity.Account, error)
	GetByEmail(email string) (*entity.Account, error)
	GetByUsername(username string) (*entity.Account, error)
}
