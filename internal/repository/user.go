package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tradewell/tradelog-backend/internal/models"
)

// IsUniqueViolation reports whether err is a Postgres unique-constraint
// violation. Registration relies on this to keep the duplicate-email check
// race-free: the users.email UNIQUE index is the authority, the pre-insert
// SELECT only supplies the friendly error message.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

type UserRepo struct {
	pool *pgxpool.Pool
}

func NewUserRepo(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

func (r *UserRepo) Create(ctx context.Context, fullName, email, passwordHash string) (*models.User, error) {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO users (id, full_name, email, password_hash)
		 VALUES ($1,$2,$3,$4)
		 RETURNING *`,
		uuid.New(), fullName, email, passwordHash,
	)
	return scanUser(row)
}

// GetByEmail returns (nil, nil) when no user has the email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT * FROM users WHERE email = $1`,
		email,
	)
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return u, nil
}

// --- scan helpers ---

type scannable interface {
	Scan(dest ...any) error
}

type rowsIter interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanUser(row scannable) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.FullName, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
