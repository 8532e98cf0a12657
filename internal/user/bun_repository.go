package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/redmonkez12/learnhub-api/internal/database"
)

// BunRepository stores users in PostgreSQL
type BunRepository struct {
	db bun.IDB
}

func NewBunRepository(db bun.IDB) *BunRepository {
	return &BunRepository{db: db}
}

// GetByEmail retrieves a user by email
func (r *BunRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	dbUser := new(database.User)
	err := r.db.NewSelect().
		Model(dbUser).
		Where("email = ?", email).
		Limit(1).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return mapDBUserToModel(dbUser), nil
}

// Create inserts a new user into the database
func (r *BunRepository) Create(ctx context.Context, u *User) error {
	dbUser := &database.User{
		ID:           uuid.New(),
		Email:        u.Email,
		Name:         u.Name,
		PhotoURL:     u.PhotoURL,
		PasswordHash: u.PasswordHash,
		FromGoogle:   u.FromGoogle,
	}

	_, err := r.db.NewInsert().
		Model(dbUser).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	u.ID = dbUser.ID.String()
	return nil
}

// mapDBUserToModel converts database model to domain model
func mapDBUserToModel(dbu *database.User) *User {
	return &User{
		ID:           dbu.ID.String(),
		Email:        dbu.Email,
		Name:         dbu.Name,
		PhotoURL:     dbu.PhotoURL,
		PasswordHash: dbu.PasswordHash,
		FromGoogle:   dbu.FromGoogle,
	}
}
