package database

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// User is the users table row
type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID           uuid.UUID `bun:"id,pk,type:uuid"`
	Email        string    `bun:"email,notnull"`
	Name         string    `bun:"name,notnull"`
	PhotoURL     string    `bun:"photo_url"`
	PasswordHash string    `bun:"password_hash"`
	FromGoogle   bool      `bun:"from_google,notnull,default:false"`
	CreatedAt    time.Time `bun:"created_at,notnull,default:current_timestamp"`
}

// Course is the courses table row
type Course struct {
	bun.BaseModel `bun:"table:courses,alias:c"`

	ID          uuid.UUID `bun:"id,pk,type:uuid"`
	Title       string    `bun:"title,notnull"`
	Description string    `bun:"description,notnull"`
	Category    string    `bun:"category,notnull"`
	Price       float64   `bun:"price,notnull"`
	Instructor  string    `bun:"instructor,notnull"`
	Image       string    `bun:"image"`
	CreatedAt   time.Time `bun:"created_at,notnull"`
}
