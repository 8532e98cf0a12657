package course

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/redmonkez12/learnhub-api/internal/database"
)

// BunRepository stores courses in PostgreSQL
type BunRepository struct {
	db bun.IDB
}

func NewBunRepository(db bun.IDB) *BunRepository {
	return &BunRepository{db: db}
}

// List returns all courses in insertion order, optionally filtered by exact category
func (r *BunRepository) List(ctx context.Context, category string) ([]Course, error) {
	var rows []database.Course
	if err := r.selectQuery(&rows, category).Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}

	courses := make([]Course, 0, len(rows))
	for i := range rows {
		courses = append(courses, mapDBCourseToModel(&rows[i]))
	}

	return courses, nil
}

// Create inserts a new course
func (r *BunRepository) Create(ctx context.Context, c *Course) error {
	row := &database.Course{
		ID:          uuid.New(),
		Title:       c.Title,
		Description: c.Description,
		Category:    c.Category,
		Price:       c.Price,
		Instructor:  c.Instructor,
		Image:       c.Image,
		CreatedAt:   c.CreatedAt,
	}

	if _, err := r.db.NewInsert().Model(row).Exec(ctx); err != nil {
		return fmt.Errorf("failed to insert course: %w", err)
	}

	c.ID = row.ID.String()
	return nil
}

// Update sets the patched columns on the course with the given id
func (r *BunRepository) Update(ctx context.Context, id string, patch Patch) error {
	courseID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidID, err)
	}

	if patch.IsEmpty() {
		return nil
	}

	if _, err := r.updateQuery(courseID, patch).Exec(ctx); err != nil {
		return fmt.Errorf("failed to update course: %w", err)
	}

	return nil
}

// Delete removes the course with the given id
func (r *BunRepository) Delete(ctx context.Context, id string) error {
	courseID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidID, err)
	}

	_, err = r.db.NewDelete().
		Model((*database.Course)(nil)).
		Where("id = ?", courseID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete course: %w", err)
	}

	return nil
}

func (r *BunRepository) selectQuery(rows *[]database.Course, category string) *bun.SelectQuery {
	q := r.db.NewSelect().
		Model(rows).
		Order("created_at ASC")
	if category != "" {
		q = q.Where("category = ?", category)
	}
	return q
}

func (r *BunRepository) updateQuery(id uuid.UUID, patch Patch) *bun.UpdateQuery {
	q := r.db.NewUpdate().
		Model((*database.Course)(nil)).
		Where("id = ?", id)

	fields := patch.Fields()
	for _, name := range fieldOrder {
		if v, ok := fields[name]; ok {
			q = q.Set("? = ?", bun.Ident(name), v)
		}
	}

	return q
}

// mapDBCourseToModel converts database model to domain model
func mapDBCourseToModel(row *database.Course) Course {
	return Course{
		ID:          row.ID.String(),
		Title:       row.Title,
		Description: row.Description,
		Category:    row.Category,
		Price:       row.Price,
		Instructor:  row.Instructor,
		Image:       row.Image,
		CreatedAt:   row.CreatedAt,
	}
}
