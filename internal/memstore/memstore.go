// Package memstore keeps users and courses in process memory.
// It backs STORE_DRIVER=memory and the service tests.
package memstore

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/redmonkez12/learnhub-api/internal/course"
	"github.com/redmonkez12/learnhub-api/internal/user"
)

// Store holds both collections behind one lock
type Store struct {
	mu      sync.RWMutex
	users   []user.User
	courses []course.Course
	failErr error
}

func New() *Store {
	return &Store{}
}

// FailWith makes every subsequent operation return err. Pass nil to recover.
func (s *Store) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failErr = err
}

// Users returns a user.Repository view of the store
func (s *Store) Users() *UserRepository {
	return &UserRepository{s: s}
}

// Courses returns a course.Repository view of the store
func (s *Store) Courses() *CourseRepository {
	return &CourseRepository{s: s}
}

type UserRepository struct {
	s *Store
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (*user.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	if r.s.failErr != nil {
		return nil, r.s.failErr
	}

	for _, u := range r.s.users {
		if u.Email == email {
			found := u
			return &found, nil
		}
	}
	return nil, user.ErrNotFound
}

func (r *UserRepository) Create(_ context.Context, u *user.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.s.failErr != nil {
		return r.s.failErr
	}

	u.ID = uuid.NewString()
	r.s.users = append(r.s.users, *u)
	return nil
}

// Count returns the number of stored users
func (r *UserRepository) Count() int {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.users)
}

type CourseRepository struct {
	s *Store
}

func (r *CourseRepository) List(_ context.Context, category string) ([]course.Course, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	if r.s.failErr != nil {
		return nil, r.s.failErr
	}

	out := make([]course.Course, 0, len(r.s.courses))
	for _, c := range r.s.courses {
		if category == "" || c.Category == category {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *CourseRepository) Create(_ context.Context, c *course.Course) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.s.failErr != nil {
		return r.s.failErr
	}

	c.ID = uuid.NewString()
	r.s.courses = append(r.s.courses, *c)
	return nil
}

func (r *CourseRepository) Update(_ context.Context, id string, patch course.Patch) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %v", course.ErrInvalidID, err)
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.s.failErr != nil {
		return r.s.failErr
	}

	for i := range r.s.courses {
		if r.s.courses[i].ID == id {
			patch.Apply(&r.s.courses[i])
			return nil
		}
	}
	return nil
}

func (r *CourseRepository) Delete(_ context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %v", course.ErrInvalidID, err)
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.s.failErr != nil {
		return r.s.failErr
	}

	for i := range r.s.courses {
		if r.s.courses[i].ID == id {
			r.s.courses = append(r.s.courses[:i], r.s.courses[i+1:]...)
			return nil
		}
	}
	return nil
}
