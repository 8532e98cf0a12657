package memstore

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redmonkez12/learnhub-api/internal/course"
	"github.com/redmonkez12/learnhub-api/internal/user"
)

var (
	_ user.Repository   = (*UserRepository)(nil)
	_ course.Repository = (*CourseRepository)(nil)
)

func TestUsers_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := New().Users()

	_, err := repo.GetByEmail(ctx, "a@b.test")
	assert.ErrorIs(t, err, user.ErrNotFound)

	u := &user.User{Email: "a@b.test", Name: "A"}
	require.NoError(t, repo.Create(ctx, u))
	assert.NotEmpty(t, u.ID)

	got, err := repo.GetByEmail(ctx, "a@b.test")
	require.NoError(t, err)
	assert.Equal(t, *u, *got)
	assert.Equal(t, 1, repo.Count())
}

func TestCourses_PreservesInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := New().Courses()

	for _, title := range []string{"one", "two", "three"} {
		require.NoError(t, repo.Create(ctx, &course.Course{Title: title, Category: "math"}))
	}

	got, err := repo.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "one", got[0].Title)
	assert.Equal(t, "three", got[2].Title)
}

func TestCourses_InvalidID(t *testing.T) {
	repo := New().Courses()

	assert.ErrorIs(t, repo.Update(context.Background(), "not-an-id", course.Patch{}), course.ErrInvalidID)
	assert.ErrorIs(t, repo.Delete(context.Background(), "not-an-id"), course.ErrInvalidID)
}

func TestFailWith(t *testing.T) {
	ctx := context.Background()
	s := New()
	boom := errors.New("store down")

	s.FailWith(boom)
	_, err := s.Courses().List(ctx, "")
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, s.Users().Create(ctx, &user.User{}), boom)

	s.FailWith(nil)
	_, err = s.Courses().List(ctx, "")
	assert.NoError(t, err)
}
