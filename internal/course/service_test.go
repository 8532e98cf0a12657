package course_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redmonkez12/learnhub-api/internal/apperror"
	"github.com/redmonkez12/learnhub-api/internal/course"
	"github.com/redmonkez12/learnhub-api/internal/logging"
	"github.com/redmonkez12/learnhub-api/internal/memstore"
)

type fakeUploader struct {
	url   string
	err   error
	calls int
}

func (f *fakeUploader) Upload(_ context.Context, _ string) (string, error) {
	f.calls++
	return f.url, f.err
}

func newTestService(t *testing.T) (*course.Service, *memstore.Store, *fakeUploader) {
	t.Helper()
	store := memstore.New()
	uploader := &fakeUploader{url: "https://i.ibb.co/img.png"}
	return course.NewService(store.Courses(), uploader, logging.NewNopLogger()), store, uploader
}

func ptr[T any](v T) *T {
	return &v
}

func validInput() course.CreateInput {
	return course.CreateInput{
		Title:       "Algebra I",
		Description: "Linear equations",
		Category:    "math",
		Price:       ptr(19.99),
		Instructor:  "Ada",
		ImageBase64: "aGVsbG8=",
	}
}

func TestCreate_Success(t *testing.T) {
	svc, _, uploader := newTestService(t)

	c, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)

	assert.NotEmpty(t, c.ID)
	assert.Equal(t, "https://i.ibb.co/img.png", c.Image)
	assert.Equal(t, 19.99, c.Price)
	assert.False(t, c.CreatedAt.IsZero())
	assert.Equal(t, 1, uploader.calls)
}

func TestCreate_ZeroPriceIsPresent(t *testing.T) {
	svc, _, _ := newTestService(t)

	in := validInput()
	in.Price = ptr(0.0)

	c, err := svc.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Zero(t, c.Price)
}

func TestCreate_MissingFields(t *testing.T) {
	tests := []struct {
		name  string
		strip func(*course.CreateInput)
	}{
		{"title", func(in *course.CreateInput) { in.Title = "" }},
		{"description", func(in *course.CreateInput) { in.Description = "" }},
		{"category", func(in *course.CreateInput) { in.Category = "" }},
		{"price", func(in *course.CreateInput) { in.Price = nil }},
		{"instructor", func(in *course.CreateInput) { in.Instructor = "" }},
		{"imageBase64", func(in *course.CreateInput) { in.ImageBase64 = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, store, uploader := newTestService(t)
			in := validInput()
			tt.strip(&in)

			_, err := svc.Create(context.Background(), in)
			assert.ErrorIs(t, err, course.ErrMissingFields)
			assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))

			assert.Zero(t, uploader.calls, "no image host call")
			all, _ := store.Courses().List(context.Background(), "")
			assert.Empty(t, all, "no store write")
		})
	}
}

func TestCreate_UploadFailure(t *testing.T) {
	svc, store, uploader := newTestService(t)
	uploader.err = errors.New("imgbb timeout")

	_, err := svc.Create(context.Background(), validInput())
	assert.Equal(t, apperror.KindServer, apperror.KindOf(err))

	all, _ := store.Courses().List(context.Background(), "")
	assert.Empty(t, all)
}

func TestCreate_StoreFailure(t *testing.T) {
	svc, store, _ := newTestService(t)
	store.FailWith(errors.New("store down"))

	_, err := svc.Create(context.Background(), validInput())
	assert.Equal(t, apperror.KindServer, apperror.KindOf(err))
}

func TestList_CategoryFilter(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	math := validInput()
	art := validInput()
	art.Title = "Watercolor"
	art.Category = "art"

	first, err := svc.Create(ctx, math)
	require.NoError(t, err)
	_, err = svc.Create(ctx, art)
	require.NoError(t, err)

	got, err := svc.List(ctx, "math")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, first.ID, got[0].ID)

	all, err := svc.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	none, err := svc.List(ctx, "Math")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestList_StoreFailure(t *testing.T) {
	svc, store, _ := newTestService(t)
	store.FailWith(errors.New("store down"))

	_, err := svc.List(context.Background(), "")
	assert.Equal(t, apperror.KindServer, apperror.KindOf(err))
}

func TestUpdate_ReplacesOnlyGivenFields(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	c, err := svc.Create(ctx, validInput())
	require.NoError(t, err)

	require.NoError(t, svc.Update(ctx, c.ID, course.Patch{Title: ptr("Algebra II"), Price: ptr(25.0)}))

	got, err := svc.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Algebra II", got[0].Title)
	assert.Equal(t, 25.0, got[0].Price)
	assert.Equal(t, c.Description, got[0].Description)
	assert.Equal(t, c.Image, got[0].Image)
}

func TestUpdate_UnknownIDSucceeds(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	_, err := svc.Create(ctx, validInput())
	require.NoError(t, err)

	before, _ := svc.List(ctx, "")
	require.NoError(t, svc.Update(ctx, "7f1c1c9e-5d39-4d4b-9a0c-3b6f1f3c2e11", course.Patch{Title: ptr("ghost")}))
	after, _ := svc.List(ctx, "")

	assert.Len(t, after, len(before))
	assert.Equal(t, before, after)
}

func TestUpdate_MalformedIDIsServerError(t *testing.T) {
	svc, _, _ := newTestService(t)

	err := svc.Update(context.Background(), "zzz", course.Patch{Title: ptr("x")})
	assert.ErrorIs(t, err, course.ErrMalformedID)
	assert.Equal(t, apperror.KindServer, apperror.KindOf(err))
}

func TestDelete_RemovesOnlyTargetAndIsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	a, err := svc.Create(ctx, validInput())
	require.NoError(t, err)
	b, err := svc.Create(ctx, validInput())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, a.ID))

	got, _ := svc.List(ctx, "")
	require.Len(t, got, 1)
	assert.Equal(t, b.ID, got[0].ID)

	require.NoError(t, svc.Delete(ctx, a.ID))
	got, _ = svc.List(ctx, "")
	assert.Len(t, got, 1)
}

func TestDelete_MalformedIDIsServerError(t *testing.T) {
	svc, _, _ := newTestService(t)

	err := svc.Delete(context.Background(), "zzz")
	assert.Equal(t, apperror.KindServer, apperror.KindOf(err))
}
