package course

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/redmonkez12/learnhub-api/internal/apperror"
	"github.com/redmonkez12/learnhub-api/internal/logging"
)

var (
	ErrMissingFields = apperror.Validation("missing_fields", "All fields are required")
	// Malformed ids are reported as server errors for client compatibility
	ErrMalformedID = &apperror.Error{Kind: apperror.KindServer, Code: "invalid_id", Message: "Server error"}
)

// ImageUploader hosts an image and returns its public URL
type ImageUploader interface {
	Upload(ctx context.Context, imageBase64 string) (string, error)
}

// CreateInput carries the fields required to create a course.
// Price is a pointer so that an absent price differs from zero.
type CreateInput struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Category    string   `json:"category" validate:"required"`
	Price       *float64 `json:"price" validate:"required"`
	Instructor  string   `json:"instructor" validate:"required"`
	ImageBase64 string   `json:"imageBase64" validate:"required"`
}

// Service handles catalog business logic
type Service struct {
	repo     Repository
	images   ImageUploader
	validate *validator.Validate
	logger   *logging.Logger
	now      func() time.Time
}

func NewService(repo Repository, images ImageUploader, logger *logging.Logger) *Service {
	return &Service{
		repo:     repo,
		images:   images,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger,
		now:      time.Now,
	}
}

// List returns all courses, or those in category when it is non-empty
func (s *Service) List(ctx context.Context, category string) ([]Course, error) {
	courses, err := s.repo.List(ctx, category)
	if err != nil {
		return nil, apperror.Server(fmt.Errorf("failed to list courses: %w", err))
	}
	return courses, nil
}

// Create uploads the image and stores the new course.
// Validation happens before any outbound call or write.
func (s *Service) Create(ctx context.Context, in CreateInput) (*Course, error) {
	if err := s.validate.StructCtx(ctx, in); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return nil, ErrMissingFields
		}
		return nil, apperror.Server(fmt.Errorf("failed to validate course: %w", err))
	}

	imageURL, err := s.images.Upload(ctx, in.ImageBase64)
	if err != nil {
		return nil, apperror.Server(fmt.Errorf("failed to upload course image: %w", err))
	}

	c := &Course{
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		Price:       *in.Price,
		Instructor:  in.Instructor,
		Image:       imageURL,
		CreatedAt:   s.now().UTC(),
	}

	if err := s.repo.Create(ctx, c); err != nil {
		// The hosted image stays orphaned; nothing deletes it
		s.logger.Warn("course insert failed after image upload", "image", imageURL)
		return nil, apperror.Server(fmt.Errorf("failed to create course: %w", err))
	}

	return c, nil
}

// Update replaces the patched fields. An unknown id is not an error.
func (s *Service) Update(ctx context.Context, id string, patch Patch) error {
	if err := s.repo.Update(ctx, id, patch); err != nil {
		return mapRepoError("update", err)
	}
	return nil
}

// Delete removes the course. An unknown id is not an error.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return mapRepoError("delete", err)
	}
	return nil
}

func mapRepoError(op string, err error) error {
	if errors.Is(err, ErrInvalidID) {
		return ErrMalformedID.Wrap(err)
	}
	return apperror.Server(fmt.Errorf("failed to %s course: %w", op, err))
}
