package course

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/redmonkez12/learnhub-api/internal/apperror"
	"github.com/redmonkez12/learnhub-api/internal/httputil"
	"github.com/redmonkez12/learnhub-api/internal/logging"
)

// Handler exposes the catalog over HTTP
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// CreateResponse is the body returned after a course is created
type CreateResponse struct {
	Message string  `json:"message"`
	Course  *Course `json:"course"`
}

// List handles catalog reads
// @Summary      List courses
// @Description  Return every course, or only those in the given category
// @Tags         courses
// @Produce      json
// @Param        category query string false "Exact category to match"
// @Success      200 {array} Course
// @Failure      500 {object} httputil.ErrorResponse "Internal server error"
// @Router       /courses [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())
	category := r.URL.Query().Get("category")

	courses, err := h.service.List(r.Context(), category)
	if err != nil {
		logger.Error("failed to list courses", "category", category, "error", err.Error())
		httputil.RespondAppError(w, err)
		return
	}

	httputil.RespondJSON(w, courses, http.StatusOK)
}

// Create handles course creation
// @Summary      Create a course
// @Description  Upload the image to the image host and store the course
// @Tags         courses
// @Accept       json
// @Produce      json
// @Param        request body CreateInput true "Course fields and base64 image"
// @Success      201 {object} CreateResponse
// @Failure      400 {object} httputil.ErrorResponse "Missing fields"
// @Failure      500 {object} httputil.ErrorResponse "Internal server error"
// @Router       /courses [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	var req CreateInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid create course request body", "error", err.Error())
		httputil.RespondErrorWithCode(w, "invalid request body", httputil.CodeInvalidRequestBody, http.StatusBadRequest)
		return
	}

	created, err := h.service.Create(r.Context(), req)
	if err != nil {
		if apperror.KindOf(err) == apperror.KindServer {
			logger.Error("course creation failed: internal error", "error", err.Error())
		} else {
			logger.Warn("course creation failed: missing fields")
		}
		httputil.RespondAppError(w, err)
		return
	}

	logger.Info("course created", "course_id", created.ID)
	httputil.RespondJSON(w, CreateResponse{Message: "Course created successfully", Course: created}, http.StatusCreated)
}

// Update handles partial course updates
// @Summary      Update a course
// @Description  Replace the given fields. Unknown ids succeed without effect.
// @Tags         courses
// @Accept       json
// @Produce      json
// @Param        id path string true "Course ID"
// @Param        request body Patch false "Fields to replace"
// @Success      200 {object} httputil.MessageResponse
// @Failure      500 {object} httputil.ErrorResponse "Malformed id or internal error"
// @Router       /courses/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	logger := logging.GetLoggerFromContext(r.Context()).WithFields(map[string]any{"course_id": id})

	// A missing body is an empty patch
	var patch Patch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil && !errors.Is(err, io.EOF) {
		logger.Warn("invalid update course request body", "error", err.Error())
		httputil.RespondErrorWithCode(w, "invalid request body", httputil.CodeInvalidRequestBody, http.StatusBadRequest)
		return
	}

	if err := h.service.Update(r.Context(), id, patch); err != nil {
		logger.Error("course update failed", "error", err.Error())
		httputil.RespondAppError(w, err)
		return
	}

	logger.Info("course updated")
	httputil.RespondJSON(w, httputil.MessageResponse{Message: "Course updated successfully"}, http.StatusOK)
}

// Delete handles course removal
// @Summary      Delete a course
// @Description  Remove the course. Unknown ids succeed without effect.
// @Tags         courses
// @Produce      json
// @Param        id path string true "Course ID"
// @Success      200 {object} httputil.MessageResponse
// @Failure      500 {object} httputil.ErrorResponse "Malformed id or internal error"
// @Router       /courses/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	logger := logging.GetLoggerFromContext(r.Context()).WithFields(map[string]any{"course_id": id})

	if err := h.service.Delete(r.Context(), id); err != nil {
		logger.Error("course delete failed", "error", err.Error())
		httputil.RespondAppError(w, err)
		return
	}

	logger.Info("course deleted")
	httputil.RespondJSON(w, httputil.MessageResponse{Message: "Course deleted successfully"}, http.StatusOK)
}
