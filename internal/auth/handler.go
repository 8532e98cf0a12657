package auth

import (
	"encoding/json"
	"net/http"

	"github.com/redmonkez12/learnhub-api/internal/apperror"
	"github.com/redmonkez12/learnhub-api/internal/httputil"
	"github.com/redmonkez12/learnhub-api/internal/logging"
)

// Handler contains HTTP handlers for authentication endpoints
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles user registration
// @Summary      Register a new user
// @Description  Create a password account. The password needs an uppercase letter, a lowercase letter and at least 6 characters.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body RegisterInput true "Registration data"
// @Success      201 {object} AuthResult
// @Failure      400 {object} httputil.ErrorResponse "Password policy violation or user already exists"
// @Failure      500 {object} httputil.ErrorResponse "Internal server error"
// @Router       /register [post]
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	var req RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid registration request body", "error", err.Error())
		httputil.RespondErrorWithCode(w, "invalid request body", httputil.CodeInvalidRequestBody, http.StatusBadRequest)
		return
	}

	logger = logger.WithFields(map[string]any{"email": req.Email})

	result, err := h.service.Register(r.Context(), req)
	if err != nil {
		logFailure(logger, "registration failed", err)
		httputil.RespondAppError(w, err)
		return
	}

	logger.Info("user registered successfully")
	httputil.RespondJSON(w, result, http.StatusCreated)
}

// Login handles user login
// @Summary      User login
// @Description  Authenticate with email and password and receive a session token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login credentials"
// @Success      200 {object} AuthResult
// @Failure      400 {object} httputil.ErrorResponse "User not found or invalid password"
// @Failure      500 {object} httputil.ErrorResponse "Internal server error"
// @Router       /login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid login request body", "error", err.Error())
		httputil.RespondErrorWithCode(w, "invalid request body", httputil.CodeInvalidRequestBody, http.StatusBadRequest)
		return
	}

	logger = logger.WithFields(map[string]any{"email": req.Email})

	result, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		logFailure(logger, "login failed", err)
		httputil.RespondAppError(w, err)
		return
	}

	logger.Info("user logged in successfully")
	httputil.RespondJSON(w, result, http.StatusOK)
}

// GoogleLogin handles federated login
// @Summary      Google login
// @Description  Sign in with an identity asserted by Google. Unknown emails get an account on first use.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body GoogleLoginInput true "Google profile"
// @Success      200 {object} AuthResult
// @Failure      500 {object} httputil.ErrorResponse "Internal server error"
// @Router       /google-login [post]
func (h *Handler) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	var req GoogleLoginInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid google login request body", "error", err.Error())
		httputil.RespondErrorWithCode(w, "invalid request body", httputil.CodeInvalidRequestBody, http.StatusBadRequest)
		return
	}

	logger = logger.WithFields(map[string]any{"email": req.Email})

	result, err := h.service.GoogleLogin(r.Context(), req)
	if err != nil {
		logFailure(logger, "google login failed", err)
		httputil.RespondAppError(w, err)
		return
	}

	logger.Info("google login successful")
	httputil.RespondJSON(w, result, http.StatusOK)
}

// logFailure logs client errors at warn and server errors with their cause at error
func logFailure(logger *logging.Logger, msg string, err error) {
	appErr := apperror.From(err)
	if appErr.Kind == apperror.KindServer {
		logger.Error(msg+": internal error", "error", err.Error())
		return
	}
	logger.Warn(msg, "code", appErr.Code)
}
