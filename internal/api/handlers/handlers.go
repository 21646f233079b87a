package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/talx-hub/gopher-accounts/internal/api/dto"
	"github.com/talx-hub/gopher-accounts/internal/api/middlewares"
	"github.com/talx-hub/gopher-accounts/internal/model"
	"github.com/talx-hub/gopher-accounts/internal/model/user"
	"github.com/talx-hub/gopher-accounts/internal/serviceerrs"
	"github.com/talx-hub/gopher-accounts/internal/utils/auth"
	"github.com/talx-hub/gopher-accounts/internal/utils/logger"
)

type AccountService interface {
	Register(ctx context.Context, username, email, password, confirm string) (int64, error)
	Authenticate(ctx context.Context, username, password string) (user.User, error)
	GetUserID(ctx context.Context, username string) (int64, error)
	GetUsername(ctx context.Context, id int64) (string, error)
}

type AuthHandler struct {
	service AccountService
	secret  string
}

func NewAuthHandler(service AccountService, secret string) *AuthHandler {
	return &AuthHandler{
		service: service,
		secret:  secret,
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.FromContext(r.Context()).LogAttrs(r.Context(),
			slog.LevelError,
			"failed to decode register request",
			slog.Any(model.KeyLoggerError, err),
		)
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	id, err := h.service.Register(r.Context(),
		req.Login, req.Email, req.Password, req.ConfirmPassword)
	if err != nil {
		writeServiceError(w, err, statusOf(err))
		return
	}

	h.setToken(w, r, id)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.FromContext(r.Context()).LogAttrs(r.Context(),
			slog.LevelError,
			"failed to decode login request",
			slog.Any(model.KeyLoggerError, err),
		)
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	u, err := h.service.Authenticate(r.Context(), req.Login, req.Password)
	if err != nil {
		code := statusOf(err)
		switch serviceerrs.KindOf(err) {
		case serviceerrs.KindValidation, serviceerrs.KindNotFound:
			code = http.StatusUnauthorized
		default:
		}
		writeServiceError(w, err, code)
		return
	}

	h.setToken(w, r, u.ID)
}

func (h *AuthHandler) setToken(w http.ResponseWriter, r *http.Request, id int64) {
	cookie, err := auth.Authenticate(id, []byte(h.secret))
	if err != nil {
		logger.FromContext(r.Context()).LogAttrs(r.Context(),
			slog.LevelError,
			"failed to issue token",
			slog.Any(model.KeyLoggerError, err),
		)
		http.Error(w, http.StatusText(http.StatusInternalServerError),
			http.StatusInternalServerError)
		return
	}
	http.SetCookie(w, &cookie)
	w.WriteHeader(http.StatusOK)
}

type UserHandler struct {
	service AccountService
}

func NewUserHandler(service AccountService) *UserHandler {
	return &UserHandler{
		service: service,
	}
}

// GetUserID looks up the id of ?login=. Without the parameter it answers
// with the id of the authenticated caller.
func (h *UserHandler) GetUserID(w http.ResponseWriter, r *http.Request) {
	login := r.URL.Query().Get("login")
	if login == "" {
		id, ok := middlewares.UserIDFromContext(r.Context())
		if !ok {
			http.Error(w, http.StatusText(http.StatusUnauthorized),
				http.StatusUnauthorized)
			return
		}
		h.writeJSON(w, r, dto.UserIDResponse{ID: id})
		return
	}

	id, err := h.service.GetUserID(r.Context(), login)
	if err != nil {
		writeServiceError(w, err, statusOf(err))
		return
	}

	h.writeJSON(w, r, dto.UserIDResponse{ID: id})
}

func (h *UserHandler) GetUsername(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "bad user id", http.StatusBadRequest)
		return
	}

	name, err := h.service.GetUsername(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, statusOf(err))
		return
	}

	h.writeJSON(w, r, dto.UsernameResponse{Login: name})
}

func (h *UserHandler) writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	w.Header().Set(model.HeaderContentType, "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.FromContext(r.Context()).LogAttrs(r.Context(),
			slog.LevelError,
			"failed to encode response",
			slog.Any(model.KeyLoggerError, err),
		)
	}
}

type Pinger interface {
	Ready(ctx context.Context) error
}

type HealthHandler struct {
	db Pinger
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) Ping(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Ready(r.Context()); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError),
			http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func statusOf(err error) int {
	switch serviceerrs.KindOf(err) {
	case serviceerrs.KindValidation:
		return http.StatusBadRequest
	case serviceerrs.KindConflict:
		return http.StatusConflict
	case serviceerrs.KindNotFound:
		return http.StatusNotFound
	case serviceerrs.KindInvalidCredentials:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// writeServiceError sends the user-facing message of a service error.
// Anything else answering with 5xx gets the generic status text.
func writeServiceError(w http.ResponseWriter, err error, code int) {
	msg := serviceerrs.MessageOf(err)
	var se *serviceerrs.Error
	if code >= http.StatusInternalServerError && !errors.As(err, &se) {
		msg = http.StatusText(code)
	}
	http.Error(w, msg, code)
}
