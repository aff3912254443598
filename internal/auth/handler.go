package auth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/wheels-hub/wheels-hub/internal/platform/httpx"
	"github.com/wheels-hub/wheels-hub/internal/rbac"
	"github.com/wheels-hub/wheels-hub/internal/shared"
)

// Session value keys for a login awaiting its second factor.
const (
	pendingUserKey   = "pending_user_id"
	pendingMethodKey = "pending_method"
)

// TwoFactorPort is the slice of the twofactor service the login flow needs.
type TwoFactorPort interface {
	// ActiveMethod returns "totp", "email" or "" when disabled.
	ActiveMethod(ctx context.Context, userID int64) (string, error)
	VerifyLogin(ctx context.Context, userID int64, method, code string) error
	SendEmailCode(ctx context.Context, userID int64, email string) error
}

// Handler wires HTTP endpoints for authentication flows.
type Handler struct {
	logger         *slog.Logger
	service        *Service
	sessionManager *shared.SessionManager
	csrfManager    *shared.CSRFManager
	twoFactor      TwoFactorPort
	validator      *validator.Validate
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service, sessions *shared.SessionManager, csrf *shared.CSRFManager, twoFactor TwoFactorPort) *Handler {
	return &Handler{
		logger:         logger,
		service:        service,
		sessionManager: sessions,
		csrfManager:    csrf,
		twoFactor:      twoFactor,
		validator:      validator.New(),
	}
}

// MountRoutes registers auth routes on provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/csrf", h.handleCSRF)
	r.Post("/signup", h.handleSignup)
	r.Post("/login", h.handleLogin)
	r.Post("/verify", h.handleVerify)
	r.Post("/logout", h.handleLogout)
	r.Get("/me", h.handleMe)
}

type signupRequest struct {
	Name     string `json:"name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type verifyRequest struct {
	Code string `json:"code" validate:"required,len=6,numeric"`
}

type userPayload struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type sessionResponse struct {
	User         userPayload `json:"user"`
	Capabilities []string    `json:"capabilities"`
	CSRFToken    string      `json:"csrf_token"`
}

type challengeResponse struct {
	TwoFactorRequired bool   `json:"two_factor_required"`
	Method            string `json:"method"`
	CSRFToken         string `json:"csrf_token"`
}

// handleCSRF hands the session's CSRF token to anonymous clients, so the
// sign-in and sign-up posts can pass the CSRF check on a fresh session.
func (h *Handler) handleCSRF(w http.ResponseWriter, r *http.Request) {
	sess := shared.SessionFromContext(r.Context())
	if sess == nil {
		httpx.RespondError(w, errors.New("session missing"))
		return
	}
	token, err := h.csrfManager.EnsureToken(r.Context(), sess)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"csrf_token": token})
}

func (h *Handler) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, httpx.ErrValidation)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	user, err := h.service.Register(r.Context(), RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     rbac.Role(req.Role),
	})
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			httpx.RespondError(w, httpx.ErrDuplicate)
			return
		}
		httpx.Problem(w, http.StatusBadRequest, "Sign Up Failed", err.Error())
		return
	}
	h.completeLogin(w, r, user, http.StatusCreated)
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, httpx.ErrValidation)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	user, err := h.service.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		httpx.Problem(w, http.StatusUnauthorized, "Unauthorized", "invalid email or password")
		return
	}

	method := ""
	if h.twoFactor != nil {
		method, err = h.twoFactor.ActiveMethod(r.Context(), user.ID)
		if err != nil {
			h.logger.Error("check two-factor", slog.Any("error", err))
			httpx.RespondError(w, err)
			return
		}
	}
	if method == "" {
		h.completeLogin(w, r, user, http.StatusOK)
		return
	}

	sess := shared.SessionFromContext(r.Context())
	if sess == nil {
		h.logger.Error("session missing during login")
		httpx.RespondError(w, errors.New("session missing"))
		return
	}
	sess.Set(pendingUserKey, strconv.FormatInt(user.ID, 10))
	sess.Set(pendingMethodKey, method)
	if method == "email" {
		if err := h.twoFactor.SendEmailCode(r.Context(), user.ID, user.Email); err != nil {
			h.logger.Error("send email code", slog.Any("error", err))
			httpx.RespondError(w, err)
			return
		}
	}
	csrfToken, _ := h.csrfManager.EnsureToken(r.Context(), sess)
	httpx.JSON(w, http.StatusOK, challengeResponse{TwoFactorRequired: true, Method: method, CSRFToken: csrfToken})
}

func (h *Handler) handleVerify(w http.ResponseWriter, r *http.Request) {
	sess := shared.SessionFromContext(r.Context())
	if sess == nil || sess.Get(pendingUserKey) == "" {
		httpx.RespondError(w, httpx.ErrUnauthorized)
		return
	}
	var req verifyRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, httpx.ErrValidation)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	userID, err := strconv.ParseInt(sess.Get(pendingUserKey), 10, 64)
	if err != nil {
		httpx.RespondError(w, httpx.ErrUnauthorized)
		return
	}
	method := sess.Get(pendingMethodKey)
	if err := h.twoFactor.VerifyLogin(r.Context(), userID, method, req.Code); err != nil {
		httpx.Problem(w, http.StatusUnauthorized, "Unauthorized", "verification code rejected")
		return
	}
	user, err := h.service.GetUser(r.Context(), userID)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	sess.Delete(pendingUserKey)
	sess.Delete(pendingMethodKey)
	h.completeLogin(w, r, user, http.StatusOK)
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	sess := shared.SessionFromContext(r.Context())
	if sess != nil {
		if raw := sess.User(); raw != "" {
			if userID, err := strconv.ParseInt(raw, 10, 64); err == nil {
				if err := h.service.RemoveSession(r.Context(), sess.ID, userID); err != nil {
					h.logger.Warn("remove session", slog.Any("error", err))
				}
			}
		}
		h.sessionManager.Destroy(sess)
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"status": "signed_out"})
}

func (h *Handler) handleMe(w http.ResponseWriter, r *http.Request) {
	sess := shared.SessionFromContext(r.Context())
	if sess == nil || sess.User() == "" {
		httpx.RespondError(w, httpx.ErrUnauthorized)
		return
	}
	userID, err := strconv.ParseInt(sess.User(), 10, 64)
	if err != nil {
		httpx.RespondError(w, httpx.ErrUnauthorized)
		return
	}
	user, err := h.service.GetUser(r.Context(), userID)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	csrfToken, _ := h.csrfManager.EnsureToken(r.Context(), sess)
	httpx.JSON(w, http.StatusOK, sessionResponse{
		User:         toPayload(user),
		Capabilities: sess.Capabilities(),
		CSRFToken:    csrfToken,
	})
}

// completeLogin binds the authenticated user to the session with the
// capability set resolved once for the session lifetime.
func (h *Handler) completeLogin(w http.ResponseWriter, r *http.Request, user *User, status int) {
	sess := shared.SessionFromContext(r.Context())
	if sess == nil {
		h.logger.Error("session missing during login")
		httpx.RespondError(w, errors.New("session missing"))
		return
	}
	caps := rbac.Capabilities(user.Role)
	sess.SetIdentity(strconv.FormatInt(user.ID, 10), string(user.Role), caps)
	sess.Set("email", user.Email)

	expiresAt := time.Now().Add(h.sessionManager.TTL())
	if err := h.service.RegisterSession(r.Context(), sess.ID, user.ID, expiresAt, r.RemoteAddr, r.UserAgent()); err != nil {
		h.logger.Warn("register session", slog.Any("error", err))
	}

	csrfToken, _ := h.csrfManager.EnsureToken(r.Context(), sess)
	httpx.JSON(w, status, sessionResponse{
		User:         toPayload(user),
		Capabilities: caps,
		CSRFToken:    csrfToken,
	})
}

func toPayload(user *User) userPayload {
	return userPayload{ID: user.ID, Name: user.Name, Email: user.Email, Role: string(user.Role)}
}
