package twofactor

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/wheels-hub/wheels-hub/internal/platform/httpx"
	"github.com/wheels-hub/wheels-hub/internal/shared"
)

// Handler wires the two-factor setup endpoints.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *validator.Validate
}

// NewHandler constructs a Handler.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validator: validator.New()}
}

// MountRoutes registers two-factor routes. All of them require a signed-in
// session; the router guards that.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/settings", h.handleSettings)
	r.Post("/totp/enroll", h.handleEnroll)
	r.Post("/totp/confirm", h.handleConfirm)
	r.Post("/totp/disable", h.handleDisableTOTP)
	r.Post("/email", h.handleSetEmail)
}

type settingsResponse struct {
	TOTPEnabled  bool   `json:"totp_enabled"`
	EmailEnabled bool   `json:"email_2fa_enabled"`
	ActiveMethod string `json:"active_method"`
}

type confirmRequest struct {
	Code string `json:"code" validate:"required,len=6,numeric"`
}

type emailToggleRequest struct {
	Enabled bool `json:"enabled"`
}

func (h *Handler) handleSettings(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		httpx.RespondError(w, httpx.ErrUnauthorized)
		return
	}
	settings, err := h.service.Settings(r.Context(), userID)
	if err != nil {
		h.logger.Error("load mfa settings", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, settingsResponse{
		TOTPEnabled:  settings.TOTPEnabled,
		EmailEnabled: settings.EmailEnabled,
		ActiveMethod: settings.ActiveMethod(),
	})
}

func (h *Handler) handleEnroll(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		httpx.RespondError(w, httpx.ErrUnauthorized)
		return
	}
	sess := shared.SessionFromContext(r.Context())
	account := sess.Get("email")
	if account == "" {
		account = strconv.FormatInt(userID, 10)
	}
	enrollment, err := h.service.EnrollTOTP(r.Context(), userID, account)
	if err != nil {
		h.logger.Error("totp enroll", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, enrollment)
}

func (h *Handler) handleConfirm(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		httpx.RespondError(w, httpx.ErrUnauthorized)
		return
	}
	var req confirmRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, httpx.ErrValidation)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	if err := h.service.ConfirmTOTP(r.Context(), userID, req.Code); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Verification Failed", "code rejected")
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"status": "enabled"})
}

func (h *Handler) handleDisableTOTP(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		httpx.RespondError(w, httpx.ErrUnauthorized)
		return
	}
	if err := h.service.DisableTOTP(r.Context(), userID); err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"status": "disabled"})
}

func (h *Handler) handleSetEmail(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		httpx.RespondError(w, httpx.ErrUnauthorized)
		return
	}
	var req emailToggleRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, httpx.ErrValidation)
		return
	}
	if err := h.service.SetEmailEnabled(r.Context(), userID, req.Enabled); err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]bool{"email_2fa_enabled": req.Enabled})
}

func currentUserID(r *http.Request) (int64, bool) {
	sess := shared.SessionFromContext(r.Context())
	if sess == nil || sess.User() == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(sess.User(), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
