package rbac

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wheels-hub/wheels-hub/internal/platform/httpx"
	"github.com/wheels-hub/wheels-hub/internal/shared"
)

// Handler exposes the capability set of the current session so the frontend
// can build its menu once instead of sprinkling role checks per component.
type Handler struct{}

// MountRoutes registers capability routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.handleCapabilities)
}

type capabilitiesResponse struct {
	Role         string   `json:"role"`
	Capabilities []string `json:"capabilities"`
}

func (h *Handler) handleCapabilities(w http.ResponseWriter, r *http.Request) {
	sess := shared.SessionFromContext(r.Context())
	if sess == nil || sess.User() == "" {
		httpx.RespondError(w, httpx.ErrUnauthorized)
		return
	}
	httpx.JSON(w, http.StatusOK, capabilitiesResponse{
		Role:         sess.Role(),
		Capabilities: sess.Capabilities(),
	})
}
