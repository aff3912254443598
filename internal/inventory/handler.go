package inventory

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/wheels-hub/wheels-hub/internal/platform/httpx"
	"github.com/wheels-hub/wheels-hub/internal/rbac"
	"github.com/wheels-hub/wheels-hub/internal/reportkit"
	"github.com/wheels-hub/wheels-hub/internal/shared"
)

// Handler exposes the inventory HTTP surface.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	stream    *Stream
	guard     rbac.Middleware
	validator *validator.Validate
}

// NewHandler constructs a Handler.
func NewHandler(logger *slog.Logger, service *Service, stream *Stream, guard rbac.Middleware) *Handler {
	return &Handler{
		logger:    logger,
		service:   service,
		stream:    stream,
		guard:     guard,
		validator: validator.New(),
	}
}

// MountRoutes registers inventory routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(h.guard.RequireAny(rbac.CapInventoryView))
		r.Get("/", h.handleList)
		r.Get("/summary", h.handleSummary)
		r.Get("/stream", h.stream.ServeHTTP)
		r.Get("/{id}", h.handleGet)
	})
	r.Group(func(r chi.Router) {
		r.Use(h.guard.RequireAll(rbac.CapInventoryEdit))
		r.Post("/", h.handleCreate)
		r.Patch("/{id}/stock", h.handleSetStock)
		r.Post("/reset", h.handleReset)
	})
}

type itemView struct {
	Item
	StockLevel string `json:"stock_level"`
	StockBand  string `json:"stock_band"`
}

func viewOf(item Item) itemView {
	return itemView{Item: item, StockLevel: item.StockLevel(), StockBand: string(item.StockBand())}
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	criteria := reportkit.ParseCriteria(r.URL.Query())
	items, err := h.service.List(r.Context(), criteria)
	if err != nil {
		h.logger.Error("inventory list failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	page, perPage := shared.ParsePagination(r.URL.Query())
	window := shared.PageSlice(items, page, perPage)
	views := make([]itemView, 0, len(window))
	for _, item := range window {
		views = append(views, viewOf(item))
	}
	httpx.JSON(w, http.StatusOK, map[string]any{
		"items":      views,
		"pagination": shared.NewPagination(page, perPage, len(items)),
	})
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid ID", "item id must be numeric")
		return
	}
	item, err := h.service.Get(r.Context(), id)
	if errors.Is(err, shared.ErrNotFound) {
		httpx.RespondError(w, httpx.ErrNotFound)
		return
	}
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, viewOf(item))
}

type createRequest struct {
	Name          string  `json:"name" validate:"required,min=2"`
	Category      string  `json:"category"`
	Price         float64 `json:"price" validate:"gte=0"`
	StockQuantity int     `json:"stock_quantity" validate:"gte=0"`
	ReorderLevel  int     `json:"reorder_level" validate:"gte=0"`
	Description   string  `json:"description"`
	ImageURL      string  `json:"image_url" validate:"omitempty,url"`
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid JSON", err.Error())
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	actorID, _ := currentUserID(r)
	item, err := h.service.Create(r.Context(), CreateInput{
		Name:          req.Name,
		Category:      req.Category,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
		ReorderLevel:  req.ReorderLevel,
		Description:   req.Description,
		ImageURL:      req.ImageURL,
		ActorID:       actorID,
	})
	switch {
	case errors.Is(err, ErrNameRequired), errors.Is(err, ErrInvalidPrice), errors.Is(err, ErrInvalidQuantity):
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	case err != nil:
		h.logger.Error("inventory create failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, viewOf(item))
}

type setStockRequest struct {
	Quantity int `json:"quantity" validate:"gte=0"`
}

func (h *Handler) handleSetStock(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid ID", "item id must be numeric")
		return
	}
	var req setStockRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid JSON", err.Error())
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	actorID, _ := currentUserID(r)
	item, err := h.service.SetStock(r.Context(), actorID, id, req.Quantity)
	switch {
	case errors.Is(err, shared.ErrNotFound):
		httpx.RespondError(w, httpx.ErrNotFound)
		return
	case errors.Is(err, ErrInvalidQuantity):
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	case err != nil:
		h.logger.Error("inventory stock update failed", slog.Int64("item_id", id), slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, viewOf(item))
}

func (h *Handler) handleReset(w http.ResponseWriter, r *http.Request) {
	actorID, _ := currentUserID(r)
	affected, err := h.service.ResetAllStock(r.Context(), actorID)
	if err != nil {
		h.logger.Error("inventory reset failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]int64{"affected": affected})
}

func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.Summarize(r.Context())
	if err != nil {
		h.logger.Error("inventory summary failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, summary)
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
