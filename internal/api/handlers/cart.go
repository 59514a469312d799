package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/eagleeyes/storefront/internal/api/httpx"
	"github.com/eagleeyes/storefront/internal/models"
	"github.com/eagleeyes/storefront/internal/money"
	"github.com/eagleeyes/storefront/internal/services"
)

type CartHandler struct {
	cart    *services.CartService
	catalog *services.CatalogService
	log     *slog.Logger
}

func NewCartHandler(cart *services.CartService, catalog *services.CatalogService, log *slog.Logger) *CartHandler {
	return &CartHandler{cart: cart, catalog: catalog, log: log}
}

type cartView struct {
	services.CartSnapshot
	TotalFormatted string `json:"total_formatted"`
}

func (h *CartHandler) write(w http.ResponseWriter, r *http.Request) {
	snap := h.cart.Snapshot()
	httpx.WriteJSON(w, r, http.StatusOK, cartView{CartSnapshot: snap, TotalFormatted: money.FormatNGN(snap.Total)})
}

func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) { h.write(w, r) }

type addItemReq struct {
	Kind     string `json:"kind" validate:"required"`
	ID       string `json:"id" validate:"required"`
	Quantity int    `json:"quantity" validate:"omitempty,min=1"`
}

// AddItem looks the item up in the live catalog and adds a snapshot of it.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemReq
	if err := decode(r, &req); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	kind, ok := models.ParseRecordKind(req.Kind)
	if !ok {
		writeServiceError(w, r, h.log, services.ErrUnknownKind)
		return
	}
	item, err := h.catalog.Cartable(kind, req.ID)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	h.cart.Add(item, req.Quantity)
	h.write(w, r)
}

type updateQuantityReq struct {
	Quantity *int `json:"quantity" validate:"required"`
}

// UpdateQuantity replaces a line's quantity; zero or less removes it.
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	var req updateQuantityReq
	if err := decode(r, &req); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	h.cart.UpdateQuantity(chi.URLParam(r, "id"), *req.Quantity)
	h.write(w, r)
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	h.cart.Remove(chi.URLParam(r, "id"))
	h.write(w, r)
}

func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	h.cart.Clear()
	h.write(w, r)
}
