package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/eagleeyes/storefront/internal/api/httpx"
	"github.com/eagleeyes/storefront/internal/models"
	"github.com/eagleeyes/storefront/internal/money"
	"github.com/eagleeyes/storefront/internal/services"
)

type CatalogHandler struct {
	svc *services.CatalogService
	log *slog.Logger
}

func NewCatalogHandler(svc *services.CatalogService, log *slog.Logger) *CatalogHandler {
	return &CatalogHandler{svc: svc, log: log}
}

type productView struct {
	models.Product
	PriceFormatted string `json:"price_formatted"`
	StockLabel     string `json:"stock_label"`
}

func viewProduct(p models.Product) productView {
	return productView{Product: p, PriceFormatted: money.FormatNGN(p.Price), StockLabel: services.StockLabel(p)}
}

// ListProducts serves GET /products?category=&q=&max_price=&sort=
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	qs := r.URL.Query()
	q := services.ProductQuery{
		Category: qs.Get("category"),
		Search:   qs.Get("q"),
		Sort:     services.ProductSort(qs.Get("sort")),
	}
	if v := qs.Get("max_price"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n < 0 {
			httpx.WriteError(w, r, http.StatusBadRequest, "validation_failed", "invalid request",
				[]map[string]string{{"field": "max_price", "msg": "must be a non-negative integer"}})
			return
		}
		q.MaxPrice = n
	}

	ps := h.svc.ListProducts(q)
	out := make([]productView, 0, len(ps))
	for _, p := range ps {
		out = append(out, viewProduct(p))
	}
	httpx.WriteJSON(w, r, http.StatusOK, out)
}

func (h *CatalogHandler) Categories(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, r, http.StatusOK, map[string]any{
		"categories": h.svc.ProductCategories(),
		"max_price":  h.svc.MaxProductPrice(),
	})
}

func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.GetProduct(chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	httpx.WriteJSON(w, r, http.StatusOK, viewProduct(p))
}

func (h *CatalogHandler) ListCourses(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, r, http.StatusOK, h.svc.ListCourses())
}

func (h *CatalogHandler) GetCourse(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.GetCourse(chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	httpx.WriteJSON(w, r, http.StatusOK, c)
}

func (h *CatalogHandler) ListBlogPosts(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, r, http.StatusOK, h.svc.ListBlogPosts())
}

func (h *CatalogHandler) GetBlogPost(w http.ResponseWriter, r *http.Request) {
	b, err := h.svc.GetBlogPost(chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	httpx.WriteJSON(w, r, http.StatusOK, b)
}
