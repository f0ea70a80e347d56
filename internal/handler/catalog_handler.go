package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"storefront/internal/service"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.svc.Catalog.ListProducts(r.Context())
	if err != nil {
		h.writeError(w, r, err, "Failed to fetch products.")
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *Handler) TodayDeals(w http.ResponseWriter, r *http.Request) {
	products, err := h.svc.Catalog.TodayDeals(r.Context())
	if err != nil {
		h.writeError(w, r, err, "Error fetching today's deals.")
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.Catalog.ListCategories(r.Context())
	if err != nil {
		h.writeError(w, r, err, "Error fetching categories.")
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	// Product ids are int4; anything wider cannot exist.
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 32)
	if errors.Is(err, strconv.ErrRange) {
		h.writeError(w, r, fmt.Errorf("%w: id out of range", service.ErrProductNotFound), "Error fetching product details.")
		return
	}
	if err != nil {
		h.badRequest(w, "Invalid Product ID.")
		return
	}

	product, err := h.svc.Catalog.GetProduct(r.Context(), int(id))
	if err != nil {
		h.writeError(w, r, err, "Error fetching product details.")
		return
	}
	writeJSON(w, http.StatusOK, product)
}

func (h *Handler) ProductsByCategory(w http.ResponseWriter, r *http.Request) {
	products, err := h.svc.Catalog.ProductsByCategory(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		h.writeError(w, r, err, "Error fetching products by category.")
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	products, err := h.svc.Catalog.Search(r.Context(), r.URL.Query().Get("query"))
	if err != nil {
		h.writeError(w, r, err, "Error during search.")
		return
	}
	writeJSON(w, http.StatusOK, products)
}
