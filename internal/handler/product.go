package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/mercato/mercato-api/internal/middleware"
	"github.com/mercato/mercato-api/internal/model"
	"github.com/mercato/mercato-api/internal/service"
)

const (
	defaultSkip  = 0
	defaultLimit = 10
)

// ProductHandler handles HTTP requests for product operations.
type ProductHandler struct {
	service *service.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(svc *service.ProductService) *ProductHandler {
	return &ProductHandler{service: svc}
}

// HandleCreate handles POST /products requests.
func (h *ProductHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("Token inválido ou expirado"))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse("invalid request body"))
		return
	}

	resp, err := h.service.Create(r.Context(), user, req)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleList handles GET /products requests.
func (h *ProductHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.List(r.Context(), parseFilter(r.URL.Query()))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	if products == nil {
		products = []model.ProductResponse{}
	}
	writeJSON(w, http.StatusOK, products)
}

// HandleListOwned handles GET /my-products requests. Same query params
// as the general listing, with the owner forced to the caller.
func (h *ProductHandler) HandleListOwned(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("Token inválido ou expirado"))
		return
	}

	products, err := h.service.ListOwned(r.Context(), user, parseFilter(r.URL.Query()))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	if products == nil {
		products = []model.ProductResponse{}
	}
	writeJSON(w, http.StatusOK, products)
}

// HandleUpdate handles PUT /products/{id} requests.
func (h *ProductHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("Token inválido ou expirado"))
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse("invalid product id"))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse("invalid request body"))
		return
	}

	resp, err := h.service.Update(r.Context(), id, user, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProductNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse("Produto não encontrado"))
		case errors.Is(err, service.ErrNotOwner):
			writeJSON(w, http.StatusForbidden, errorResponse("Você não pode editar este produto"))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleDelete handles DELETE /products/{id} requests.
func (h *ProductHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("Token inválido ou expirado"))
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse("invalid product id"))
		return
	}

	if err := h.service.Delete(r.Context(), id, user); err != nil {
		switch {
		case errors.Is(err, service.ErrProductNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse("Produto não encontrado"))
		case errors.Is(err, service.ErrNotOwner):
			writeJSON(w, http.StatusForbidden, errorResponse("Você não pode deletar este produto"))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// parseFilter reads the listing predicates from the query string.
// Unparseable numbers are treated as absent; skip and limit fall back
// to their defaults but are otherwise passed through unclamped.
func parseFilter(query url.Values) model.ProductFilter {
	filter := model.ProductFilter{
		Search:   query.Get("search"),
		OrderBy:  query.Get("order_by"),
		OrderDir: query.Get("order_dir"),
		Skip:     defaultSkip,
		Limit:    defaultLimit,
	}

	if v := query.Get("min_price"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MinPrice = &f
		}
	}
	if v := query.Get("max_price"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MaxPrice = &f
		}
	}
	if v := query.Get("skip"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filter.Skip = n
		}
	}
	if v := query.Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filter.Limit = n
		}
	}

	return filter
}
