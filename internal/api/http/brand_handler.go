package http

import (
	"net/http"

	"timeless-backend/internal/service"
)

type BrandHandler struct {
	brandSvc service.BrandService
}

func NewBrandHandler(brandSvc service.BrandService) *BrandHandler {
	return &BrandHandler{brandSvc: brandSvc}
}

func (h *BrandHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.BrandInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, err)
		return
	}

	brand, err := h.brandSvc.Create(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, brand)
}

func (h *BrandHandler) List(w http.ResponseWriter, r *http.Request) {
	brands, err := h.brandSvc.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, brands)
}

func (h *BrandHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	brand, err := h.brandSvc.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, brand)
}

func (h *BrandHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var input service.BrandInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, err)
		return
	}

	brand, err := h.brandSvc.Update(r.Context(), id, input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, brand)
}

func (h *BrandHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.brandSvc.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Brand removed"})
}
