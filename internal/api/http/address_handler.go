package http

import (
	"net/http"

	"timeless-backend/internal/service"
)

type AddressHandler struct {
	addrSvc service.AddressService
}

func NewAddressHandler(addrSvc service.AddressService) *AddressHandler {
	return &AddressHandler{addrSvc: addrSvc}
}

func (h *AddressHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.AddressInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, err)
		return
	}

	addr, err := h.addrSvc.Create(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, addr)
}

func (h *AddressHandler) List(w http.ResponseWriter, r *http.Request) {
	addrs, err := h.addrSvc.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, addrs)
}

func (h *AddressHandler) Get(w http.ResponseWriter, r *http.Request) {
	actor, _ := ActorFromContext(r.Context())
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	addr, err := h.addrSvc.Get(r.Context(), actor, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, addr)
}

func (h *AddressHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, _ := ActorFromContext(r.Context())
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var input service.AddressInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, err)
		return
	}

	addr, err := h.addrSvc.Update(r.Context(), actor, id, input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, addr)
}

func (h *AddressHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.addrSvc.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Address removed"})
}
