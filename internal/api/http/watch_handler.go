package http

import (
	"net/http"

	"timeless-backend/internal/service"
)

type WatchHandler struct {
	watchSvc service.WatchService
}

func NewWatchHandler(watchSvc service.WatchService) *WatchHandler {
	return &WatchHandler{watchSvc: watchSvc}
}

func (h *WatchHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.WatchInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, err)
		return
	}

	watch, err := h.watchSvc.Create(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, watch)
}

func (h *WatchHandler) List(w http.ResponseWriter, r *http.Request) {
	watches, err := h.watchSvc.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, watches)
}

func (h *WatchHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	watch, err := h.watchSvc.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, watch)
}

func (h *WatchHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var input service.WatchInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, err)
		return
	}

	watch, err := h.watchSvc.Update(r.Context(), id, input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, watch)
}

func (h *WatchHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.watchSvc.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Watch removed"})
}
