package handlers

import (
	"box-shipping-service/internal/api/dto"
	"box-shipping-service/internal/domain"
	"box-shipping-service/internal/store"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sort"
	"strings"
)

// BoxHandler exposes the box collection over JSON. All mutations go
// through the store's action API; the handler only translates shapes
// and pushes user-facing notifications.
type BoxHandler struct {
	Store    *store.Store
	Notifier *store.Notifier
}

// Collection serves GET (list) and POST (add) on /api/boxes.
func (h *BoxHandler) Collection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.add(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// Item serves PATCH (update) and DELETE (remove) on /api/boxes/{id}.
func (h *BoxHandler) Item(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/boxes/")
	if id == "" || strings.Contains(id, "/") {
		writeError(w, r, http.StatusNotFound, "not found")
		return
	}

	switch r.Method {
	case http.MethodPatch:
		h.update(w, r, id)
	case http.MethodDelete:
		h.remove(w, r, id)
	default:
		w.Header().Set("Allow", "PATCH, DELETE")
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *BoxHandler) list(w http.ResponseWriter, r *http.Request) {
	state := h.Store.Snapshot()

	res := dto.ListBoxesResponse{
		Boxes:   make([]dto.BoxResponse, 0, len(state.Records)),
		Stats:   toStatsResponse(state.Stats),
		Loading: state.Loading,
		Error:   state.Err,
	}
	for _, b := range state.Records {
		res.Boxes = append(res.Boxes, toBoxResponse(b))
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *BoxHandler) add(w http.ResponseWriter, r *http.Request) {
	var req dto.AddBoxRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	candidate := domain.Candidate{
		ReceiverName: req.ReceiverName,
		Weight:       req.Weight.String(),
		BoxColor:     req.BoxColor,
		Country:      req.Country,
	}

	res := h.Store.Add(r.Context(), candidate)

	if len(res.FieldErrors) > 0 {
		h.Notifier.Push(store.LevelWarning, "Please fix: "+fieldList(res.FieldErrors))
		writeJSON(w, r, http.StatusUnprocessableEntity, dto.ValidationErrorResponse{
			Error:  "validation failed",
			Fields: res.FieldErrors,
		})
		return
	}

	if res.Err != nil {
		var unknown *domain.UnknownCountryError
		if errors.As(res.Err, &unknown) {
			h.Notifier.Push(store.LevelError, fmt.Sprintf("Cannot ship to %q", unknown.Key))
			writeError(w, r, http.StatusBadRequest, unknown.Error())
			return
		}

		log.Printf("add box failed: %v", res.Err)
		h.Notifier.Push(store.LevelError, store.GenericErrorMessage)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	h.Notifier.Push(store.LevelSuccess, fmt.Sprintf("Box for %s added", res.Box.ReceiverName))
	writeJSON(w, r, http.StatusCreated, toBoxResponse(res.Box))
}

func (h *BoxHandler) update(w http.ResponseWriter, r *http.Request, id string) {
	var req dto.UpdateBoxRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	patch := store.BoxPatch{
		ReceiverName: req.ReceiverName,
		Weight:       req.Weight,
		BoxColor:     req.BoxColor,
		Country:      req.Country,
	}

	box, found, err := h.Store.Update(id, patch)
	if !found {
		writeError(w, r, http.StatusNotFound, "no such box")
		return
	}
	if err != nil {
		var unknown *domain.UnknownCountryError
		if errors.As(err, &unknown) {
			writeError(w, r, http.StatusBadRequest, unknown.Error())
			return
		}

		log.Printf("update box failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, toBoxResponse(box))
}

func (h *BoxHandler) remove(w http.ResponseWriter, r *http.Request, id string) {
	if h.Store.Remove(id) {
		h.Notifier.Push(store.LevelSuccess, "Box removed")
	}

	// Removal is idempotent; absent ids report success too.
	w.WriteHeader(http.StatusNoContent)
}

// Validate checks a candidate without mutating anything, for on-blur
// single-field checks. An empty Fields list checks the whole form.
func (h *BoxHandler) Validate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.ValidateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	candidate := domain.Candidate{
		ReceiverName: req.ReceiverName,
		Weight:       req.Weight.String(),
		Country:      req.Country,
	}

	var v domain.Validation
	if len(req.Fields) == 0 {
		v = domain.Validate(candidate)
	} else {
		v = domain.ValidateFields(candidate, req.Fields...)
	}

	writeJSON(w, r, http.StatusOK, dto.ValidateResponse{
		Valid:  v.IsValid(),
		Fields: v.Errors,
	})
}

func toBoxResponse(b domain.Box) dto.BoxResponse {
	return dto.BoxResponse{
		ID:                  b.ID,
		ReceiverName:        b.ReceiverName,
		Weight:              b.Weight,
		BoxColor:            b.BoxColor,
		Country:             b.Country.String(),
		ShippingCost:        b.ShippingCost,
		ShippingCostDisplay: domain.FormatCurrency(b.ShippingCost),
		CreatedAt:           b.CreatedAt,
		UpdatedAt:           b.UpdatedAt,
	}
}

func toStatsResponse(s store.Statistics) dto.StatsResponse {
	return dto.StatsResponse{
		TotalBoxes:       s.TotalBoxes,
		TotalWeight:      s.TotalWeight,
		TotalCost:        s.TotalCost,
		TotalCostDisplay: domain.FormatCurrency(s.TotalCost),
	}
}

func fieldList(errs map[string]string) string {
	fields := make([]string, 0, len(errs))
	for f := range errs {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return strings.Join(fields, ", ")
}
