package autodesign

import (
	"encoding/json"
	"net/http"

	"Bendung/internal/calc/check"
	"Bendung/internal/calc/dropcheck"
)

type Handler struct {
	Defaults dropcheck.Input
}

func (h *Handler) Floor(w http.ResponseWriter, r *http.Request) {
	input := h.Defaults
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := FloorThickness(input)
	if err != nil {
		status := check.Status(err)
		if !check.IsDomain(err) {
			status = http.StatusUnprocessableEntity
		}
		http.Error(w, err.Error(), status)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
