package floor

import (
	"encoding/json"
	"net/http"

	"Bendung/internal/calc/check"
)

// Handler decodes requests over a copy of Defaults, so omitted material
// fields keep their configured values.
type Handler struct {
	Defaults Input
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	input := h.Defaults
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := Check(input)
	if err != nil {
		http.Error(w, err.Error(), check.Status(err))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
