package recommend

import (
	"encoding/json"
	"net/http"

	"Bendung/internal/calc/check"
)

type Handler struct{}

func (h *Handler) Stages(w http.ResponseWriter, r *http.Request) {
	var input StagesInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := Stages(input)
	if err != nil {
		http.Error(w, err.Error(), check.Status(err))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
