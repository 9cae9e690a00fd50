package drop

import (
	"encoding/json"
	"net/http"

	"Bendung/internal/calc/check"
)

type Handler struct {
	Gravity float64
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	input := Input{Gravity: h.Gravity}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := Design(input)
	if err != nil {
		http.Error(w, err.Error(), check.Status(err))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
