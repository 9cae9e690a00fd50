package batch

import (
	"encoding/json"
	"net/http"

	"Bendung/internal/calc/dropcheck"
)

// Handler fills each item's omitted fields from Defaults.
type Handler struct {
	Defaults dropcheck.Input
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var raw struct {
		Items []json.RawMessage `json:"items"`
	}
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	input := Input{Items: make([]dropcheck.Input, len(raw.Items))}
	for i, msg := range raw.Items {
		input.Items[i] = h.Defaults
		if err := json.Unmarshal(msg, &input.Items[i]); err != nil {
			http.Error(w, "Invalid request payload", http.StatusBadRequest)
			return
		}
	}
	res, err := Calculate(input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
