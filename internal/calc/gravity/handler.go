package gravity

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"Bendung/internal/calc/check"
)

type Handler struct{}

// Calc fills omitted fields from the worked example of the requested
// condition before decoding the request over it.
func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	var probe struct {
		Condition Condition `json:"condition"`
	}
	if err := json.Unmarshal(body, &probe); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	input := DefaultInput(probe.Condition)
	if err := json.NewDecoder(bytes.NewReader(body)).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := Calculate(input)
	if err != nil {
		http.Error(w, err.Error(), check.Status(err))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
