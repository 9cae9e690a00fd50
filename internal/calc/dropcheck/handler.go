package dropcheck

import (
	"encoding/json"
	"net/http"

	"Bendung/internal/calc/check"
)

// Ticketer signs the input of a completed check so that report endpoints
// can recompute the same design later without trusting client numbers.
type Ticketer interface {
	Issue(in Input) (string, error)
}

type Response struct {
	Result
	Ticket string `json:"ticket,omitempty"`
}

type Handler struct {
	Defaults Input
	Tickets  Ticketer
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	input := h.Defaults
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := Run(input)
	if err != nil {
		http.Error(w, err.Error(), check.Status(err))
		return
	}
	resp := Response{Result: res}
	if h.Tickets != nil {
		if resp.Ticket, err = h.Tickets.Issue(input); err != nil {
			http.Error(w, "Ticket signing error", http.StatusInternalServerError)
			return
		}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
