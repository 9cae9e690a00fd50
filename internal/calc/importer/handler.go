package importer

import (
	"encoding/json"
	"net/http"

	"Bendung/internal/calc/dropcheck"
)

const MaxUploadSize = 10 << 20 // 10MB

type Handler struct {
	Defaults dropcheck.Input
}

func (h *Handler) Drop(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadSize)
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	res, err := Read(file, h.Defaults)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
