package report

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"Bendung/internal/calc/check"
	"Bendung/internal/calc/dropcheck"
	"Bendung/internal/log"
)

// TicketParser turns a signed design ticket back into its check input.
type TicketParser interface {
	Parse(ticket string) (dropcheck.Input, string, error)
}

type Input struct {
	Ticket string `json:"ticket"`
	Title  string `json:"title"`
}

type Handler struct {
	Tickets TicketParser
	Now     func() time.Time
}

type renderFunc func(io.Writer, dropcheck.Result, Meta) error

func (h *Handler) PDF(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, PDF, "application/pdf", "pdf")
}

func (h *Handler) XLSX(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, XLSX, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", "xlsx")
}

func (h *Handler) serve(w http.ResponseWriter, r *http.Request, render renderFunc, contentType, ext string) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.Ticket == "" {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	in, id, err := h.Tickets.Parse(input.Ticket)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}
	res, err := dropcheck.Run(in)
	if err != nil {
		http.Error(w, err.Error(), check.Status(err))
		return
	}

	now := time.Now
	if h.Now != nil {
		now = h.Now
	}
	meta := Meta{ID: id, Title: input.Title, Generated: now()}

	// Render fully before writing headers so a failure can still be a 500.
	var buf bytes.Buffer
	if err := render(&buf, res, meta); err != nil {
		log.Errorw("report generation failed", "format", ext, "ticket", id, "error", err)
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", "attachment; filename=\""+meta.filename(ext)+"\"")
	w.Write(buf.Bytes())
}
