// Package server exposes code table construction over HTTP.
//
//	POST /codes    request body is text; responds with a JSON report
//	GET  /healthz  responds with "ok"
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/abhinav/huffcode/internal/huffman"
	"github.com/abhinav/huffcode/internal/log"
	"github.com/abhinav/huffcode/internal/report"
	"github.com/abhinav/huffcode/internal/symtab"
	"github.com/abhinav/huffcode/internal/token"
	"github.com/julienschmidt/httprouter"
)

// MaxBodySize is the largest request body accepted by POST /codes.
const MaxBodySize = 8 << 20 // 8MB

// Handler serves the huffcode HTTP API.
type Handler struct {
	Log *log.Logger

	// Number of buckets in each request's symbol tables.
	// Defaults to symtab.DefaultCapacity.
	Capacity int

	router *httprouter.Router
}

var _ http.Handler = (*Handler)(nil)

// New builds a Handler.
// A nil logger discards all output.
func New(logger *log.Logger, capacity int) *Handler {
	if logger == nil {
		logger = log.Discard
	}
	if capacity <= 0 {
		capacity = symtab.DefaultCapacity
	}

	h := &Handler{Log: logger, Capacity: capacity}
	h.router = httprouter.New()
	h.router.GET("/healthz", h.healthz)
	h.router.POST("/codes", h.codes)
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	h.Log.Debugf("%v %v", req.Method, req.URL)
	h.router.ServeHTTP(w, req)
}

func (h *Handler) healthz(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, "ok\n")
}

func (h *Handler) codes(w http.ResponseWriter, req *http.Request, _ httprouter.Params) {
	body := http.MaxBytesReader(w, req.Body, MaxBodySize)

	freqs := symtab.New[int](h.Capacity)
	if _, err := token.Count(body, freqs); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.writeError(w, http.StatusRequestEntityTooLarge, err)
		} else {
			h.writeError(w, http.StatusBadRequest, fmt.Errorf("read request: %w", err))
		}
		return
	}

	codes, err := huffman.Codes(freqs)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}

	if freqs.Len() > freqs.Capacity() {
		h.Log.Warnf("%d distinct symbols exceed %d buckets", freqs.Len(), freqs.Capacity())
	}

	h.writeJSON(w, http.StatusOK, report.New(freqs, codes))
}

func (h *Handler) writeError(w http.ResponseWriter, status int, err error) {
	h.Log.Debugf("request failed: %v", err)
	h.writeJSON(w, status, struct {
		Error string `json:"error"`
	}{Error: err.Error()})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.Log.Errorf("write response: %v", err)
	}
}
