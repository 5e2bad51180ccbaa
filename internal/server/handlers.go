package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/hay-kot/criterio"

	"github.com/colonyops/invite/internal/core/gallery"
	"github.com/colonyops/invite/internal/core/guestbook"
	"github.com/colonyops/invite/internal/core/rsvp"
	"github.com/colonyops/invite/internal/data/stores"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 64 << 10

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

type galleryResponse struct {
	Images      []gallery.Image `json:"images"`
	CanNavigate bool            `json:"can_navigate"`
}

type deleteRequest struct {
	Password string `json:"password"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleGallery(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, galleryResponse{
		Images:      s.gallery.All(),
		CanNavigate: s.gallery.CanNavigate(),
	})
}

func (s *Server) handleGuestbookList(w http.ResponseWriter, r *http.Request) {
	entries, err := s.guestbook.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if entries == nil {
		entries = []guestbook.Entry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleGuestbookAdd(w http.ResponseWriter, r *http.Request) {
	var in guestbook.Input
	if !s.decode(w, r, &in) {
		return
	}

	e, err := s.guestbook.Add(r.Context(), in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.metrics.GuestbookEntries.WithLabelValues("add").Inc()
	writeJSON(w, http.StatusCreated, e)
}

func (s *Server) handleGuestbookDelete(w http.ResponseWriter, r *http.Request) {
	var req deleteRequest
	if !s.decode(w, r, &req) {
		return
	}

	if err := s.guestbook.Delete(r.Context(), chi.URLParam(r, "id"), req.Password); err != nil {
		s.writeError(w, r, err)
		return
	}

	s.metrics.GuestbookEntries.WithLabelValues("delete").Inc()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleRSVPSubmit(w http.ResponseWriter, r *http.Request) {
	var in rsvp.Input
	if !s.decode(w, r, &in) {
		return
	}

	resp, err := s.rsvp.Submit(r.Context(), in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.metrics.RSVPResponses.WithLabelValues(strconv.FormatBool(resp.Attending)).Inc()
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleRSVPSummary(w http.ResponseWriter, r *http.Request) {
	sum, err := s.rsvp.Summary(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sum)
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		s.logger.Warn().Ctx(r.Context()).Err(err).Msg("invalid request body")
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return false
	}
	return true
}

// writeError maps domain errors onto status codes. Unknown errors are logged
// and reported without detail.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var fieldErrs criterio.FieldErrors
	switch {
	case errors.As(err, &fieldErrs):
		fields := make(map[string]string, len(fieldErrs))
		for _, fe := range fieldErrs {
			fields[fe.Field] = fe.Err.Error()
		}
		writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Fields: fields})
	case errors.Is(err, guestbook.ErrNotFound):
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "not found"})
	case errors.Is(err, guestbook.ErrPasswordMismatch):
		writeJSON(w, http.StatusForbidden, ErrorResponse{Error: "password does not match"})
	case errors.Is(err, rsvp.ErrClosed):
		writeJSON(w, http.StatusConflict, ErrorResponse{Error: "rsvp is closed"})
	case stores.IsBusyError(err):
		s.logger.Warn().Ctx(r.Context()).Err(err).Msg("database busy")
		w.Header().Set("Retry-After", "1")
		writeJSON(w, http.StatusServiceUnavailable, ErrorResponse{Error: "busy, try again"})
	default:
		s.logger.Error().Ctx(r.Context()).Err(err).Msg("request failed")
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
