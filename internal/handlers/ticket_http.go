package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"tickets-api/internal/middleware"
	"tickets-api/internal/repository"
	"tickets-api/internal/service"
	"tickets-api/internal/utils"
	"tickets-api/internal/validation"
)

const msgTicketNotFound = "Ticket not found"

// TicketHTTP wires the /tickets endpoints to the ticket service.
// Every route expects middleware.DBSession to have run.
type TicketHTTP struct {
	svc *service.TicketService
	log zerolog.Logger
}

func NewTicketHTTP(svc *service.TicketService, log zerolog.Logger) *TicketHTTP {
	return &TicketHTTP{svc: svc, log: log}
}

// -----------------------------------------------------------------------------
// GET /tickets/?status=
// -----------------------------------------------------------------------------
func (h *TicketHTTP) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		db, ok := h.session(w, r)
		if !ok {
			return
		}
		items, err := h.svc.List(r.Context(), db, r.URL.Query().Get("status"))
		if err != nil {
			h.fail(w, r, err)
			return
		}
		utils.JSON(w, http.StatusOK, items)
	}
}

// -----------------------------------------------------------------------------
// GET /tickets/{id}
// -----------------------------------------------------------------------------
func (h *TicketHTTP) Get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validation.TicketID(chi.URLParam(r, "id"))
		if err != nil {
			h.fail(w, r, err)
			return
		}
		db, ok := h.session(w, r)
		if !ok {
			return
		}
		t, err := h.svc.Get(r.Context(), db, id)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		utils.JSON(w, http.StatusOK, t)
	}
}

// -----------------------------------------------------------------------------
// POST /tickets/
// -----------------------------------------------------------------------------
func (h *TicketHTTP) Create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, err := validation.DecodeCreate(r.Body)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		db, ok := h.session(w, r)
		if !ok {
			return
		}
		t, err := h.svc.Create(r.Context(), db, in)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		utils.JSON(w, http.StatusCreated, t)
	}
}

// -----------------------------------------------------------------------------
// PUT /tickets/{id}
// -----------------------------------------------------------------------------
func (h *TicketHTTP) Update() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validation.TicketID(chi.URLParam(r, "id"))
		if err != nil {
			h.fail(w, r, err)
			return
		}
		in, err := validation.DecodeUpdate(r.Body)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		db, ok := h.session(w, r)
		if !ok {
			return
		}
		t, err := h.svc.Update(r.Context(), db, id, in)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		utils.JSON(w, http.StatusOK, t)
	}
}

// -----------------------------------------------------------------------------
// DELETE /tickets/{id}
// -----------------------------------------------------------------------------
func (h *TicketHTTP) Delete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validation.TicketID(chi.URLParam(r, "id"))
		if err != nil {
			h.fail(w, r, err)
			return
		}
		db, ok := h.session(w, r)
		if !ok {
			return
		}
		t, err := h.svc.Delete(r.Context(), db, id)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		utils.JSON(w, http.StatusOK, t)
	}
}

func (h *TicketHTTP) session(w http.ResponseWriter, r *http.Request) (repository.TicketSession, bool) {
	db, ok := middleware.Session(r.Context())
	if !ok {
		h.log.Error().Str("path", r.URL.Path).Msg("no db session in request context")
		utils.Error(w, http.StatusInternalServerError, "Internal server error")
	}
	return db, ok
}

// fail maps validation, not-found and store errors onto 422, 404 and 500.
func (h *TicketHTTP) fail(w http.ResponseWriter, r *http.Request, err error) {
	var verr *validation.ValidationError
	switch {
	case errors.As(err, &verr):
		utils.JSON(w, http.StatusUnprocessableEntity, map[string]any{"detail": verr.Errors})
	case errors.Is(err, service.ErrTicketNotFound):
		utils.Error(w, http.StatusNotFound, msgTicketNotFound)
	default:
		h.log.Error().Err(err).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("ticket request failed")
		utils.Error(w, http.StatusInternalServerError, "Internal server error")
	}
}
