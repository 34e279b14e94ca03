package handlers

import (
	"net/http"

	"github.com/rs/zerolog"

	"tickets-api/internal/middleware"
	"tickets-api/internal/service"
	"tickets-api/internal/utils"
)

type ReportsHTTP struct {
	svc *service.TicketService
	log zerolog.Logger
}

func NewReportsHTTP(svc *service.TicketService, log zerolog.Logger) *ReportsHTTP {
	return &ReportsHTTP{svc: svc, log: log}
}

// GET /reports/summary
// Returns: { total, byStatus: { <status>: count } }
func (h *ReportsHTTP) Summary() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		db, ok := middleware.Session(r.Context())
		if !ok {
			utils.Error(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		items, err := h.svc.List(r.Context(), db, "")
		if err != nil {
			h.log.Error().Err(err).Msg("summary")
			utils.Error(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		byStatus := map[string]int{}
		for _, t := range items {
			byStatus[t.Status]++
		}
		utils.JSON(w, http.StatusOK, map[string]any{
			"total":    len(items),
			"byStatus": byStatus,
		})
	}
}
