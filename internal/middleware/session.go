package middleware

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"

	"tickets-api/internal/repository"
	"tickets-api/internal/utils"
)

type ctxKey string

const CtxSession ctxKey = "db_session"

// DBSession acquires a store session for the request and releases it when the
// handler returns, whether it succeeded, failed or panicked.
func DBSession(store repository.TicketStore, log zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, err := store.Session(r.Context())
			if err != nil {
				log.Error().Err(err).Msg("db session")
				utils.Error(w, http.StatusInternalServerError, "Internal server error")
				return
			}
			defer sess.Close()

			ctx := context.WithValue(r.Context(), CtxSession, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Session returns the session installed by DBSession.
func Session(ctx context.Context) (repository.TicketSession, bool) {
	return utils.Value[repository.TicketSession](ctx, CtxSession)
}
