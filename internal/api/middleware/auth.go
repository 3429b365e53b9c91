package middleware

import (
	"net/http"
	"strconv"

	"github.com/salaluna/offer-service/internal/api/handlers"
)

// UserIDHeader carries the authenticated client id, injected by the gateway
const UserIDHeader = "X-User-ID"

// Auth rejects requests without a valid X-User-ID header
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(UserIDHeader)
		if raw == "" {
			handlers.RespondError(w, http.StatusUnauthorized, "missing X-User-ID header")
			return
		}
		if _, err := strconv.ParseInt(raw, 10, 64); err != nil {
			handlers.RespondError(w, http.StatusUnauthorized, "invalid X-User-ID header")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// UserID extracts the authenticated client id from the request. Returns 0
// when the header is absent or malformed; protected routes never see that
// because Auth runs first.
func UserID(r *http.Request) int64 {
	id, err := strconv.ParseInt(r.Header.Get(UserIDHeader), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
