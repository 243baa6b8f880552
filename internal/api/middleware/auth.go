package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/kaimb/booking-service/internal/api/handlers"
)

// AdminPasswordHeader carries the shared admin secret on admin requests.
const AdminPasswordHeader = "X-Admin-Password"

// AdminAuth guards the admin routes with the shared secret. A wrong or
// missing secret gets a plain 401; there is no lockout or throttling.
func AdminAuth(secret string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get(AdminPasswordHeader)
			if subtle.ConstantTimeCompare([]byte(provided), []byte(secret)) != 1 {
				handlers.RespondUnauthorized(w, "wrong admin password")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
