package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

func adminRouter(secret string) *mux.Router {
	r := mux.NewRouter()
	admin := r.PathPrefix("/admin").Subrouter()
	admin.Use(AdminAuth(secret))
	admin.HandleFunc("/bookings", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)
	return r
}

func TestAdminAuth(t *testing.T) {
	router := adminRouter("hunter2")

	tests := []struct {
		name     string
		password string
		want     int
	}{
		{"correct password", "hunter2", http.StatusOK},
		{"wrong password", "hunter3", http.StatusUnauthorized},
		{"missing header", "", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin/bookings", nil)
			if tt.password != "" {
				req.Header.Set(AdminPasswordHeader, tt.password)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
