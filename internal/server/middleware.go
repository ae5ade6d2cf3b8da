package server

import "net/http"

const (
	apiKeyHeader      = "x-api-key"
	sessionCookieName = "oc_session"
)

// requireAPIKey gates machine write routes on the pre-shared webhook secret.
// It is independent of session state so unattended scripts need no cookie
// jar. An empty configured secret rejects everything rather than matching
// the empty header.
func (s *Server) requireAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Header.Get(apiKeyHeader)
		if s.apiKey == "" || key != s.apiKey {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requireSession gates dashboard read routes on a valid session cookie.
func (s *Server) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sessionCookieName)
		if err != nil || cookie.Value == "" {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		if _, err := s.auth.Verify(r.Context(), cookie.Value); err != nil {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		next.ServeHTTP(w, r)
	})
}
