package middleware

import "net/http"

// CORS allows cross-origin requests from any origin.
//
// The frontend is served from a different origin than this API and the
// service has always been wide open (it carries no cookies; the bearer
// token travels in an explicit header, so a permissive policy doesn't
// enable CSRF). Preflight OPTIONS requests are answered here and never
// reach the router.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
