package middleware

import (
	"net/http"
)

// MaxBodySize is the default maximum request body size (1 MB).
const MaxBodySize = 1 << 20

// MaxBody limits the request body size for methods that carry one.
// A maxSize of 0 falls back to MaxBodySize.
func MaxBody(maxSize int64) Middleware {
	if maxSize <= 0 {
		maxSize = MaxBodySize
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodPost, http.MethodPut, http.MethodPatch:
				r.Body = http.MaxBytesReader(w, r.Body, maxSize)
			}
			next.ServeHTTP(w, r)
		})
	}
}
