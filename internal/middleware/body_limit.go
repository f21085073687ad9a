package middleware

import (
	"io"
	"net/http"

	log "github.com/sirupsen/logrus"
)

// DefaultMaxBodyBytes fits a long workout session with plenty of room.
const DefaultMaxBodyBytes = 1 << 20

// LimitAndDrainRequest refuses bodies declared larger than maxBodyBytes with
// 413 and caps the rest, so a body of unknown length fails the handler's read
// past the limit. Whatever the handler leaves unread is drained, keeping the
// connection reusable.
func LimitAndDrainRequest(maxBodyBytes int64) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if maxBodyBytes > 0 && r.ContentLength > maxBodyBytes {
				log.Warnf("request body too large [%s %s]: %d bytes", r.Method, r.URL.Path, r.ContentLength)
				http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
				return
			}
			if r.Body == nil || r.Body == http.NoBody {
				next.ServeHTTP(w, r)
				return
			}
			if maxBodyBytes > 0 {
				r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
			}

			next.ServeHTTP(w, r)
			_, _ = io.Copy(io.Discard, r.Body)
			_ = r.Body.Close()
		})
	}
}
