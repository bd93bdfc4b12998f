package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// LoggingMiddleware пишет строку лога на каждый запрос
func LoggingMiddleware(log Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newStatusRecorder(w)

			next.ServeHTTP(rec, r)

			elapsed := time.Since(start)
			switch {
			case rec.status >= http.StatusInternalServerError:
				log.Error("HTTP %s %s - status=%d duration=%s remote=%s",
					r.Method, r.URL.Path, rec.status, elapsed, r.RemoteAddr)
			case rec.status >= http.StatusBadRequest:
				log.Warn("HTTP %s %s - status=%d duration=%s remote=%s",
					r.Method, r.URL.Path, rec.status, elapsed, r.RemoteAddr)
			default:
				log.Info("HTTP %s %s - status=%d duration=%s", r.Method, r.URL.Path, rec.status, elapsed)
			}
		})
	}
}
