package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"

	"github.com/m04kA/SMC-ConsultBooking/internal/api/handlers"
)

const (
	msgTooManyRequests  = "Слишком много запросов, попробуйте позже"
	codeTooManyRequests = "rate_limited"
)

// RateLimitByIP ограничивает число запросов с одного IP за окно
func RateLimitByIP(requests int, window time.Duration) func(http.Handler) http.Handler {
	return httprate.Limit(
		requests,
		window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, _ *http.Request) {
			handlers.RespondErrorWithCode(w, http.StatusTooManyRequests, codeTooManyRequests, msgTooManyRequests)
		}),
	)
}
