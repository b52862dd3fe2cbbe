package httpx

import (
	"fmt"
	"net/http"
	"runtime/debug"

	logger "github.com/Bparsons0904/goLogger"
)

func RecoveryMiddleware(next http.Handler) http.Handler {
	log := logger.New("httpx").Function("Recovery")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rw, ok := w.(*responseWriter)
		if !ok {
			rw = &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		}

		defer func() {
			if rec := recover(); rec != nil {
				log.Er("panic recovered", fmt.Errorf("%v", rec),
					"request_id", RequestIDFrom(r),
					"stack", string(debug.Stack()),
				)

				if !rw.wroteHeader() {
					JSONError(rw, r, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
				}
			}
		}()
		next.ServeHTTP(rw, r)
	})
}
