package httpx

import (
	"net/http"
	"runtime/debug"

	"github.com/aussiebroadwan/orgs/pkg/slogx"
)

// Recover turns a handler panic into a 500 envelope.
func Recover() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil || rec == http.ErrAbortHandler {
					if rec != nil {
						panic(rec)
					}
					return
				}
				slogx.FromContext(r.Context()).Error("handler panic",
					"panic", rec,
					"stack", string(debug.Stack()),
				)
				WriteError(w, http.StatusInternalServerError, StatusError, "Internal server error")
			}()
			next.ServeHTTP(w, r)
		})
	}
}
