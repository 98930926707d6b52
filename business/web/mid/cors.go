package mid

import (
	"context"
	"net/http"

	"github.com/ardanlabs/powsim/foundation/web"
)

// Cors sets the response headers needed for Cross-Origin Resource Sharing.
// The node api is read only so only GET and OPTIONS are advertised.
func Cors(origin string) web.Middleware {

	// This is the actual middleware function to be executed.
	m := func(handler web.Handler) web.Handler {

		// Create the handler that will be attached in the middleware chain.
		h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Origin, Accept, Accept-Encoding")

			return handler(ctx, w, r)
		}

		return h
	}

	return m
}
