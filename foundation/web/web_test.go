package web_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/ardanlabs/powsim/foundation/web"
)

// Success and failure markers.
const (
	success = "✓"
	failed  = "✗"
)

func Test_App(t *testing.T) {
	t.Log("Given the need to route requests.")
	{
		shutdown := make(chan os.Signal, 1)

		var order []string
		mw := func(name string) web.Middleware {
			return func(handler web.Handler) web.Handler {
				return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
					order = append(order, name)
					return handler(ctx, w, r)
				}
			}
		}

		app := web.NewApp(shutdown, mw("app"))

		h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
			v, err := web.GetValues(ctx)
			if err != nil {
				return err
			}

			resp := struct {
				Name    string `json:"name"`
				TraceID string `json:"trace_id"`
			}{
				Name:    web.Param(r, "name"),
				TraceID: v.TraceID,
			}

			return web.Respond(ctx, w, resp, http.StatusOK)
		}
		app.Handle(http.MethodGet, "v1", "/hello/:name", h, mw("route"))

		fail := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
			return web.NewShutdownError("integrity issue")
		}
		app.Handle(http.MethodGet, "v1", "/fail", fail)

		w := httptest.NewRecorder()
		app.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/hello/bill", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("\t%s\tShould receive a status code of 200: %d", failed, w.Code)
		}
		t.Logf("\t%s\tShould receive a status code of 200.", success)

		var resp struct {
			Name    string `json:"name"`
			TraceID string `json:"trace_id"`
		}
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("\t%s\tShould be able to decode the response: %v", failed, err)
		}
		if resp.Name != "bill" || resp.TraceID == "" {
			t.Fatalf("\t%s\tShould get the route parameter and a trace id: %+v", failed, resp)
		}
		t.Logf("\t%s\tShould get the route parameter and a trace id.", success)

		if len(order) != 2 || order[0] != "app" || order[1] != "route" {
			t.Fatalf("\t%s\tShould run app middleware before route middleware: %v", failed, order)
		}
		t.Logf("\t%s\tShould run app middleware before route middleware.", success)

		app.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/fail", nil))
		select {
		case <-shutdown:
			t.Logf("\t%s\tShould signal shutdown on an integrity issue.", success)
		default:
			t.Fatalf("\t%s\tShould signal shutdown on an integrity issue.", failed)
		}
	}
}
