// Package server assembles the HTTP surface of the redirector.
package server

import (
	"encoding/json"
	"net/http"
	"reflect"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/atinyakov/go-url-redirector/internal/app/handler"
	"github.com/atinyakov/go-url-redirector/internal/app/service"
	"github.com/atinyakov/go-url-redirector/internal/middleware"
	"github.com/atinyakov/go-url-redirector/internal/models"
	"github.com/atinyakov/go-url-redirector/internal/storage"
)

// redirectMethods are the methods a redirect may be requested with; each is
// recorded on the status row.
var redirectMethods = []storage.Method{
	storage.MethodGet,
	storage.MethodPost,
	storage.MethodPatch,
	storage.MethodDelete,
}

// Init builds the router. Every request passes the request logger and the
// host filter before routing. When tp is nil, or a nil pointer, the global
// tracer provider is used.
func Init(
	urls service.URLServiceIface,
	statuses service.StatusServiceIface,
	resolver service.ResolverIface,
	hosts *middleware.HostFilter,
	logger *zap.Logger,
	tp trace.TracerProvider,
) http.Handler {
	getHandler := handler.NewGet(urls, statuses, resolver, logger)
	postHandler := handler.NewPost(urls, logger)
	putHandler := handler.NewPut(urls, logger)
	deleteHandler := handler.NewDelete(urls, logger)

	r := chi.NewRouter()
	r.Use(middleware.WithRequestLogging(logger))
	r.Use(hosts.Handler)
	r.Use(chimw.StripSlashes)
	r.Use(middleware.WithGzipRequest)
	r.Use(middleware.WithGzipResponse)

	r.Get("/", getHandler.Version)
	r.Get("/ping", getHandler.Ping)
	r.Get("/statuses", getHandler.ListStatuses)

	r.Route("/urls", func(r chi.Router) {
		r.Post("/url", postHandler.CreateURL)
		r.Post("/urls", postHandler.CreateURLs)
		r.Get("/urls", getHandler.ListURLs)
		r.Get("/urls/{id}", getHandler.GetURL)
		r.Put("/urls/{id}", putHandler.UpdateURL)
		r.Delete("/urls/{id}", deleteHandler.DeleteURL)
	})

	for _, m := range redirectMethods {
		r.Method(string(m), "/requests/{id}", http.HandlerFunc(getHandler.Redirect))
	}
	r.Get("/{id}", getHandler.Redirect)

	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeDetail(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	})
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeDetail(w, http.StatusNotFound, "Not Found")
	})

	var opts []otelhttp.Option
	if tp != nil && !isNilPointer(tp) {
		opts = append(opts, otelhttp.WithTracerProvider(tp))
	}
	return otelhttp.NewHandler(r, "redirector", opts...)
}

// isNilPointer reports a nil pointer stored in a non-nil interface.
func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(models.ErrorResponse{Detail: detail})
}
