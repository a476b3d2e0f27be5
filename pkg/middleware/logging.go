package middleware

import (
	"context"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/iota-uz/backoffice/pkg/configuration"
	"github.com/iota-uz/backoffice/pkg/constants"
	"github.com/iota-uz/backoffice/pkg/httpapi"
)

// RouteSeparator splits a route name into page and action,
// e.g. "inventory.items:toggle".
const RouteSeparator = ":"

// RouteName names a listing route so request logs carry its page and action.
func RouteName(page, action string) string {
	return page + RouteSeparator + action
}

type LoggerOptions struct {
	// APIPrefix marks paths answered with the JSON error envelope on panic.
	APIPrefix string
	Repanic   bool
}

func DefaultLoggerOptions() LoggerOptions {
	return LoggerOptions{APIPrefix: "/api/"}
}

type statusWriter struct {
	http.ResponseWriter
	status  int
	written bool
}

func (w *statusWriter) WriteHeader(code int) {
	if w.written {
		return
	}
	w.status = code
	w.written = true
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if !w.written {
		w.WriteHeader(http.StatusOK)
	}
	return w.ResponseWriter.Write(b)
}

func (w *statusWriter) Status() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}

func (w *statusWriter) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func getRealIP(r *http.Request, conf *configuration.Configuration) string {
	if ip := r.Header.Get(conf.RealIPHeader); ip != "" {
		return ip
	}
	return r.RemoteAddr
}

func getRequestID(r *http.Request, conf *configuration.Configuration) string {
	if id := r.Header.Get(conf.RequestIDHeader); id != "" {
		return id
	}
	return uuid.New().String()
}

// requestFields are the listing coordinates of a request: who is asking and
// which page filter it touches. Missing values are left out.
func requestFields(r *http.Request, conf *configuration.Configuration) logrus.Fields {
	fields := logrus.Fields{}
	if tenant := strings.TrimSpace(r.Header.Get(conf.TenantHeader)); tenant != "" {
		fields["tenant"] = tenant
	}
	if c, err := r.Cookie(conf.SidCookieKey); err == nil && c.Value != "" {
		fields["session"] = c.Value
	}
	if route := mux.CurrentRoute(r); route != nil {
		if page, action, ok := strings.Cut(route.GetName(), RouteSeparator); ok {
			fields["page"] = page
			fields["action"] = action
		}
	}
	if column := mux.Vars(r)["column"]; column != "" {
		fields["column"] = column
	}
	return fields
}

var tracer = otel.Tracer("backoffice-middleware")

func TracedMiddleware(name string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			propagator := propagation.TraceContext{}
			ctx := propagator.Extract(r.Context(), propagation.HeaderCarrier(r.Header))

			ctx, span := tracer.Start(ctx, "middleware."+name, trace.WithAttributes(
				attribute.String("middleware.name", name),
				attribute.String("http.method", r.Method),
				attribute.String("http.route", r.URL.Path),
			))
			defer span.End()

			propagator.Inject(ctx, propagation.HeaderCarrier(r.Header))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// WithLogger opens the request span, stores a request-scoped logger in the
// context and logs one line per completed request. Panics are logged and
// answered with a 500.
func WithLogger(logger *logrus.Logger, opts LoggerOptions) mux.MiddlewareFunc {
	conf := configuration.Use()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			requestID := getRequestID(r, conf)

			entry := logger.WithFields(logrus.Fields{
				"request-id": requestID,
				"method":     r.Method,
				"path":       r.URL.Path,
				"ip":         getRealIP(r, conf),
			}).WithFields(requestFields(r, conf))

			propagator := propagation.TraceContext{}
			ctx := propagator.Extract(r.Context(), propagation.HeaderCarrier(r.Header))
			ctx, span := tracer.Start(ctx, "http.request", trace.WithAttributes(
				attribute.String("http.method", r.Method),
				attribute.String("http.route", r.URL.Path),
				attribute.String("http.request_id", requestID),
			))
			defer span.End()
			propagator.Inject(ctx, propagation.HeaderCarrier(w.Header()))

			if sc := span.SpanContext(); sc.HasTraceID() {
				w.Header().Set("X-Trace-Id", sc.TraceID().String())
				entry = entry.WithField("trace-id", sc.TraceID().String())
			}
			w.Header().Set("X-Request-Id", requestID)

			ctx = context.WithValue(ctx, constants.LoggerKey, entry)
			ctx = context.WithValue(ctx, constants.RequestStart, start)

			sw := &statusWriter{ResponseWriter: w}
			defer func() {
				recovered := recover()
				if recovered == nil {
					return
				}
				entry.WithFields(logrus.Fields{
					"panic":    recovered,
					"stack":    string(debug.Stack()),
					"duration": time.Since(start),
				}).Error("panic recovered in request handler")

				if !sw.written {
					if opts.APIPrefix != "" && strings.HasPrefix(r.URL.Path, opts.APIPrefix) {
						_ = httpapi.WriteError(sw, http.StatusInternalServerError,
							httpapi.CodeInternal, "internal server error", map[string]string{
								"request_id": requestID,
								"path":       r.URL.Path,
							})
					} else {
						http.Error(sw, "Internal Server Error", http.StatusInternalServerError)
					}
				}
				if opts.Repanic {
					panic(recovered)
				}
			}()

			next.ServeHTTP(sw, r.WithContext(ctx))

			status := sw.Status()
			duration := time.Since(start)
			span.SetAttributes(
				attribute.Int("http.status_code", status),
				attribute.Int64("http.request_duration_ms", duration.Milliseconds()),
			)
			completed := entry.WithFields(logrus.Fields{
				"status":   status,
				"duration": duration,
			})
			if status >= http.StatusInternalServerError {
				completed.Error("request completed")
				return
			}
			completed.Info("request completed")
		})
	}
}
