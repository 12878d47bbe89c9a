package gridapi

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/signalsfoundry/hexsphere/internal/logging"
)

const tracerName = "github.com/signalsfoundry/hexsphere/internal/gridapi"

// RequestLogMiddleware sources the request ID assigned by the requestid
// middleware, attaches a per-request logger to the user context, and emits a
// structured access log line once the request completes.
func RequestLogMiddleware(base logging.Logger) fiber.Handler {
	if base == nil {
		base = logging.Noop()
	}
	return func(c *fiber.Ctx) error {
		start := time.Now()

		ctx := c.UserContext()
		if rid, ok := c.Locals("requestid").(string); ok && rid != "" {
			ctx = logging.ContextWithRequestID(ctx, rid)
		}
		ctx, reqLog := logging.WithRequestLogger(ctx, base.With(
			logging.String("method", c.Method()),
			logging.String("path", c.Path()),
		))
		ctx = logging.ContextWithLogger(ctx, reqLog)
		c.SetUserContext(ctx)

		err := c.Next()

		reqLog.Info(ctx, "request completed",
			logging.Int("status", c.Response().StatusCode()),
			logging.Duration("duration", time.Since(start)),
		)
		return err
	}
}

// TracingMiddleware opens a server span per request, enriched with route and
// request ID attributes. Errors surfaced by handlers are recorded on the span.
func TracingMiddleware() fiber.Handler {
	tracer := otel.Tracer(tracerName)

	return func(c *fiber.Ctx) error {
		ctx, span := tracer.Start(c.UserContext(), c.Method()+" "+c.Path(),
			trace.WithSpanKind(trace.SpanKindServer),
		)
		defer span.End()

		c.SetUserContext(ctx)
		err := c.Next()

		route := c.Route().Path
		if route == "" {
			route = c.Path()
		}
		span.SetName(c.Method() + " " + route)

		attrs := []attribute.KeyValue{
			attribute.String("http.method", c.Method()),
			attribute.String("http.route", route),
			attribute.Int("http.status_code", c.Response().StatusCode()),
		}
		if reqID := logging.RequestIDFromContext(ctx); reqID != "" {
			attrs = append(attrs, attribute.String("request_id", reqID))
		}
		span.SetAttributes(attrs...)

		if err != nil {
			span.RecordError(err)
		}
		return err
	}
}
