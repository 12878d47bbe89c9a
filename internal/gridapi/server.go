// Package gridapi exposes the hexgrid engine over an HTTP API. Handlers are
// thin: they parse and bound the request, call the engine, and translate
// engine sentinels into structured error responses.
package gridapi

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/valyala/fasthttp/fasthttpadaptor"

	"github.com/signalsfoundry/hexsphere/internal/config"
	"github.com/signalsfoundry/hexsphere/internal/logging"
	"github.com/signalsfoundry/hexsphere/internal/observability"
)

// Server holds the dependencies shared by all handlers.
type Server struct {
	cfg       *config.Config
	log       logging.Logger
	collector *observability.APICollector
	engine    *observability.EngineCollector
	startedAt time.Time
}

// NewServer builds a Server. A nil config falls back to built-in defaults and
// a nil logger discards output; the collectors may be nil, in which case no
// metrics are recorded and /metrics is not mounted.
func NewServer(cfg *config.Config, log logging.Logger, collector *observability.APICollector, engine *observability.EngineCollector) *Server {
	if cfg == nil {
		cfg = config.Default("gridd")
	}
	if log == nil {
		log = logging.Noop()
	}
	return &Server{
		cfg:       cfg,
		log:       log,
		collector: collector,
		engine:    engine,
		startedAt: time.Now(),
	}
}

// App assembles the Fiber application: middleware chain, versioned routes,
// and the metrics endpoint.
func (s *Server) App() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "hexsphere gridd",
		ReadTimeout:           time.Duration(s.cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout:          time.Duration(s.cfg.Server.WriteTimeout) * time.Second,
		BodyLimit:             s.cfg.Server.BodyLimit,
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(RequestLogMiddleware(s.log))
	app.Use(TracingMiddleware())
	if s.collector != nil {
		app.Use(s.collector.Middleware())
		app.Get("/metrics", adaptHTTPHandler(s.collector.Handler()))
	}

	v1 := app.Group("/v1")
	v1.Get("/health", s.handleHealth)
	v1.Get("/index", s.handleIndex)
	v1.Get("/base-cells", s.handleBaseCells)
	v1.Get("/res/:res/stats", s.handleResStats)
	v1.Get("/res/:res/pentagons", s.handlePentagons)

	v1.Get("/cells/:cell", s.handleCellInfo)
	v1.Get("/cells/:cell/boundary", s.handleCellBoundary)
	v1.Get("/cells/:cell/geojson", s.handleCellGeoJSON)
	v1.Get("/cells/:cell/parent", s.handleParent)
	v1.Get("/cells/:cell/children", s.handleChildren)
	v1.Get("/cells/:cell/center-child", s.handleCenterChild)
	v1.Get("/cells/:cell/disk", s.handleDisk)
	v1.Get("/cells/:cell/disk-distances", s.handleDiskDistances)
	v1.Get("/cells/:cell/ring", s.handleRing)
	v1.Get("/cells/:cell/edges", s.handleCellEdges)
	v1.Get("/cells/:cell/local-ij", s.handleLocalIJ)
	v1.Get("/cells/:cell/from-ij", s.handleFromLocalIJ)

	v1.Get("/distance", s.handleDistance)
	v1.Get("/path", s.handlePath)

	v1.Get("/edges/:edge", s.handleEdgeInfo)
	v1.Get("/edges/:edge/boundary", s.handleEdgeBoundary)
	v1.Get("/edges/:edge/geojson", s.handleEdgeGeoJSON)
	v1.Post("/edges", s.handleCellsToEdge)

	v1.Post("/fill", s.handleFill)
	v1.Post("/fill/geojson", s.handleFillGeoJSON)
	v1.Post("/compact", s.handleCompact)
	v1.Post("/uncompact", s.handleUncompact)

	return app
}

// adaptHTTPHandler bridges a net/http handler onto a Fiber route.
func adaptHTTPHandler(h http.Handler) fiber.Handler {
	fastHandler := fasthttpadaptor.NewFastHTTPHandler(h)
	return func(c *fiber.Ctx) error {
		fastHandler(c.Context())
		return nil
	}
}
