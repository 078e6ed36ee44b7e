package nodeconfig

import (
	"node-config/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves node configurations over HTTP.
type Handler struct {
	resolver *Resolver
	logger   *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(resolver *Resolver, logger *zap.Logger) *Handler {
	return &Handler{resolver: resolver, logger: logger}
}

// RegisterRoutes registers the node configuration routes.
// Every path is a node name, so the handler owns the whole tree.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/", h.HandleNodeConfig)
	app.Get("/*", h.HandleNodeConfig)
}

// HandleNodeConfig serves the resolved configuration of the node named by the path.
// The empty path and /favicon.ico get an empty 200 so browsers can poke the server.
func (h *Handler) HandleNodeConfig(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	path := TrimPath(c.Path())
	if IsSkippedPath(path) {
		l.Info("Skipping path", zap.String("path", c.Path()))
		return c.Status(fiber.StatusOK).Send(nil)
	}

	node := NodeName(path)
	conf := h.resolver.WithLogger(l).Resolve(c.UserContext(), node)

	l.Debug("Serving node configuration",
		zap.String("node", node),
		zap.String("client", c.Context().RemoteAddr().String()),
	)
	return c.Status(fiber.StatusOK).JSON(conf)
}
