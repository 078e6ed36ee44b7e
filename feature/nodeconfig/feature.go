package nodeconfig

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature exposes the node configuration endpoints to the loader.
type Feature struct {
	handler *Handler
}

// NewFeature creates the node configuration feature.
func NewFeature(resolver *Resolver, logger *zap.Logger) *Feature {
	return &Feature{handler: NewHandler(resolver, logger)}
}

func (f *Feature) Name() string    { return "nodeconfig" }
func (f *Feature) IsEnabled() bool { return true }

func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
