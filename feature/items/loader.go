package items

import (
	"reorder/core/ordering"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new items feature.
func NewFeature(engine *ordering.Engine, snapshots *Snapshotter, logger *zap.Logger, ownerHeader string) *Feature {
	svc := NewService(engine, snapshots, logger)
	h := NewHandler(svc, ownerHeader)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "items"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
