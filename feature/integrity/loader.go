package integrity

import (
	"reorder/core/ordering"
	"reorder/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	handler *Handler
}

// NewFeature creates a new integrity feature. client may be nil.
func NewFeature(db *gorm.DB, engine *ordering.Engine, client storage.Client, bucket, region string, logger *zap.Logger) *Feature {
	return &Feature{handler: NewHandler(NewService(db, engine, client, bucket, region, logger))}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "integrity"
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
