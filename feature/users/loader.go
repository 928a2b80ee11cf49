package users

import (
	"reorder/core/ordering"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new users feature.
func NewFeature(db *gorm.DB, engine *ordering.Engine, logger *zap.Logger, ownerHeader string) *Feature {
	svc := NewService(db, engine, logger)
	return &Feature{service: svc, handler: NewHandler(svc, ownerHeader)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "users"
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
