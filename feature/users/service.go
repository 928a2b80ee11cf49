package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"reorder/core/ordering"
	"reorder/feature/items"
	"reorder/feature/users/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrInvalidUsername is returned for blank usernames.
var ErrInvalidUsername = errors.New("username is required")

// Service handles user login and lookup.
type Service struct {
	db     *gorm.DB
	engine *ordering.Engine
	logger *zap.Logger
}

// NewService creates a new users service. engine provides the seed list.
func NewService(db *gorm.DB, engine *ordering.Engine, logger *zap.Logger) *Service {
	return &Service{db: db, engine: engine, logger: logger}
}

// Login returns the user with the given username, creating it together with a
// freshly seeded list on first login. Existing users are returned untouched.
// The database must translate errors (gorm.Config.TranslateError) for
// concurrent first logins to resolve to the same user.
func (s *Service) Login(ctx context.Context, username string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrInvalidUsername
	}

	var user models.User
	created := false

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("username = ?", username).First(&user).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to look up user: %w", err)
		}

		user = models.User{ID: uuid.NewString(), Username: username}
		if err := tx.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		created = true

		return items.NewStore(tx).CreateItems(ctx, user.ID, s.engine.Seeds())
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// A concurrent first login created the user and seeded its list.
		var existing models.User
		if err := s.db.WithContext(ctx).Where("username = ?", username).First(&existing).Error; err != nil {
			return nil, fmt.Errorf("failed to look up user: %w", err)
		}
		return &existing, nil
	}
	if err != nil {
		return nil, err
	}

	if created {
		s.logger.Info("User created", zap.String("user", user.ID), zap.String("username", username))
	}
	return &user, nil
}

// Me returns the user with the given id, or nil when there is none.
func (s *Service) Me(ctx context.Context, id string) (*models.User, error) {
	if id == "" {
		return nil, nil
	}

	var user models.User
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	return &user, nil
}
