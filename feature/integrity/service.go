package integrity

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"reorder/core/ordering"
	"reorder/core/storage"
	"reorder/feature/integrity/checks"
	itemmodels "reorder/feature/items/models"
	usermodels "reorder/feature/users/models"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

// ErrStorageDisabled is returned by storage checks when no client is configured.
var ErrStorageDisabled = errors.New("storage is disabled")

// Service handles integrity checks.
type Service struct {
	db     *gorm.DB
	engine *ordering.Engine
	client storage.Client
	bucket string
	region string
	logger *zap.Logger
	sf     singleflight.Group
}

// NewService creates a new integrity service. client may be nil when storage is disabled.
func NewService(db *gorm.DB, engine *ordering.Engine, client storage.Client, bucket, region string, logger *zap.Logger) *Service {
	return &Service{
		db:     db,
		engine: engine,
		client: client,
		bucket: bucket,
		region: region,
		logger: logger,
	}
}

// CheckSchema compares the users and order_items tables with their models.
func (s *Service) CheckSchema() (*checks.SchemaReport, error) {
	return checks.CheckSchema(s.db, usermodels.User{}, itemmodels.OrderItem{})
}

// CheckLists audits the keys of every list. Concurrent callers share one scan.
func (s *Service) CheckLists() (*checks.ListReport, error) {
	result, err, _ := s.sf.Do("lists", func() (interface{}, error) {
		return checks.CheckLists(s.db, s.engine.Settings().Threshold)
	})
	if err != nil {
		return nil, err
	}
	return result.(*checks.ListReport), nil
}

// FixLists renumbers the given lists. It stops at the first failure and
// returns how many lists were renumbered before it.
func (s *Service) FixLists(ctx context.Context, owners []string) (int, error) {
	for i, owner := range owners {
		if _, err := s.engine.Renumber(ctx, owner); err != nil {
			return i, fmt.Errorf("failed to renumber list of %s: %w", owner, err)
		}
		s.logger.Info("Renumbered list", zap.String("owner", owner))
	}
	return len(owners), nil
}

// CheckStorage reports on the snapshot bucket.
func (s *Service) CheckStorage(ctx context.Context) (*checks.StorageReport, error) {
	if s.client == nil {
		return nil, ErrStorageDisabled
	}
	return checks.CheckStorage(ctx, s.client, s.bucket)
}

// FixStorage creates the snapshot bucket.
func (s *Service) FixStorage(ctx context.Context) error {
	if s.client == nil {
		return ErrStorageDisabled
	}
	return storage.EnsureBucket(ctx, s.client, s.bucket, s.region)
}

// CheckAll runs every check concurrently. A failed check is reported in place
// of its result.
func (s *Service) CheckAll(ctx context.Context) map[string]interface{} {
	var (
		schema    *checks.SchemaReport
		lists     *checks.ListReport
		store     *checks.StorageReport
		schemaErr error
		listsErr  error
		storeErr  error
		wg        sync.WaitGroup
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		schema, schemaErr = s.CheckSchema()
	}()
	go func() {
		defer wg.Done()
		lists, listsErr = s.CheckLists()
	}()
	go func() {
		defer wg.Done()
		store, storeErr = s.CheckStorage(ctx)
	}()
	wg.Wait()

	return map[string]interface{}{
		"schema":  resultOrError(schema, schemaErr),
		"lists":   resultOrError(lists, listsErr),
		"storage": resultOrError(store, storeErr),
	}
}

func resultOrError(result interface{}, err error) interface{} {
	if err != nil {
		return map[string]string{"status": "error", "error": err.Error()}
	}
	return result
}
