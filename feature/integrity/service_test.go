package integrity_test

import (
	"context"
	"errors"
	"testing"

	"reorder/core/database"
	"reorder/core/ordering"
	"reorder/core/storage/mocks"
	"reorder/feature/integrity"
	"reorder/feature/integrity/checks"
	"reorder/feature/items"
	itemmodels "reorder/feature/items/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestService_CheckAll(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&itemmodels.OrderItem{}))

	engine, err := ordering.NewEngine(items.NewStore(db), ordering.DefaultConfig(), zap.NewNop())
	require.NoError(t, err)

	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "bucket").Return(false, errors.New("unreachable"))

	svc := integrity.NewService(db, engine, client, "bucket", "", zap.NewNop())
	report := svc.CheckAll(context.Background())

	schema, ok := report["schema"].(*checks.SchemaReport)
	require.True(t, ok)
	assert.False(t, schema.Matched, "users table was never migrated")

	lists, ok := report["lists"].(*checks.ListReport)
	require.True(t, ok)
	assert.Zero(t, lists.Items)

	assert.Equal(t, map[string]string{"status": "error", "error": "failed to check bucket existence: unreachable"}, report["storage"])
}

func TestService_FixLists_Unknown(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&itemmodels.OrderItem{}))

	engine, err := ordering.NewEngine(items.NewStore(db), ordering.DefaultConfig(), zap.NewNop())
	require.NoError(t, err)

	svc := integrity.NewService(db, engine, nil, "bucket", "", zap.NewNop())
	fixed, err := svc.FixLists(context.Background(), []string{"nobody"})
	require.NoError(t, err)
	assert.Equal(t, 1, fixed)
}
