package integrity_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"reorder/core/database"
	"reorder/core/ordering"
	"reorder/core/storage"
	"reorder/core/storage/mocks"
	"reorder/feature/integrity"
	"reorder/feature/integrity/checks"
	"reorder/feature/items"
	itemmodels "reorder/feature/items/models"
	usermodels "reorder/feature/users/models"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupTestApp(t *testing.T, client storage.Client) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&usermodels.User{}, &itemmodels.OrderItem{}))

	rows := []itemmodels.OrderItem{
		{ID: "a", UserID: "user-1", Label: "A", Position: 16384},
		{ID: "b", UserID: "user-1", Label: "B", Position: 16384.05},
		{ID: "c", UserID: "user-1", Label: "C", Position: 32768},
		{ID: "x", UserID: "user-2", Label: "X", Position: 16384},
	}
	require.NoError(t, db.Create(&rows).Error)

	engine, err := ordering.NewEngine(items.NewStore(db), ordering.DefaultConfig(), zap.NewNop())
	require.NoError(t, err)

	feature := integrity.NewFeature(db, engine, client, "bucket", "", zap.NewNop())
	assert.Equal(t, "integrity", feature.Name())
	assert.True(t, feature.IsEnabled())

	app := fiber.New()
	require.NoError(t, feature.Load(app))
	return app, db
}

func get(t *testing.T, app *fiber.App, path string) (int, []byte) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil), 2000)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, body
}

func TestHandleSchemaCheck(t *testing.T) {
	app, _ := setupTestApp(t, nil)

	status, body := get(t, app, "/integrity/schema")
	require.Equal(t, fiber.StatusOK, status)

	var report checks.SchemaReport
	require.NoError(t, json.Unmarshal(body, &report))
	assert.True(t, report.Matched)
	assert.Len(t, report.Tables, 2)
}

func TestHandleListsCheck(t *testing.T) {
	t.Run("ReportOnly", func(t *testing.T) {
		app, _ := setupTestApp(t, nil)

		status, body := get(t, app, "/integrity/lists")
		require.Equal(t, fiber.StatusOK, status)

		var report checks.ListReport
		require.NoError(t, json.Unmarshal(body, &report))
		assert.Equal(t, 2, report.Owners)
		assert.Equal(t, []string{"user-1"}, report.Affected)
		require.Len(t, report.Issues, 1)
		assert.Equal(t, checks.IssueCrowded, report.Issues[0].Kind)
		assert.Equal(t, "b", report.Issues[0].ItemID)
	})

	t.Run("Fix", func(t *testing.T) {
		app, db := setupTestApp(t, nil)

		status, body := get(t, app, "/integrity/lists?fix=true")
		require.Equal(t, fiber.StatusOK, status)
		assert.JSONEq(t, `{"status":"fixed","fixed":["user-1"]}`, string(body))

		var rows []itemmodels.OrderItem
		require.NoError(t, db.Where("user_id = ?", "user-1").Order("position").Find(&rows).Error)
		require.Len(t, rows, 3)
		assert.Equal(t, []float64{16384, 32768, 49152}, []float64{rows[0].Position, rows[1].Position, rows[2].Position})
		assert.Equal(t, "a", rows[0].ID)
		assert.Equal(t, "b", rows[1].ID)

		_, body = get(t, app, "/integrity/lists")
		var report checks.ListReport
		require.NoError(t, json.Unmarshal(body, &report))
		assert.Empty(t, report.Affected)
	})
}

func TestHandleStorageCheck(t *testing.T) {
	t.Run("Disabled", func(t *testing.T) {
		app, _ := setupTestApp(t, nil)

		status, _ := get(t, app, "/integrity/storage")
		assert.Equal(t, fiber.StatusNotFound, status)
	})

	t.Run("FixCreatesBucket", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "bucket").Return(false, nil)
		client.On("MakeBucket", mock.Anything, "bucket", minio.MakeBucketOptions{}).Return(nil)
		app, _ := setupTestApp(t, client)

		status, body := get(t, app, "/integrity/storage?fix=true")
		require.Equal(t, fiber.StatusOK, status)

		var report checks.StorageReport
		require.NoError(t, json.Unmarshal(body, &report))
		assert.True(t, report.Exists)
		client.AssertExpectations(t)
	})
}

func TestHandleIntegrityCheck(t *testing.T) {
	app, _ := setupTestApp(t, nil)

	status, body := get(t, app, "/integrity")
	require.Equal(t, fiber.StatusOK, status)

	var report map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(body, &report))
	assert.Contains(t, report, "schema")
	assert.Contains(t, report, "lists")
	assert.Contains(t, report, "storage")
	assert.Contains(t, string(report["storage"]), "storage is disabled")
}
