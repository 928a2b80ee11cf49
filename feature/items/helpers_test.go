package items_test

import (
	"testing"

	"reorder/core/database"
	"reorder/core/ordering"
	"reorder/feature/items"
	"reorder/feature/items/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

const ownerID = "user-1"

// setupDB opens an in-memory sqlite database with a three item list for ownerID
// and a single item for another owner.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.OrderItem{}))

	rows := []models.OrderItem{
		{ID: "a", UserID: ownerID, Label: "A", Position: 16384, Color: "red", FgColor: "white"},
		{ID: "b", UserID: ownerID, Label: "B", Position: 32768, Color: "green", FgColor: "white"},
		{ID: "c", UserID: ownerID, Label: "C", Position: 49152, Color: "blue", FgColor: "white"},
		{ID: "x", UserID: "user-2", Label: "X", Position: 16384},
	}
	require.NoError(t, db.Create(&rows).Error)
	return db
}

// setupMockDB creates a mock GORM DB for testing statement sequences.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

func newEngine(t *testing.T, db *gorm.DB) *ordering.Engine {
	t.Helper()
	engine, err := ordering.NewEngine(items.NewStore(db), ordering.DefaultConfig(), zap.NewNop())
	require.NoError(t, err)
	return engine
}

func positions(t *testing.T, db *gorm.DB, owner string) map[string]float64 {
	t.Helper()
	var rows []models.OrderItem
	require.NoError(t, db.Where("user_id = ?", owner).Find(&rows).Error)
	out := make(map[string]float64, len(rows))
	for _, r := range rows {
		out[r.ID] = r.Position
	}
	return out
}
