package database

import (
	"testing"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestConnect(t *testing.T) {
	t.Run("Invalid Connection", func(t *testing.T) {
		cfg := Config{
			Host:           "localhost",
			Port:           9999, // Unused port
			User:           "root",
			Password:       "wrongpassword",
			Name:           "reorder",
			TimeoutSeconds: 2,
		}

		db, err := Connect(cfg)
		assert.Error(t, err)
		assert.Nil(t, db)
	})

	t.Run("Unsupported Driver", func(t *testing.T) {
		db, err := Connect(Config{Driver: "oracle"})
		assert.Error(t, err)
		assert.Nil(t, db)
	})

	t.Run("SQLite Memory", func(t *testing.T) {
		db, err := Connect(Config{Driver: "sqlite", Name: ":memory:"})
		require.NoError(t, err)
		require.NotNil(t, db)

		// The single connection keeps the in-memory schema visible to later statements.
		require.NoError(t, db.Exec("CREATE TABLE samples (id INTEGER PRIMARY KEY)").Error)
		require.NoError(t, db.Exec("INSERT INTO samples (id) VALUES (1)").Error)

		var n int64
		require.NoError(t, db.Raw("SELECT count(*) FROM samples").Scan(&n).Error)
		assert.Equal(t, int64(1), n)
	})
}

func TestMysqlDSN(t *testing.T) {
	password := "p@ss:w/rd?x=1"
	dsn := mysqlDSN(Config{User: "app", Password: password, Host: "db", Port: 3306, Name: "reorder"}, 5)

	parsed, err := mysqldriver.ParseDSN(dsn)
	require.NoError(t, err)
	assert.Equal(t, "app", parsed.User)
	assert.Equal(t, password, parsed.Passwd)
	assert.Equal(t, "tcp", parsed.Net)
	assert.Equal(t, "db:3306", parsed.Addr)
	assert.Equal(t, "reorder", parsed.DBName)
	assert.True(t, parsed.ParseTime)
	assert.Equal(t, time.Local, parsed.Loc)
	assert.Equal(t, 5*time.Second, parsed.Timeout)
	assert.Equal(t, 5*time.Second, parsed.ReadTimeout)
	assert.Equal(t, 5*time.Second, parsed.WriteTimeout)
	assert.Equal(t, "utf8mb4", parsed.Params["charset"])
}

func TestConnect_TranslatesDuplicateKey(t *testing.T) {
	db, err := Connect(Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)

	require.NoError(t, db.Exec("CREATE TABLE accounts (id TEXT PRIMARY KEY, name TEXT UNIQUE)").Error)
	require.NoError(t, db.Exec("INSERT INTO accounts (id, name) VALUES ('1', 'alice')").Error)

	err = db.Exec("INSERT INTO accounts (id, name) VALUES ('2', 'alice')").Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}
