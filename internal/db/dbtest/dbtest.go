// Package dbtest opens throwaway in-memory stores for tests.
package dbtest

import (
	"context"
	"strings"
	"testing"

	"planetary_api/internal/config"
	"planetary_api/internal/db"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Open returns a connection to a private in-memory SQLite database.
func Open(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	cfg := &config.Config{
		DBDriver: config.DriverSQLite,
		DBPath:   "file:" + name + "?mode=memory&cache=shared",
	}
	conn, err := db.Open(cfg)
	require.NoError(t, err)

	sqlDB, err := conn.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1) // one connection keeps the memory database alive
	t.Cleanup(func() { _ = sqlDB.Close() })
	return conn
}

// NewStore returns a store backed by a private in-memory SQLite database.
// The schema is created unless bare is set.
func NewStore(t *testing.T, rdb *redis.Client, bare bool) *db.Store {
	t.Helper()
	store, _ := NewStoreConn(t, rdb, bare)
	return store
}

// NewStoreConn is NewStore that also hands back the raw connection for assertions.
func NewStoreConn(t *testing.T, rdb *redis.Client, bare bool) (*db.Store, *gorm.DB) {
	t.Helper()

	conn := Open(t)
	store := db.NewStore(conn, rdb)
	if !bare {
		require.NoError(t, store.CreateSchema(context.Background()))
	}
	return store, conn
}
