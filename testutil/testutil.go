// Package testutil provides an in-memory database for tests.
package testutil

import (
	"fmt"
	"testing"

	"github.com/andrewpaige1/srlboard-api/config"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// DB returns a migrated sqlite database private to t.
func DB(t testing.TB) *gorm.DB {
	t.Helper()

	name, err := gonanoid.Generate("abcdefghijklmnopqrstuvwxyz", 16)
	require.NoError(t, err)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Keep one connection so the shared in-memory database outlives idle closes.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}
