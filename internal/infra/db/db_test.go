package db

import (
	"context"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/hubmanager/backend/config"
	"github.com/hubmanager/backend/internal/integration/persistence/model"
)

func TestDatabase_MigrateAndHealth(t *testing.T) {
	gdb, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	database := Wrap(gdb)
	require.NoError(t, database.Migrate())

	for _, m := range model.All() {
		assert.True(t, gdb.Migrator().HasTable(m), "%T", m)
	}
	assert.True(t, database.HealthCheck(context.Background()))

	require.NoError(t, database.Close())
	assert.False(t, database.HealthCheck(context.Background()))
}

func TestDialectorFor(t *testing.T) {
	tests := []struct {
		url     string
		dialect string
	}{
		{"postgres://u:p@localhost:5432/hub?sslmode=disable", "postgres"},
		{"sqlite://hub.db", "sqlite"},
		{"file:hub.db?cache=shared", "sqlite"},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			dialector, dialect := dialectorFor(tt.url)
			assert.Equal(t, tt.dialect, dialect)
			assert.Equal(t, tt.dialect, dialector.Name())
		})
	}
}

func TestOpen_SQLiteFile(t *testing.T) {
	url := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	database, err := Open(&config.DatabaseConfig{URL: url})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	require.NoError(t, database.Migrate())
	assert.True(t, database.HealthCheck(context.Background()))
}
