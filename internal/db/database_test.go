package db

import (
	"testing"

	"github.com/ikkim/foodreview-backend/config"
	"github.com/ikkim/foodreview-backend/internal/app/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupTestDBIsolation(t *testing.T) {
	first, err := SetupTestDB()
	require.NoError(t, err)
	defer CleanupTestDB(first)

	second, err := SetupTestDB()
	require.NoError(t, err)
	defer CleanupTestDB(second)

	require.NoError(t, first.Create(&model.Restaurant{Name: "Only here"}).Error)

	var count int64
	require.NoError(t, second.Model(&model.Restaurant{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestForeignKeysEnforced(t *testing.T) {
	conn, err := SetupTestDB()
	require.NoError(t, err)
	defer CleanupTestDB(conn)

	err = conn.Create(&model.Menu{Name: "Orphan", RestaurantID: 999}).Error
	assert.Error(t, err)
}

func TestTruncateAllTables(t *testing.T) {
	conn, err := SetupTestDB()
	require.NoError(t, err)
	defer CleanupTestDB(conn)

	r := &model.Restaurant{Name: "Gone soon"}
	require.NoError(t, conn.Create(r).Error)
	require.NoError(t, conn.Create(&model.Menu{Name: "Lunch", RestaurantID: r.ID}).Error)

	require.NoError(t, TruncateAllTables(conn))

	var count int64
	require.NoError(t, conn.Model(&model.Menu{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestOpenSQLiteAndMigrate(t *testing.T) {
	cfg := &config.DatabaseConfig{Driver: "sqlite", Path: "file:" + t.TempDir() + "/app.db"}
	conn, err := Open(cfg)
	require.NoError(t, err)
	defer CleanupTestDB(conn)

	require.NoError(t, Migrate(conn))
	assert.True(t, conn.Migrator().HasTable(&model.Favorite{}))
	assert.True(t, conn.Migrator().HasIndex(&model.Favorite{}, "idx_favorites_user_restaurant"))
}
