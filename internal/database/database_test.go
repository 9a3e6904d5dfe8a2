package database

import (
	"testing"

	"bank-console/internal/config"
	"bank-console/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_SQLite(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Driver:         "sqlite",
		Path:           "file::memory:",
		MaxConnections: 1,
		MaxIdleConns:   1,
	}

	db, err := New(cfg)
	require.NoError(t, err)
	defer db.Close()

	assert.NoError(t, db.HealthCheck())
	require.NoError(t, db.AutoMigrate())
	assert.NoError(t, db.CreateIndexes())
	assert.True(t, db.Migrator().HasTable(&models.AuditLog{}))
}

func TestInitialize_SQLiteUsesAutoMigrate(t *testing.T) {
	t.Setenv("AUTO_MIGRATE", "true")

	cfg := &config.Config{
		Database: config.DatabaseConfig{
			Driver:         "sqlite",
			Path:           "file::memory:",
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	db, err := Initialize(cfg)
	require.NoError(t, err)
	defer db.Close()

	assert.True(t, db.Migrator().HasTable("console_audit_logs"))
	assert.True(t, db.Migrator().HasIndex(&models.AuditLog{}, "idx_console_audit_logs_entity_resource"))
}

func TestCleanupTestDB(t *testing.T) {
	db := SetupTestDB(t)

	require.NoError(t, db.Create(&models.AuditLog{Action: models.AuditActionLogin, Entity: "session"}).Error)

	CleanupTestDB(t, db)

	var count int64
	require.NoError(t, db.Model(&models.AuditLog{}).Count(&count).Error)
	assert.Zero(t, count)
}
