package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"APP_PORT", "DB_DRIVER", "DB_PATH", "REDIS_ADDR", "REDIS_DB", "LOG_LEVEL", "IS_PROD"} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()
	assert.Equal(t, "5000", cfg.AppPort)
	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, "planets.db", cfg.DSN())
	assert.Empty(t, cfg.RedisAddr)
	assert.Zero(t, cfg.RedisDB)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.IsProd)
}

func TestLoadConfig_MySQL(t *testing.T) {
	t.Setenv("DB_DRIVER", "mysql")
	t.Setenv("DB_USER", "root")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "3307")
	t.Setenv("DB_NAME", "planetary")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("IS_PROD", "true")

	cfg := LoadConfig()
	assert.Equal(t, DriverMySQL, cfg.DBDriver)
	assert.Equal(t, "root:secret@tcp(db:3307)/planetary?parseTime=true", cfg.DSN())
	assert.Equal(t, 2, cfg.RedisDB)
	assert.True(t, cfg.IsProd)
}
