package db_test

import (
	"testing"

	"planetary_api/internal/config"
	"planetary_api/internal/db"

	"github.com/stretchr/testify/assert"
)

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := db.Open(&config.Config{DBDriver: "oracle"})
	assert.ErrorContains(t, err, "unsupported database driver")
}
