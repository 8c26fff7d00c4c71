package api_test

import (
	"math"
	"testing"

	"planetary_api/internal/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAge(t *testing.T) {
	age, err := api.ParseAge("21")
	require.NoError(t, err)
	assert.Equal(t, 21, age)

	age, err = api.ParseAge("99999999999999999999999")
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt, age)

	age, err = api.ParseAge("-99999999999999999999999")
	require.NoError(t, err)
	assert.Equal(t, math.MinInt, age)

	_, err = api.ParseAge("twenty")
	assert.ErrorIs(t, err, api.ErrInvalidParameter)

	_, err = api.ParseAge("")
	assert.ErrorIs(t, err, api.ErrInvalidParameter)
}
