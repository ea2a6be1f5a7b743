package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/payonekit/pkg/config"
)

type testCredentials struct {
	MID         string `env:"TEST_PAYONE_MID,required"`
	AID         string `env:"TEST_PAYONE_AID"`
	Environment string `env:"TEST_PAYONE_ENVIRONMENT" envDefault:"test"`
}

func TestLoad(t *testing.T) {
	t.Run("parses tagged fields", func(t *testing.T) {
		t.Setenv("TEST_PAYONE_MID", "12345")
		t.Setenv("TEST_PAYONE_AID", "67890")

		var creds testCredentials
		require.NoError(t, config.Load(&creds))

		assert.Equal(t, "12345", creds.MID)
		assert.Equal(t, "67890", creds.AID)
		assert.Equal(t, "test", creds.Environment)
	})

	t.Run("missing required variable", func(t *testing.T) {
		var creds testCredentials
		err := config.Load(&creds)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil pointer", func(t *testing.T) {
		var creds *testCredentials
		assert.ErrorIs(t, config.Load(creds), config.ErrNilPointer)
	})
}

func TestMustLoadPanics(t *testing.T) {
	assert.Panics(t, func() {
		var creds testCredentials
		config.MustLoad(&creds)
	})
}
