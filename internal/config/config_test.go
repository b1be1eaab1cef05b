package config

import (
	"testing"
	"voyago/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("POSTGRES_URL", "postgres://localhost/test")
	t.Setenv("SUPABASE_URL", "https://project.supabase.co")
	t.Setenv("SUPABASE_KEY", "anon")
	t.Setenv("SUPABASE_JWT_SECRET", "secret")
	t.Setenv("DASHSCOPE_API_KEY", "sk-test")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)
	t.Setenv("APP_PORT", "")
	t.Setenv("APP_ENV", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.AppPort)
	assert.Equal(t, "development", cfg.AppEnv)
}

func TestLoadFailsOnMissingRequiredKey(t *testing.T) {
	setRequired(t)
	t.Setenv("DASHSCOPE_API_KEY", "")

	_, err := Load()
	require.ErrorIs(t, err, utils.ErrConfigMissing)
	assert.Contains(t, err.Error(), "DASHSCOPE_API_KEY")
}

func TestLoadRejectsMalformedPort(t *testing.T) {
	setRequired(t)
	t.Setenv("APP_PORT", "not-a-port")

	_, err := Load()
	require.Error(t, err)
}
