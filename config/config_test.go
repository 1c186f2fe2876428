package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdirTemp isolates Load from any .env in the package directory.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	chdirTemp(t)
	t.Setenv("CONFIG_FILE", "")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, BackendLocal, cfg.PredictorBackend)
	assert.Equal(t, 10*time.Second, cfg.PredictTimeout)
	assert.Equal(t, "₹", cfg.CurrencySymbol)
	assert.False(t, cfg.Database.Enabled)
	assert.Equal(t, 5432, cfg.Database.Port)
}

func TestLoad_EnvOverrides(t *testing.T) {
	chdirTemp(t)
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("PORT", "9000")
	t.Setenv("MODEL_WATCH", "true")
	t.Setenv("PREDICT_TIMEOUT", "2s")
	t.Setenv("DB_ENABLED", "true")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("RATE_LIMIT_RPS", "2.5")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.True(t, cfg.ModelWatch)
	assert.Equal(t, 2*time.Second, cfg.PredictTimeout)
	assert.True(t, cfg.Database.Enabled)
	assert.Equal(t, 6543, cfg.Database.Port)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 2.5, cfg.RateLimitRPS)
}

func TestLoad_YAMLUnderEnv(t *testing.T) {
	dir := chdirTemp(t)
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
port: "7000"
model_path: /models/house.json
predict_timeout: 3s
currency_symbol: "$"
database:
  enabled: true
  name: prices
`), 0o644))
	t.Setenv("PORT", "7100")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "7100", cfg.Port, "env wins over yaml")
	assert.Equal(t, "/models/house.json", cfg.ModelPath)
	assert.Equal(t, 3*time.Second, cfg.PredictTimeout)
	assert.Equal(t, "$", cfg.CurrencySymbol)
	assert.True(t, cfg.Database.Enabled)
	assert.Equal(t, "prices", cfg.Database.Name)
	assert.Equal(t, "localhost", cfg.Database.Host, "unset yaml keys keep defaults")
}

func TestLoad_DotEnv(t *testing.T) {
	dir := chdirTemp(t)
	t.Setenv("CONFIG_FILE", "")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("LOG_LEVEL=debug\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("LOG_LEVEL") })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_Invalid(t *testing.T) {
	chdirTemp(t)
	t.Setenv("CONFIG_FILE", "")

	t.Setenv("PREDICTOR_BACKEND", "onnx")
	_, err := Load("")
	assert.Error(t, err)

	t.Setenv("PREDICTOR_BACKEND", BackendLocal)
	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_RejectsUnknownGinMode(t *testing.T) {
	dir := chdirTemp(t)
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("GIN_MODE", "")

	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("gin_mode: prod\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown GIN_MODE "prod"`)

	for _, mode := range []string{"debug", "release", "test"} {
		t.Setenv("GIN_MODE", mode)
		cfg, err := Load("")
		require.NoError(t, err, mode)
		assert.Equal(t, mode, cfg.GinMode)
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := Default().Database
	assert.Equal(t, "host=localhost port=5432 user=postgres password=root dbname=house_prices sslmode=disable", d.DSN())
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger("warn")
	require.NoError(t, err)
	assert.NotNil(t, logger)

	_, err = NewLogger("loud")
	assert.Error(t, err)
}
