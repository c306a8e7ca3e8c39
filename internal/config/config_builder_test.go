package config

import (
	"encoding/json"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := (&configBuilder{}).build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := &configBuilder{err: errors.New("boom")}

	cfg, err := b.build()

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "boom")
}

// TestBuild_LaterSourcesWin verifies that non-zero fields of later configs
// override earlier ones while zero fields keep the earlier value.
func TestBuild_LaterSourcesWin(t *testing.T) {
	b := &configBuilder{}
	b.withDefaults()
	b.configs = append(b.configs, &StructuredConfig{
		Adapter: Adapter{HTTPAddress: "http://from-env/"},
	})
	b.configs = append(b.configs, &StructuredConfig{
		Adapter: Adapter{RequestTimeout: 5 * time.Second},
	})

	cfg, err := b.build()

	require.NoError(t, err)
	assert.Equal(t, "http://from-env/", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, defaultDSN, cfg.Storage.DB.DSN)
	assert.Equal(t, defaultSummaryInterval, cfg.Workers.SummaryInterval)
}

// ── sources ──────────────────────────────────────────────────────────────────

func TestBuilder_FullChain(t *testing.T) {
	// Arrange
	jsonPath := writeTempJSONConfig(t, map[string]any{
		"workers": map[string]any{"summary_interval": "10s"},
	})
	setEnvVars(t, map[string]string{
		"ADAPTER_ADDRESS": "http://from-env/",
		"CONFIG":          jsonPath,
		dotEnvPathVar:     jsonPath + ".missing",
	})

	b := newConfigBuilder()
	b.args = []string{"-request-timeout", "7s"}

	// Act
	cfg, err := b.withDefaults().withDotEnv().withEnv().withFlags().withJSON().build()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "http://from-env/", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 7*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 10*time.Second, cfg.Workers.SummaryInterval)
	assert.Equal(t, defaultPhoneRegion, cfg.App.PhoneRegion)
}

func TestBuilder_WithJSON_MissingFile(t *testing.T) {
	b := &configBuilder{configs: []*StructuredConfig{{JSONFilePath: "/does/not/exist.json"}}}

	_, err := b.withJSON().build()

	assert.Error(t, err)
}

func TestBuilder_WithFlags_Invalid(t *testing.T) {
	b := &configBuilder{args: []string{"-request-timeout", "never"}}

	_, err := b.withFlags().build()

	assert.Error(t, err)
}

// ── views ────────────────────────────────────────────────────────────────────

func TestClientConfig_Validate(t *testing.T) {
	valid := func() *ClientConfig { return newClientConfig(defaultConfig()) }

	require.NoError(t, valid().validate())

	c := valid()
	c.Storage.DB.DSN = ":memory:"
	assert.ErrorIs(t, c.validate(), ErrInvalidStorageConfigs)

	c = valid()
	c.Adapter.RequestTimeout = 0
	assert.ErrorIs(t, c.validate(), ErrInvalidAdapterConfigs)

	c = valid()
	c.Workers.SummaryInterval = 0
	assert.ErrorIs(t, c.validate(), ErrInvalidWorkerConfigs)

	c = valid()
	c.App.PhoneRegion = "ITA"
	assert.ErrorIs(t, c.validate(), ErrInvalidAppConfigs)
}

func TestServerConfig_Validate(t *testing.T) {
	s := newServerConfig(defaultConfig())
	assert.ErrorIs(t, s.validate(), ErrInvalidServerConfigs, "sign key has no default")

	s.TokenSignKey = "secret"
	assert.NoError(t, s.validate())

	s.RateLimit = 0
	assert.ErrorIs(t, s.validate(), ErrInvalidServerConfigs)
}
