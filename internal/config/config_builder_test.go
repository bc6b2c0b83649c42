package config

import (
	"encoding/json"
	"os"
	"path/filepath"
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

func builderWithoutDefaultJSON() *configBuilder {
	b := newConfigBuilder()
	b.defaultJSONPath = ""
	return b
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error, an empty configs slice and probes pyloadConfig.json.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
	assert.Equal(t, DefaultJSONFilePath, b.defaultJSONPath)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs returns the
// defaults only.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultAdapterTimeout, cfg.Adapter.RequestTimeout)
	assert.False(t, cfg.Destination.Configured())
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_MergesMultipleConfigs verifies that fields from multiple configs
// are merged into a single result.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Destination: Destination{URL: "http://nas:8000"}},
		&StructuredConfig{Destination: Destination{Username: "user", Password: "pw"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, Destination{URL: "http://nas:8000", Username: "user", Password: "pw"}, cfg.Destination)
}

// TestBuild_LaterConfigWins verifies that a later non-zero field overrides
// an earlier one.
func TestBuild_LaterConfigWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Server: Server{HTTPAddress: "127.0.0.1:1111"}},
		&StructuredConfig{Server: Server{HTTPAddress: "127.0.0.1:2222"}},
		&StructuredConfig{},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:2222", cfg.Server.HTTPAddress)
}

// TestBuild_TrimsDestinationURL verifies that trailing slashes and
// surrounding whitespace are removed from the destination URL.
func TestBuild_TrimsDestinationURL(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Destination: Destination{URL: "  http://nas:8000/  "},
	})

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "http://nas:8000", cfg.Destination.URL)
}

// TestBuild_InvalidDestination verifies that a destination URL without an
// http(s) scheme or host is rejected.
func TestBuild_InvalidDestination(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{name: "no scheme", url: "nas:8000"},
		{name: "ftp scheme", url: "ftp://nas:8000"},
		{name: "no host", url: "http://"},
		{name: "unparsable", url: "http://[::1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newConfigBuilder()
			b.configs = append(b.configs, &StructuredConfig{Destination: Destination{URL: tt.url}})

			_, err := b.build()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidDestinationConfigs)
		})
	}
}

// TestBuild_NegativeTimeout verifies that negative timeouts are rejected.
func TestBuild_NegativeTimeout(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Adapter: Adapter{RequestTimeout: -time.Second}})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidTimeoutConfigs)
}

// TestValidate_EmptyAddress verifies that an empty listen address is invalid.
func TestValidate_EmptyAddress(t *testing.T) {
	cfg := &StructuredConfig{}
	assert.ErrorIs(t, cfg.validate(), ErrInvalidServerConfigs)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_AppendsConfig verifies that withEnv appends a config populated
// from the environment.
func TestWithEnv_AppendsConfig(t *testing.T) {
	setEnvVars(t, map[string]string{
		"DESTINATION_URL": "http://nas:8000",
	})

	b := newConfigBuilder().withEnv()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "http://nas:8000", b.configs[0].Destination.URL)
}

// TestWithEnv_InvalidValue verifies that a parse error is captured on the
// builder and no config is appended.
func TestWithEnv_InvalidValue(t *testing.T) {
	setEnvVars(t, map[string]string{
		"SERVER_REQUEST_TIMEOUT": "soon",
	})

	b := newConfigBuilder().withEnv()
	require.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withDotEnv ────────────────────────────────────────────────────────────────

// TestWithDotEnv_LoadsFile verifies that a .env file in the working directory
// is exported into the environment.
func TestWithDotEnv_LoadsFile(t *testing.T) {
	clearEnvVars(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("DESTINATION_USERNAME=dotenv-user\n"), 0o600))
	t.Chdir(dir)
	t.Cleanup(func() { _ = os.Unsetenv("DESTINATION_USERNAME") })

	b := newConfigBuilder().withDotEnv().withEnv()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "dotenv-user", b.configs[0].Destination.Username)
}

// TestWithDotEnv_MissingFile verifies that a missing .env file is ignored.
func TestWithDotEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	b := newConfigBuilder().withDotEnv()
	assert.NoError(t, b.err)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_NoPathNoDefault verifies that withJSON is a no-op when no
// path is set and the default file does not exist.
func TestWithJSON_NoPathNoDefault(t *testing.T) {
	b := newConfigBuilder()
	b.defaultJSONPath = filepath.Join(t.TempDir(), "missing.json")
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

// TestWithJSON_DefaultFile verifies that the default pyloadConfig.json is
// loaded when present and no explicit path is given.
func TestWithJSON_DefaultFile(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]string{
		"pyloadUrl":  "http://legacy:8000",
		"pyloadUser": "user",
		"pyloadPW":   "pw",
	})

	b := newConfigBuilder()
	b.defaultJSONPath = path

	cfg, err := b.withJSON().build()
	require.NoError(t, err)
	assert.Equal(t, Destination{URL: "http://legacy:8000", Username: "user", Password: "pw"}, cfg.Destination)
}

// TestWithJSON_ExplicitPath verifies that the JSON file named by a source is
// parsed and placed first.
func TestWithJSON_ExplicitPath(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"destination": map[string]string{"url": "http://json:8000"},
	})

	b := builderWithoutDefaultJSON()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})

	b.withJSON()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "http://json:8000", b.configs[0].Destination.URL)
}

// TestWithJSON_LastPathWins verifies that the JSON path of the last source
// that set one is used.
func TestWithJSON_LastPathWins(t *testing.T) {
	first := writeTempJSONConfig(t, map[string]any{"destination": map[string]string{"url": "http://first"}})
	second := writeTempJSONConfig(t, map[string]any{"destination": map[string]string{"url": "http://second"}})

	b := builderWithoutDefaultJSON()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: first},
		&StructuredConfig{JSONFilePath: second},
	)

	b.withJSON()
	require.NoError(t, b.err)
	assert.Equal(t, "http://second", b.configs[0].Destination.URL)
}

// TestWithJSON_InvalidPath verifies that a missing explicit file is an error.
func TestWithJSON_InvalidPath(t *testing.T) {
	b := builderWithoutDefaultJSON()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})

	_, err := b.withJSON().build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

// TestWithJSON_EnvOverridesJSON verifies the precedence JSON < env.
func TestWithJSON_EnvOverridesJSON(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"server":      map[string]string{"http_address": "127.0.0.1:1111"},
		"destination": map[string]string{"url": "http://json:8000", "username": "json-user"},
	})
	setEnvVars(t, map[string]string{
		"CONFIG":               path,
		"DESTINATION_USERNAME": "env-user",
	})

	b := builderWithoutDefaultJSON()
	cfg, err := b.withEnv().withJSON().build()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:1111", cfg.Server.HTTPAddress)
	assert.Equal(t, "http://json:8000", cfg.Destination.URL)
	assert.Equal(t, "env-user", cfg.Destination.Username)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

// TestGetStructuredConfig_FlagsOverrideEnv verifies the full chain with the
// precedence env < flags.
func TestGetStructuredConfig_FlagsOverrideEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	setEnvVars(t, map[string]string{
		"SERVER_ADDRESS":  "127.0.0.1:1111",
		"DESTINATION_URL": "http://env:8000",
	})
	resetFlags(t, "-a", "127.0.0.1:2222", "-pretty")

	cfg, err := GetStructuredConfig()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:2222", cfg.Server.HTTPAddress)
	assert.Equal(t, "http://env:8000", cfg.Destination.URL)
	assert.True(t, cfg.Log.Pretty)
	assert.Equal(t, DefaultAdapterTimeout, cfg.Adapter.RequestTimeout)
}
