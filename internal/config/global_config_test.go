package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultGlobalConfig(t *testing.T) {
	cfg := NewDefaultGlobalConfig()

	assert.NotNil(t, cfg)
	assert.Equal(t, "Go-Raw-HTTP-Client", cfg.ClientConfig.UserAgent)
	assert.Equal(t, 80, cfg.ClientConfig.Port)
	assert.Equal(t, "GET", cfg.ClientConfig.DefaultMethod)
	assert.Equal(t, "info", cfg.LogConfig.LogLevel)
	assert.Equal(t, DefaultDemoURL, cfg.DemoConfig.URL)
	assert.Equal(t, DefaultDemoPostURL, cfg.DemoConfig.PostURL)
	assert.Equal(t, 101, cfg.DemoConfig.PostBody["id"])
	assert.NoError(t, ValidateConfig(cfg))
}

func TestLoadGlobalConfig_NoConfigFile(t *testing.T) {
	chdirForTest(t, t.TempDir())
	t.Setenv(ConfigPathEnv, "")

	cfg, err := LoadGlobalConfig("", zerolog.Nop())

	require.NoError(t, err)
	assert.Equal(t, 80, cfg.ClientConfig.Port)
}

func TestLoadGlobalConfig_NonExistentFile(t *testing.T) {
	cfg, err := LoadGlobalConfig("/nonexistent/config.json", zerolog.Nop())

	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config file does not exist")
}

func TestLoadGlobalConfig_JSONFile(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.json")
	configData := `{
		"client_config": {
			"user_agent": "test-agent",
			"port": 8080
		},
		"log_config": {
			"log_level": "debug"
		}
	}`
	require.NoError(t, os.WriteFile(configFile, []byte(configData), 0644))

	cfg, err := LoadGlobalConfig(configFile, zerolog.Nop())

	require.NoError(t, err)
	assert.Equal(t, "test-agent", cfg.ClientConfig.UserAgent)
	assert.Equal(t, 8080, cfg.ClientConfig.Port)
	assert.Equal(t, "debug", cfg.LogConfig.LogLevel)
	assert.Equal(t, "console", cfg.LogConfig.LogFormat)
}

func TestLoadGlobalConfig_YAMLFile(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	configData := `
client_config:
  user_agent: yaml-agent
log_config:
  log_format: json
demo_config:
  url: http://localhost/posts/1
  post_url: http://localhost/comments
`
	require.NoError(t, os.WriteFile(configFile, []byte(configData), 0644))

	cfg, err := LoadGlobalConfig(configFile, zerolog.Nop())

	require.NoError(t, err)
	assert.Equal(t, "yaml-agent", cfg.ClientConfig.UserAgent)
	assert.Equal(t, 80, cfg.ClientConfig.Port)
	assert.Equal(t, "json", cfg.LogConfig.LogFormat)
	assert.Equal(t, "http://localhost/posts/1", cfg.DemoConfig.URL)
	assert.Equal(t, "http://localhost/comments", cfg.DemoConfig.PostURL)
}

func TestLoadGlobalConfig_EnvPath(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "custom.yml")
	require.NoError(t, os.WriteFile(configFile, []byte("client_config:\n  port: 8081\n"), 0644))
	t.Setenv(ConfigPathEnv, configFile)

	cfg, err := LoadGlobalConfig("", zerolog.Nop())

	require.NoError(t, err)
	assert.Equal(t, 8081, cfg.ClientConfig.Port)
}

func TestLoadGlobalConfig_InvalidJSON(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(configFile, []byte(`{"client_config": `), 0644))

	cfg, err := LoadGlobalConfig(configFile, zerolog.Nop())

	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config content")
}

func TestLoadGlobalConfig_InvalidYAML(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("client_config: [unclosed"), 0644))

	cfg, err := LoadGlobalConfig(configFile, zerolog.Nop())

	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestGetConfigPath_Priority(t *testing.T) {
	dir := t.TempDir()
	chdirForTest(t, dir)
	flagFile := filepath.Join(dir, "flag.json")
	envFile := filepath.Join(dir, "env.json")
	require.NoError(t, os.WriteFile(flagFile, []byte("{}"), 0644))
	require.NoError(t, os.WriteFile(envFile, []byte("{}"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(""), 0644))

	t.Setenv(ConfigPathEnv, envFile)
	assert.Equal(t, flagFile, GetConfigPath(flagFile))
	assert.Equal(t, envFile, GetConfigPath(""))

	t.Setenv(ConfigPathEnv, "")
	assert.Equal(t, filepath.Join(dir, "config.yaml"), GetConfigPath(""))
}

// chdirForTest mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdirForTest(t *testing.T, dir string) {
	t.Helper()
	oldwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(oldwd); err != nil {
			t.Fatalf("restore working directory: %v", err)
		}
	})
}
