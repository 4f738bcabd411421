package conf_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap/zaptest"

	"github.com/schema-gateway/mock-upstream/util/conf"
)

type testConfig struct {
	Name string         `conf:"name"`
	Http testHttpConfig `conf:"http"`
}

type testHttpConfig struct {
	Host string `conf:"host"`
	Port int    `conf:"port"`
	H2c  bool   `conf:"h2c"`
}

var testDefaults = conf.DefaultConfig{
	"name":      "default",
	"http.host": "localhost",
	"http.port": 3001,
	"http.h2c":  false,
}

const testEnvPrefix = "CONF_TEST_"

func writeFile(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// parseWithArgs runs a minimal cli app with the given args and parses
// the config from within its action.
func parseWithArgs(t *testing.T, opt conf.ParseOptions, args ...string) testConfig {
	var (
		cfg testConfig
		err error
	)

	app := &cli.App{
		Name: "test",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "host", Value: "flag-default"},
			&cli.IntFlag{Name: "port", Value: 9999, EnvVars: []string{"CONF_TEST_FLAG_PORT"}},
			&cli.BoolFlag{Name: "h2c"},
		},
		Action: func(ctx *cli.Context) error {
			opt.Cli = ctx
			opt.CliMap = map[string]string{
				"host": "http.host",
				"port": "http.port",
				"h2c":  "http.h2c",
			}
			cfg, err = conf.Parse[testConfig](opt)
			return err
		},
	}

	require.NoError(t, app.Run(append([]string{"test"}, args...)))
	require.NoError(t, err)

	return cfg
}

func TestParse_Defaults(t *testing.T) {
	cfg, err := conf.Parse[testConfig](conf.ParseOptions{
		Defaults:  testDefaults,
		EnvPrefix: testEnvPrefix,
		Log:       zaptest.NewLogger(t),
	})
	require.NoError(t, err)

	assert.Equal(t, testConfig{
		Name: "default",
		Http: testHttpConfig{Host: "localhost", Port: 3001},
	}, cfg)
}

func TestParse_JSONFile(t *testing.T) {
	path := writeFile(t, "config.json", `{"name":"file","http":{"port":4000}}`)

	cfg, err := conf.Parse[testConfig](conf.ParseOptions{
		Defaults:  testDefaults,
		EnvPrefix: testEnvPrefix,
		FileName:  path,
	})
	require.NoError(t, err)

	assert.Equal(t, "file", cfg.Name)
	assert.Equal(t, 4000, cfg.Http.Port)
	assert.Equal(t, "localhost", cfg.Http.Host)
}

func TestParse_DotenvFile(t *testing.T) {
	path := writeFile(t, "config.env", "NAME=dotenv\nHTTP__PORT=4100\nHTTP__H2C=true\n")

	cfg, err := conf.Parse[testConfig](conf.ParseOptions{
		Defaults:  testDefaults,
		EnvPrefix: testEnvPrefix,
		FileName:  path,
	})
	require.NoError(t, err)

	assert.Equal(t, "dotenv", cfg.Name)
	assert.Equal(t, 4100, cfg.Http.Port)
	assert.True(t, cfg.Http.H2c)
}

func TestParse_UnsupportedFile(t *testing.T) {
	path := writeFile(t, "config.toml", "name = 'x'")

	_, err := conf.Parse[testConfig](conf.ParseOptions{FileName: path})
	assert.Error(t, err)
}

func TestParse_MissingFile(t *testing.T) {
	_, err := conf.Parse[testConfig](conf.ParseOptions{
		FileName: filepath.Join(t.TempDir(), "missing.json"),
	})
	assert.Error(t, err)
}

func TestParse_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "config.json", `{"name":"file","http":{"port":4000}}`)
	t.Setenv("CONF_TEST_HTTP__PORT", "4200")

	cfg, err := conf.Parse[testConfig](conf.ParseOptions{
		Defaults:  testDefaults,
		EnvPrefix: testEnvPrefix,
		FileName:  path,
	})
	require.NoError(t, err)

	assert.Equal(t, "file", cfg.Name)
	assert.Equal(t, 4200, cfg.Http.Port)
}

func TestParse_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("CONF_TEST_HTTP__PORT", "4200")
	t.Setenv("CONF_TEST_HTTP__HOST", "env-host")

	cfg := parseWithArgs(t, conf.ParseOptions{
		Defaults:  testDefaults,
		EnvPrefix: testEnvPrefix,
	}, "--port", "4300")

	assert.Equal(t, 4300, cfg.Http.Port)
	// unset flags keep lower precedence sources
	assert.Equal(t, "env-host", cfg.Http.Host)
	assert.False(t, cfg.Http.H2c)
}

func TestParse_FlagEnvVars(t *testing.T) {
	t.Setenv("CONF_TEST_FLAG_PORT", "4400")

	cfg := parseWithArgs(t, conf.ParseOptions{
		Defaults:  testDefaults,
		EnvPrefix: testEnvPrefix,
	})

	assert.Equal(t, 4400, cfg.Http.Port)
}

func TestParse_FlagDefaultsDoNotShadow(t *testing.T) {
	cfg := parseWithArgs(t, conf.ParseOptions{
		Defaults:  testDefaults,
		EnvPrefix: testEnvPrefix,
	})

	assert.Equal(t, "localhost", cfg.Http.Host)
	assert.Equal(t, 3001, cfg.Http.Port)
}

func TestMergeDefaults(t *testing.T) {
	merged := conf.MergeDefaults("http",
		map[string]any{"host": "a", "port": 1},
		map[string]any{"port": 2},
	)

	assert.Equal(t, map[string]any{"http.host": "a", "http.port": 2}, merged)
}
