package cli

import (
	"os"
	"testing"

	"github.com/gnomegl/hourglass/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestNewApp_ReadsEnvironment(t *testing.T) {
	t.Setenv("HOURGLASS_GITHUB_TOKEN", "")
	require.NoError(t, os.Unsetenv("HOURGLASS_GITHUB_TOKEN"))
	t.Setenv("GH_TOKEN", "env-token")
	t.Setenv("TIMEZONE", "Europe/Berlin")
	t.Setenv("README_OWNER", "octocat")
	t.Setenv("README_REPO", "octocat")
	t.Setenv("README_PATH", "README.md")
	t.Setenv("DRY_RUN", "true")
	t.Setenv("BAR_WIDTH", "15")

	var cfg *config.AppConfig
	app := NewApp(func(c *cli.Context) error {
		var err error
		cfg, err = config.ParseConfig(c)
		return err
	})

	require.NoError(t, app.Run([]string{"hourglass"}))
	assert.Equal(t, "env-token", cfg.Token)
	assert.Equal(t, "Europe/Berlin", cfg.Location().String())
	assert.Equal(t, "octocat", cfg.TargetOwner)
	assert.Equal(t, 15, cfg.BarWidth)
	assert.True(t, cfg.DryRun)
}

func TestNewApp_FlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("GH_TOKEN", "env-token")
	t.Setenv("TIMEZONE", "Europe/Berlin")

	var cfg *config.AppConfig
	app := NewApp(func(c *cli.Context) error {
		var err error
		cfg, err = config.ParseConfig(c)
		return err
	})

	require.NoError(t, app.Run([]string{"hourglass", "--token", "flag-token", "--timezone", "UTC"}))
	assert.Equal(t, "flag-token", cfg.Token)
	assert.Equal(t, "UTC", cfg.TimeZone)
}

func TestFlags_AllBackedByEnvironment(t *testing.T) {
	for _, flag := range Flags() {
		envFlag, ok := flag.(interface{ GetEnvVars() []string })
		require.True(t, ok, flag.Names()[0])
		assert.NotEmpty(t, envFlag.GetEnvVars(), flag.Names()[0])
	}
}
