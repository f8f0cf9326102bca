package app_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mudaeroll/internal/app"
	"mudaeroll/internal/domain"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mudaeroll.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig_FileAndDefaults(t *testing.T) {
	path := writeConfig(t, `
[discord]
token = "tok"
channel_id = "123"
guild_id = "456"

[tuning]
roll_delay_seconds = 0.5
`)

	cfg, err := app.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "tok", cfg.Discord.Token)
	assert.Equal(t, "$", cfg.Discord.CommandPrefix, "default prefix")
	assert.Equal(t, "432610292342587392", cfg.Discord.BotUserID, "default bot identity")
	assert.Equal(t, 10, cfg.Tuning.RollBatchSize)
	assert.Equal(t, app.DefaultKakeraTypes, cfg.Kakera.PreferredTypes)
	assert.Equal(t, 500*time.Millisecond, cfg.RollDelay())
	assert.Equal(t, 1500*time.Millisecond, cfg.PollInterval())
	assert.Equal(t, 15*time.Second, cfg.CardWindow())
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
[discord]
token = "from-file"
channel_id = "123"
guild_id = "456"
`)
	t.Setenv("MUDAE_DISCORD__TOKEN", "from-env")
	t.Setenv("MUDAE_DISCORD__COMMAND_PREFIX", "!")

	cfg, err := app.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Discord.Token)
	assert.Equal(t, "!", cfg.Discord.CommandPrefix)
}

func TestValidate(t *testing.T) {
	path := writeConfig(t, `
[discord]
token = "tok"
channel_id = "123"
guild_id = "456"
`)
	cfg, err := app.LoadConfig(path)
	require.NoError(t, err)
	require.NoError(t, app.Validate(cfg))

	cfg.Discord.ChannelID = ""
	err = app.Validate(cfg)
	var cfgErr *domain.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "discord.channel_id", cfgErr.Field)

	cfg.Discord.ChannelID = "123"
	cfg.Tuning.PollIntervalSeconds = 0.01
	assert.Error(t, app.Validate(cfg))
}

func TestInitConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.toml")
	require.NoError(t, app.InitConfig(path))

	cfg, err := app.LoadConfig(path)
	require.NoError(t, err)
	assert.NotEmpty(t, cfg.Discord.Token)

	assert.Error(t, app.InitConfig(path), "refuses to overwrite")
}

func TestNewWire_SlashConfigIncomplete(t *testing.T) {
	path := writeConfig(t, `
[discord]
token = "tok"
channel_id = "123"
guild_id = "456"
application_id = "app1"
`)
	cfg, err := app.LoadConfig(path)
	require.NoError(t, err)

	_, err = app.NewWire(cfg)
	var cfgErr *domain.ConfigError
	require.ErrorAs(t, err, &cfgErr)
}

func TestNewWire_Complete(t *testing.T) {
	path := writeConfig(t, `
[discord]
token = "tok"
channel_id = "123"
guild_id = "456"
application_id = "app1"
slash_command_id = "cmd1"
`)
	cfg, err := app.LoadConfig(path)
	require.NoError(t, err)

	wire, err := app.NewWire(cfg)
	require.NoError(t, err)
	assert.NotNil(t, wire.Launcher)
	assert.NotNil(t, wire.Service)
	assert.NotNil(t, wire.Logs)
}
