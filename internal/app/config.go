package app

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"mudaeroll/internal/domain"
)

// DefaultKakeraTypes is the stock preference order for kakera reactions.
var DefaultKakeraTypes = []string{"kakeraP", "kakeraO", "kakeraR", "kakeraW", "kakeraL"}

// defaultClosingMessage is posted once at the end of every session.
const defaultClosingMessage = "Finished rolling by Mudae - https://github.com/lmqzzz/mudae"

// Config is the full runtime configuration.
type Config struct {
	Discord struct {
		Token            string `koanf:"token"`
		ChannelID        string `koanf:"channel_id"`
		GuildID          string `koanf:"guild_id"`
		BotUserID        string `koanf:"bot_user_id"`
		CommandPrefix    string `koanf:"command_prefix"`
		APIBase          string `koanf:"api_base"`
		ApplicationID    string `koanf:"application_id"`
		SlashCommandID   string `koanf:"slash_command_id"`
		SlashCommandName string `koanf:"slash_command_name"`
		SlashCommandVer  string `koanf:"slash_command_version"`
	} `koanf:"discord"`

	Tuning struct {
		RollBatchSize       int     `koanf:"roll_batch_size"`
		PollIntervalSeconds float64 `koanf:"poll_interval_seconds"`
		MessageHistoryLimit int     `koanf:"message_history_limit"`
		RollDelaySeconds    float64 `koanf:"roll_delay_seconds"`
		CardWindowSeconds   float64 `koanf:"card_window_seconds"`
	} `koanf:"tuning"`

	Kakera struct {
		PreferredTypes []string `koanf:"preferred_types"`
	} `koanf:"kakera"`

	ClosingMessage string `koanf:"closing_message"`
}

// LoadConfig layers defaults, an optional TOML file, and MUDAE_-prefixed
// environment variables. Nested keys use a double underscore in the
// environment, e.g. MUDAE_DISCORD__CHANNEL_ID.
func LoadConfig(configPath string) (*Config, error) {
	k := koanf.New(".")

	k.Load(confmap.Provider(map[string]interface{}{
		"discord.bot_user_id":          "432610292342587392",
		"discord.command_prefix":       "$",
		"discord.slash_command_name":   "wa",
		"tuning.roll_batch_size":       10,
		"tuning.poll_interval_seconds": 1.5,
		"tuning.message_history_limit": 50,
		"tuning.roll_delay_seconds":    1.0,
		"tuning.card_window_seconds":   15.0,
		"kakera.preferred_types":       DefaultKakeraTypes,
		"closing_message":              defaultClosingMessage,
	}, "."), nil)

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), toml.Parser()); err != nil {
			return nil, fmt.Errorf("error loading config: %w", err)
		}
	} else {
		for _, path := range []string{"./mudaeroll.toml", "$HOME/.mudaeroll.toml"} {
			path = os.ExpandEnv(path)
			if _, err := os.Stat(path); err == nil {
				if err := k.Load(file.Provider(path), toml.Parser()); err == nil {
					break
				}
			}
		}
	}

	k.Load(env.Provider("MUDAE_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "MUDAE_")), "__", ".")
	}), nil)

	var config Config
	if err := k.Unmarshal("", &config); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}
	return &config, nil
}

// Validate checks the fields no session can run without.
func Validate(config *Config) error {
	required := []struct {
		field, value string
	}{
		{"discord.token", config.Discord.Token},
		{"discord.channel_id", config.Discord.ChannelID},
		{"discord.guild_id", config.Discord.GuildID},
		{"discord.bot_user_id", config.Discord.BotUserID},
	}
	for _, r := range required {
		if r.value == "" {
			return &domain.ConfigError{Field: r.field, Reason: "is required"}
		}
	}
	if config.Tuning.PollIntervalSeconds < 0.1 {
		return &domain.ConfigError{Field: "tuning.poll_interval_seconds", Reason: "must be at least 0.1"}
	}
	return nil
}

// PollInterval converts the configured float seconds into a duration.
func (c *Config) PollInterval() time.Duration {
	return secondsToDuration(c.Tuning.PollIntervalSeconds)
}

// RollDelay converts the configured float seconds into a duration.
func (c *Config) RollDelay() time.Duration {
	return secondsToDuration(c.Tuning.RollDelaySeconds)
}

// CardWindow converts the configured float seconds into a duration.
func (c *Config) CardWindow() time.Duration {
	return secondsToDuration(c.Tuning.CardWindowSeconds)
}

func secondsToDuration(seconds float64) time.Duration {
	return time.Duration(seconds * float64(time.Second))
}

// InitConfig writes a sample configuration file to configPath.
func InitConfig(configPath string) error {
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("configuration file already exists at %s", configPath)
	}

	sample := `# mudaeroll configuration
# Every key can also be set via MUDAE_ environment variables, using a double
# underscore between sections, e.g. MUDAE_DISCORD__CHANNEL_ID.

[discord]
token = "your-discord-token"
channel_id = "000000000000000000"
guild_id = "000000000000000000"
# bot_user_id = "432610292342587392"
# command_prefix = "$"
# Required only for slash-command rolls:
# application_id = ""
# slash_command_id = ""
# slash_command_name = "wa"

[tuning]
# roll_batch_size = 10
# poll_interval_seconds = 1.5
# message_history_limit = 50
# roll_delay_seconds = 1.0

[kakera]
# preferred_types = ["kakeraP", "kakeraO", "kakeraR", "kakeraW", "kakeraL"]
`

	return os.WriteFile(configPath, []byte(sample), 0o644)
}
