package app

import (
	"net/http"

	"mudaeroll/internal/discord"
	"mudaeroll/internal/domain"
	"mudaeroll/internal/services/launch"
	"mudaeroll/internal/services/roll"
)

// logCapacity bounds the dashboard event log.
const logCapacity = 200

// Wire bundles the transport, engine, and launcher for the commands.
type Wire struct {
	Client   *discord.Client
	Service  *roll.Service
	Launcher *launch.Launcher
	Logs     *domain.LogRing
	HTTP     *http.Client
}

// NewWire constructs the dependency graph from cfg. The interaction client
// is built only when slash-command coordinates are configured.
func NewWire(cfg *Config) (*Wire, error) {
	httpClient := http.DefaultClient

	client := discord.New(discord.Options{
		Base:      cfg.Discord.APIBase,
		Token:     cfg.Discord.Token,
		ChannelID: cfg.Discord.ChannelID,
		GuildID:   cfg.Discord.GuildID,
		HTTP:      httpClient,
	})

	var interactions domain.InteractionClient
	if cfg.Discord.SlashCommandID != "" || cfg.Discord.ApplicationID != "" {
		ix, err := discord.NewInteractions(
			client,
			cfg.Discord.ApplicationID,
			cfg.Discord.SlashCommandID,
			cfg.Discord.SlashCommandName,
			cfg.Discord.SlashCommandVer,
		)
		if err != nil {
			return nil, err
		}
		interactions = ix
	}

	service := roll.New(roll.Config{
		Client:         client,
		Interactions:   interactions,
		BotUserID:      cfg.Discord.BotUserID,
		CommandPrefix:  cfg.Discord.CommandPrefix,
		PreferredTypes: cfg.Kakera.PreferredTypes,
		ClosingMessage: cfg.ClosingMessage,
		Tuning: roll.Tuning{
			PollInterval: cfg.PollInterval(),
			HistoryLimit: cfg.Tuning.MessageHistoryLimit,
			RollDelay:    cfg.RollDelay(),
			CardWindow:   cfg.CardWindow(),
		},
	})

	logs := domain.NewLogRing(logCapacity)
	launcher := launch.New(service, logs)

	return &Wire{
		Client:   client,
		Service:  service,
		Launcher: launcher,
		Logs:     logs,
		HTTP:     httpClient,
	}, nil
}
