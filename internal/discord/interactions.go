package discord

import (
	"context"
	"strconv"
	"time"

	"mudaeroll/internal/domain"
)

// Interaction type tags as the wire protocol encodes them.
const (
	interactionApplicationCommand = 2
	interactionMessageComponent   = 3
)

// Application command type for chat-input (slash) commands.
const commandChatInput = 1

type interactionRequest struct {
	Type          int             `json:"type"`
	ApplicationID string          `json:"application_id"`
	GuildID       string          `json:"guild_id,omitempty"`
	ChannelID     string          `json:"channel_id"`
	MessageID     string          `json:"message_id,omitempty"`
	SessionID     string          `json:"session_id"`
	Nonce         string          `json:"nonce,omitempty"`
	Data          interactionData `json:"data"`
}

type interactionData struct {
	// Component interactions.
	ComponentType int    `json:"component_type,omitempty"`
	CustomID      string `json:"custom_id,omitempty"`

	// Application command interactions.
	ID      string `json:"id,omitempty"`
	Name    string `json:"name,omitempty"`
	Type    int    `json:"type,omitempty"`
	Version string `json:"version,omitempty"`
}

func nonce() string {
	return strconv.FormatInt(time.Now().UnixNano(), 10)
}

// Interactions invokes the configured application command for slash-style
// rolls. It is built only when slash invocation is fully configured, so the
// text-command path never depends on it.
type Interactions struct {
	client  *Client
	appID   string
	id      string
	name    string
	version string
}

// NewInteractions validates the application-command coordinates and wraps
// client with the slash-roll capability.
func NewInteractions(client *Client, appID, commandID, name, version string) (*Interactions, error) {
	switch {
	case appID == "":
		return nil, &domain.ConfigError{Field: "discord.application_id", Reason: "required for slash commands"}
	case commandID == "":
		return nil, &domain.ConfigError{Field: "discord.slash_command_id", Reason: "required for slash commands"}
	case name == "":
		return nil, &domain.ConfigError{Field: "discord.slash_command_name", Reason: "required for slash commands"}
	}
	return &Interactions{client: client, appID: appID, id: commandID, name: name, version: version}, nil
}

// SendSlashCommand posts the application-command interaction that triggers
// one roll.
func (i *Interactions) SendSlashCommand(ctx context.Context) error {
	payload := interactionRequest{
		Type:          interactionApplicationCommand,
		ApplicationID: i.appID,
		GuildID:       i.client.GuildID(),
		ChannelID:     i.client.ChannelID(),
		SessionID:     nonce(),
		Nonce:         nonce(),
		Data: interactionData{
			ID:      i.id,
			Name:    i.name,
			Type:    commandChatInput,
			Version: i.version,
		},
	}
	return i.client.post(ctx, "/interactions", payload, nil)
}

var _ domain.InteractionClient = (*Interactions)(nil)
