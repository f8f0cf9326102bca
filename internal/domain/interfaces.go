package domain

import "context"

// ChannelClient is how the engine talks to the chat channel. Implementations
// own the connection for the process lifetime; the engine never opens or
// closes it.
type ChannelClient interface {
	// SendMessage posts a text command and returns the created message.
	SendMessage(ctx context.Context, content string) (Message, error)

	// FetchRecent returns up to limit recent channel messages, newest first.
	FetchRecent(ctx context.Context, limit int) ([]Message, error)

	// ClickComponent performs the button interaction on source.
	ClickComponent(ctx context.Context, source Message, component Component) error
}

// InteractionClient triggers a roll through an application (slash) command
// instead of a text command. It is a separate capability so callers that
// never use the alternate invocation never construct one.
type InteractionClient interface {
	SendSlashCommand(ctx context.Context) error
}
