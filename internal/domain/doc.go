// Package domain holds the chat-message model, the roll-session value
// objects, and the collaborator interfaces shared by the transport, the
// session engine, and the dashboard.
package domain
