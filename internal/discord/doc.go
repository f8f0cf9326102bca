// Package discord provides the HTTP implementation of the
// domain.ChannelClient and domain.InteractionClient interfaces.
//
// The client talks to a single channel of the Discord REST API:
//
//   - Posting text messages (roll, boost, and closing commands).
//   - Fetching recent channel messages for the engine's poll loops.
//   - Clicking a message component (kakera button) via the interactions
//     endpoint.
//   - Invoking the configured application command for slash-style rolls.
//
// All requests are JSON over HTTP, accept a context, and pass through a
// shared rate limiter so burst sessions stay under the API budget. Non-2xx
// statuses come back as errors carrying the method, path, and status text.
package discord
