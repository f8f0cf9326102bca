// Package roll drives automated roll sessions against the Mudae bot.
//
// A session walks a fixed sequence: the plan's plain rolls, then its boosts
// consumed in capped batches (each boost command followed by that many
// rolls), then one closing message. After every roll the service polls the
// channel for the bot's card reply inside a bounded window. When rolling via
// slash commands with reaction targets configured, it also clicks the
// best-matching kakera button and classifies the bot's feedback.
//
// The service owns the channel watermark: the timestamp of the newest card
// it has consumed. Polls only consider replies strictly newer than it, and
// it never regresses within a session. Sync resets it before a session so
// historical cards are never credited to a fresh run.
//
// Failure semantics: a failed send aborts the session; a reply that never
// arrives does not, and button-click failures are skipped silently.
package roll
