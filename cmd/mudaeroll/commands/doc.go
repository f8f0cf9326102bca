// Package commands defines the mudaeroll CLI: the interactive dashboard,
// a headless one-shot session, a channel history dump, and config helpers.
package commands
