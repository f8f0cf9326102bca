// Package main runs an in-memory fake of the channel API used by mudaeroll
// during development. It stores posted messages and plays a scripted bot:
// every roll command is answered with a card embed carrying kakera buttons,
// and every button click with a reaction-feedback line.
//
// HTTP API (a subset of the real REST surface):
//
//	POST /api/v10/channels/{id}/messages
//	    Store a message and return it with a server-assigned ID and
//	    timestamp. Roll commands enqueue a bot card reply.
//
//	GET /api/v10/channels/{id}/messages?limit=N
//	    Return up to N stored messages, newest first. The `after` query
//	    parameter pages oldest-first instead.
//
//	POST /api/v10/interactions
//	    Accept a component click or application command. Clicks enqueue a
//	    feedback message; the scripted energy budget depletes after a
//	    configurable number of clicks.
//
// All state is held in memory and lost on process exit. The default listen
// address is :8089.
package main
