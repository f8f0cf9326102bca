package domain

import "time"

// ReactionMode selects how kakera buttons are targeted during a session.
type ReactionMode string

const (
	// ReactPreferredOnly clicks only the single fixed kakeraP button.
	ReactPreferredOnly ReactionMode = "p_only"
	// ReactPreferredOrdered works through the configured preference list
	// in order.
	ReactPreferredOrdered ReactionMode = "preferred"
)

// RollPlan configures one session. The engine treats it as immutable; the
// dashboard builds a fresh plan on every edit.
type RollPlan struct {
	BoostCount       int // number of $us boosts to consume
	RollCount        int // number of plain rolls to send first
	UseSlashCommands bool
	ReactionMode     ReactionMode
}

// RollSummary is the aggregate result of a completed session, created once
// at the end of a run.
type RollSummary struct {
	Plan          RollPlan
	MessagesSent  int
	CardsDetected int
	LastCardTitle string // empty when no titled card was seen
	Duration      time.Duration
}

// Outcome classifies the bot's textual feedback after a kakera click.
type Outcome int

const (
	OutcomeInconclusive Outcome = iota
	OutcomeEnergyDepleted
	OutcomeReactionConfirmed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeEnergyDepleted:
		return "energy depleted"
	case OutcomeReactionConfirmed:
		return "reaction confirmed"
	default:
		return "inconclusive"
	}
}
