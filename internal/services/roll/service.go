package roll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"mudaeroll/internal/domain"
)

// maxBoostBatch caps how many boosts one $us command may consume.
const maxBoostBatch = 20

// preferredOnlyTarget is the single button clicked in PreferredOnly mode.
const preferredOnlyTarget = "kakeraP"

// Tuning holds the timing and sizing knobs for a session.
type Tuning struct {
	PollInterval   time.Duration // pause between channel polls
	HistoryLimit   int           // messages requested per poll
	RollDelay      time.Duration // pause after every issued command
	CardWindow     time.Duration // how long to wait for a card after a roll
	FeedbackWindow time.Duration // how long to wait for kakera feedback
}

// DefaultTuning mirrors the stock configuration.
func DefaultTuning() Tuning {
	return Tuning{
		PollInterval:   1500 * time.Millisecond,
		HistoryLimit:   50,
		RollDelay:      time.Second,
		CardWindow:     15 * time.Second,
		FeedbackWindow: 6 * time.Second,
	}
}

// Config wires a Service.
type Config struct {
	Client       domain.ChannelClient
	Interactions domain.InteractionClient // nil unless slash rolls are configured

	BotUserID      string   // author ID card replies must carry
	CommandPrefix  string   // e.g. "$"
	RollWord       string   // e.g. "wa"
	PreferredTypes []string // ordered kakera emoji names for PreferredOrdered
	ClosingMessage string

	Tuning Tuning
}

// Service executes roll plans sequentially against one channel. It is not
// safe for concurrent sessions; the launcher enforces one at a time.
type Service struct {
	client       domain.ChannelClient
	interactions domain.InteractionClient
	botID        string
	prefix       string
	rollWord     string
	preferred    []string
	closing      string
	tuning       Tuning

	// lastSeen is the watermark: the newest card timestamp already
	// consumed. Only this service advances it.
	lastSeen time.Time
}

// New builds a Service from cfg, filling zero tuning fields with defaults.
func New(cfg Config) *Service {
	tuning := cfg.Tuning
	defaults := DefaultTuning()
	if tuning.PollInterval <= 0 {
		tuning.PollInterval = defaults.PollInterval
	}
	if tuning.HistoryLimit <= 0 {
		tuning.HistoryLimit = defaults.HistoryLimit
	}
	if tuning.CardWindow <= 0 {
		tuning.CardWindow = defaults.CardWindow
	}
	if tuning.FeedbackWindow <= 0 {
		tuning.FeedbackWindow = defaults.FeedbackWindow
	}
	rollWord := cfg.RollWord
	if rollWord == "" {
		rollWord = "wa"
	}
	return &Service{
		client:       cfg.Client,
		interactions: cfg.Interactions,
		botID:        cfg.BotUserID,
		prefix:       cfg.CommandPrefix,
		rollWord:     rollWord,
		preferred:    cfg.PreferredTypes,
		closing:      cfg.ClosingMessage,
		tuning:       tuning,
	}
}

// sessionState accumulates counters across one Execute call.
type sessionState struct {
	targets        []string
	messagesSent   int
	cardsDetected  int
	lastCardTitle  string
	energyDepleted bool
}

// Execute runs plan to completion and returns its summary. A failed send
// aborts the session with no summary; absent replies do not.
func (s *Service) Execute(ctx context.Context, plan domain.RollPlan) (domain.RollSummary, error) {
	if plan.UseSlashCommands && s.interactions == nil {
		return domain.RollSummary{}, &domain.ConfigError{
			Field:  "discord.slash_command_id",
			Reason: "slash rolls requested but no interaction client is configured",
		}
	}

	start := time.Now()
	st := &sessionState{targets: s.resolveTargets(plan.ReactionMode)}

	for i := 0; i < plan.RollCount; i++ {
		if err := s.performRoll(ctx, plan, st); err != nil {
			return domain.RollSummary{}, err
		}
		s.pause()
	}

	remaining := plan.BoostCount
	for remaining > 0 {
		batch := remaining
		if batch > maxBoostBatch {
			batch = maxBoostBatch
		}
		boost := fmt.Sprintf("%sus %d", s.prefix, batch)
		if _, err := s.client.SendMessage(ctx, boost); err != nil {
			return domain.RollSummary{}, fmt.Errorf("send boost command: %w", err)
		}
		st.messagesSent++
		remaining -= batch
		s.pause()

		for i := 0; i < batch; i++ {
			if err := s.performRoll(ctx, plan, st); err != nil {
				return domain.RollSummary{}, err
			}
			s.pause()
		}
	}

	if _, err := s.client.SendMessage(ctx, s.closing); err != nil {
		return domain.RollSummary{}, fmt.Errorf("send closing message: %w", err)
	}
	st.messagesSent++

	return domain.RollSummary{
		Plan:          plan,
		MessagesSent:  st.messagesSent,
		CardsDetected: st.cardsDetected,
		LastCardTitle: st.lastCardTitle,
		Duration:      time.Since(start),
	}, nil
}

// performRoll issues one roll and consumes its card reply, if any.
func (s *Service) performRoll(ctx context.Context, plan domain.RollPlan, st *sessionState) error {
	if plan.UseSlashCommands {
		if err := s.interactions.SendSlashCommand(ctx); err != nil {
			return fmt.Errorf("send roll interaction: %w", err)
		}
	} else {
		if _, err := s.client.SendMessage(ctx, s.prefix+s.rollWord); err != nil {
			return fmt.Errorf("send roll command: %w", err)
		}
	}
	st.messagesSent++

	card, err := s.awaitCard(ctx, s.tuning.CardWindow)
	if err != nil {
		// Both timeouts and poll failures leave this roll cardless; the
		// session carries on.
		if !errors.Is(err, domain.ErrTimeout) {
			log.Warn().Err(err).Msg("card poll failed")
		}
		return nil
	}

	st.cardsDetected++
	if title := firstEmbedTitle(card); title != "" {
		st.lastCardTitle = title
	}
	if plan.UseSlashCommands && len(st.targets) > 0 && !st.energyDepleted {
		s.reactToCard(ctx, card, st)
	}
	return nil
}

// reactToCard clicks the best-matching kakera button and records whether
// the energy budget ran out. Every failure mode is a silent skip.
func (s *Service) reactToCard(ctx context.Context, card domain.Message, st *sessionState) {
	button, ok := SelectButton(card.Components, st.targets)
	if !ok {
		return
	}
	if err := s.client.ClickComponent(ctx, card, button); err != nil {
		log.Debug().Err(err).Str("custom_id", button.CustomID).Msg("kakera click failed")
		return
	}
	if s.awaitOutcome(ctx, card.Timestamp, s.tuning.FeedbackWindow) == domain.OutcomeEnergyDepleted {
		st.energyDepleted = true
		log.Info().Msg("kakera energy depleted, skipping further reactions")
	}
}

// resolveTargets expands the reaction mode into an ordered, deduplicated
// list of kakera emoji names.
func (s *Service) resolveTargets(mode domain.ReactionMode) []string {
	if mode == domain.ReactPreferredOnly {
		return []string{preferredOnlyTarget}
	}
	seen := make(map[string]struct{}, len(s.preferred))
	ordered := make([]string, 0, len(s.preferred))
	for _, name := range s.preferred {
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		ordered = append(ordered, name)
	}
	return ordered
}

// Sync resets the watermark to the newest qualifying reply currently in the
// channel (or the zero time when none exists) so historical cards are never
// credited to a fresh session.
func (s *Service) Sync(ctx context.Context) error {
	msgs, err := s.client.FetchRecent(ctx, 5)
	if err != nil {
		return fmt.Errorf("sync watermark: %w", err)
	}
	s.lastSeen = time.Time{}
	if latest, ok := s.newestCard(msgs); ok {
		s.lastSeen = latest.Timestamp
	}
	return nil
}

func (s *Service) pause() {
	if s.tuning.RollDelay > 0 {
		time.Sleep(s.tuning.RollDelay)
	}
}

func firstEmbedTitle(m domain.Message) string {
	for _, embed := range m.Embeds {
		if embed.Title != "" {
			return embed.Title
		}
	}
	return ""
}
