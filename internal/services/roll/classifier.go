package roll

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"mudaeroll/internal/domain"
)

// feedbackPollCeiling keeps the secondary feedback loop responsive even
// when the main poll interval is long.
const feedbackPollCeiling = 600 * time.Millisecond

// feedbackFetchLimit is how many recent messages each feedback poll scans.
const feedbackFetchLimit = 5

var energyPhrases = []string{
	"out of energy",
	"don't have enough energy",
	"no energy left",
}

// awaitOutcome watches the bot's text replies newer than since and
// classifies the first one matching either phrase set. It returns
// OutcomeInconclusive once the window elapses without a match.
func (s *Service) awaitOutcome(ctx context.Context, since time.Time, window time.Duration) domain.Outcome {
	deadline := time.Now().Add(window)
	interval := s.tuning.PollInterval
	if interval > feedbackPollCeiling {
		interval = feedbackPollCeiling
	}
	for {
		msgs, err := s.client.FetchRecent(ctx, feedbackFetchLimit)
		if err != nil {
			log.Debug().Err(err).Msg("feedback poll failed")
		}
		for _, m := range msgs {
			if m.Author.ID != s.botID {
				continue
			}
			if !m.Timestamp.After(since) {
				continue
			}
			if outcome := classifyFeedback(m.Content); outcome != domain.OutcomeInconclusive {
				return outcome
			}
		}
		if !time.Now().Before(deadline) {
			return domain.OutcomeInconclusive
		}
		time.Sleep(interval)
	}
}

// classifyFeedback maps one message body to an outcome. Energy phrases win;
// a successful reaction needs both a "react" and a "success" token.
func classifyFeedback(content string) domain.Outcome {
	lowered := strings.ToLower(content)
	for _, phrase := range energyPhrases {
		if strings.Contains(lowered, phrase) {
			return domain.OutcomeEnergyDepleted
		}
	}
	if strings.Contains(lowered, "react") && strings.Contains(lowered, "success") {
		return domain.OutcomeReactionConfirmed
	}
	return domain.OutcomeInconclusive
}
