package roll

import (
	"context"
	"fmt"
	"time"

	"mudaeroll/internal/domain"
)

// awaitCard polls the channel until a card from the bot newer than the
// watermark appears, or the window elapses (domain.ErrTimeout). On success
// the watermark advances to the card's timestamp. Transport failures
// propagate unwrapped in meaning: the caller decides whether they end the
// session.
func (s *Service) awaitCard(ctx context.Context, window time.Duration) (domain.Message, error) {
	deadline := time.Now().Add(window)
	for {
		msgs, err := s.client.FetchRecent(ctx, s.tuning.HistoryLimit)
		if err != nil {
			return domain.Message{}, fmt.Errorf("poll channel: %w", err)
		}
		if latest, ok := s.newestCard(msgs); ok {
			if latest.Timestamp.After(s.lastSeen) {
				s.lastSeen = latest.Timestamp
			}
			return latest, nil
		}
		if !time.Now().Before(deadline) {
			return domain.Message{}, domain.ErrTimeout
		}
		time.Sleep(s.tuning.PollInterval)
	}
}

// newestCard filters msgs to card replies authored by the bot, carrying at
// least one embed, and strictly newer than the watermark. It returns the
// newest, with the message ID as a deterministic tie-break.
func (s *Service) newestCard(msgs []domain.Message) (domain.Message, bool) {
	var best domain.Message
	found := false
	for _, m := range msgs {
		if m.Author.ID != s.botID {
			continue
		}
		if len(m.Embeds) == 0 {
			continue
		}
		if !m.Timestamp.After(s.lastSeen) {
			continue
		}
		if !found || m.Newer(best) {
			best = m
			found = true
		}
	}
	return best, found
}
