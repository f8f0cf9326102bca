package launch

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"mudaeroll/internal/domain"
)

// Runner is the slice of the roll service the launcher drives.
type Runner interface {
	Sync(ctx context.Context) error
	Execute(ctx context.Context, plan domain.RollPlan) (domain.RollSummary, error)
}

// Launcher accepts roll plans and executes them on a background worker.
// At most one session runs at a time; a launched session always runs to
// completion or failure, there is no mid-flight abort.
type Launcher struct {
	runner Runner
	logs   *domain.LogRing

	mu          sync.Mutex
	busy        bool
	lastSummary *domain.RollSummary

	wg sync.WaitGroup
}

// New builds a Launcher writing its events to logs.
func New(runner Runner, logs *domain.LogRing) *Launcher {
	return &Launcher{runner: runner, logs: logs}
}

// Launch starts a session for plan in the background and reports whether it
// was accepted. A plan is refused, with a warning logged, while another
// session is still running.
func (l *Launcher) Launch(plan domain.RollPlan) bool {
	l.mu.Lock()
	if l.busy {
		l.mu.Unlock()
		l.logs.Append(domain.LogWarning, "A session is already running.")
		return false
	}
	l.busy = true
	l.mu.Unlock()

	mode := "text"
	if plan.UseSlashCommands {
		mode = "slash"
	}
	l.logs.Append(domain.LogSuccess, fmt.Sprintf(
		"Launching session: %d rolls before $us, then %d boosted rolls via %s commands.",
		plan.RollCount, plan.BoostCount, mode))

	l.wg.Add(1)
	go l.run(plan)
	return true
}

// run executes one session and always clears the busy flag on the way out.
func (l *Launcher) run(plan domain.RollPlan) {
	defer l.wg.Done()
	defer func() {
		l.mu.Lock()
		l.busy = false
		l.mu.Unlock()
	}()

	ctx := context.Background()
	if err := l.runner.Sync(ctx); err != nil {
		log.Error().Err(err).Msg("watermark sync failed")
		l.logs.Append(domain.LogError, "Session failed: "+err.Error())
		return
	}

	summary, err := l.runner.Execute(ctx, plan)
	if err != nil {
		log.Error().Err(err).Msg("session failed")
		l.logs.Append(domain.LogError, "Session failed: "+err.Error())
		return
	}

	l.mu.Lock()
	l.lastSummary = &summary
	l.mu.Unlock()

	total := plan.RollCount + plan.BoostCount
	l.logs.Append(domain.LogSuccess, fmt.Sprintf(
		"Completed %d rolls (%d plain + %d boosted), %d cards detected.",
		total, plan.RollCount, plan.BoostCount, summary.CardsDetected))
	log.Info().
		Int("messages_sent", summary.MessagesSent).
		Int("cards_detected", summary.CardsDetected).
		Dur("duration", summary.Duration).
		Msg("session complete")
}

// Busy reports whether a session is currently running.
func (l *Launcher) Busy() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.busy
}

// LastSummary returns the most recent completed summary, if any.
func (l *Launcher) LastSummary() (domain.RollSummary, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.lastSummary == nil {
		return domain.RollSummary{}, false
	}
	return *l.lastSummary, true
}

// Logs exposes the shared event log.
func (l *Launcher) Logs() *domain.LogRing { return l.logs }

// Wait blocks until any in-flight session finishes. Used by the headless
// command and by tests.
func (l *Launcher) Wait() { l.wg.Wait() }
