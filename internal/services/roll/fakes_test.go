package roll_test

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"mudaeroll/internal/domain"
)

const fakeBotID = "432610292342587392"

// fakeChannel is a scripted in-memory transport. When replyToRolls is set,
// every roll command (text or slash) is answered synchronously with a card
// embed carrying the configured buttons.
type fakeChannel struct {
	mu sync.Mutex

	now   time.Time
	idSeq int

	sent     []string
	clicked  []string
	messages []domain.Message

	replyToRolls bool
	buttons      []domain.Component
	feedback     string // bot text reply after a click, when non-empty
	cardSeq      int

	sendErr  error
	fetchErr error
	clickErr error
}

func newFakeChannel() *fakeChannel {
	return &fakeChannel{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (f *fakeChannel) add(authorID, content string, embeds []domain.Embed, components []domain.Component) domain.Message {
	f.idSeq++
	f.now = f.now.Add(time.Second)
	m := domain.Message{
		ID:         strconv.Itoa(100 + f.idSeq),
		Content:    content,
		Author:     domain.Author{ID: authorID},
		Timestamp:  f.now,
		Embeds:     embeds,
		Components: components,
	}
	f.messages = append(f.messages, m)
	return m
}

func (f *fakeChannel) addCardLocked() {
	f.cardSeq++
	f.add(fakeBotID, "", []domain.Embed{{Title: fmt.Sprintf("Card %d", f.cardSeq)}}, f.buttons)
}

// addCard injects a bot card reply, as if a roll had just been answered.
func (f *fakeChannel) addCard() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.addCardLocked()
}

func (f *fakeChannel) SendMessage(ctx context.Context, content string) (domain.Message, error) {
	if f.sendErr != nil {
		return domain.Message{}, f.sendErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, content)
	m := f.add("user", content, nil, nil)
	if f.replyToRolls && strings.HasPrefix(content, "$wa") {
		f.addCardLocked()
	}
	return m, nil
}

func (f *fakeChannel) FetchRecent(ctx context.Context, limit int) ([]domain.Message, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Message, 0, limit)
	for i := len(f.messages) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, f.messages[i])
	}
	return out, nil
}

func (f *fakeChannel) ClickComponent(ctx context.Context, source domain.Message, component domain.Component) error {
	if f.clickErr != nil {
		return f.clickErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.clicked = append(f.clicked, component.CustomID)
	if f.feedback != "" {
		f.add(fakeBotID, f.feedback, nil, nil)
	}
	return nil
}

func (f *fakeChannel) sentCommands() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.sent...)
}

func (f *fakeChannel) clickedIDs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.clicked...)
}

var _ domain.ChannelClient = (*fakeChannel)(nil)

// fakeInteractions rolls by injecting a card straight into the channel.
type fakeInteractions struct {
	ch    *fakeChannel
	calls int
	err   error
}

func (f *fakeInteractions) SendSlashCommand(ctx context.Context) error {
	if f.err != nil {
		return f.err
	}
	f.calls++
	if f.ch.replyToRolls {
		f.ch.addCard()
	}
	return nil
}

var _ domain.InteractionClient = (*fakeInteractions)(nil)
