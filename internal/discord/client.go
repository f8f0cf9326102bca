package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/time/rate"

	"mudaeroll/internal/domain"
)

// DefaultBase is the public REST API root.
const DefaultBase = "https://discord.com/api/v10"

// Options configures a Client.
type Options struct {
	Base      string // API root; defaults to DefaultBase
	Token     string // bot or user token, normalized by authorizationHeader
	ChannelID string // channel all commands are sent to
	GuildID   string // guild context for interactions
	HTTP      *http.Client

	// RequestsPerSecond caps outbound calls. Zero means the default of 4.
	RequestsPerSecond float64
}

// Client talks to one channel of the chat API.
type Client struct {
	base      string
	channelID string
	guildID   string
	auth      string
	http      *http.Client
	limiter   *rate.Limiter
}

// New builds a Client from opts.
func New(opts Options) *Client {
	base := opts.Base
	if base == "" {
		base = DefaultBase
	}
	httpClient := opts.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	rps := opts.RequestsPerSecond
	if rps <= 0 {
		rps = 4
	}
	return &Client{
		base:      base,
		channelID: opts.ChannelID,
		guildID:   opts.GuildID,
		auth:      authorizationHeader(opts.Token),
		http:      httpClient,
		limiter:   rate.NewLimiter(rate.Limit(rps), 1),
	}
}

// GuildID returns the guild the client was configured for.
func (c *Client) GuildID() string { return c.guildID }

// ChannelID returns the channel the client was configured for.
func (c *Client) ChannelID() string { return c.channelID }

// SendMessage posts content to the channel and returns the created message.
func (c *Client) SendMessage(ctx context.Context, content string) (domain.Message, error) {
	payload := struct {
		Content string `json:"content"`
		TTS     bool   `json:"tts"`
	}{Content: content}
	var out domain.Message
	if err := c.post(ctx, c.channelPath("/messages"), payload, &out); err != nil {
		return domain.Message{}, err
	}
	return out, nil
}

// FetchRecent returns up to limit recent channel messages, newest first.
func (c *Client) FetchRecent(ctx context.Context, limit int) ([]domain.Message, error) {
	path := c.channelPath("/messages")
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}
	var out []domain.Message
	if err := c.getJSON(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// History pages through channel messages oldest-first starting after the
// given message ID (empty for the channel start), invoking fn per page.
// Paging stops when fn returns false or the channel is exhausted.
func (c *Client) History(ctx context.Context, after string, pageSize int, fn func([]domain.Message) bool) error {
	if pageSize <= 0 {
		pageSize = 100
	}
	for {
		path := c.channelPath("/messages") + "?limit=" + strconv.Itoa(pageSize)
		if after != "" {
			path += "&after=" + url.QueryEscape(after)
		}
		var page []domain.Message
		if err := c.getJSON(ctx, path, &page); err != nil {
			return err
		}
		if len(page) == 0 {
			return nil
		}
		if !fn(page) {
			return nil
		}
		after = page[len(page)-1].ID
	}
}

// ClickComponent performs the button interaction on source. The receiving
// application is the message author (the bot that rendered the button).
func (c *Client) ClickComponent(ctx context.Context, source domain.Message, component domain.Component) error {
	payload := interactionRequest{
		Type:          interactionMessageComponent,
		ApplicationID: source.Author.ID,
		GuildID:       c.guildID,
		ChannelID:     c.channelID,
		MessageID:     source.ID,
		SessionID:     nonce(),
		Nonce:         nonce(),
		Data: interactionData{
			ComponentType: domain.ComponentButton,
			CustomID:      component.CustomID,
		},
	}
	return c.post(ctx, "/interactions", payload, nil)
}

func (c *Client) channelPath(suffix string) string {
	return "/channels/" + url.PathEscape(c.channelID) + suffix
}

func (c *Client) post(ctx context.Context, path string, in, out any) error {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(in); err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+path, buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	if err := c.limiter.Wait(req.Context()); err != nil {
		return err
	}
	req.Header.Set("Authorization", c.auth)
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("discord %s %s: %s", req.Method, req.URL.Path, resp.Status)
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

// authorizationHeader normalizes a token into an Authorization value.
// Explicit "Bot "/"Bearer " prefixes and raw user tokens (two dots) pass
// through; anything else is assumed to be a bot token.
func authorizationHeader(token string) string {
	trimmed := strings.TrimSpace(token)
	lower := strings.ToLower(trimmed)
	if strings.HasPrefix(lower, "bot ") || strings.HasPrefix(lower, "bearer ") {
		return trimmed
	}
	if strings.Count(trimmed, ".") == 2 {
		return trimmed
	}
	return "Bot " + trimmed
}

var _ domain.ChannelClient = (*Client)(nil)
