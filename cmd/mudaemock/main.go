package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"mudaeroll/internal/domain"
)

type memoryChannel struct {
	mu     sync.Mutex
	nextID int64
	msgs   []domain.Message

	botID  string
	prefix string
	energy int
	cards  int
}

func newMemoryChannel(botID, prefix string, energy int) *memoryChannel {
	return &memoryChannel{nextID: 100000000000000000, botID: botID, prefix: prefix, energy: energy}
}

func (c *memoryChannel) append(m domain.Message) domain.Message {
	m.ID = strconv.FormatInt(c.nextID, 10)
	c.nextID++
	m.Timestamp = time.Now().UTC()
	c.msgs = append(c.msgs, m)
	return m
}

// botReply appends a message authored by the scripted bot.
func (c *memoryChannel) botReply(content string, embeds []domain.Embed, components []domain.Component) {
	c.append(domain.Message{
		Content:    content,
		Author:     domain.Author{ID: c.botID, Username: "Mudae"},
		Embeds:     embeds,
		Components: components,
	})
}

// card fabricates the bot's reply to a roll command.
func (c *memoryChannel) card() {
	c.cards++
	c.botReply("", []domain.Embed{{Title: fmt.Sprintf("Test Card #%d", c.cards)}}, []domain.Component{
		{
			Type: domain.ComponentGroup,
			Components: []domain.Component{
				{Type: domain.ComponentButton, CustomID: fmt.Sprintf("kakera-%d", c.cards), Emoji: &domain.Emoji{Name: "kakeraP"}},
				{Type: domain.ComponentButton, CustomID: fmt.Sprintf("kakera-alt-%d", c.cards), Emoji: &domain.Emoji{Name: "kakeraR"}},
			},
		},
	})
}

func (c *memoryChannel) recent(limit int) []domain.Message {
	out := make([]domain.Message, 0, limit)
	for i := len(c.msgs) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, c.msgs[i])
	}
	return out
}

func (c *memoryChannel) page(after string, limit int) []domain.Message {
	out := make([]domain.Message, 0, limit)
	for _, m := range c.msgs {
		if after != "" && m.ID <= after {
			continue
		}
		out = append(out, m)
		if len(out) >= limit {
			break
		}
	}
	return out
}

func main() {
	addr := flag.String("addr", ":8089", "listen address")
	botID := flag.String("bot", "432610292342587392", "bot user ID for scripted replies")
	prefix := flag.String("prefix", "$", "command prefix to recognize")
	energy := flag.Int("energy", 3, "kakera clicks before the energy budget depletes")
	flag.Parse()

	ch := newMemoryChannel(*botID, *prefix, *energy)

	http.HandleFunc("/api/v10/channels/", func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/messages") {
			http.Error(w, "not found", 404)
			return
		}
		switch r.Method {
		case http.MethodPost:
			defer r.Body.Close()
			var in struct {
				Content string `json:"content"`
			}
			if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
				http.Error(w, err.Error(), 400)
				return
			}
			ch.mu.Lock()
			stored := ch.append(domain.Message{
				Content: in.Content,
				Author:  domain.Author{ID: "mock-user", Username: "mock-user"},
			})
			if strings.HasPrefix(in.Content, ch.prefix+"wa") {
				ch.card()
			}
			ch.mu.Unlock()
			log.Println("message:", in.Content)
			_ = json.NewEncoder(w).Encode(stored)

		case http.MethodGet:
			limit := 50
			if raw := r.URL.Query().Get("limit"); raw != "" {
				if n, err := strconv.Atoi(raw); err == nil {
					limit = n
				}
			}
			ch.mu.Lock()
			var out []domain.Message
			if after := r.URL.Query().Get("after"); after != "" {
				out = ch.page(after, limit)
			} else {
				out = ch.recent(limit)
			}
			ch.mu.Unlock()
			_ = json.NewEncoder(w).Encode(out)

		default:
			http.Error(w, "method not allowed", 405)
		}
	})

	http.HandleFunc("/api/v10/interactions", func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()
		var payload struct {
			Type int `json:"type"`
			Data struct {
				CustomID string `json:"custom_id"`
				Name     string `json:"name"`
			} `json:"data"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			http.Error(w, err.Error(), 400)
			return
		}
		ch.mu.Lock()
		switch payload.Type {
		case 2: // application command = slash roll
			log.Println("slash roll:", payload.Data.Name)
			ch.card()
		case 3: // component click
			log.Println("click:", payload.Data.CustomID)
			if ch.energy > 0 {
				ch.energy--
				ch.botReply("mock-user reacted successfully!", nil, nil)
			} else {
				ch.botReply("mock-user, you are out of energy.", nil, nil)
			}
		}
		ch.mu.Unlock()
		w.WriteHeader(204)
	})

	log.Println("mudaemock listening on", *addr)
	log.Fatal(http.ListenAndServe(*addr, nil))
}
