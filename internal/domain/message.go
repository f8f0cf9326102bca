package domain

import "time"

// Author identifies the sender of a channel message.
type Author struct {
	ID         string `json:"id"`
	Username   string `json:"username,omitempty"`
	GlobalName string `json:"global_name,omitempty"`
}

// Embed is the subset of embed fields the engine cares about. Only the
// title is read, to label detected cards.
type Embed struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url,omitempty"`
}

// Emoji is the subset of emoji metadata used to match kakera buttons.
type Emoji struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name,omitempty"`
	Animated bool   `json:"animated,omitempty"`
}

// Component type tags as the wire protocol encodes them.
const (
	ComponentGroup  = 1 // action row, holds child components
	ComponentButton = 2
)

// Component is one node of a message's interactive-element tree: either a
// group (action row) holding children, or a button leaf.
type Component struct {
	Type       int         `json:"type"`
	CustomID   string      `json:"custom_id,omitempty"`
	Emoji      *Emoji      `json:"emoji,omitempty"`
	Label      string      `json:"label,omitempty"`
	Style      int         `json:"style,omitempty"`
	Components []Component `json:"components,omitempty"`
}

// IsGroup reports whether the component is a container node.
func (c Component) IsGroup() bool { return c.Type == ComponentGroup }

// IsButton reports whether the component is a clickable button leaf.
func (c Component) IsButton() bool { return c.Type == ComponentButton }

// EmojiName returns the name of the button's emoji, or "" when it has none.
func (c Component) EmojiName() string {
	if c.Emoji == nil {
		return ""
	}
	return c.Emoji.Name
}

// Message is a channel message as returned by the transport. The engine
// never constructs one outside tests.
type Message struct {
	ID         string      `json:"id"`
	Content    string      `json:"content"`
	Author     Author      `json:"author"`
	Timestamp  time.Time   `json:"timestamp"`
	Embeds     []Embed     `json:"embeds,omitempty"`
	Components []Component `json:"components,omitempty"`
	Flags      int         `json:"flags,omitempty"`
}

// Newer reports whether m should win over other when both qualify for the
// same poll: later timestamp first, snowflake ID as a deterministic
// tie-break.
func (m Message) Newer(other Message) bool {
	if !m.Timestamp.Equal(other.Timestamp) {
		return m.Timestamp.After(other.Timestamp)
	}
	return snowflakeLess(other.ID, m.ID)
}

// snowflakeLess orders decimal string IDs numerically: a shorter string is
// smaller, equal lengths compare lexicographically.
func snowflakeLess(a, b string) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	return a < b
}
