package template

import (
	"github.com/normalhq/chatbox/server/internal/analysis/emotion"
	"github.com/normalhq/chatbox/server/internal/model/chat"
)

// Template is a hand-authored reply: a short message plus a ranked list
// of suggested actions. Action order is editorial, not derived.
type Template struct {
	Message string        `json:"message"`
	Actions []chat.Action `json:"actions"`
}

// Table holds the full response table: per-category entries for low and
// medium intensity, and a single vetted crisis entry used for every high
// assessment regardless of emotion.
type Table struct {
	Low    map[emotion.Category]Template
	Medium map[emotion.Category]Template
	Crisis Template
}
