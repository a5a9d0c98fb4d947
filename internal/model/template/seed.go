package template

import (
	"github.com/normalhq/chatbox/server/internal/analysis/emotion"
	"github.com/normalhq/chatbox/server/internal/model/chat"
)

// Seed returns the reviewed response table. Wording and action order are
// editorial; treat edits here as content changes, not code changes.
func Seed() Table {
	return Table{
		Low: map[emotion.Category]Template{
			emotion.Stress: {
				Message: "That sounds really tiring. Would you like to slow down for a moment?",
				Actions: []chat.Action{
					{Label: "Breathe", Action: "breathing"},
					{Label: "Play a calming game", Action: "game"},
					{Label: "Keep chatting", Action: "chat"},
				},
			},
			emotion.Anxiety: {
				Message: "I hear you. It's okay to feel nervous. Want to try something grounding?",
				Actions: []chat.Action{
					{Label: "Grounding exercise", Action: "grounding"},
					{Label: "Breathe", Action: "breathing"},
					{Label: "Keep chatting", Action: "chat"},
				},
			},
			emotion.Sadness: {
				Message: "That sounds heavy. You don't have to carry it alone right now.",
				Actions: []chat.Action{
					{Label: "Listen to calming sounds", Action: "sounds"},
					{Label: "Breathe", Action: "breathing"},
					{Label: "Keep chatting", Action: "chat"},
				},
			},
			emotion.Academic: {
				Message: "Academic pressure can feel overwhelming. Want to take a small break?",
				Actions: []chat.Action{
					{Label: "Quick break activity", Action: "break"},
					{Label: "Study tips", Action: "study_tips"},
					{Label: "Keep chatting", Action: "chat"},
				},
			},
			emotion.Loneliness: {
				Message: "Feeling disconnected is hard. Would you like to explore some options?",
				Actions: []chat.Action{
					{Label: "Connect with peers", Action: "peer_connect"},
					{Label: "Calming activity", Action: "game"},
					{Label: "Keep chatting", Action: "chat"},
				},
			},
			emotion.Sleep: {
				Message: "Sleep struggles are exhausting. Want to try something that might help?",
				Actions: []chat.Action{
					{Label: "Sleep tips", Action: "sleep_tips"},
					{Label: "Relaxation exercise", Action: "breathing"},
					{Label: "Keep chatting", Action: "chat"},
				},
			},
			emotion.Social: {
				Message: "Social stuff can be tricky. Want to talk through it?",
				Actions: []chat.Action{
					{Label: "Social tips", Action: "social_tips"},
					{Label: "Calming activity", Action: "game"},
					{Label: "Keep chatting", Action: "chat"},
				},
			},
			emotion.Unknown: {
				Message: "I'm here to listen. Would you like to try something calming?",
				Actions: []chat.Action{
					{Label: "Breathe", Action: "breathing"},
					{Label: "Play a game", Action: "game"},
					{Label: "Keep chatting", Action: "chat"},
				},
			},
		},
		Medium: map[emotion.Category]Template{
			emotion.Stress: {
				Message: "That sounds really overwhelming. Let's slow things down together.",
				Actions: []chat.Action{
					{Label: "Breathing exercise", Action: "breathing"},
					{Label: "Grounding technique", Action: "grounding"},
					{Label: "Keep chatting", Action: "chat"},
				},
			},
			emotion.Anxiety: {
				Message: "I can hear this feels intense. You're not alone in this moment.",
				Actions: []chat.Action{
					{Label: "Grounding exercise", Action: "grounding"},
					{Label: "Breathing technique", Action: "breathing"},
					{Label: "Keep chatting", Action: "chat"},
				},
			},
			emotion.Sadness: {
				Message: "That sounds really hard. It's okay to feel this way.",
				Actions: []chat.Action{
					{Label: "Calming sounds", Action: "sounds"},
					{Label: "Breathing space", Action: "breathing"},
					{Label: "Keep chatting", Action: "chat"},
				},
			},
			emotion.Academic: {
				Message: "Academic stress can feel crushing. Let's take this one step at a time.",
				Actions: []chat.Action{
					{Label: "Break activity", Action: "break"},
					{Label: "Talk to someone", Action: "peer_support"},
					{Label: "Keep chatting", Action: "chat"},
				},
			},
			emotion.Loneliness: {
				Message: "Feeling isolated is really painful. You deserve support.",
				Actions: []chat.Action{
					{Label: "Peer support", Action: "peer_support"},
					{Label: "Calming activity", Action: "breathing"},
					{Label: "Keep chatting", Action: "chat"},
				},
			},
			emotion.Sleep: {
				Message: "Ongoing sleep issues are exhausting. Let's find some support.",
				Actions: []chat.Action{
					{Label: "Sleep resources", Action: "sleep_resources"},
					{Label: "Relaxation", Action: "breathing"},
					{Label: "Keep chatting", Action: "chat"},
				},
			},
			emotion.Social: {
				Message: "Social challenges can feel isolating. You're not alone in this.",
				Actions: []chat.Action{
					{Label: "Peer support", Action: "peer_support"},
					{Label: "Grounding", Action: "grounding"},
					{Label: "Keep chatting", Action: "chat"},
				},
			},
			emotion.Unknown: {
				Message: "I can hear this is difficult. Let's find a way to support you.",
				Actions: []chat.Action{
					{Label: "Breathing exercise", Action: "breathing"},
					{Label: "Grounding", Action: "grounding"},
					{Label: "Keep chatting", Action: "chat"},
				},
			},
		},
		Crisis: Template{
			Message: "I'm really glad you reached out. You don't have to handle this alone. I can show you support options if you want.",
			Actions: []chat.Action{
				{Label: "Talk to a counselor", Action: "counselor"},
				{Label: "Crisis helpline", Action: "helpline"},
				{Label: "Continue chatting", Action: "chat"},
			},
		},
	}
}
