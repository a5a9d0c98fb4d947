package chat

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/normalhq/chatbox/server/internal/analysis/emotion"
	"github.com/normalhq/chatbox/server/internal/analysis/intensity"
	"github.com/normalhq/chatbox/server/internal/analysis/safety"
	"github.com/normalhq/chatbox/server/internal/model/chat"
	"github.com/normalhq/chatbox/server/internal/model/template"
	"github.com/normalhq/chatbox/server/internal/service/ai"
	"github.com/normalhq/chatbox/server/internal/service/memory"
)

var ErrEmptyMessage = errors.New("message is required")

// DefaultAITimeout bounds one external generation attempt.
const DefaultAITimeout = 15 * time.Second

// Shown when a generated reply fails safety validation. The user never
// sees an error for a safety substitution.
const safeFallbackMessage = "I'm here to listen. It sounds like you're going through a lot. Would you like to try a breathing exercise?"

var safeFallbackActions = []string{"breathing", "chat"}

// MetadataSink receives one anonymized record per processed message.
type MetadataSink interface {
	Record(category emotion.Category, level intensity.Level)
}

// Deps wires the orchestrator's collaborators. Generator may be nil; the
// service then runs template-only.
type Deps struct {
	Templates template.Store
	Memory    *memory.Service
	Generator ai.Generator
	Metrics   MetadataSink
	AITimeout time.Duration
}

// Service orchestrates one request: classify, branch on intensity, and
// answer from templates or the external generator behind the safety gate.
type Service struct {
	templates template.Store
	memory    *memory.Service
	generator ai.Generator
	metrics   MetadataSink
	aiTimeout time.Duration
}

// NewService builds the orchestrator.
func NewService(deps Deps) *Service {
	if deps.AITimeout <= 0 {
		deps.AITimeout = DefaultAITimeout
	}
	return &Service{
		templates: deps.Templates,
		memory:    deps.Memory,
		generator: deps.Generator,
		metrics:   deps.Metrics,
		aiTimeout: deps.AITimeout,
	}
}

// Respond processes one user message to exactly one terminal reply.
// An empty sessionID mints a fresh one.
func (s *Service) Respond(ctx context.Context, sessionID, message string) (chat.Reply, error) {
	trimmed := strings.TrimSpace(message)
	if trimmed == "" {
		return chat.Reply{}, ErrEmptyMessage
	}
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	// Classification and assessment are independent and pure; run both,
	// branch only once both are in.
	var (
		category emotion.Category
		level    intensity.Level
		wg       sync.WaitGroup
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		category = emotion.Classify(trimmed)
	}()
	go func() {
		defer wg.Done()
		level = intensity.Assess(trimmed)
	}()
	wg.Wait()

	log.Printf("[chat] session=%s emotion=%s intensity=%s", sessionID, category, level)

	// Crisis-tier input never reaches the generator: the wording at this
	// severity must be vetted and deterministic.
	if level == intensity.High {
		return s.finishWithTemplate(ctx, sessionID, trimmed, category, level, chat.ReasonCrisisDetected), nil
	}

	reason := chat.ReasonAIDisabled
	if s.generator != nil {
		if reply, ok := s.tryGenerate(ctx, sessionID, trimmed); ok {
			s.metrics.Record(category, level)
			return reply, nil
		}
		reason = chat.ReasonAIFailed
	}

	return s.finishWithTemplate(ctx, sessionID, trimmed, category, level, reason), nil
}

func (s *Service) finishWithTemplate(ctx context.Context, sessionID, message string, category emotion.Category, level intensity.Level, reason string) chat.Reply {
	tpl := s.templates.Lookup(level, category)
	s.memory.Append(ctx, sessionID, chat.RoleUser, message)
	s.metrics.Record(category, level)

	return chat.Reply{
		Response:  tpl.Message,
		Actions:   tpl.Actions,
		Mode:      chat.ModeTemplate,
		Reason:    reason,
		SessionID: sessionID,
	}
}

// tryGenerate runs one generation attempt behind the safety gate. A false
// return means the attempt failed and templates take over; a safety
// rejection is not a failure, the reply is substituted instead.
func (s *Service) tryGenerate(ctx context.Context, sessionID, message string) (chat.Reply, bool) {
	history := s.memory.History(ctx, sessionID)

	genCtx, cancel := context.WithTimeout(ctx, s.aiTimeout)
	defer cancel()

	generated, err := s.generator.Generate(genCtx, message, history)
	if err != nil {
		log.Printf("[chat] generation failed, falling back to templates: %v", err)
		return chat.Reply{}, false
	}

	responseText := generated.Message
	actionIDs := generated.Actions

	if result := safety.Validate(responseText); !result.Valid {
		log.Printf("[chat] generated reply rejected by safety validation: %d violation(s)", len(result.Violations))
		responseText = safeFallbackMessage
		actionIDs = safeFallbackActions
	} else if !safety.ValidateActions(actionIDs) {
		log.Printf("[chat] generated action list rejected: %v", actionIDs)
		actionIDs = []string{"chat", "breathing"}
	}

	actions := make([]chat.Action, 0, len(actionIDs))
	for _, id := range actionIDs {
		actions = append(actions, chat.Action{Label: ai.ActionLabel(id), Action: id})
	}

	s.memory.Append(ctx, sessionID, chat.RoleUser, message)
	s.memory.Append(ctx, sessionID, chat.RoleAssistant, responseText)

	return chat.Reply{
		Response:  responseText,
		Actions:   actions,
		Mode:      chat.ModeAI,
		SessionID: sessionID,
	}, true
}

// History exposes session history for the transport layer.
func (s *Service) History(ctx context.Context, sessionID string) []chat.Message {
	return s.memory.History(ctx, sessionID)
}

// ClearSession drops a session and its history.
func (s *Service) ClearSession(ctx context.Context, sessionID string) {
	s.memory.Clear(ctx, sessionID)
}
