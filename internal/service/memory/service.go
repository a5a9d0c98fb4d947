package memory

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/normalhq/chatbox/server/internal/model/chat"
)

// Defaults applied when Options leaves a field zero.
const (
	DefaultMaxHistory    = 10
	DefaultIdleTimeout   = 30 * time.Minute
	DefaultSweepInterval = 5 * time.Minute
)

// Options tunes the bounded history and the idle-session sweep.
type Options struct {
	MaxHistory    int
	IdleTimeout   time.Duration
	SweepInterval time.Duration
}

type session struct {
	messages     []chat.Message
	lastActivity time.Time
}

// Service keeps per-session bounded conversation history in memory.
// Sessions are created lazily on first append and evicted after sitting
// idle past the timeout. Nothing here is ever persisted.
type Service struct {
	mu       sync.RWMutex
	sessions map[string]*session

	maxHistory    int
	idleTimeout   time.Duration
	sweepInterval time.Duration
}

// NewService bootstraps the in-memory conversation store.
func NewService(opts Options) *Service {
	if opts.MaxHistory <= 0 {
		opts.MaxHistory = DefaultMaxHistory
	}
	if opts.IdleTimeout <= 0 {
		opts.IdleTimeout = DefaultIdleTimeout
	}
	if opts.SweepInterval <= 0 {
		opts.SweepInterval = DefaultSweepInterval
	}

	return &Service{
		sessions:      make(map[string]*session),
		maxHistory:    opts.MaxHistory,
		idleTimeout:   opts.IdleTimeout,
		sweepInterval: opts.SweepInterval,
	}
}

// Start launches the idle-session sweeper. It returns immediately; the
// sweeper stops when ctx is cancelled.
func (s *Service) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(s.sweepInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if evicted := s.sweep(time.Now()); evicted > 0 {
					log.Printf("[memory] evicted %d idle session(s)", evicted)
				}
			}
		}
	}()
}

// Append records a conversation turn, creating the session if needed.
// Only the most recent 2*MaxHistory messages are retained, oldest first
// to go; an append racing the sweeper simply recreates the session.
func (s *Service) Append(_ context.Context, sessionID string, role chat.Role, content string) {
	now := time.Now().UTC()

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		sess = &session{messages: make([]chat.Message, 0, 2*s.maxHistory)}
		s.sessions[sessionID] = sess
	}

	sess.messages = append(sess.messages, chat.Message{
		Role:      role,
		Content:   content,
		CreatedAt: now,
	})
	sess.lastActivity = now

	if limit := 2 * s.maxHistory; len(sess.messages) > limit {
		trimmed := make([]chat.Message, limit)
		copy(trimmed, sess.messages[len(sess.messages)-limit:])
		sess.messages = trimmed
	}
}

// History returns a copy of the session's messages in insertion order.
// Unknown session ids yield an empty slice, never an error.
func (s *Service) History(_ context.Context, sessionID string) []chat.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return []chat.Message{}
	}

	copied := make([]chat.Message, len(sess.messages))
	copy(copied, sess.messages)
	return copied
}

// Clear removes a session and its history entirely.
func (s *Service) Clear(_ context.Context, sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}

func (s *Service) sweep(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for id, sess := range s.sessions {
		if now.Sub(sess.lastActivity) > s.idleTimeout {
			delete(s.sessions, id)
			evicted++
		}
	}
	return evicted
}
