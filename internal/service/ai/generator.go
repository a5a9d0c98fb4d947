package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/normalhq/chatbox/server/internal/model/chat"
)

// Reply is the structured output the model is instructed to produce:
// a brief message plus bare action identifiers. Labels are attached by
// the caller via ActionLabel.
type Reply struct {
	Message string   `json:"message"`
	Actions []string `json:"actions"`
}

// Generator produces a reply for a user message given recent history.
// Implementations call an external model; failures are expected runtime
// conditions and the caller falls back to templates.
type Generator interface {
	Generate(ctx context.Context, userMessage string, history []chat.Message) (Reply, error)
}

// decodeReply parses model output into a Reply. The model is asked for a
// bare JSON object, but some models wrap it in prose or code fences, so a
// best-effort extraction of the first top-level object is attempted
// before giving up.
func decodeReply(outputText string) (Reply, error) {
	s := strings.TrimSpace(outputText)
	if s == "" {
		return Reply{}, io.ErrUnexpectedEOF
	}

	var reply Reply
	if err := json.Unmarshal([]byte(s), &reply); err == nil {
		return validateDecoded(reply)
	}

	start := strings.IndexByte(s, '{')
	end := strings.LastIndexByte(s, '}')
	if start == -1 || end == -1 || end <= start {
		return Reply{}, fmt.Errorf("no JSON object found in model output (len=%d)", len(s))
	}

	if err := json.Unmarshal([]byte(s[start:end+1]), &reply); err != nil {
		return Reply{}, fmt.Errorf("failed to unmarshal model output: %w", err)
	}
	return validateDecoded(reply)
}

func validateDecoded(reply Reply) (Reply, error) {
	reply.Message = strings.TrimSpace(reply.Message)
	if reply.Message == "" {
		return Reply{}, fmt.Errorf("model output carries no message")
	}
	return reply, nil
}
