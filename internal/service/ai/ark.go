package ai

import (
	"context"
	"fmt"
	"log"

	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	"github.com/normalhq/chatbox/server/internal/config"
	"github.com/normalhq/chatbox/server/internal/model/chat"
)

// ArkGenerator produces replies through a Volcengine Ark model using an
// eino prompt-template + chat-model chain compiled once at startup.
type ArkGenerator struct {
	chain compose.Runnable[map[string]any, *schema.Message]
}

// NewArkGenerator builds and compiles the reply chain.
func NewArkGenerator(ctx context.Context, cfg config.AIConfig) (*ArkGenerator, error) {
	chatModel, err := cfg.NewArkChatModel(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat model: %w", err)
	}

	promptTemplate := prompt.FromMessages(
		schema.FString,
		schema.SystemMessage("{system}"),
		schema.MessagesPlaceholder("history", true),
		schema.UserMessage("{query}"),
	)

	chain := compose.NewChain[map[string]any, *schema.Message]()
	chain.AppendChatTemplate(promptTemplate)
	chain.AppendChatModel(chatModel)

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile reply chain: %w", err)
	}

	return &ArkGenerator{chain: runnable}, nil
}

// Generate runs the chain and decodes the structured reply.
func (g *ArkGenerator) Generate(ctx context.Context, userMessage string, history []chat.Message) (Reply, error) {
	input := map[string]any{
		"system":  SystemPrompt,
		"history": buildHistoryMessages(history),
		"query":   userMessage,
	}

	response, err := g.chain.Invoke(ctx, input)
	if err != nil {
		return Reply{}, fmt.Errorf("failed to run reply chain: %w", err)
	}

	reply, err := decodeReply(response.Content)
	if err != nil {
		return Reply{}, fmt.Errorf("failed to decode ark reply: %w", err)
	}

	log.Printf("[ai] ark reply generated, length=%d", len(reply.Message))
	return reply, nil
}

func buildHistoryMessages(messages []chat.Message) []*schema.Message {
	const historyLimit = 10

	if len(messages) == 0 {
		return nil
	}

	startIdx := 0
	if len(messages) > historyLimit {
		startIdx = len(messages) - historyLimit
	}

	history := make([]*schema.Message, 0, len(messages)-startIdx)
	for _, msg := range messages[startIdx:] {
		switch msg.Role {
		case chat.RoleUser:
			history = append(history, schema.UserMessage(msg.Content))
		case chat.RoleAssistant:
			history = append(history, schema.AssistantMessage(msg.Content, nil))
		}
	}

	return history
}
