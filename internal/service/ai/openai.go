package ai

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/responses"

	"github.com/normalhq/chatbox/server/internal/config"
	"github.com/normalhq/chatbox/server/internal/model/chat"
)

// OpenAIGenerator produces replies through the OpenAI Responses API with
// a strict JSON schema so decoding never depends on model goodwill.
type OpenAIGenerator struct {
	client *openai.Client
	model  string
}

// NewOpenAIGenerator builds a generator from the configured credential.
func NewOpenAIGenerator(cfg config.AIConfig) (*OpenAIGenerator, error) {
	if cfg.OpenAIKey == "" {
		return nil, errors.New("openai api key is missing")
	}

	client := openai.NewClient(option.WithAPIKey(cfg.OpenAIKey))
	return &OpenAIGenerator{
		client: &client,
		model:  cfg.OpenAIModel,
	}, nil
}

var replyFormat = responses.ResponseFormatTextConfigUnionParam{
	OfJSONSchema: &responses.ResponseFormatTextJSONSchemaConfigParam{
		Name: "SupportReply",
		Schema: map[string]any{
			"type":                 "object",
			"additionalProperties": false,
			"required":             []string{"message", "actions"},
			"properties": map[string]any{
				"message": map[string]any{"type": "string"},
				"actions": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
		},
		Strict:      openai.Bool(true),
		Description: openai.String("Brief support reply with suggested actions"),
		Type:        "json_schema",
	},
}

// Generate calls the Responses API and decodes the structured reply.
func (g *OpenAIGenerator) Generate(ctx context.Context, userMessage string, history []chat.Message) (Reply, error) {
	items := make([]responses.ResponseInputItemUnionParam, 0, len(history)+1)
	for _, msg := range history {
		role := responses.EasyInputMessageRoleUser
		if msg.Role == chat.RoleAssistant {
			role = responses.EasyInputMessageRoleAssistant
		}
		items = append(items, responses.ResponseInputItemParamOfMessage(msg.Content, role))
	}
	items = append(items, responses.ResponseInputItemParamOfMessage(userMessage, responses.EasyInputMessageRoleUser))

	params := responses.ResponseNewParams{
		Model:           g.model,
		MaxOutputTokens: openai.Int(200),
		Instructions:    openai.String(SystemPrompt),
		Input: responses.ResponseNewParamsInputUnion{
			OfInputItemList: items,
		},
		Text: responses.ResponseTextConfigParam{
			Format: replyFormat,
		},
	}

	resp, err := g.client.Responses.New(ctx, params)
	if err != nil {
		return Reply{}, fmt.Errorf("openai request failed: %w", err)
	}

	reply, err := decodeReply(resp.OutputText())
	if err != nil {
		return Reply{}, fmt.Errorf("failed to decode openai reply: %w", err)
	}

	log.Printf("[ai] openai reply generated, length=%d", len(reply.Message))
	return reply, nil
}
