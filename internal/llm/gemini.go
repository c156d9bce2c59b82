package llm

import (
	"context"
	"fmt"

	"github.com/milohq/milo/internal/models"
	"google.golang.org/genai"
)

const defaultModelName = "gemini-2.5-flash"

type GeminiClient struct {
	client    *genai.Client
	modelName string
}

// NewGeminiClient builds a Client backed by the hosted Gemini API. The API
// key comes from the caller so the composition root owns configuration.
func NewGeminiClient(ctx context.Context, apiKey string, modelName string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	if modelName == "" {
		modelName = defaultModelName
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}

	return &GeminiClient{
		client:    client,
		modelName: modelName,
	}, nil
}

func (g *GeminiClient) GenerateReply(ctx context.Context, systemPrompt string, history []models.ConversationTurn, userMessage string) (string, error) {
	var contents []*genai.Content
	for _, turn := range history {
		role := genai.Role(genai.RoleUser)
		if turn.Sender == models.SenderAI {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(turn.Text, role))
	}
	contents = append(contents, genai.NewContentFromText(userMessage, genai.RoleUser))

	temperature := float32(0.7)
	topP := float32(0.9)
	maxOutputTokens := int32(2048)

	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
		Temperature:       &temperature,
		TopP:              &topP,
		MaxOutputTokens:   maxOutputTokens,
	}

	res, err := g.client.Models.GenerateContent(ctx, g.modelName, contents, cfg)
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}

	text := res.Text()
	if text == "" {
		return "", ErrEmptyReply
	}

	return text, nil
}
