package utils

import (
	"context"
	"errors"

	openai "github.com/sashabaranov/go-openai"

	"healthtrack/internal/models/response_models"
)

// OpenAINutritionClient asks an OpenAI chat model for nutrition estimates.
type OpenAINutritionClient struct {
	client *openai.Client
	model  string
}

func NewOpenAINutritionClient(apiKey, model string) *OpenAINutritionClient {
	return NewOpenAINutritionClientWithConfig(openai.DefaultConfig(apiKey), model)
}

func NewOpenAINutritionClientWithConfig(cfg openai.ClientConfig, model string) *OpenAINutritionClient {
	if model == "" {
		model = openai.GPT4o
	}
	return &OpenAINutritionClient{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (c *OpenAINutritionClient) AnalyzeImage(ctx context.Context, base64Image string) (*response_models.NutritionAnalysis, error) {
	mimeType, payload := splitImagePayload(base64Image)
	return c.complete(ctx, openai.ChatCompletionMessage{
		Role: openai.ChatMessageRoleUser,
		MultiContent: []openai.ChatMessagePart{
			{Type: openai.ChatMessagePartTypeText, Text: imageUserPrompt},
			{
				Type: openai.ChatMessagePartTypeImageURL,
				ImageURL: &openai.ChatMessageImageURL{
					URL:    "data:" + mimeType + ";base64," + payload,
					Detail: openai.ImageURLDetailAuto,
				},
			},
		},
	}, imageSystemPrompt)
}

func (c *OpenAINutritionClient) AnalyzeText(ctx context.Context, description string) (*response_models.NutritionAnalysis, error) {
	return c.complete(ctx, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: description,
	}, textSystemPrompt)
}

func (c *OpenAINutritionClient) complete(ctx context.Context, user openai.ChatCompletionMessage, system string) (*response_models.NutritionAnalysis, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			user,
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		MaxTokens: 1000,
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("no choices returned")
	}
	return decodeNutritionAnalysis(resp.Choices[0].Message.Content)
}

func (c *OpenAINutritionClient) Close() error { return nil }
