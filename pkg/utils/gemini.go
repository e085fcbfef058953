package utils

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"healthtrack/internal/models/response_models"
)

// GeminiNutritionClient asks a Gemini model for nutrition estimates.
type GeminiNutritionClient struct {
	client *genai.Client
	model  string
}

func NewGeminiNutritionClient(ctx context.Context, apiKey, model string) (*GeminiNutritionClient, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiNutritionClient{client: client, model: model}, nil
}

func (c *GeminiNutritionClient) AnalyzeImage(ctx context.Context, base64Image string) (*response_models.NutritionAnalysis, error) {
	mimeType, data, err := DecodeImage(base64Image)
	if err != nil {
		return nil, err
	}
	format := strings.TrimPrefix(mimeType, "image/")
	return c.generate(ctx, imageSystemPrompt, genai.ImageData(format, data), genai.Text(imageUserPrompt))
}

func (c *GeminiNutritionClient) AnalyzeText(ctx context.Context, description string) (*response_models.NutritionAnalysis, error) {
	return c.generate(ctx, textSystemPrompt, genai.Text(description))
}

func (c *GeminiNutritionClient) generate(ctx context.Context, system string, parts ...genai.Part) (*response_models.NutritionAnalysis, error) {
	m := c.client.GenerativeModel(c.model)
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(0.2)
	m.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(system)}}

	resp, err := m.GenerateContent(ctx, parts...)
	if err != nil {
		return nil, fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, errors.New("no content generated by Gemini")
	}
	return decodeNutritionAnalysis(fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]))
}

func (c *GeminiNutritionClient) Close() error {
	return c.client.Close()
}

// NewNutritionAnalyzer picks the provider client by name.
func NewNutritionAnalyzer(ctx context.Context, provider, apiKey, model string) (NutritionAnalyzerInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAINutritionClient(apiKey, model), nil
	case "gemini":
		client, err := NewGeminiNutritionClient(ctx, apiKey, model)
		if err != nil {
			return nil, err
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}
