// Package gemini wraps the generative language api used for recommendations.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const DefaultModel = "gemini-2.0-flash"

var ErrMissingApiKey = errors.New("gemini: GEMINI_API_KEY is not set")

type IClient interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type Client struct {
	model  string
	client *genai.Client
}

// NewClient returns a client that fails every call with ErrMissingApiKey when apiKey is empty.
func NewClient(ctx context.Context, apiKey string, model string) (*Client, error) {
	if model == "" {
		model = DefaultModel
	}
	c := &Client{model: model}
	if apiKey == "" {
		return c, nil
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}
	c.client = client
	return c, nil
}

func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if c.client == nil {
		return "", ErrMissingApiKey
	}
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini: generate content: %w", err)
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", errors.New("gemini: empty response")
	}
	return text, nil
}
