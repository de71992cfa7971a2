package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
)

// OpenAIClient talks to the OpenAI chat completions API.
type OpenAIClient struct {
	Client
	apiKey string
	model  string
}

func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	return &OpenAIClient{
		Client: *NewClient(ClientConfig{
			Scheme:   "https",
			Host:     "api.openai.com",
			ChatPath: "/v1/chat/completions",
		}),
		apiKey: apiKey,
		model:  model,
	}
}

type openAIChatRequest struct {
	Model    string        `json:"model"`
	Messages []ChatMessage `json:"messages"`
}

type openAIChatResponse struct {
	Choices []struct {
		Message ChatMessage `json:"message"`
	} `json:"choices"`
}

// Complete performs one non-streaming chat completion.
func (c *OpenAIClient) Complete(ctx context.Context, system, prompt string) (string, error) {
	data := openAIChatRequest{
		Model: c.model,
		Messages: []ChatMessage{
			{Role: RoleSystem, Content: system},
			{Role: RoleUser, Content: prompt},
		},
	}

	bts, err := json.Marshal(data)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.ChatURL(), bytes.NewBuffer(bts))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.New("openai: unexpected status: " + resp.Status)
	}

	var apiResp openAIChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return "", err
	}
	if len(apiResp.Choices) == 0 {
		return "", errors.New("openai: response contained no choices")
	}
	return apiResp.Choices[0].Message.Content, nil
}
