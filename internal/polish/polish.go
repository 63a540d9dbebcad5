// Package polish provides the optional text-improvement pass. It is purely
// cosmetic: the Polisher contract has no error return, and the LLM-backed
// implementation hands back the original text on any failure.
package polish

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://api.openai.com/v1"

	systemPrompt = "Tighten and humanize wording. Keep details; remove fluff."
)

// Polisher rewrites text. Implementations must always return usable text,
// never fail the caller.
type Polisher interface {
	Polish(ctx context.Context, text string) string
}

// Noop is the default Polisher: a passthrough used when no LLM is configured.
type Noop struct{}

func (Noop) Polish(_ context.Context, text string) string { return text }

// OpenAI calls an OpenAI-compatible chat completions endpoint.
type OpenAI struct {
	apiKey      string
	model       string
	temperature float64
	baseURL     string
	httpClient  *http.Client
}

func NewOpenAI(apiKey, model string, temperature float64) *OpenAI {
	return &OpenAI{
		apiKey:      apiKey,
		model:       model,
		temperature: temperature,
		baseURL:     defaultBaseURL,
		httpClient:  &http.Client{Timeout: 30 * time.Second},
	}
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string    `json:"model"`
	Temperature float64   `json:"temperature"`
	Messages    []message `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message message `json:"message"`
	} `json:"choices"`
}

// Polish asks the model to rewrite text. Any failure along the way returns
// the input unchanged.
func (o *OpenAI) Polish(ctx context.Context, text string) string {
	payload := chatRequest{
		Model:       o.model,
		Temperature: o.temperature,
		Messages: []message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: text},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return text
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return text
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+o.apiKey)

	resp, err := o.httpClient.Do(req)
	if err != nil {
		return text
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return text
	}

	var decoded chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return text
	}
	if len(decoded.Choices) == 0 {
		return text
	}
	polished := strings.TrimSpace(decoded.Choices[0].Message.Content)
	if polished == "" {
		return text
	}
	return polished
}
