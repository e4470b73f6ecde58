package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"flightops360/hangar/internal/constants"
)

// TextGenerator turns a prompt into text.
type TextGenerator interface {
	Generate(ctx context.Context, req GenerationRequest) (string, error)
}

// GenerationRequest is one prompt. JSON asks the model for a single JSON
// object instead of free text.
type GenerationRequest struct {
	System      string
	Prompt      string
	JSON        bool
	Temperature float64
	MaxTokens   int
}

// LLMProvider talks to an OpenAI-compatible chat completions endpoint.
type LLMProvider struct {
	BaseURL string
	APIKey  string
	Model   string
	Client  *http.Client
}

func NewLLMProvider(baseURL, apiKey, model string) *LLMProvider {
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &LLMProvider{
		BaseURL: strings.TrimRight(baseURL, "/"),
		APIKey:  apiKey,
		Model:   model,
		Client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	Temperature    float64         `json:"temperature,omitempty"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Generate returns the text of the first choice.
func (p *LLMProvider) Generate(ctx context.Context, req GenerationRequest) (string, error) {
	if p.APIKey == "" {
		return "", &ProviderError{
			Code:    constants.ErrCodeNotConfigured,
			Message: "LLM_API_KEY is not set",
		}
	}
	if strings.TrimSpace(req.Prompt) == "" {
		return "", &ProviderError{
			Code:    constants.ErrCodeInvalidDataFormat,
			Message: "prompt cannot be empty",
		}
	}

	body := chatRequest{
		Model:       p.Model,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.System != "" {
		body.Messages = append(body.Messages, chatMessage{Role: "system", Content: req.System})
	}
	body.Messages = append(body.Messages, chatMessage{Role: "user", Content: req.Prompt})
	if req.JSON {
		body.ResponseFormat = &responseFormat{Type: "json_object"}
	}

	var resp chatResponse
	if err := p.doPost(ctx, "/chat/completions", body, &resp); err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", &ProviderError{
			Code:    constants.ErrCodeEmptyCompletion,
			Message: constants.GetErrorMessage(constants.ErrCodeEmptyCompletion),
		}
	}
	return resp.Choices[0].Message.Content, nil
}

// doPost performs a POST request with authentication and JSON body
func (p *LLMProvider) doPost(ctx context.Context, endpoint string, payload interface{}, result interface{}) error {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return &ProviderError{
			Code:    constants.ErrCodeInvalidDataFormat,
			Message: "Failed to marshal request body",
			Err:     err,
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.BaseURL+endpoint, bytes.NewReader(payloadBytes))
	if err != nil {
		return &ProviderError{
			Code:    constants.ErrCodeNetworkError,
			Message: "Failed to create request",
			Err:     err,
		}
	}
	req.Header.Set("Authorization", "Bearer "+p.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.Client.Do(req)
	if err != nil {
		return &ProviderError{
			Code:    constants.ErrCodeNetworkError,
			Message: constants.GetErrorMessage(constants.ErrCodeNetworkError),
			Err:     err,
		}
	}
	defer resp.Body.Close()

	bodyBytes, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		return &ProviderError{
			Code:    constants.ErrCodeNetworkError,
			Message: "Failed to read response body",
			Err:     readErr,
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return buildHTTPError(resp.StatusCode, endpoint, string(bodyBytes))
	}

	if err := json.Unmarshal(bodyBytes, result); err != nil {
		return &ProviderError{
			Code:    constants.ErrCodeInvalidDataFormat,
			Message: "Failed to decode response",
			Details: string(bodyBytes),
			Err:     err,
		}
	}
	return nil
}

// buildHTTPError creates appropriate error based on status code
func buildHTTPError(statusCode int, endpoint string, body string) error {
	switch statusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return &ProviderError{
			Code:    constants.ErrCodeInvalidAPIKey,
			Message: fmt.Sprintf("Authentication failed for endpoint %s", endpoint),
			Details: body,
		}
	case http.StatusTooManyRequests:
		return &ProviderError{
			Code:    constants.ErrCodeRateLimited,
			Message: constants.GetErrorMessage(constants.ErrCodeRateLimited),
			Details: body,
		}
	case http.StatusBadRequest:
		return &ProviderError{
			Code:    constants.ErrCodeInvalidDataFormat,
			Message: fmt.Sprintf("Bad request to %s", endpoint),
			Details: body,
		}
	default:
		return &ProviderError{
			Code:    constants.ErrCodeUpstreamError,
			Message: fmt.Sprintf("HTTP %d from %s", statusCode, endpoint),
			Details: body,
		}
	}
}
