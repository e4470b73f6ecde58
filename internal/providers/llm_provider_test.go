package providers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"flightops360/hangar/internal/constants"
)

func TestLLMProvider_Generate_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST request, got %s", r.Method)
		}
		if r.URL.Path != "/chat/completions" {
			t.Errorf("Expected path /chat/completions, got %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Expected bearer token, got %q", got)
		}

		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("Failed to decode request: %v", err)
		}
		if req.Model != "test-model" {
			t.Errorf("Expected model test-model, got %s", req.Model)
		}
		if len(req.Messages) != 2 || req.Messages[0].Role != "system" || req.Messages[1].Content != "Estimate KTEB-KPBI" {
			t.Errorf("Unexpected messages: %+v", req.Messages)
		}
		if req.ResponseFormat == nil || req.ResponseFormat.Type != "json_object" {
			t.Errorf("Expected json_object response format")
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"{\"estimatedFlightTimeHours\":2.4}"}}]}`))
	}))
	defer server.Close()

	provider := &LLMProvider{
		BaseURL: server.URL,
		APIKey:  "test-key",
		Model:   "test-model",
		Client:  &http.Client{},
	}

	text, err := provider.Generate(context.Background(), GenerationRequest{
		System: "You are a dispatcher.",
		Prompt: "Estimate KTEB-KPBI",
		JSON:   true,
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if text != `{"estimatedFlightTimeHours":2.4}` {
		t.Errorf("Unexpected completion %q", text)
	}
}

func TestLLMProvider_Generate_MissingKey(t *testing.T) {
	provider := NewLLMProvider("", "", "")

	_, err := provider.Generate(context.Background(), GenerationRequest{Prompt: "hello"})

	var perr *ProviderError
	if !errors.As(err, &perr) {
		t.Fatalf("Expected ProviderError, got %v", err)
	}
	if perr.Code != constants.ErrCodeNotConfigured {
		t.Errorf("Expected code %s, got %s", constants.ErrCodeNotConfigured, perr.Code)
	}
}

func TestLLMProvider_Generate_HTTPErrors(t *testing.T) {
	tests := []struct {
		status int
		code   string
	}{
		{http.StatusUnauthorized, constants.ErrCodeInvalidAPIKey},
		{http.StatusTooManyRequests, constants.ErrCodeRateLimited},
		{http.StatusBadRequest, constants.ErrCodeInvalidDataFormat},
		{http.StatusBadGateway, constants.ErrCodeUpstreamError},
	}

	for _, tt := range tests {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tt.status)
			_, _ = w.Write([]byte(`{"error":{"message":"nope"}}`))
		}))

		provider := &LLMProvider{BaseURL: server.URL, APIKey: "k", Model: "m", Client: &http.Client{}}
		_, err := provider.Generate(context.Background(), GenerationRequest{Prompt: "hi"})
		server.Close()

		var perr *ProviderError
		if !errors.As(err, &perr) {
			t.Fatalf("status %d: expected ProviderError, got %v", tt.status, err)
		}
		if perr.Code != tt.code {
			t.Errorf("status %d: expected code %s, got %s", tt.status, tt.code, perr.Code)
		}
	}
}

func TestLLMProvider_Generate_EmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	provider := &LLMProvider{BaseURL: server.URL, APIKey: "k", Model: "m", Client: &http.Client{}}
	_, err := provider.Generate(context.Background(), GenerationRequest{Prompt: "hi"})

	var perr *ProviderError
	if !errors.As(err, &perr) || perr.Code != constants.ErrCodeEmptyCompletion {
		t.Fatalf("Expected empty completion error, got %v", err)
	}
}
