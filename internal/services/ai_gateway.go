package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jcotes2k/digital-growth-marketing-sub002/internal/config"
	"github.com/jcotes2k/digital-growth-marketing-sub002/pkg/logging"
)

// Typed upstream failures, mapped to HTTP status codes by the handlers
var (
	ErrRateLimited    = errors.New("ai gateway rate limited")
	ErrQuotaExhausted = errors.New("ai gateway billing quota exhausted")
	ErrTimeout        = errors.New("ai gateway request timed out")
)

// AIGateway is the client for the OpenAI-compatible completion endpoint.
// One request per invocation, no retries, no streaming.
type AIGateway struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
}

// NewAIGateway creates a gateway client from the application config
func NewAIGateway() *AIGateway {
	timeout := time.Duration(config.AppConfig.AITimeoutSeconds) * time.Second
	return &AIGateway{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    config.AppConfig.AIGatewayURL,
		apiKey:     config.AppConfig.AIGatewayKey,
		model:      config.AppConfig.AIModel,
	}
}

// Configured reports whether an API key is present
func (g *AIGateway) Configured() bool {
	return g.apiKey != ""
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	Temperature    float64         `json:"temperature"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// CompleteJSON sends one chat completion request asking the model for a
// JSON object and returns the raw content of the first choice. Upstream
// 429/402 and timeouts surface as typed errors.
func (g *AIGateway) CompleteJSON(ctx context.Context, systemPrompt, userPrompt string) ([]byte, error) {
	reqBody := chatRequest{
		Model: g.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature:    0.7,
		ResponseFormat: &responseFormat{Type: "json_object"},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", g.baseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
			return nil, ErrTimeout
		}
		return nil, fmt.Errorf("failed to call ai gateway: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read ai gateway response: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		// fallthrough to parsing
	case http.StatusTooManyRequests:
		return nil, ErrRateLimited
	case http.StatusPaymentRequired:
		return nil, ErrQuotaExhausted
	default:
		logging.Errorf("AI gateway returned status %d: %s", resp.StatusCode, truncate(string(body), 300))
		return nil, fmt.Errorf("ai gateway returned status %d", resp.StatusCode)
	}

	var completion chatResponse
	if err := json.Unmarshal(body, &completion); err != nil {
		return nil, fmt.Errorf("invalid ai gateway response: %w", err)
	}
	if completion.Error != nil {
		return nil, fmt.Errorf("ai gateway error: %s", completion.Error.Message)
	}
	if len(completion.Choices) == 0 {
		return nil, fmt.Errorf("ai gateway returned no choices")
	}

	return []byte(completion.Choices[0].Message.Content), nil
}

func isTimeout(err error) bool {
	var netErr interface{ Timeout() bool }
	return errors.As(err, &netErr) && netErr.Timeout()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
