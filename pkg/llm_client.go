package pkg

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"

	"cosmind-backend/models"
)

type RequestMessage struct {
	Role    string `json:"role"`
	Content string `json:"content,omitempty"`
}

type ResponseMessage struct {
	Role    string `json:"role"`
	Content string `json:"content,omitempty"`
}

type ResponseFormat struct {
	Type string `json:"type"`
}

type ChatCompletionRequest struct {
	Model          string           `json:"model"`
	Messages       []RequestMessage `json:"messages"`
	ResponseFormat *ResponseFormat  `json:"response_format,omitempty"`
}

type ChatChoice struct {
	Index        uint32          `json:"index"`
	Message      ResponseMessage `json:"message"`
	FinishReason string          `json:"finish_reason"`
}

type ChatCompletionResponse struct {
	ID      string       `json:"id"`
	Object  string       `json:"object"`
	Created uint64       `json:"created"`
	Model   string       `json:"model"`
	Choices []ChatChoice `json:"choices"`
}

// LLMClient calls an OpenAI-compatible completion endpoint. One round trip
// per call, no retry; the caller decides what a failure costs.
type LLMClient struct {
	client  *http.Client
	apiKey  string
	baseURL string
	model   string
}

func NewLLMClient(httpClient *http.Client, apiKey, baseURL, model string) *LLMClient {
	return &LLMClient{
		client:  httpClient,
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
	}
}

// Model returns the configured model identifier.
func (c *LLMClient) Model() string { return c.model }

// Complete sends the message list and returns the raw completion text.
// When expectJSON is set the request asks the endpoint for a JSON object
// response. Failures are classified as *models.GatewayError.
func (c *LLMClient) Complete(ctx context.Context, messages []RequestMessage, expectJSON bool) (string, error) {
	request := ChatCompletionRequest{
		Model:    c.model,
		Messages: messages,
	}
	if expectJSON {
		request.ResponseFormat = &ResponseFormat{Type: "json_object"}
	}

	jsonBody, err := json.Marshal(request)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request body: %w", err)
	}

	url := c.baseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", classifyTransportError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &models.GatewayError{Kind: models.GatewayNetworkFailure, Err: err}
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return "", &models.GatewayError{
			Kind:   models.GatewayRateLimited,
			Status: resp.StatusCode,
			Err:    fmt.Errorf("rate limited: %s", string(body)),
		}
	}
	if resp.StatusCode != http.StatusOK {
		return "", &models.GatewayError{
			Kind:   models.GatewayUpstreamError,
			Status: resp.StatusCode,
			Err:    fmt.Errorf("request failed: %s", string(body)),
		}
	}

	var response ChatCompletionResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return "", &models.GatewayError{Kind: models.GatewayUpstreamError, Err: fmt.Errorf("failed to unmarshal response: %w", err)}
	}
	if len(response.Choices) == 0 {
		return "", &models.GatewayError{Kind: models.GatewayUpstreamError, Err: errors.New("no choices in response")}
	}

	return strings.TrimSpace(response.Choices[0].Message.Content), nil
}

func classifyTransportError(err error) error {
	kind := models.GatewayNetworkFailure
	var nerr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &nerr) && nerr.Timeout()) {
		kind = models.GatewayTimeout
	}
	return &models.GatewayError{Kind: kind, Err: err}
}
