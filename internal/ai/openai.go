package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"
)

const (
	openaiBaseURL      = "https://api.openai.com/v1/chat/completions"
	openaiDefaultModel = "gpt-4o-mini"
	openaiMaxRetries   = 3
	openaiInitialDelay = 1 * time.Second
)

// renegotiationSchema constrains the completion to the structured
// renegotiation report: three required top-level fields, no additional
// properties anywhere.
const renegotiationSchema = `{
	"type": "json_schema",
	"json_schema": {
		"name": "renegotiation_schema",
		"strict": true,
		"schema": {
			"type": "object",
			"properties": {
				"renegotiated_titles": {
					"type": "array",
					"description": "List of renegotiated titles.",
					"items": {
						"type": "object",
						"properties": {
							"title": {"type": "string", "description": "The identifier of the title."},
							"value": {"type": "string", "description": "The value of the title."},
							"renegotiation_date": {"type": "string", "description": "The date when the title was renegotiated."},
							"original_due_date": {"type": "string", "description": "The original due date of the title."},
							"new_due_date": {"type": "string", "description": "The new due date of the title after renegotiation."}
						},
						"required": ["title", "value", "renegotiation_date", "original_due_date", "new_due_date"],
						"additionalProperties": false
					}
				},
				"cash_flow_summary": {
					"type": "array",
					"description": "Monthly summary of renegotiated amounts.",
					"items": {
						"type": "object",
						"properties": {
							"month_year": {"type": "string", "description": "The month and year of the cash flow."},
							"total_renegotiated": {"type": "string", "description": "Total amount renegotiated for the month."}
						},
						"required": ["month_year", "total_renegotiated"],
						"additionalProperties": false
					}
				},
				"notes": {"type": "string", "description": "Additional notes regarding the renegotiation process."}
			},
			"required": ["renegotiated_titles", "cash_flow_summary", "notes"],
			"additionalProperties": false
		}
	}
}`

// OpenAIClient is the schema-constrained implementation.
type OpenAIClient struct {
	apiKey       string
	baseURL      string
	model        string
	client       *http.Client
	initialDelay time.Duration
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	ResponseFormat json.RawMessage `json:"response_format"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type openaiError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    string `json:"code"`
	} `json:"error"`
}

// NewOpenAIClient fails fast when no API key is configured.
func NewOpenAIClient(apiKey, model string) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}
	if model == "" {
		model = openaiDefaultModel
	}
	return &OpenAIClient{
		apiKey:       apiKey,
		baseURL:      openaiBaseURL,
		model:        model,
		client:       &http.Client{Timeout: 60 * time.Second},
		initialDelay: openaiInitialDelay,
	}, nil
}

// GenerateResponse requests a chat completion validated against the
// renegotiation schema. Retries with exponential backoff on rate limits and
// server errors; client errors fail immediately.
func (c *OpenAIClient) GenerateResponse(ctx context.Context, prompt string) (string, error) {
	req := chatRequest{
		Model:          c.model,
		Messages:       []chatMessage{{Role: "user", Content: prompt}},
		ResponseFormat: json.RawMessage(renegotiationSchema),
	}

	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt < openaiMaxRetries; attempt++ {
		if attempt > 0 && c.initialDelay > 0 {
			delay := time.Duration(math.Pow(2, float64(attempt-1))) * c.initialDelay
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}

		httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
		if err != nil {
			return "", fmt.Errorf("failed to create request: %w", err)
		}
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
		httpReq.Header.Set("Content-Type", "application/json")

		resp, err := c.client.Do(httpReq)
		if err != nil {
			lastErr = fmt.Errorf("HTTP request failed: %w", err)
			continue
		}

		respBody, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = fmt.Errorf("failed to read response body: %w", err)
			continue
		}

		if resp.StatusCode != http.StatusOK {
			var apiErr openaiError
			if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Error.Message != "" {
				lastErr = fmt.Errorf("OpenAI API error (%d): %s", resp.StatusCode, apiErr.Error.Message)
			} else {
				lastErr = fmt.Errorf("OpenAI API error (%d): %s", resp.StatusCode, string(respBody))
			}

			if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
				continue
			}
			return "", lastErr
		}

		var chatResp chatResponse
		if err := json.Unmarshal(respBody, &chatResp); err != nil {
			return "", fmt.Errorf("failed to decode response: %w", err)
		}
		if len(chatResp.Choices) == 0 || chatResp.Choices[0].Message.Content == "" {
			return "", fmt.Errorf("no response from OpenAI")
		}
		return chatResp.Choices[0].Message.Content, nil
	}

	return "", fmt.Errorf("max retries (%d) exceeded: %w", openaiMaxRetries, lastErr)
}
