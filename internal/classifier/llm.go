package classifier

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"coopledger/pkg/errors"
	"coopledger/pkg/logger"
	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

const systemPrompt = `You are a content classifier for a cooperative decision-making tool.
Classify the user's text and respond with ONLY a JSON object of the form:
{"label": "<one word label>", "score": <number between 0 and 1>, "explanation": "<one sentence>"}`

// LLM classifies content through an OpenAI-compatible endpoint (LiteLLM).
// Every call is bounded by a per-request timeout; a timeout or exhausted
// retries surface as ErrClassifierFailed.
type LLM struct {
	client  *openai.Client
	model   string
	timeout time.Duration
	logger  *zap.Logger
}

// NewLLM creates an LLM classifier against an OpenAI-compatible base URL
func NewLLM(baseURL, apiKey, model string, timeout time.Duration) *LLM {
	// LiteLLM accepts any key, but the client requires one
	if apiKey == "" {
		apiKey = "dummy-key"
	}

	config := openai.DefaultConfig(apiKey)
	config.BaseURL = baseURL + "/v1"

	return &LLM{
		client:  openai.NewClientWithConfig(config),
		model:   model,
		timeout: timeout,
		logger:  logger.Named("classifier"),
	}
}

// Classify sends text to the LLM and parses its JSON verdict
func (l *LLM) Classify(ctx context.Context, text string) (*Result, error) {
	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	req := openai.ChatCompletionRequest{
		Model: l.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
		Temperature: 0,
	}

	var resp openai.ChatCompletionResponse
	var err error
	maxRetries := 3
	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(attempt) * time.Second
			l.logger.Warn("Retrying classification request",
				zap.Int("attempt", attempt+1),
				zap.Duration("backoff", backoff),
			)
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, errors.NewClassifierFailed(l.model, true, ctx.Err())
			}
		}

		resp, err = l.client.CreateChatCompletion(ctx, req)
		if err == nil {
			break
		}

		l.logger.Error("Classification request failed",
			zap.Error(err),
			zap.Int("attempt", attempt+1),
			zap.String("model", l.model),
		)

		if ctx.Err() != nil {
			return nil, errors.NewClassifierFailed(l.model, true, err)
		}
	}
	if err != nil {
		return nil, errors.NewClassifierFailed(l.model, false, fmt.Errorf("after %d attempts: %w", maxRetries, err))
	}

	if len(resp.Choices) == 0 {
		return nil, errors.NewClassifierFailed(l.model, false, fmt.Errorf("no choices in response"))
	}

	result, err := parseResult(resp.Choices[0].Message.Content)
	if err != nil {
		return nil, errors.NewClassifierFailed(l.model, false, err)
	}

	l.logger.Debug("Content classified",
		zap.String("model", l.model),
		zap.String("label", result.Label),
		zap.Float64("score", result.Score),
	)
	return result, nil
}

// parseResult extracts the JSON verdict from the model's reply, tolerating
// code fences or prose around the object.
func parseResult(content string) (*Result, error) {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON object in classifier reply: %q", content)
	}

	var result Result
	if err := json.Unmarshal([]byte(content[start:end+1]), &result); err != nil {
		return nil, fmt.Errorf("failed to parse classifier reply: %w", err)
	}
	if result.Label == "" {
		return nil, fmt.Errorf("classifier reply missing label: %q", content)
	}
	return &result, nil
}
