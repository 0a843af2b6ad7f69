// Файл: pkg/aiclient/client.go
//
// Тонкий клиент chat-completions API (OpenAI-совместимый).
// Один вызов = один исходящий запрос: ретраев и кеша здесь нет намеренно,
// деградацию обрабатывает вызывающий сервис.
package aiclient

import (
	"context"
	"fmt"
	"time"

	"helpdesk-system/pkg/config"

	"github.com/go-resty/resty/v2"
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

type Client struct {
	http        *resty.Client
	model       string
	temperature float64
	maxTokens   int
}

func NewClient(cfg config.AIConfig) *Client {
	httpClient := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetAuthToken(cfg.APIKey).
		SetHeader("Content-Type", "application/json").
		SetTimeout(60 * time.Second)

	return &Client{
		http:        httpClient,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
	}
}

// CreateChatCompletion возвращает сырой текст первого choice.
func (c *Client) CreateChatCompletion(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	body := chatCompletionRequest{
		Model: c.model,
		Messages: []Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
	}

	var result chatCompletionResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&result).
		SetError(&result).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("запрос к completion API не удался: %w", err)
	}

	if resp.IsError() {
		if result.Error != nil {
			return "", fmt.Errorf("completion API вернул ошибку %s: %s", resp.Status(), result.Error.Message)
		}
		return "", fmt.Errorf("completion API вернул статус %s", resp.Status())
	}

	if len(result.Choices) == 0 {
		return "", fmt.Errorf("completion API вернул пустой список choices")
	}

	return result.Choices[0].Message.Content, nil
}
