package llm

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/curacore/curacore/internal/llm/prompts"
	"github.com/curacore/curacore/internal/model"

	openai "github.com/sashabaranov/go-openai"
)

// historyWindow bounds how many prior exchanges are replayed to the model.
const historyWindow = 10

// Client wraps an OpenAI-compatible API client.
type Client struct {
	api     *openai.Client
	model   string
	variant prompts.PromptVariant
}

// New creates a new LLM client.
func New(baseURL, apiKey, modelName string, variant prompts.PromptVariant) *Client {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return &Client{
		api:     openai.NewClientWithConfig(config),
		model:   modelName,
		variant: variant,
	}
}

// Respond sends the user's message with recent conversation history to
// the model and returns its reply. detectedEmotion steers the system
// prompt; it may be empty.
func (c *Client) Respond(ctx context.Context, userName, message, detectedEmotion string, history []model.ChatEntry) (string, error) {
	systemPrompt, err := prompts.BuildChatPrompt(c.variant, prompts.ChatData{
		UserName: userName,
		Emotion:  detectedEmotion,
	})
	if err != nil {
		return "", fmt.Errorf("build chat prompt: %w", err)
	}

	chatMsgs := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
	}

	if len(history) > historyWindow {
		history = history[len(history)-historyWindow:]
	}
	for _, e := range history {
		chatMsgs = append(chatMsgs,
			openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: e.UserMessage},
			openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: e.BotResponse},
		)
	}
	chatMsgs = append(chatMsgs, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: prompts.SanitizeMessage(message),
	})

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    chatMsgs,
		Temperature: 0.7,
	})
	if err != nil {
		return "", fmt.Errorf("LLM API call: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("LLM returned no choices")
	}

	reply := resp.Choices[0].Message.Content
	slog.Debug("LLM response", "raw", reply)
	return reply, nil
}

// Ping verifies the model endpoint responds.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     c.model,
		Messages:  []openai.ChatCompletionMessage{{Role: openai.ChatMessageRoleUser, Content: "ping"}},
		MaxTokens: 1,
	})
	if err != nil {
		return fmt.Errorf("LLM ping: %w", err)
	}
	return nil
}
