// Package llm is the LLM collaborator: a prompt library plus a thin client
// over the Anthropic Messages API. The action runtime and the rule compiler
// both go through the Generator interface; tests substitute a mock.
package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// Generator is the contract the engine relies on: resolve promptKey (library
// key or raw instruction), serialize input into the prompt, return the
// assistant's text. An empty string is an acceptable result.
type Generator interface {
	Generate(ctx context.Context, promptKey string, input any) (string, error)
}

// MessagesClient captures the subset of the Anthropic SDK used by the client.
// It is satisfied by *sdk.MessageService so callers can pass either a real
// client or a mock in tests.
type MessagesClient interface {
	New(ctx context.Context, body sdk.MessageNewParams, opts ...option.RequestOption) (*sdk.Message, error)
}

// Options configures the client.
type Options struct {
	// Model is the Claude model identifier.
	Model string
	// MaxTokens caps the completion length. Defaults to 1024.
	MaxTokens int64
}

// Client implements Generator on top of Anthropic Claude Messages.
type Client struct {
	msg       MessagesClient
	model     string
	maxTokens int64
}

// New builds a client from a Messages client and options.
func New(msg MessagesClient, opts Options) (*Client, error) {
	if msg == nil {
		return nil, errors.New("anthropic messages client is required")
	}
	if opts.Model == "" {
		return nil, errors.New("model identifier is required")
	}
	maxTokens := opts.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 1024
	}
	return &Client{
		msg:       msg,
		model:     opts.Model,
		maxTokens: maxTokens,
	}, nil
}

// NewFromAPIKey constructs a client using the default Anthropic HTTP client.
func NewFromAPIKey(apiKey string, opts Options) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("api key is required")
	}
	ac := sdk.NewClient(option.WithAPIKey(apiKey))
	return New(&ac.Messages, opts)
}

// Generate issues a Messages request and returns the concatenated text
// content of the response.
func (c *Client) Generate(ctx context.Context, promptKey string, input any) (string, error) {
	prompt := Instruction(promptKey) + "\n\n" + serializeInput(input)

	resp, err := c.msg.New(ctx, sdk.MessageNewParams{
		Model:     sdk.Model(c.model),
		MaxTokens: c.maxTokens,
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("llm generate (%s): %w", promptKey, err)
	}

	var sb strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	return sb.String(), nil
}

// serializeInput renders the action input into the prompt: strings pass
// through, everything else is JSON-encoded.
func serializeInput(input any) string {
	switch v := input.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(b)
	}
}
