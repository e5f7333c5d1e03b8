// Package provider constructs the Anthropic client and fixes the model
// parameters for this agent.
package provider

import (
	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// NewAnthropicClient returns a client authenticated with the given API key.
func NewAnthropicClient(apiKey string) *anthropic.Client {
	c := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &c
}

const DefaultModel = anthropic.Model("claude-sonnet-4-5-20250929")

// MaxTokens bounds each model response.
const MaxTokens = 4096

// SystemPrompt directs the model to behave as a terminal coding assistant
// returning plain, unformatted text.
const SystemPrompt = "You are a helpful coding assistant running in a terminal environment. " +
	"Output plain text only, without markdown formatting, because your replies are printed " +
	"directly to a terminal. Be concise but thorough, and offer clear, practical advice in a " +
	"friendly tone. Do not use any asterisk characters in your replies."
