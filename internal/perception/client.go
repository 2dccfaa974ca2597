// Package perception wraps the text-generation providers behind a single
// LLMClient interface.
package perception

import (
	"errors"

	"messdigest/internal/types"
)

// LLMClient defines the interface for LLM providers.
type LLMClient = types.LLMClient

// ErrEmptyCompletion is returned when a provider answers without text.
var ErrEmptyCompletion = errors.New("no completion returned")

// Provider represents an LLM provider.
type Provider string

const (
	ProviderOpenAI Provider = "openai"
	ProviderGemini Provider = "gemini"
)
