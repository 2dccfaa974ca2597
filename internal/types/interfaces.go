package types

import (
	"context"
)

// LLMClient defines the interface for text-generation providers.
type LLMClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
	CompleteWithSystem(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// RowSource returns every row of the complaint table, in sheet order.
// An empty table is a valid result.
type RowSource interface {
	FetchRows(ctx context.Context) ([]RawRow, error)
}
