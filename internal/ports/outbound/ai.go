package outbound

import "context"

// GenerateOptions tunes a single text generation call.
type GenerateOptions struct {
	Model       string
	Temperature float64
	MaxTokens   int
}

// TextGenerator is the driven port for the language model provider. Generate
// sends one prompt and returns the raw reply text. Implementations must
// honor context cancellation and deadlines.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error)
}
