package providers

import "context"

// TextModelProvider generates free text from a single prompt using a
// hosted language model.
type TextModelProvider interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}
