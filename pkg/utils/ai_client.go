package utils

import (
	"context"

	"github.com/pgvector/pgvector-go"
)

// EmbeddingDimensions is shared by both providers so course embeddings stay
// comparable regardless of which backend produced them.
const EmbeddingDimensions = 768

// AIClientInterface is the boundary to the generative model provider. All
// generation goes through JSON mode; callers parse and validate the reply
// against their own schema before trusting any field.
type AIClientInterface interface {
	GenerateJSON(ctx context.Context, prompt string) (string, error)
	GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error)
	Close() error
}
