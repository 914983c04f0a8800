// Package matching scores a structured resume against job posting
// requirements and proposes highlight rewrites for the gaps.
package matching

import "context"

// Embedder generates vector embeddings from text.
type Embedder interface {
	// Embed generates a vector embedding for a single text.
	Embed(ctx context.Context, text string) ([]float32, error)

	// EmbedBatch generates vector embeddings for multiple texts.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)

	// Dimensions returns the dimensionality of the embeddings.
	Dimensions() int

	// Model returns the name of the embedding model being used.
	Model() string
}
