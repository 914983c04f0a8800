package matching

import (
	"context"
	"hash/fnv"
	"strings"
	"unicode"
)

const hashDimensions = 256

// HashEmbedder is a deterministic token-frequency embedder used when no
// embedding service is configured. Tokens are hashed into a fixed number of
// buckets, so related texts sharing vocabulary still score above zero.
type HashEmbedder struct{}

// Embed generates a bucket-count vector for the text's tokens.
func (HashEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	vec := make([]float32, hashDimensions)
	for _, tok := range tokenize(text) {
		h := fnv.New32a()
		h.Write([]byte(tok))
		vec[h.Sum32()%hashDimensions]++
	}
	return vec, nil
}

// EmbedBatch embeds each text independently.
func (e HashEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, t := range texts {
		vec, err := e.Embed(ctx, t)
		if err != nil {
			return nil, err
		}
		out[i] = vec
	}
	return out, nil
}

// Dimensions returns the dimensionality of the embeddings.
func (HashEmbedder) Dimensions() int { return hashDimensions }

// Model returns the name of the embedding model being used.
func (HashEmbedder) Model() string { return "token-hash" }

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

var _ Embedder = HashEmbedder{}
