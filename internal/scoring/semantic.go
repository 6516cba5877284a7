package scoring

import (
	"context"
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const (
	embeddingModel = "text-embedding-004"

	// maxSemanticInput caps how much of each document is embedded or
	// vectorized for the semantic sub-score.
	maxSemanticInput = 1000
)

// SimilarityStrategy measures how close two texts are, on a 0..1 scale.
// The concrete strategy is chosen once at scorer construction and never
// re-checked per call.
type SimilarityStrategy interface {
	Similarity(ctx context.Context, a, b string) (float64, error)
	Name() string
}

// NewSimilarityStrategy returns the embedding-backed strategy when an API
// key is available and the TF-IDF fallback otherwise.
func NewSimilarityStrategy(ctx context.Context, apiKey string) (SimilarityStrategy, error) {
	if apiKey == "" {
		return TFIDFSimilarity{}, nil
	}
	return NewEmbeddingSimilarity(ctx, apiKey)
}

// TFIDFSimilarity is the offline fallback: cosine similarity over TF-IDF
// vectors computed from just the two input documents.
type TFIDFSimilarity struct{}

func (TFIDFSimilarity) Name() string { return "tfidf" }

func (TFIDFSimilarity) Similarity(_ context.Context, a, b string) (float64, error) {
	return tfidfSimilarity(truncate(a), truncate(b)), nil
}

// EmbeddingSimilarity uses Gemini text embeddings.
type EmbeddingSimilarity struct {
	client *genai.Client
}

func NewEmbeddingSimilarity(ctx context.Context, apiKey string) (*EmbeddingSimilarity, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("creating embedding client: %w", err)
	}
	return &EmbeddingSimilarity{client: client}, nil
}

func (e *EmbeddingSimilarity) Name() string { return "embeddings" }

func (e *EmbeddingSimilarity) Similarity(ctx context.Context, a, b string) (float64, error) {
	vecA, err := e.embed(ctx, truncate(a))
	if err != nil {
		return 0, err
	}
	vecB, err := e.embed(ctx, truncate(b))
	if err != nil {
		return 0, err
	}
	return cosine32(vecA, vecB), nil
}

func (e *EmbeddingSimilarity) embed(ctx context.Context, text string) ([]float32, error) {
	em := e.client.EmbeddingModel(embeddingModel)
	res, err := em.EmbedContent(ctx, genai.Text(text))
	if err != nil {
		return nil, fmt.Errorf("embedding text: %w", err)
	}
	if res.Embedding == nil || len(res.Embedding.Values) == 0 {
		return nil, fmt.Errorf("embedding response empty")
	}
	return res.Embedding.Values, nil
}

// Close releases the underlying API client.
func (e *EmbeddingSimilarity) Close() error {
	return e.client.Close()
}

// truncate caps the embedding input, backing off to a rune boundary so
// multi-byte characters are never split.
func truncate(s string) string {
	if len(s) <= maxSemanticInput {
		return s
	}
	cut := maxSemanticInput
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

func cosine32(a, b []float32) float64 {
	if len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	sim := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	if sim < 0 {
		return 0
	}
	return sim
}
