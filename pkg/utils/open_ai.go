package utils

import (
	"context"
	"fmt"
	"os"

	"github.com/pgvector/pgvector-go"
	openai "github.com/sashabaranov/go-openai"
)

type EmbeddingClientInterface interface {
	GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error)
}

type OpenAIEmbeddingClient struct {
	client *openai.Client
	model  openai.EmbeddingModel
}

func NewOpenAIEmbeddingClient() EmbeddingClientInterface {
	return &OpenAIEmbeddingClient{
		client: openai.NewClient(os.Getenv("OPENAI_API_KEY")),
		model:  openai.SmallEmbedding3, // "text-embedding-3-small"
	}
}

func (c *OpenAIEmbeddingClient) GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	resp, err := c.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: []string{text},
		Model: c.model,
	})
	if err != nil {
		return pgvector.Vector{}, fmt.Errorf("create embeddings: %w", err)
	}
	if len(resp.Data) == 0 {
		return pgvector.Vector{}, fmt.Errorf("%w: empty embedding response", ErrUnexpectedAIOutput)
	}
	return pgvector.NewVector(resp.Data[0].Embedding), nil
}
