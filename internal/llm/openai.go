package llm

import (
	"context"
	"errors"
	"io"
	"os"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// OpenAIClient calls the OpenAI chat completion API. Model names for the two
// tiers are loaded from environment variables with sensible defaults.
type OpenAIClient struct {
	client        *openai.Client
	standardModel string
	advancedModel string
	log           *zap.Logger
}

// NewOpenAIClient constructs an OpenAI-backed gateway. It reads the API key
// and per-tier model names from the environment.
func NewOpenAIClient(log *zap.Logger) *OpenAIClient {
	apiKey := os.Getenv("OPENAI_API_KEY")
	c := openai.NewClient(apiKey)

	standard := os.Getenv("OPENAI_MODEL_STANDARD")
	if standard == "" {
		standard = "gpt-4o-mini"
	}
	advanced := os.Getenv("OPENAI_MODEL_ADVANCED")
	if advanced == "" {
		advanced = "gpt-4o"
	}

	return &OpenAIClient{
		client:        c,
		standardModel: standard,
		advancedModel: advanced,
		log:           log,
	}
}

func (c *OpenAIClient) model(tier Tier) string {
	if tier == TierAdvanced {
		return c.advancedModel
	}
	return c.standardModel
}

// Generate sends a single prompt and returns the full completion text.
func (c *OpenAIClient) Generate(ctx context.Context, prompt string, tier Tier) (string, error) {
	if c.client == nil {
		return "", errors.New("openai client not initialized")
	}
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model(tier),
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.2,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}

// GenerateStream sends a single prompt and returns a channel of completion
// chunks. The channel is closed once the model signals end of stream, an
// error occurs, or ctx is cancelled.
func (c *OpenAIClient) GenerateStream(ctx context.Context, prompt string, tier Tier) (<-chan string, error) {
	if c.client == nil {
		return nil, errors.New("openai client not initialized")
	}
	stream, err := c.client.CreateChatCompletionStream(ctx, openai.ChatCompletionRequest{
		Model: c.model(tier),
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.2,
	})
	if err != nil {
		return nil, err
	}

	out := make(chan string)
	go func() {
		defer close(out)
		defer stream.Close()
		for {
			resp, err := stream.Recv()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				c.log.Warn("completion stream ended early", zap.Error(err))
				return
			}
			if len(resp.Choices) == 0 {
				continue
			}
			chunk := resp.Choices[0].Delta.Content
			if chunk == "" {
				continue
			}
			select {
			case out <- chunk:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}
