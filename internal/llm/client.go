package llm

import "context"

// Tier selects which underlying model a call uses. Standard is the cheap
// conversational model; Advanced is reserved for outputs that must be
// clinically precise (lab reports, exam findings, feedback, postgame).
type Tier string

const (
	TierStandard Tier = "standard"
	TierAdvanced Tier = "advanced"
)

// Client is the only surface the dialogue engine uses to reach a language
// model. Generate is a blocking single-shot call. GenerateStream returns a
// channel of text chunks that is closed when the model finishes or the
// context is cancelled; the sequence is not restartable.
type Client interface {
	Generate(ctx context.Context, prompt string, tier Tier) (string, error)
	GenerateStream(ctx context.Context, prompt string, tier Tier) (<-chan string, error)
}
