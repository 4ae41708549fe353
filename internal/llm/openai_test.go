package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestTierModelMapping(t *testing.T) {
	t.Setenv("OPENAI_MODEL_STANDARD", "")
	t.Setenv("OPENAI_MODEL_ADVANCED", "")

	c := NewOpenAIClient(zap.NewNop())
	assert.Equal(t, "gpt-4o-mini", c.model(TierStandard))
	assert.Equal(t, "gpt-4o", c.model(TierAdvanced))
}

func TestTierModelsOverridableFromEnv(t *testing.T) {
	t.Setenv("OPENAI_MODEL_STANDARD", "gpt-4.1-mini")
	t.Setenv("OPENAI_MODEL_ADVANCED", "gpt-4.1")

	c := NewOpenAIClient(zap.NewNop())
	assert.Equal(t, "gpt-4.1-mini", c.model(TierStandard))
	assert.Equal(t, "gpt-4.1", c.model(TierAdvanced))
}
