package dialogue

import (
	"context"

	"go.uber.org/zap"

	"diagnoseme/internal/llm"
)

// Classifier assigns an intent to a raw user utterance. It is deliberately
// stateless: the utterance alone decides the category.
type Classifier struct {
	gw  llm.Client
	log *zap.Logger
}

func NewClassifier(gw llm.Client, log *zap.Logger) *Classifier {
	return &Classifier{gw: gw, log: log}
}

// Classify routes an utterance to an intent. Classification failures never
// abort a turn: an unreachable model or an unrecognized reply both fall
// back to IntentPatientQuestion with a warning.
func (c *Classifier) Classify(ctx context.Context, utterance string) Intent {
	reply, err := c.gw.Generate(ctx, classifierPrompt(utterance), llm.TierStandard)
	if err != nil {
		c.log.Warn("intent classification call failed, defaulting to patient question",
			zap.Error(err))
		return IntentPatientQuestion
	}
	intent, ok := parseIntentCode(reply)
	if !ok {
		c.log.Warn("unrecognized intent code, defaulting to patient question",
			zap.String("reply", reply))
	}
	return intent
}
