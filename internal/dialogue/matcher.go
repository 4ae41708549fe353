package dialogue

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"diagnoseme/internal/llm"
)

// Matcher judges whether a user's guess names the case's true diagnosis.
type Matcher struct {
	gw  llm.Client
	log *zap.Logger
}

func NewMatcher(gw llm.Client, log *zap.Logger) *Matcher {
	return &Matcher{gw: gw, log: log}
}

// Match compares a guess against the true diagnosis. Unlike classification
// there is no safe fallback here: an unrecognized reply is an error, since
// defaulting could let a wrong diagnosis win the game.
func (m *Matcher) Match(ctx context.Context, guess, truth string) (Verdict, error) {
	reply, err := m.gw.Generate(ctx, matchPrompt(guess, truth), llm.TierStandard)
	if err != nil {
		return 0, fmt.Errorf("diagnosis match call failed: %w", err)
	}
	verdict, err := parseVerdict(reply)
	if err != nil {
		m.log.Error("diagnosis match reply had no recognizable verdict",
			zap.String("reply", reply))
		return 0, err
	}
	return verdict, nil
}
