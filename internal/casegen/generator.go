package casegen

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"diagnoseme/internal/caselink"
	"diagnoseme/internal/llm"
)

// Generator produces the clinical vignette for a disease, caching results
// in redis so the same case (disease + optional author description) is only
// ever generated once. Cached cases never expire; the pool is small and the
// narratives are expensive to produce.
type Generator struct {
	gw    llm.Client
	cache *redis.Client
	log   *zap.Logger
}

func NewGenerator(gw llm.Client, cache *redis.Client, log *zap.Logger) *Generator {
	return &Generator{gw: gw, cache: cache, log: log}
}

func cacheKey(data caselink.CaseData) string {
	return "case:" + caselink.Canonical(data)
}

// Generate returns the case narrative for the given disease, generating and
// caching it on first use. details is the author-written description for
// custom cases; empty for standard ones.
func (g *Generator) Generate(ctx context.Context, diseaseName, details string) (string, error) {
	data := caselink.CaseData{Disease: diseaseName, CaseDescription: details}
	key := cacheKey(data)

	cached, err := g.cache.Get(ctx, key).Result()
	if err == nil {
		g.log.Info("case cache hit", zap.String("disease", diseaseName))
		return cached, nil
	}
	if !errors.Is(err, redis.Nil) {
		g.log.Warn("case cache read failed, generating fresh", zap.Error(err))
	}

	narrative, err := g.gw.Generate(ctx, casePrompt(diseaseName, details), llm.TierAdvanced)
	if err != nil {
		return "", fmt.Errorf("case generation failed: %w", err)
	}
	if err := g.cache.Set(ctx, key, narrative, 0).Err(); err != nil {
		g.log.Warn("case cache write failed", zap.Error(err))
	}
	return narrative, nil
}

// casePrompt asks for a full vignette the routing strategies can draw on.
// The narrative itself must not name the disease: it is shown to the user
// as the presenting picture.
func casePrompt(diseaseName, details string) string {
	prompt := fmt.Sprintf(
		"You are an expert medical educator writing a clinical case for a diagnostic reasoning game. "+
			"Write a complete patient case for the following disease: %s. "+
			"Include demographics, presenting complaint, history of present illness, relevant past medical, "+
			"family, and social history, and the underlying physical exam and lab abnormalities a clinician could uncover. "+
			"Write it as a narrative vignette a simulator can roleplay from. "+
			"Do not name the disease anywhere in the case text.",
		diseaseName,
	)
	if details != "" {
		prompt += fmt.Sprintf(" Incorporate these author-provided details into the case: %s.", details)
	}
	return prompt
}
