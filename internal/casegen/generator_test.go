package casegen

import (
	"context"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"diagnoseme/internal/llm"
)

type stubGateway struct {
	mu       sync.Mutex
	response string
	calls    int
}

func (s *stubGateway) Generate(_ context.Context, _ string, _ llm.Tier) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return s.response, nil
}

func (s *stubGateway) GenerateStream(_ context.Context, _ string, _ llm.Tier) (<-chan string, error) {
	panic("case generation never streams")
}

func newTestGenerator(t *testing.T, gw llm.Client) (*Generator, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewGenerator(gw, client, zap.NewNop()), mr
}

func TestGenerateCachesByCase(t *testing.T) {
	gw := &stubGateway{response: "A 62-year-old smoker presents with hemoptysis."}
	g, _ := newTestGenerator(t, gw)
	ctx := context.Background()

	first, err := g.Generate(ctx, "Tuberculosis", "")
	require.NoError(t, err)
	assert.Equal(t, gw.response, first)
	assert.Equal(t, 1, gw.calls)

	// Second request for the same case is served from cache.
	second, err := g.Generate(ctx, "Tuberculosis", "")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, gw.calls)
}

func TestGenerateDistinguishesCustomDetails(t *testing.T) {
	gw := &stubGateway{response: "vignette"}
	g, _ := newTestGenerator(t, gw)
	ctx := context.Background()

	_, err := g.Generate(ctx, "Asthma", "")
	require.NoError(t, err)
	_, err = g.Generate(ctx, "Asthma", "a competitive swimmer")
	require.NoError(t, err)

	// Same disease with different author details is a different case.
	assert.Equal(t, 2, gw.calls)
}

func TestGenerateSurvivesCacheOutage(t *testing.T) {
	gw := &stubGateway{response: "vignette"}
	g, mr := newTestGenerator(t, gw)
	mr.Close()

	got, err := g.Generate(context.Background(), "Malaria", "")
	require.NoError(t, err, "a cache outage must not block case generation")
	assert.Equal(t, "vignette", got)
}

func TestCasePromptNeverAsksToNameTheDisease(t *testing.T) {
	p := casePrompt("Lyme disease", "")
	assert.Contains(t, p, "Lyme disease")
	assert.Contains(t, p, "Do not name the disease anywhere in the case text")

	withDetails := casePrompt("Lyme disease", "an avid hiker from Connecticut")
	assert.Contains(t, withDetails, "an avid hiker from Connecticut")
}
