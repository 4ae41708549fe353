package dialogue

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMatchVerdicts(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  Verdict
	}{
		{"plain yes", "yes", VerdictCorrect},
		{"yes with trailing words", "Yes, that is the same condition.", VerdictCorrect},
		{"plain no", "no", VerdictIncorrect},
		{"no with punctuation", "No.", VerdictIncorrect},
		{"plain partially", "partially", VerdictPartial},
		// "partially" wins even when the reply also hedges with other words.
		{"hedged partially", "Partially, it is in the right family.", VerdictPartial},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := &stubGateway{matchReply: tt.reply}
			m := NewMatcher(gw, zap.NewNop())
			got, err := m.Match(context.Background(), "pneumonia", "Community-acquired pneumonia")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatchUnrecognizedReplyIsAnError(t *testing.T) {
	gw := &stubGateway{matchReply: "that is difficult to judge"}
	m := NewMatcher(gw, zap.NewNop())
	_, err := m.Match(context.Background(), "diabetes", "Tuberculosis")
	assert.ErrorIs(t, err, ErrUnrecognizedVerdict)
}

func TestMatchGatewayFailurePropagates(t *testing.T) {
	gw := &stubGateway{generateErr: errors.New("model unavailable")}
	m := NewMatcher(gw, zap.NewNop())
	_, err := m.Match(context.Background(), "diabetes", "Tuberculosis")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnrecognizedVerdict)
}

func TestParseVerdict(t *testing.T) {
	v, err := parseVerdict("YES")
	require.NoError(t, err)
	assert.Equal(t, VerdictCorrect, v)

	v, err = parseVerdict("Partially.")
	require.NoError(t, err)
	assert.Equal(t, VerdictPartial, v)

	_, err = parseVerdict("maybe")
	assert.ErrorIs(t, err, ErrUnrecognizedVerdict)

	_, err = parseVerdict("")
	assert.ErrorIs(t, err, ErrUnrecognizedVerdict)
}
