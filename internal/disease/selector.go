package disease

import (
	"context"
	"hash/fnv"
	"math/rand"
	"time"

	"go.uber.org/zap"
)

// SeenStore tracks which diseases a user has already played, so repeat
// visitors within the same day are not dealt the same case twice. Entries
// expire on their own; the selector never deletes.
type SeenStore interface {
	Seen(ctx context.Context, userID string) (map[string]bool, error)
	MarkSeen(ctx context.Context, userID, disease string) error
}

// Selector picks the disease for a new encounter. The base pick is
// deterministic by calendar date (everyone in the world shares a daily
// disease); the seen store shifts users who already played it onto the next
// unseen disease in that day's shuffle.
type Selector struct {
	pool []string
	seen SeenStore
	log  *zap.Logger
	now  func() time.Time
}

func NewSelector(seen SeenStore, log *zap.Logger) *Selector {
	return &Selector{pool: Diseases, seen: seen, log: log, now: time.Now}
}

// The day boundary follows UTC-10, the last timezone to roll over, so the
// daily disease changes only after every region has finished its day.
var dayBoundary = time.FixedZone("UTC-10", -10*60*60)

// dailyOrder returns the pool shuffled deterministically for today's date.
func (s *Selector) dailyOrder() []string {
	day := s.now().In(dayBoundary).Format("2006-01-02")
	h := fnv.New64a()
	h.Write([]byte(day))
	rng := rand.New(rand.NewSource(int64(h.Sum64())))

	order := make([]string, len(s.pool))
	copy(order, s.pool)
	rng.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})
	return order
}

// Daily returns today's disease without consulting the seen store.
func (s *Selector) Daily() string {
	return s.dailyOrder()[0]
}

// Select picks a disease for the given user: today's disease if they have
// not played it, otherwise the first unseen disease in today's shuffle.
// Store failures degrade to the daily pick; selection must never block a
// game from starting.
func (s *Selector) Select(ctx context.Context, userID string) string {
	order := s.dailyOrder()

	seen, err := s.seen.Seen(ctx, userID)
	if err != nil {
		s.log.Warn("seen-disease lookup failed, using daily pick", zap.Error(err))
		return order[0]
	}

	choice := order[0]
	for _, d := range order {
		if !seen[d] {
			choice = d
			break
		}
	}
	if err := s.seen.MarkSeen(ctx, userID, choice); err != nil {
		s.log.Warn("failed to mark disease as seen", zap.Error(err))
	}
	s.log.Info("selected disease", zap.String("disease", choice))
	return choice
}
