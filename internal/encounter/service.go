package encounter

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"diagnoseme/internal/caselink"
)

// StartingAttempts is the advisory guess budget shown to the user. It is
// display state: running out does not lock the encounter.
const StartingAttempts = 2

// CaseGenerator produces (or fetches from cache) the narrative vignette for
// a disease.
type CaseGenerator interface {
	Generate(ctx context.Context, diseaseName, details string) (string, error)
}

// DiseaseSelector picks the disease for a new standard encounter.
type DiseaseSelector interface {
	Select(ctx context.Context, userID string) string
}

// LinkCodec seals custom-case payloads into shareable tokens.
type LinkCodec interface {
	Encode(d caselink.CaseData) (string, error)
	Decode(token string) (caselink.CaseData, error)
}

// Notifier is told about community case submissions. Implemented by the
// report service (Telegram moderation channel).
type Notifier interface {
	NotifyCaseSubmitted(ctx context.Context, diseaseName, shareURL string) error
}

type Service interface {
	Start(ctx context.Context, userID string) (*Snapshot, error)
	StartCustom(ctx context.Context, diseaseName, details string) (*Snapshot, error)
	Ask(ctx context.Context, id uuid.UUID, question string, cas *Case) (*Reply, error)
	SubmitCase(ctx context.Context, data caselink.CaseData) (string, error)
	CaseFromToken(token string) (*Case, error)
}

type service struct {
	dialogue     Dialogue
	generator    CaseGenerator
	selector     DiseaseSelector
	codec        LinkCodec
	notifier     Notifier
	repo         Repository
	shareBaseURL string
	log          *zap.Logger
}

func NewService(dialogue Dialogue, generator CaseGenerator, selector DiseaseSelector,
	codec LinkCodec, notifier Notifier, repo Repository, shareBaseURL string, log *zap.Logger) Service {
	return &service{
		dialogue:     dialogue,
		generator:    generator,
		selector:     selector,
		codec:        codec,
		notifier:     notifier,
		repo:         repo,
		shareBaseURL: shareBaseURL,
		log:          log,
	}
}

// Start begins a fresh encounter for the user: pick a disease they have not
// played today, generate or fetch its case, and hand back the initial state.
func (s *service) Start(ctx context.Context, userID string) (*Snapshot, error) {
	diseaseName := s.selector.Select(ctx, userID)
	narrative, err := s.generator.Generate(ctx, diseaseName, "")
	if err != nil {
		return nil, err
	}

	snap := &Snapshot{
		ID: uuid.New(),
		Case: Case{
			Disease:           diseaseName,
			Narrative:         narrative,
			AttemptsRemaining: StartingAttempts,
			History:           []Turn{},
		},
		CreatedAt: time.Now(),
	}
	s.snapshot(ctx, snap.ID, &snap.Case)
	return snap, nil
}

// StartCustom begins an encounter from a shared case: the narrative is
// regenerated (or served from cache) around the author's description.
func (s *service) StartCustom(ctx context.Context, diseaseName, details string) (*Snapshot, error) {
	if diseaseName == "" {
		return nil, fmt.Errorf("no disease name provided")
	}
	narrative, err := s.generator.Generate(ctx, diseaseName, details)
	if err != nil {
		return nil, err
	}

	snap := &Snapshot{
		ID: uuid.New(),
		Case: Case{
			Disease:           diseaseName,
			Narrative:         narrative,
			AttemptsRemaining: StartingAttempts,
			History:           []Turn{},
			Custom:            true,
		},
		CreatedAt: time.Now(),
	}
	s.snapshot(ctx, snap.ID, &snap.Case)
	return snap, nil
}

// Ask routes one turn and applies the outcome to the case state. The
// history itself is accumulated by the client and posted back each turn;
// the service owns only the attempts counter and the completed flag.
func (s *service) Ask(ctx context.Context, id uuid.UUID, question string, cas *Case) (*Reply, error) {
	reply, err := s.dialogue.Route(ctx, question, cas)
	if err != nil {
		return nil, err
	}

	switch reply.Outcome {
	case OutcomeCorrectDiagnosis:
		cas.Completed = true
	case OutcomeIncorrectDiagnosis, OutcomePartialDiagnosis:
		if cas.AttemptsRemaining > 0 {
			cas.AttemptsRemaining--
		}
	case OutcomeGaveUp:
		// Giving up reveals the answer but leaves the encounter active;
		// only a correct diagnosis completes it.
	}

	s.snapshot(ctx, id, cas)
	return reply, nil
}

// SubmitCase warms the cache for a community-authored case and returns a
// shareable URL carrying the sealed case data.
func (s *service) SubmitCase(ctx context.Context, data caselink.CaseData) (string, error) {
	if data.Disease == "" {
		return "", fmt.Errorf("no disease name provided")
	}
	if _, err := s.generator.Generate(ctx, data.Disease, data.CaseDescription); err != nil {
		return "", err
	}
	token, err := s.codec.Encode(data)
	if err != nil {
		return "", err
	}
	shareURL := s.shareBaseURL + "/case/" + token

	if s.notifier != nil {
		if err := s.notifier.NotifyCaseSubmitted(ctx, data.Disease, shareURL); err != nil {
			s.log.Warn("case submission notice failed", zap.Error(err))
		}
	}
	s.log.Info("case submitted", zap.String("disease", data.Disease))
	return shareURL, nil
}

// CaseFromToken rebuilds the custom case context carried in a share link.
// The narrative holds the author's description until StartCustom generates
// the full vignette.
func (s *service) CaseFromToken(token string) (*Case, error) {
	data, err := s.codec.Decode(token)
	if err != nil {
		return nil, err
	}
	return &Case{
		Disease:           data.Disease,
		Narrative:         data.CaseDescription,
		AttemptsRemaining: StartingAttempts,
		History:           []Turn{},
		Custom:            true,
	}, nil
}

// snapshot persists the current state best-effort. Snapshots exist for
// review and reports; a storage failure must never fail a turn.
func (s *service) snapshot(ctx context.Context, id uuid.UUID, cas *Case) {
	if s.repo == nil || id == uuid.Nil {
		return
	}
	if err := s.repo.Save(ctx, &Snapshot{ID: id, Case: *cas}); err != nil {
		s.log.Warn("encounter snapshot failed", zap.Error(err))
	}
}
