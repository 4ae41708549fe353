package dialogue

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"diagnoseme/internal/encounter"
	"diagnoseme/internal/llm"
)

// Router is the top-level state machine for one turn. A completed case goes
// straight to the postgame clinician mode; an active case is classified and
// dispatched to the matching response strategy. The router never mutates
// the case; it signals outcomes through Reply.Outcome and leaves state
// changes to the encounter service.
type Router struct {
	gw         llm.Client
	classifier *Classifier
	matcher    *Matcher
	log        *zap.Logger
}

func NewRouter(gw llm.Client, log *zap.Logger) *Router {
	return &Router{
		gw:         gw,
		classifier: NewClassifier(gw, log),
		matcher:    NewMatcher(gw, log),
		log:        log,
	}
}

// Route answers one user utterance against the current case state. The only
// error it returns is an unrecognizable diagnosis-match verdict; every
// other failure degrades into a textual reply.
func (r *Router) Route(ctx context.Context, utterance string, cas *encounter.Case) (*encounter.Reply, error) {
	if cas.Completed {
		return r.stream(ctx, postgamePrompt(utterance, cas), llm.TierAdvanced, encounter.OutcomeNone), nil
	}

	intent := r.classifier.Classify(ctx, utterance)
	r.log.Info("routed turn", zap.Stringer("intent", intent))

	switch intent {
	case IntentLabRequest:
		return r.stream(ctx, labsPrompt(utterance, cas), llm.TierAdvanced, encounter.OutcomeNone), nil
	case IntentPhysicalExamRequest:
		return r.stream(ctx, examPrompt(utterance, cas), llm.TierAdvanced, encounter.OutcomeNone), nil
	case IntentDiagnosisAttempt:
		return r.submitDiagnosis(ctx, utterance, cas)
	case IntentGiveUp:
		return r.stream(ctx, giveUpPrompt(cas), llm.TierStandard, encounter.OutcomeGaveUp), nil
	case IntentDisallowedAction:
		return r.stream(ctx, disallowedPrompt(utterance), llm.TierStandard, encounter.OutcomeNone), nil
	case IntentOverbroadExamRequest:
		return r.stream(ctx, overbroadPrompt(utterance), llm.TierStandard, encounter.OutcomeNone), nil
	default:
		return r.stream(ctx, patientPrompt(utterance, cas), llm.TierStandard, encounter.OutcomeNone), nil
	}
}

// submitDiagnosis runs the matcher and picks one of the three sub-responses.
// A matcher error is the one hard failure the router surfaces.
func (r *Router) submitDiagnosis(ctx context.Context, utterance string, cas *encounter.Case) (*encounter.Reply, error) {
	verdict, err := r.matcher.Match(ctx, utterance, cas.Disease)
	if err != nil {
		return nil, err
	}
	switch verdict {
	case VerdictCorrect:
		return r.stream(ctx, feedbackPrompt(cas), llm.TierAdvanced, encounter.OutcomeCorrectDiagnosis), nil
	case VerdictPartial:
		return r.stream(ctx, partialPrompt(utterance, cas), llm.TierStandard, encounter.OutcomePartialDiagnosis), nil
	default:
		return r.stream(ctx, incorrectPrompt(utterance, cas), llm.TierStandard, encounter.OutcomeIncorrectDiagnosis), nil
	}
}

// stream issues a streaming generation call. If the call cannot start, the
// reply degrades to a plain error string so the turn still produces output.
func (r *Router) stream(ctx context.Context, prompt string, tier llm.Tier, outcome encounter.Outcome) *encounter.Reply {
	ch, err := r.gw.GenerateStream(ctx, prompt, tier)
	if err != nil {
		r.log.Error("generation call failed", zap.Error(err))
		return &encounter.Reply{
			Text:    fmt.Sprintf("Error communicating with LLM: %v", err),
			Outcome: outcome,
		}
	}
	return &encounter.Reply{Stream: ch, Outcome: outcome}
}
