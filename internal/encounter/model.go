package encounter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Speaker identifies who produced a turn in the encounter transcript.
type Speaker string

const (
	SpeakerUser    Speaker = "user"
	SpeakerPatient Speaker = "patient"
)

// Turn is one utterance in the transcript.
type Turn struct {
	Speaker Speaker `json:"speaker"`
	Text    string  `json:"text"`
}

// Case is the state of one simulated patient encounter. Disease and
// Narrative are fixed at creation; the service mutates the rest between
// turns. The JSON field names are part of the wire contract with the
// existing frontend (patient_context).
type Case struct {
	Disease           string `json:"disease"`
	Narrative         string `json:"case"`
	AttemptsRemaining int    `json:"attempts"`
	Completed         bool   `json:"completed"`
	History           []Turn `json:"history"`
	Custom            bool   `json:"custom,omitempty"`
}

// Snapshot is the persisted form of an encounter, used for after-action
// reports and review. It is best-effort state: a failed save never fails
// a turn.
type Snapshot struct {
	ID        uuid.UUID `json:"id"`
	Case      Case      `json:"case"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Outcome tells the caller what a diagnosis-bearing turn decided. The
// router only signals; the encounter service applies the state change
// (flipping Completed, decrementing attempts).
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeCorrectDiagnosis
	OutcomeIncorrectDiagnosis
	OutcomePartialDiagnosis
	OutcomeGaveUp
)

// Reply is the routed response for one turn. Exactly one of Text or Stream
// is set: streaming strategies deliver chunks over Stream (closed at end of
// stream), single-shot strategies fill Text.
type Reply struct {
	Text    string
	Stream  <-chan string
	Outcome Outcome
}

// Streaming reports whether the reply is a chunk sequence.
func (r *Reply) Streaming() bool { return r.Stream != nil }

// Dialogue routes one user utterance against the current case state.
// Implemented by the dialogue package; declared here so the service depends
// only on the behaviour it needs.
type Dialogue interface {
	Route(ctx context.Context, utterance string, cas *Case) (*Reply, error)
}
