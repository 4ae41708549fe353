package dialogue

import (
	"errors"
	"strings"
)

// Verdict is the matcher's judgement of a diagnosis guess.
type Verdict int

const (
	VerdictCorrect Verdict = iota
	VerdictIncorrect
	VerdictPartial
)

func (v Verdict) String() string {
	switch v {
	case VerdictCorrect:
		return "correct"
	case VerdictIncorrect:
		return "incorrect"
	case VerdictPartial:
		return "partial"
	}
	return "unknown"
}

// ErrUnrecognizedVerdict is returned when the matcher reply contains none
// of the expected tokens. There is no safe default: a guessed verdict could
// mark a wrong diagnosis as correct, so this propagates to the caller.
var ErrUnrecognizedVerdict = errors.New("dialogue: unrecognized diagnosis match verdict")

// parseVerdict resolves a raw matcher reply by substring containment,
// tolerant of extra words. "partially" is checked before "yes"/"no" so a
// hedged reply is never read as a flat answer.
func parseVerdict(raw string) (Verdict, error) {
	reply := strings.ToLower(raw)
	switch {
	case strings.Contains(reply, "partially"):
		return VerdictPartial, nil
	case strings.Contains(reply, "yes"):
		return VerdictCorrect, nil
	case strings.Contains(reply, "no"):
		return VerdictIncorrect, nil
	}
	return 0, ErrUnrecognizedVerdict
}
