package dialogue

// Intent is the router's classification of what a turn is trying to do.
// It is a closed set: anything the classifier cannot place lands on
// IntentPatientQuestion.
type Intent int

const (
	IntentPatientQuestion Intent = iota
	IntentLabRequest
	IntentPhysicalExamRequest
	IntentDiagnosisAttempt
	IntentGiveUp
	IntentDisallowedAction
	IntentOverbroadExamRequest
)

func (i Intent) String() string {
	switch i {
	case IntentPatientQuestion:
		return "patient_question"
	case IntentLabRequest:
		return "lab_request"
	case IntentPhysicalExamRequest:
		return "physical_exam_request"
	case IntentDiagnosisAttempt:
		return "diagnosis_attempt"
	case IntentGiveUp:
		return "give_up"
	case IntentDisallowedAction:
		return "disallowed_action"
	case IntentOverbroadExamRequest:
		return "overbroad_exam_request"
	}
	return "unknown"
}

// intentByCode maps the single-letter codes the classifier prompt asks for
// onto intents. All string matching against model output is confined to
// parseIntentCode.
var intentByCode = map[string]Intent{
	"A": IntentPatientQuestion,
	"B": IntentLabRequest,
	"C": IntentPhysicalExamRequest,
	"D": IntentDiagnosisAttempt,
	"E": IntentGiveUp,
	"F": IntentDisallowedAction,
	"G": IntentOverbroadExamRequest,
}

// parseIntentCode normalizes a raw classifier reply (strip everything that
// is not a letter, upper-case) and resolves it to an intent. The second
// return is false when the reply was not a recognized code and the default
// was used.
func parseIntentCode(raw string) (Intent, bool) {
	code := make([]rune, 0, len(raw))
	for _, r := range raw {
		if r >= 'a' && r <= 'z' {
			code = append(code, r-'a'+'A')
		} else if r >= 'A' && r <= 'Z' {
			code = append(code, r)
		}
	}
	if intent, ok := intentByCode[string(code)]; ok {
		return intent, true
	}
	return IntentPatientQuestion, false
}
