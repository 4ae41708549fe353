package dialogue

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"diagnoseme/internal/encounter"
)

func promptCase() *encounter.Case {
	return &encounter.Case{
		Disease:   "Sarcoidosis",
		Narrative: "A 40-year-old presents with dry cough and bilateral hilar fullness on imaging.",
		History: []encounter.Turn{
			{Speaker: encounter.SpeakerUser, Text: "what brings you in today?"},
			{Speaker: encounter.SpeakerPatient, Text: "I've had this cough that won't go away."},
		},
	}
}

func TestClassifierPromptEmbedsUtteranceAndCategories(t *testing.T) {
	p := classifierPrompt("lets see a tsh")
	assert.Contains(t, p, "lets see a tsh")
	for _, code := range []string{"A -", "B -", "C -", "D -", "E -", "F -", "G -"} {
		assert.Contains(t, p, code)
	}
	// The prompt must not leak any case data; it takes none as input.
	assert.True(t, strings.HasSuffix(p, "Assistant:"))
}

func TestPatientPromptCarriesNonDisclosureContract(t *testing.T) {
	p := patientPrompt("any allergies?", promptCase())
	assert.Contains(t, p, "Sarcoidosis")
	assert.Contains(t, p, "should not reveal or say the name of the disease")
	assert.Contains(t, p, "Be vague")
	assert.Contains(t, p, "parent or caretaker")
	assert.Contains(t, p, "what brings you in today?")
}

func TestLabsPromptScopesToRequestedTests(t *testing.T) {
	p := labsPrompt("cbc and bmp", promptCase())
	assert.Contains(t, p, LabMarker)
	assert.Contains(t, p, "Only give lab results that the user explicitly asked for")
	assert.Contains(t, p, "return normal results")
}

func TestExamPromptMatchesSpecificityToAsk(t *testing.T) {
	p := examPrompt("lung auscultation", promptCase())
	assert.Contains(t, p, ExamMarker)
	assert.Contains(t, p, "vague findings")
	assert.Contains(t, p, "detailed findings")
}

func TestOverbroadAndDisallowedPromptsCarryNoCaseData(t *testing.T) {
	cas := promptCase()
	for _, p := range []string{
		overbroadPrompt("full physical exam"),
		disallowedPrompt("start a new case"),
	} {
		assert.NotContains(t, p, cas.Disease)
		assert.NotContains(t, p, cas.Narrative)
	}
}

func TestGiveUpPromptIsTheDisclosurePath(t *testing.T) {
	p := giveUpPrompt(promptCase())
	assert.Contains(t, p, "Sarcoidosis")
	assert.Contains(t, p, RevealMarker)
	assert.Contains(t, p, "Reveal the diagnosis")
}

func TestFeedbackPromptReferencesTranscript(t *testing.T) {
	p := feedbackPrompt(promptCase())
	assert.Contains(t, p, FeedbackMarker)
	assert.Contains(t, p, "one thing they did well")
	assert.Contains(t, p, "cough that won't go away")
}

func TestPartialPromptIsStricterThanIncorrect(t *testing.T) {
	cas := promptCase()
	partial := partialPrompt("granulomatous disease", cas)
	incorrect := incorrectPrompt("tuberculosis", cas)

	assert.Contains(t, partial, "Never say the name of the diagnosis")
	assert.NotContains(t, incorrect, "Never say the name of the diagnosis")
	assert.Contains(t, incorrect, "Let them know they are incorrect")
}

func TestFormatHistory(t *testing.T) {
	assert.Equal(t, "(no conversation yet)", formatHistory(nil))

	got := formatHistory(promptCase().History)
	assert.Contains(t, got, "user: what brings you in today?")
	assert.Contains(t, got, "patient: I've had this cough")
}
