package encounter

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"diagnoseme/internal/caselink"
)

// ReportBuilder renders an after-action report for a finished encounter.
type ReportBuilder interface {
	Build(cas Case) ([]byte, error)
}

type Handler struct {
	svc     Service
	reports ReportBuilder
	log     *zap.Logger
}

func NewHandler(svc Service, reports ReportBuilder, log *zap.Logger) *Handler {
	return &Handler{svc: svc, reports: reports, log: log}
}

// StreamEvent is one SSE frame on the /ask_llm stream.
type StreamEvent struct {
	Type string `json:"type"`
	Data string `json:"data"`
}

type askRequest struct {
	Question       string `json:"question"`
	EncounterID    string `json:"encounter_id,omitempty"`
	PatientContext *Case  `json:"patient_context"`
}

type startResponse struct {
	Message        string `json:"message"`
	EncounterID    string `json:"encounter_id"`
	PatientContext *Case  `json:"patient_context"`
}

// deviceID identifies the caller for the seen-disease store. The frontend
// sends a stable X-Device-ID; absent one, each start is a fresh player.
func deviceID(r *http.Request) string {
	if id := r.Header.Get("X-Device-ID"); id != "" {
		return id
	}
	return uuid.NewString()
}

func (h *Handler) StartGame(w http.ResponseWriter, r *http.Request) {
	snap, err := h.svc.Start(r.Context(), deviceID(r))
	if err != nil {
		h.log.Error("failed to start game", zap.Error(err))
		http.Error(w, "Failed to start the game", http.StatusInternalServerError)
		return
	}
	writeJSON(w, startResponse{
		Message:        "Game started",
		EncounterID:    snap.ID.String(),
		PatientContext: &snap.Case,
	})
}

func (h *Handler) AskLLM(w http.ResponseWriter, r *http.Request) {
	var req askRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if req.PatientContext == nil || req.Question == "" {
		http.Error(w, "Missing question or patient_context", http.StatusBadRequest)
		return
	}
	// Encounter ID is optional; without it the turn is simply not snapshotted.
	encID, _ := uuid.Parse(req.EncounterID)

	reply, err := h.svc.Ask(r.Context(), encID, req.Question, req.PatientContext)
	if err != nil {
		h.log.Error("failed to route turn", zap.Error(err))
		http.Error(w, "Could not evaluate that, please try again", http.StatusBadGateway)
		return
	}

	if !reply.Streaming() {
		writeJSON(w, map[string]interface{}{
			"response":        reply.Text,
			"patient_context": req.PatientContext,
		})
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	for chunk := range reply.Stream {
		writeEvent(w, StreamEvent{Type: "chunk", Data: chunk})
		flusher.Flush()
		if r.Context().Err() != nil {
			// Client went away; stop forwarding. The gateway goroutine sees
			// the same cancellation and releases the model call.
			return
		}
	}

	ctxJSON, _ := json.Marshal(req.PatientContext)
	writeEvent(w, StreamEvent{Type: "context", Data: string(ctxJSON)})
	writeEvent(w, StreamEvent{Type: "done", Data: ""})
	flusher.Flush()
}

type submitCaseRequest struct {
	Disease     string `json:"disease"`
	Description string `json:"description"`
}

func (h *Handler) SubmitCase(w http.ResponseWriter, r *http.Request) {
	var req submitCaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if req.Disease == "" {
		writeJSONStatus(w, http.StatusBadRequest, map[string]interface{}{
			"success": false, "message": "No disease name provided.",
		})
		return
	}
	url, err := h.svc.SubmitCase(r.Context(), caseDataFrom(req))
	if err != nil {
		h.log.Error("failed to submit case", zap.Error(err))
		writeJSONStatus(w, http.StatusInternalServerError, map[string]interface{}{
			"success": false, "message": "Failed to submit the case.",
		})
		return
	}
	writeJSON(w, map[string]interface{}{"success": true, "url": url})
}

func (h *Handler) CustomCase(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")
	cas, err := h.svc.CaseFromToken(token)
	if err != nil {
		http.Error(w, "Error retrieving case", http.StatusBadRequest)
		return
	}
	writeJSON(w, map[string]interface{}{"custom_patient_context": cas})
}

type startCustomRequest struct {
	CustomPatientContext *Case `json:"custom_patient_context"`
}

func (h *Handler) StartCustomGame(w http.ResponseWriter, r *http.Request) {
	var req startCustomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.CustomPatientContext == nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	cc := req.CustomPatientContext
	snap, err := h.svc.StartCustom(r.Context(), cc.Disease, cc.Narrative)
	if err != nil {
		h.log.Error("failed to start custom game", zap.Error(err))
		http.Error(w, "Failed to start the game", http.StatusInternalServerError)
		return
	}
	writeJSON(w, startResponse{
		Message:        "Game started",
		EncounterID:    snap.ID.String(),
		PatientContext: &snap.Case,
	})
}

func (h *Handler) ClearHistory(w http.ResponseWriter, r *http.Request) {
	snap, err := h.svc.Start(r.Context(), deviceID(r))
	if err != nil {
		h.log.Error("failed to reset game", zap.Error(err))
		writeJSONStatus(w, http.StatusInternalServerError, map[string]interface{}{
			"success": false, "message": "Failed to reset the game.",
		})
		return
	}
	writeJSON(w, map[string]interface{}{
		"success":         true,
		"message":         "Game history cleared.",
		"encounter_id":    snap.ID.String(),
		"patient_context": &snap.Case,
	})
}

type reportRequest struct {
	PatientContext *Case `json:"patient_context"`
}

// Report renders the after-action PDF. Only completed encounters qualify:
// the report names the disease, so serving it early would leak the answer.
func (h *Handler) Report(w http.ResponseWriter, r *http.Request) {
	var req reportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.PatientContext == nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if !req.PatientContext.Completed {
		http.Error(w, "Encounter is not completed yet", http.StatusConflict)
		return
	}
	pdf, err := h.reports.Build(*req.PatientContext)
	if err != nil {
		h.log.Error("failed to build report", zap.Error(err))
		http.Error(w, "Failed to build the report", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="encounter_report.pdf"`)
	w.Write(pdf)
}

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/start_game", h.StartGame)
	r.Post("/ask_llm", h.AskLLM)
	r.Post("/submit_case", h.SubmitCase)
	r.Get("/case/{token}", h.CustomCase)
	r.Post("/start_custom_game", h.StartCustomGame)
	r.Post("/clear_history", h.ClearHistory)
	r.Post("/report", h.Report)
}

func caseDataFrom(req submitCaseRequest) caselink.CaseData {
	return caselink.CaseData{Disease: req.Disease, CaseDescription: req.Description}
}

func writeEvent(w http.ResponseWriter, ev StreamEvent) {
	data, _ := json.Marshal(ev)
	fmt.Fprintf(w, "data: %s\n\n", data)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	writeJSONStatus(w, http.StatusOK, v)
}

func writeJSONStatus(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
