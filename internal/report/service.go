package report

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/signintech/gopdf"
	"go.uber.org/zap"

	"diagnoseme/internal/encounter"
)

type TelegramClient interface {
	SendMessage(chatID int64, text string) error
}

// Service renders after-action PDF reports for completed encounters and
// posts community case submissions to a moderation chat.
type Service struct {
	tgClient        TelegramClient
	moderatorChatID int64
	log             *zap.Logger
}

func NewService(tg TelegramClient, moderatorChatID int64, log *zap.Logger) *Service {
	return &Service{
		tgClient:        tg,
		moderatorChatID: moderatorChatID,
		log:             log,
	}
}

// Build renders the encounter transcript and resolution into a PDF. Only
// called for completed encounters, so naming the disease here is fine.
func (s *Service) Build(cas encounter.Case) ([]byte, error) {
	pdf := gopdf.GoPdf{}
	pdf.Start(gopdf.Config{PageSize: *gopdf.PageSizeA4})
	pdf.AddPage()

	// Try multiple common paths for Alpine and Debian images.
	fontPaths := []string{
		"/usr/share/fonts/ttf-dejavu/DejaVuSans.ttf",
		"/usr/share/fonts/dejavu/DejaVuSans.ttf",
		"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	}

	var fontErr error
	fontLoaded := false
	for _, path := range fontPaths {
		if err := pdf.AddTTFFont("DejaVu", path); err == nil {
			fontLoaded = true
			break
		} else {
			fontErr = err
		}
	}
	if !fontLoaded {
		return nil, fmt.Errorf("failed to load font for PDF. Please ensure ttf-dejavu is installed. Last error: %w", fontErr)
	}

	if err := pdf.SetFont("DejaVu", "", 20); err != nil {
		return nil, err
	}
	pdf.Cell(nil, "Encounter Report")
	pdf.Br(30)

	if err := pdf.SetFont("DejaVu", "", 12); err != nil {
		return nil, err
	}
	pdf.Cell(nil, fmt.Sprintf("Date: %s", time.Now().Format("02.01.2006 15:04")))
	pdf.Br(15)
	pdf.Cell(nil, fmt.Sprintf("Diagnosis: %s", cas.Disease))
	pdf.Br(15)
	pdf.Cell(nil, fmt.Sprintf("Guesses remaining: %d", cas.AttemptsRemaining))
	pdf.Br(15)
	if cas.Custom {
		pdf.Cell(nil, "Community-authored case")
		pdf.Br(15)
	}
	pdf.Br(10)

	if err := pdf.SetFont("DejaVu", "", 14); err != nil {
		return nil, err
	}
	pdf.Cell(nil, "Transcript:")
	pdf.Br(15)

	if err := pdf.SetFont("DejaVu", "", 11); err != nil {
		return nil, err
	}
	if len(cas.History) == 0 {
		pdf.Cell(nil, "- No questions were asked.")
		pdf.Br(15)
	}
	for _, turn := range cas.History {
		line := fmt.Sprintf("[%s] %s", turn.Speaker, turn.Text)
		lines, _ := pdf.SplitText(line, 500)
		for _, l := range lines {
			pdf.Cell(nil, l)
			pdf.Br(12)
		}
		pdf.Br(5)
	}

	var buf bytes.Buffer
	if _, err := pdf.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// NotifyCaseSubmitted posts a community case submission to the moderation
// chat so shared cases get a human look before they circulate.
func (s *Service) NotifyCaseSubmitted(ctx context.Context, diseaseName, shareURL string) error {
	if s.tgClient == nil || s.moderatorChatID == 0 {
		s.log.Debug("moderation chat not configured, skipping notice")
		return nil
	}
	text := fmt.Sprintf("New community case submitted.\nDisease: %s\nLink: %s", diseaseName, shareURL)
	return s.tgClient.SendMessage(s.moderatorChatID, text)
}
