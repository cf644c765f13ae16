package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/simonindia/office-assistant/internal/domain/entities"
	"github.com/simonindia/office-assistant/internal/domain/providers"
	apperrors "github.com/simonindia/office-assistant/pkg/errors"
)

const (
	summaryPromptFormat = "Summarize this email in one short line (<=20 words). " +
		"Output only the summary sentence, no prefixes or labels.\n\n" +
		"Subject: %s\nBodyPreview: %s"

	// fallbackPreviewChars caps the body preview used when the model
	// fails or returns nothing.
	fallbackPreviewChars = 160

	receivedTimeFormat = "2006-01-02 03:04 PM"
)

// graphMessage is the subset of a provider message the snapshot needs.
type graphMessage struct {
	ID      string `json:"id"`
	Subject string `json:"subject"`
	From    struct {
		EmailAddress struct {
			Name string `json:"name"`
		} `json:"emailAddress"`
	} `json:"from"`
	ReceivedDateTime string `json:"receivedDateTime"`
	BodyPreview      string `json:"bodyPreview"`
}

// SnapshotService condenses a mail window into one-line summaries plus
// a joined digest. Messages are summarized sequentially, one model
// call each.
type SnapshotService struct {
	mail     providers.MailProvider
	model    providers.TextModelProvider
	location *time.Location
}

// NewSnapshotService creates a new snapshot service. A nil model means
// the text model is not configured; Snapshot reports that as a
// configuration error.
func NewSnapshotService(mail providers.MailProvider, model providers.TextModelProvider, location *time.Location) *SnapshotService {
	return &SnapshotService{
		mail:     mail,
		model:    model,
		location: location,
	}
}

// Snapshot fetches the window's mail and summarizes each message with
// a non-empty subject. A failed or empty model reply falls back to the
// truncated body preview; the message is never dropped for that.
func (s *SnapshotService) Snapshot(ctx context.Context, token string, window providers.Window) (*entities.InboxSnapshot, error) {
	if s.model == nil {
		return nil, apperrors.NewConfigurationError("GEMINI_API_KEY is not configured on the server.")
	}

	raw, err := s.mail.ListMailWindow(ctx, token, window)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Value []graphMessage `json:"value"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, apperrors.NewInternalError("failed to decode mail payload", err)
	}

	lines := []string{}
	items := []entities.InboxItem{}
	for _, m := range payload.Value {
		subject := strings.TrimSpace(m.Subject)
		if subject == "" {
			continue
		}
		preview := strings.ReplaceAll(strings.TrimSpace(m.BodyPreview), "\n", " ")
		sender := strings.TrimSpace(m.From.EmailAddress.Name)
		received := s.normalizeReceived(strings.TrimSpace(m.ReceivedDateTime))

		summary := s.summarize(ctx, subject, preview)
		lines = append(lines, fmt.Sprintf("%s — %s (%s, %s)", subject, summary, sender, received))
		items = append(items, entities.InboxItem{
			ID:       strings.TrimSpace(m.ID),
			Subject:  subject,
			Sender:   sender,
			Received: received,
			Summary:  summary,
		})
	}

	return &entities.InboxSnapshot{
		Snapshot: strings.Join(lines, "\n"),
		Items:    items,
	}, nil
}

func (s *SnapshotService) summarize(ctx context.Context, subject, preview string) string {
	line, err := s.model.GenerateText(ctx, fmt.Sprintf(summaryPromptFormat, subject, preview))
	line = strings.TrimSpace(line)
	if err != nil || line == "" {
		return strings.TrimSpace(truncate(preview, fallbackPreviewChars))
	}
	return line
}

// normalizeReceived renders a provider timestamp in the service's
// timezone. Unparseable values pass through untouched.
func (s *SnapshotService) normalizeReceived(raw string) string {
	if raw == "" {
		return raw
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		// Offset-less timestamps are taken as UTC.
		t, err = time.ParseInLocation("2006-01-02T15:04:05", raw, time.UTC)
		if err != nil {
			return raw
		}
	}
	return t.In(s.location).Format(receivedTimeFormat)
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
