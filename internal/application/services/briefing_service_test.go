package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonindia/office-assistant/internal/application/services"
	"github.com/simonindia/office-assistant/internal/domain/entities"
	apperrors "github.com/simonindia/office-assistant/pkg/errors"
)

type stubMemoryRepo struct {
	memories []entities.LearningMemory
	err      error
}

func (s *stubMemoryRepo) List(ctx context.Context, category string, limit int) ([]entities.LearningMemory, error) {
	return s.memories, s.err
}

func (s *stubMemoryRepo) Create(ctx context.Context, memory *entities.LearningMemory) error {
	return nil
}

type stubTextModel struct {
	response string
	err      error
	prompts  []string
}

func (s *stubTextModel) GenerateText(ctx context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	return s.response, s.err
}

func TestGenerateBrief_NilModelIsConfigurationError(t *testing.T) {
	svc := services.NewBriefingService(&stubMemoryRepo{}, nil)

	_, err := svc.GenerateBrief(context.Background(), services.BriefRequest{})

	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrorTypeConfiguration, appErr.Type)
	assert.Equal(t, "GEMINI_API_KEY is not configured on the server.", appErr.Message)
}

func TestGenerateBrief_ParsesModelResponse(t *testing.T) {
	model := &stubTextModel{response: `BRIEF: Calm day ahead.
DECISIONS_REQUIRED: Approve budget.
DRAFTS: none
FOLLOWUPS: none
RISKS: none
NEXT_ACTIONS: Review inbox.`}
	svc := services.NewBriefingService(&stubMemoryRepo{}, model)

	sections, err := svc.GenerateBrief(context.Background(), services.BriefRequest{
		Date:         "2026-08-28",
		Priorities:   json.RawMessage(`["Close the MoU"]`),
		InboxSummary: "Two vendor mails",
	})

	require.NoError(t, err)
	assert.Equal(t, "Calm day ahead.", sections.Brief)
	assert.Equal(t, "Approve budget.", sections.DecisionsRequired)
	assert.Equal(t, "Review inbox.", sections.NextActions)
}

func TestGenerateBrief_PromptCarriesSnapshotAndCorrections(t *testing.T) {
	model := &stubTextModel{response: "BRIEF: ok\nDECISIONS_REQUIRED: none"}
	memories := &stubMemoryRepo{memories: []entities.LearningMemory{
		{Context: "Brief was too long", Correction: "Keep it under 150 words"},
	}}
	svc := services.NewBriefingService(memories, model)

	_, err := svc.GenerateBrief(context.Background(), services.BriefRequest{
		Date:       "2026-08-28",
		Priorities: json.RawMessage(`["Close the MoU"]`),
		Protocol:   services.BriefProtocol{Gov: true, Intl: false, Notes: "flags ready"},
		TimeSplit:  services.BriefTimeSplit{BD: 40, Internal: 35, Strategy: 15, Admin: 10},
	})

	require.NoError(t, err)
	require.Len(t, model.prompts, 1)
	prompt := model.prompts[0]
	assert.Contains(t, prompt, "Date: 2026-08-28")
	assert.Contains(t, prompt, `Top priorities: ["Close the MoU"]`)
	assert.Contains(t, prompt, "Inbox summary: (none provided)")
	assert.Contains(t, prompt, "Context: Brief was too long\nCorrection: Keep it under 150 words")
	assert.Contains(t, prompt, "Protocol: gov=true, intl=false, notes=flags ready")
	assert.Contains(t, prompt, "Time-allocation target: BD 40%, Internal 35%, Strategy 15%, Admin 10%")
	assert.NotContains(t, prompt, "No previous corrections available.")
}

func TestGenerateBrief_NoCorrectionsFallbackLine(t *testing.T) {
	model := &stubTextModel{response: "plain text"}
	svc := services.NewBriefingService(&stubMemoryRepo{}, model)

	_, err := svc.GenerateBrief(context.Background(), services.BriefRequest{Date: "2026-08-28"})

	require.NoError(t, err)
	require.Len(t, model.prompts, 1)
	assert.Contains(t, model.prompts[0], "No previous corrections available.")
}

func TestGenerateBrief_ModelFailureIsExternalError(t *testing.T) {
	model := &stubTextModel{err: errors.New("quota exceeded")}
	svc := services.NewBriefingService(&stubMemoryRepo{}, model)

	_, err := svc.GenerateBrief(context.Background(), services.BriefRequest{})

	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrorTypeExternal, appErr.Type)
	assert.Contains(t, appErr.Message, "An error occurred with the AI model")
	assert.Contains(t, appErr.Message, "quota exceeded")
}
