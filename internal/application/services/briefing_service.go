package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/simonindia/office-assistant/internal/domain/entities"
	"github.com/simonindia/office-assistant/internal/domain/providers"
	"github.com/simonindia/office-assistant/internal/domain/repositories"
	apperrors "github.com/simonindia/office-assistant/pkg/errors"
)

const briefMemoryLimit = 10

const noCorrections = "No previous corrections available."

// BriefProtocol is the protocol slice of a brief request.
type BriefProtocol struct {
	Gov   bool   `json:"gov"`
	Intl  bool   `json:"intl"`
	Notes string `json:"notes"`
}

// BriefTimeSplit is the time-allocation slice of a brief request.
type BriefTimeSplit struct {
	BD       int `json:"BD"`
	Internal int `json:"Internal"`
	Strategy int `json:"Strategy"`
	Admin    int `json:"Admin"`
}

// BriefRequest is the client-supplied day snapshot a brief is
// synthesized from. Priorities, meetings and projects are embedded in
// the prompt as the raw JSON the client sent.
type BriefRequest struct {
	Date         string          `json:"date"`
	Priorities   json.RawMessage `json:"priorities"`
	InboxSummary string          `json:"inboxSummary"`
	Meetings     json.RawMessage `json:"meetings"`
	Projects     json.RawMessage `json:"projects"`
	Protocol     BriefProtocol   `json:"protocol"`
	TimeSplit    BriefTimeSplit  `json:"timeSplit"`
}

// BriefingService synthesizes a structured morning brief from a day
// snapshot with a single text-model call.
type BriefingService struct {
	memories repositories.LearningMemoryRepository
	model    providers.TextModelProvider
}

// NewBriefingService creates a new briefing service. A nil model means
// the text model is not configured; GenerateBrief reports that as a
// configuration error.
func NewBriefingService(memories repositories.LearningMemoryRepository, model providers.TextModelProvider) *BriefingService {
	return &BriefingService{
		memories: memories,
		model:    model,
	}
}

// GenerateBrief builds the synthesis prompt from the request and the
// newest stored corrections, runs one model call and slices the
// response into sections.
func (s *BriefingService) GenerateBrief(ctx context.Context, req BriefRequest) (*entities.BriefSections, error) {
	if s.model == nil {
		return nil, apperrors.NewConfigurationError("GEMINI_API_KEY is not configured on the server.")
	}

	memories, err := s.memories.List(ctx, "", briefMemoryLimit)
	if err != nil {
		return nil, err
	}

	response, err := s.model.GenerateText(ctx, buildBriefPrompt(req, memories))
	if err != nil {
		return nil, apperrors.NewExternalError(fmt.Sprintf("An error occurred with the AI model: %v", err), err)
	}

	sections := ParseSections(response)
	return &sections, nil
}

func buildBriefPrompt(req BriefRequest, memories []entities.LearningMemory) string {
	memoryContext := noCorrections
	if len(memories) > 0 {
		lines := make([]string, 0, len(memories))
		for _, m := range memories {
			lines = append(lines, fmt.Sprintf("Context: %s\nCorrection: %s", m.Context, m.Correction))
		}
		memoryContext = strings.Join(lines, "\n")
	}

	inboxSummary := req.InboxSummary
	if inboxSummary == "" {
		inboxSummary = "(none provided)"
	}

	return fmt.Sprintf(`SYSTEM
You are the AI Executive Assistant / Chief of Staff for the CEO of Simon India Limited i.e. Aashutosh Aggarwal. Optimize for clarity, brevity, anticipatory support, and diplomatic tone. Always output: {decisions_required, drafts, followups, risks, next_actions}.

LEARNING CONTEXT (CEO Corrections)
%s

CONTEXT
Date: %s
Top priorities: %s
Inbox summary: %s
Meetings: %s
Projects: %s
Protocol: gov=%v, intl=%v, notes=%s
Time-allocation target: BD %d%%, Internal %d%%, Strategy %d%%, Admin %d%%

TASKS
1) Produce a Morning CEO Brief (<=200 words)
2) Draft replies for critical emails (<=120 words each)
3) Create meeting briefs with bullets (context, last decisions, open issues, ask)
4) Update risk register suggestions

OUTPUT FORMAT
Please structure your response as follows:
BRIEF: [Your morning brief here]
DECISIONS_REQUIRED: [List of decisions needed]
DRAFTS: [Email drafts here]
FOLLOWUPS: [Follow-up actions]
RISKS: [Risk updates]
NEXT_ACTIONS: [Immediate next actions]`,
		memoryContext,
		req.Date,
		string(req.Priorities),
		inboxSummary,
		string(req.Meetings),
		string(req.Projects),
		req.Protocol.Gov, req.Protocol.Intl, req.Protocol.Notes,
		req.TimeSplit.BD, req.TimeSplit.Internal, req.TimeSplit.Strategy, req.TimeSplit.Admin,
	)
}
