package services

import (
	"strings"

	"github.com/simonindia/office-assistant/internal/domain/entities"
)

// Section markers the model is instructed to emit, in order.
const (
	markerBrief       = "BRIEF"
	markerDecisions   = "DECISIONS_REQUIRED:"
	markerDrafts      = "DRAFTS:"
	markerFollowups   = "FOLLOWUPS:"
	markerRisks       = "RISKS:"
	markerNextActions = "NEXT_ACTIONS:"
)

// ParseSections slices a model response into its named sections. Each
// section is the text after the first occurrence of its marker, cut at
// the first occurrence of the next marker. An absent marker yields an
// empty section. The brief is the whole response unless both BRIEF and
// DECISIONS_REQUIRED appear; a colon directly after BRIEF is stripped
// only when one occurs before DECISIONS_REQUIRED. Responses with
// out-of-order or duplicated markers produce overlapping slices; the
// parser does not validate marker order.
func ParseSections(text string) entities.BriefSections {
	sections := entities.BriefSections{
		Brief:             text,
		DecisionsRequired: sliceSection(text, markerDecisions, markerDrafts),
		Drafts:            sliceSection(text, markerDrafts, markerFollowups),
		Followups:         sliceSection(text, markerFollowups, markerRisks),
		Risks:             sliceSection(text, markerRisks, markerNextActions),
		NextActions:       sliceSection(text, markerNextActions, ""),
	}

	if strings.Contains(text, markerBrief) && strings.Contains(text, "DECISIONS_REQUIRED") {
		_, after, _ := strings.Cut(text, markerBrief)
		head, _, _ := strings.Cut(after, "DECISIONS_REQUIRED")
		if strings.Contains(head, ":") {
			_, after, _ = strings.Cut(after, ":")
		}
		brief, _, _ := strings.Cut(after, "DECISIONS_REQUIRED")
		sections.Brief = strings.TrimSpace(brief)
	}
	return sections
}

// sliceSection returns the text between the first occurrence of marker
// and the first occurrence of next (or the end when next is empty or
// absent), trimmed. Returns "" when marker is absent.
func sliceSection(text, marker, next string) string {
	_, after, found := strings.Cut(text, marker)
	if !found {
		return ""
	}
	if next != "" {
		after, _, _ = strings.Cut(after, next)
	}
	return strings.TrimSpace(after)
}
