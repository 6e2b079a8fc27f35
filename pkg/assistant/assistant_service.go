package assistant

import (
	"Cookshare-Backend/domain"
	"context"
	"strings"
)

const systemInstructions = "You are a friendly cooking assistant. " +
	"Answer questions about the recipe the user is cooking: substitutions, " +
	"technique, timing, and serving. Keep answers short and practical."

type (
	AssistantService interface {
		Guide(ctx context.Context, req domain.GuideRequest) domain.GuideResponse
	}

	assistantService struct {
		client Client
	}
)

func NewAssistantService(client Client) AssistantService {
	return &assistantService{client: client}
}

// Guide never fails the request: provider trouble degrades to a canned
// reply with the error surfaced alongside it.
func (s *assistantService) Guide(ctx context.Context, req domain.GuideRequest) domain.GuideResponse {
	userText := strings.TrimSpace(req.UserText)
	if userText == "" {
		return domain.GuideResponse{Reply: domain.ReplyEmptyUserText}
	}

	if !s.client.Enabled() {
		return domain.GuideResponse{Reply: domain.ReplyAssistantOff}
	}

	var sb strings.Builder
	if title := strings.TrimSpace(req.RecipeTitle); title != "" {
		sb.WriteString("Recipe: " + title + "\n")
	}
	if contextText := strings.TrimSpace(req.ContextText); contextText != "" {
		sb.WriteString("Context:\n" + contextText + "\n")
	}
	sb.WriteString("Question: " + userText)

	reply, err := s.client.Respond(ctx, systemInstructions, sb.String())
	if err != nil {
		return domain.GuideResponse{Reply: domain.ReplyAssistantError, Error: err.Error()}
	}
	return domain.GuideResponse{Reply: reply}
}
