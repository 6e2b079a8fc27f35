package domain

var (
	MessageSuccessGuide = "success get cooking guidance"

	ReplyEmptyUserText  = "Say that again? I didn't catch anything."
	ReplyAssistantError = "AI is having a moment. Try again."
	ReplyAssistantOff   = "AI is disabled right now."
)

type (
	GuideRequest struct {
		UserText    string `json:"user_text"`
		RecipeTitle string `json:"recipe_title"`
		ContextText string `json:"context_text"`
	}

	GuideResponse struct {
		Reply string `json:"reply"`
		Error string `json:"error,omitempty"`
	}
)
