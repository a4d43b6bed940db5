package models

type CreateListingRequest struct {
	Address string `json:"address" example:"10 Main St"`
	// Master style for the listing. Defaults to the first built-in style.
	TargetStyleID string `json:"target_style_id,omitempty" example:"modern"`
}

type CreateStyleRequest struct {
	Name   string `json:"name" example:"Coastal Calm"`
	Prompt string `json:"prompt" example:"Virtually stage this room in a breezy coastal style."`
	Icon   string `json:"icon,omitempty" example:"🌊"`
}

// SaveStyleRequest overrides the pre-filled variant name/prompt when saving
// a generated image's style as a new custom aesthetic.
type SaveStyleRequest struct {
	Name   string `json:"name,omitempty"`
	Prompt string `json:"prompt,omitempty"`
	Icon   string `json:"icon,omitempty"`
}

type FeedbackRequest struct {
	// 1-5 stars. Omit it, or send 0, to leave the rating untouched.
	Rating *int `json:"rating,omitempty" binding:"omitempty,min=0,max=5" example:"5"`
	// Omit to leave existing feedback untouched.
	Feedback *string `json:"feedback,omitempty"`
}

type PendingImageRequest struct {
	URL     string `json:"url" binding:"required"`
	Label   string `json:"label,omitempty" binding:"omitempty,roomlabel"`
	StyleID string `json:"style_id,omitempty"`
}

type AddPendingRequest struct {
	Images []PendingImageRequest `json:"images" binding:"required,min=1,dive"`
}

type UpdatePendingRequest struct {
	Label   string  `json:"label,omitempty" binding:"omitempty,roomlabel"`
	StyleID *string `json:"style_id,omitempty"`
}

type InstructionsRequest struct {
	CustomMode   bool   `json:"custom_mode"`
	CustomPrompt string `json:"custom_prompt"`
}

type RefineRequest struct {
	Adjustments string `json:"adjustments" example:"add a large monstera plant"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
