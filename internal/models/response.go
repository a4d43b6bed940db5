package models

import "time"

type ListingResponse struct {
	Listing
	TargetStyleName string `json:"target_style_name"`
}

type ListingListResponse struct {
	Listings []ListingSummary `json:"listings"`
}

type ListingSummary struct {
	ID              string `json:"id"`
	Address         string `json:"address"`
	TargetStyleID   string `json:"target_style_id"`
	TargetStyleName string `json:"target_style_name"`
	RoomCount       int    `json:"room_count"`
	CoverURL        string `json:"cover_url,omitempty"`
	CreatedAt       int64  `json:"created_at"`
}

type StylesResponse struct {
	Styles []StagingStyle `json:"styles"`
}

type RoomLabelsResponse struct {
	Labels []string `json:"labels"`
}

type OutcomeResponse struct {
	Outcome Outcome `json:"outcome"`
}

type PendingBatchResponse struct {
	ListingID    string         `json:"listing_id"`
	Images       []PendingImage `json:"images"`
	CustomMode   bool           `json:"custom_mode"`
	CustomPrompt string         `json:"custom_prompt"`
}

type SubmitResponse struct {
	ListingID string `json:"listing_id"`
	BatchID   string `json:"batch_id"`
	Total     int    `json:"total"`
	Status    string `json:"status"`
}

type ProgressResponse struct {
	ListingID       string               `json:"listing_id"`
	InProgress      bool                 `json:"in_progress"`
	ProcessingIndex int                  `json:"processing_index"`
	Total           int                  `json:"total"`
	Message         string               `json:"message,omitempty"`
	LastBatch       *BatchReportResponse `json:"last_batch,omitempty"`
}

type BatchReportResponse struct {
	BatchID    string                `json:"batch_id"`
	Total      int                   `json:"total"`
	Committed  []string              `json:"committed_image_ids"`
	Failures   []ItemFailureResponse `json:"failures,omitempty"`
	Error      string                `json:"error,omitempty"`
	StartedAt  time.Time             `json:"started_at"`
	FinishedAt time.Time             `json:"finished_at"`
}

type ItemFailureResponse struct {
	Index int    `json:"index"`
	Label string `json:"label"`
	Error string `json:"error"`
}

type PublishResponse struct {
	ImageID     string `json:"image_id"`
	StoragePath string `json:"storage_path"`
	PublicURL   string `json:"public_url"`
}

type HealthResponse struct {
	// "ok", or "degraded" when staging requests would be rejected.
	Status     string `json:"status" example:"ok"`
	Gemini     string `json:"gemini" example:"ready"`
	Publishing string `json:"publishing" example:"disabled"`
	// Why Gemini is not ready.
	Message string `json:"message,omitempty"`
}
