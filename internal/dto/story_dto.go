package dto

// UserPreferences carries request-side personalization for callers whose
// profile has no favorites saved yet.
type UserPreferences struct {
	FavoriteCartoons []string `json:"favoriteCartoons"`
}

// GenerateStoryRequest is the POST /api/stories/generate body. Topic,
// subject and userId are validated before any model call is attempted.
type GenerateStoryRequest struct {
	Topic           string           `json:"topic" binding:"required"`
	Subject         string           `json:"subject" binding:"required"`
	UserID          int64            `json:"userId" binding:"required,gt=0"`
	UserPreferences *UserPreferences `json:"userPreferences,omitempty"`
}

// UpdateStoryRequest is the PUT /api/stories/:id body; partial update, in
// practice used to flip isLearned.
type UpdateStoryRequest struct {
	Title     *string `json:"title,omitempty"`
	IsLearned *bool   `json:"isLearned,omitempty"`
}
