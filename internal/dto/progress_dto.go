package dto

// UpdateProgressRequest is the POST /api/progress body: one learning event,
// applied additively to the per-user aggregate. Marking a story completed
// feeds both the totals and the per-subject breakdown.
type UpdateProgressRequest struct {
	UserID           int64  `json:"userId" binding:"required,gt=0"`
	Subject          string `json:"subject"`
	Topic            string `json:"topic"`
	StoryCompleted   bool   `json:"storyCompleted"`
	TimeSpentMinutes int    `json:"timeSpentMinutes" binding:"min=0"`
}
