package dto

import "storyquest/internal/models"

type CreateTextbookRequest struct {
	UserID      int64   `json:"userId" binding:"required,gt=0"`
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description,omitempty"`
	Subject     string  `json:"subject" binding:"required"`
	StoryIDs    []int64 `json:"storyIds"`
}

func (d CreateTextbookRequest) ToModel() models.Textbook {
	storyIDs := d.StoryIDs
	if storyIDs == nil {
		storyIDs = []int64{}
	}
	return models.Textbook{
		UserID:      d.UserID,
		Name:        d.Name,
		Description: d.Description,
		Subject:     d.Subject,
		StoryIDs:    storyIDs,
	}
}

// AddStoryRequest is the POST /api/textbooks/:id/stories body.
type AddStoryRequest struct {
	StoryID int64 `json:"storyId" binding:"required,gt=0"`
}
