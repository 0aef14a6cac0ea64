package models

import "time"

// Textbook is a user-curated collection of stories. StoryIDs is membership,
// not ownership: a story may belong to zero or more textbooks.
type Textbook struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID      int64     `json:"userId" gorm:"column:user_id;not null;index"`
	Name        string    `json:"name" gorm:"not null"`
	Description *string   `json:"description,omitempty"`
	Subject     string    `json:"subject" gorm:"not null"`
	StoryIDs    []int64   `json:"storyIds" gorm:"column:story_ids;type:jsonb;serializer:json"`
	CreatedAt   time.Time `json:"createdAt" gorm:"autoCreateTime"`
}

func (Textbook) TableName() string {
	return "textbooks"
}
