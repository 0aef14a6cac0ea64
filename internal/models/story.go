package models

import "time"

// StoryPanel is one unit of a comic story: a character, their display name,
// the dialogue/educational text, and a scene description.
type StoryPanel struct {
	Character     string `json:"character"`
	CharacterName string `json:"characterName"`
	Text          string `json:"text"`
	Background    string `json:"background"`
}

// StoryData is the structured payload the generative model is asked to return,
// and the shape every fallback template produces.
type StoryData struct {
	Title  string       `json:"title"`
	Panels []StoryPanel `json:"panels"`
}

type Story struct {
	ID        int64        `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    int64        `json:"userId" gorm:"column:user_id;not null;index"`
	Subject   string       `json:"subject" gorm:"not null"`
	Topic     string       `json:"topic" gorm:"not null"`
	Title     string       `json:"title" gorm:"not null"`
	Content   string       `json:"content" gorm:"not null;type:text"`
	Panels    []StoryPanel `json:"panels" gorm:"type:jsonb;serializer:json"`
	IsLearned bool         `json:"isLearned" gorm:"column:is_learned;default:false;not null"`
	CreatedAt time.Time    `json:"createdAt" gorm:"autoCreateTime"`
}

func (Story) TableName() string {
	return "stories"
}
