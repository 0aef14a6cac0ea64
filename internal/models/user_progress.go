package models

import "time"

// SubjectStats is the per-subject slice of a user's progress aggregate.
type SubjectStats struct {
	StoriesCompleted int      `json:"storiesCompleted"`
	TopicsLearned    []string `json:"topicsLearned"`
	TimeSpent        int      `json:"timeSpent"`
}

// UserProgress is the one-per-user learning aggregate. It is created zeroed
// alongside the user and only ever mutated additively.
type UserProgress struct {
	ID               int64                   `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID           int64                   `json:"userId" gorm:"column:user_id;uniqueIndex;not null"`
	TotalStoriesRead int                     `json:"totalStoriesRead" gorm:"column:total_stories_read;default:0;not null"`
	TotalTimeSpent   int                     `json:"totalTimeSpent" gorm:"column:total_time_spent_minutes;default:0;not null"`
	CurrentStreak    int                     `json:"currentStreak" gorm:"column:current_streak;default:0;not null"`
	LastActiveDate   *time.Time              `json:"lastActiveDate,omitempty" gorm:"column:last_active_date"`
	SubjectProgress  map[string]SubjectStats `json:"subjectProgress" gorm:"column:subject_progress;type:jsonb;serializer:json"`
}

func (UserProgress) TableName() string {
	return "user_progress"
}
