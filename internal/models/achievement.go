package models

import "time"

// Achievement type tags. Type uniquely identifies the semantic achievement;
// the evaluation logic, not the schema, keeps grants to one per user.
const (
	AchievementFirstStory      = "first_story"
	AchievementMathMaster      = "math_master"
	AchievementScienceExplorer = "science_explorer"
	AchievementEnglishMaster   = "english_master"
	AchievementSocialMaster    = "social_master"
	AchievementLifeSkillsPro   = "lifeskills_master"
	AchievementCreativeGenius  = "creative_master"
	AchievementSuperLearner    = "super_learner"
	AchievementSpeedReader     = "speed_reader"
	AchievementStreakMaster    = "streak_master"
)

type Achievement struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID      int64     `json:"userId" gorm:"column:user_id;not null;index"`
	Type        string    `json:"type" gorm:"not null"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description" gorm:"not null"`
	Icon        string    `json:"icon" gorm:"not null"`
	UnlockedAt  time.Time `json:"unlockedAt" gorm:"column:unlocked_at;autoCreateTime"`
}

func (Achievement) TableName() string {
	return "achievements"
}
