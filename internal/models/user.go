package models

import "time"

type User struct {
	ID               int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	ExternalID       string    `json:"externalId" gorm:"column:external_id;uniqueIndex;not null"`
	Name             string    `json:"name" gorm:"not null"`
	Age              int       `json:"age" gorm:"not null"`
	Class            string    `json:"class" gorm:"not null"`
	Location         string    `json:"location" gorm:"not null"`
	FavoriteCartoons []string  `json:"favoriteCartoons" gorm:"column:favorite_cartoons;type:jsonb;serializer:json"`
	CreatedAt        time.Time `json:"createdAt" gorm:"autoCreateTime"`
}

func (User) TableName() string {
	return "users"
}
