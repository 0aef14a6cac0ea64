package dto

import "storyquest/internal/models"

// CreateUserRequest is the POST /api/users body. Age is bounded to a
// plausible child range at the boundary.
type CreateUserRequest struct {
	ExternalID       string   `json:"externalId" binding:"required"`
	Name             string   `json:"name" binding:"required"`
	Age              int      `json:"age" binding:"required,min=1,max=18"`
	Class            string   `json:"class" binding:"required"`
	Location         string   `json:"location" binding:"required"`
	FavoriteCartoons []string `json:"favoriteCartoons"`
}

func (d CreateUserRequest) ToModel() models.User {
	favorites := d.FavoriteCartoons
	if favorites == nil {
		favorites = []string{}
	}
	return models.User{
		ExternalID:       d.ExternalID,
		Name:             d.Name,
		Age:              d.Age,
		Class:            d.Class,
		Location:         d.Location,
		FavoriteCartoons: favorites,
	}
}
