package models

type Profile struct {
	ID             int      `json:"id"`
	Email          string   `json:"email"`
	Username       string   `json:"username"`
	AvatarURL      *string  `json:"avatar_url,omitempty"`
	Bio            *string  `json:"bio,omitempty"`
	BirthDate      *string  `json:"birth_date,omitempty"`
	Gender         *string  `json:"gender,omitempty"`
	LanguageCode   *string  `json:"language_code,omitempty"`
	Public         bool     `json:"public,omitempty"`
	Latitude       *float64 `json:"latitude,omitempty"`
	Longitude      *float64 `json:"longitude,omitempty"`
	City           *City    `json:"city,omitempty"`
	FavoriteGenres []Genre  `json:"favorite_genres"`
	Roles          []string `json:"roles,omitempty"`
	IsOnboarded    bool     `json:"is_onboarded"`
	CreatedAt      string   `json:"created_at"`
	Banned         bool     `json:"banned,omitempty"`
}

type UpdateProfilePayload struct {
	Username     *string  `json:"username,omitempty"`
	Bio          *string  `json:"bio,omitempty"`
	CityID       *int     `json:"city_id,omitempty"`
	BirthDate    *string  `json:"birth_date,omitempty"`
	Gender       *string  `json:"gender,omitempty"`
	LanguageCode *string  `json:"language_code,omitempty"`
	Public       *bool    `json:"public,omitempty"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
}

type UpdateFavoriteGenresPayload struct {
	FavoriteGenres []int `json:"favorite_genres"`
}

// NearbyUser is a profile projection with a distance in kilometers.
type NearbyUser struct {
	Profile
	Distance float64 `json:"distance"`
}
