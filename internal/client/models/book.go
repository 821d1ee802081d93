package models

// UserSummary is the short owner/requester projection embedded in books
// and exchanges.
type UserSummary struct {
	ID        string  `json:"id"`
	Username  string  `json:"username"`
	Email     string  `json:"email,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}

type Book struct {
	ID               string           `json:"id"`
	Title            string           `json:"title"`
	Description      *string          `json:"description,omitempty"`
	ExtraTerms       *string          `json:"extra_terms,omitempty"`
	Pages            *int             `json:"pages,omitempty"`
	Author           Author           `json:"author"`
	Genre            Genre            `json:"genre"`
	LanguageCode     string           `json:"language_code"`
	Condition        string           `json:"condition"`
	ApprovalStatus   *string          `json:"approval_status,omitempty"`
	IsAvailable      bool             `json:"is_available"`
	IsLikedByUser    bool             `json:"is_liked_by_user"`
	ExchangeLocation ExchangeLocation `json:"exchange_location"`
	PhotoURLs        []string         `json:"photo_urls"`
	TotalLikes       int              `json:"total_likes,omitempty"`
	TotalViews       int              `json:"total_views,omitempty"`
	TotalReserves    int              `json:"total_reserves,omitempty"`
	Owner            *UserSummary     `json:"owner,omitempty"`
	CreatedAt        string           `json:"created_at,omitempty"`
}

// BookFilters is the allowed query-parameter set for book listings.
// Zero values mean "not set" and are omitted from the query string.
type BookFilters struct {
	Query    string
	Sort     string
	Genre    string
	Distance int
	Rating   int
	Limit    int
}

type CreateBookPayload struct {
	Title              string `json:"title"`
	Description        string `json:"description,omitempty"`
	AuthorID           int    `json:"author_id"`
	GenreID            int    `json:"genre_id"`
	LanguageCode       string `json:"language_code"`
	Condition          string `json:"condition"`
	ExchangeLocationID int    `json:"exchange_location_id"`
	ExtraTerms         string `json:"extra_terms,omitempty"`
	Pages              *int   `json:"pages,omitempty"`
}

// UpdateBookPayload is a partial patch; nil fields are left unchanged
// server-side.
type UpdateBookPayload struct {
	Title              *string `json:"title,omitempty"`
	Description        *string `json:"description,omitempty"`
	AuthorID           *int    `json:"author_id,omitempty"`
	GenreID            *int    `json:"genre_id,omitempty"`
	LanguageCode       *string `json:"language_code,omitempty"`
	Condition          *string `json:"condition,omitempty"`
	ExchangeLocationID *int    `json:"exchange_location_id,omitempty"`
	ExtraTerms         *string `json:"extra_terms,omitempty"`
	Pages              *int    `json:"pages,omitempty"`
}

type ReserveBookPayload struct {
	Comment     string `json:"comment,omitempty"`
	MeetingTime string `json:"meeting_time,omitempty"`
}
