package models

// CursorPage is the cursor-paginated envelope used by admin listings.
type CursorPage[T any] struct {
	Items      []T     `json:"items"`
	NextCursor *string `json:"next_cursor,omitempty"`
}

// StatsPoint is a single day of an admin time-series (active users,
// registrations).
type StatsPoint struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// BookStatsPoint is a single day of per-book engagement counters.
type BookStatsPoint struct {
	Date     string `json:"date"`
	Views    int    `json:"views"`
	Likes    int    `json:"likes"`
	Reserves int    `json:"reserves"`
}

type AdminListBooksParams struct {
	Status string
	Limit  int
}

type AdminListUsersParams struct {
	Limit  int
	Cursor string
	Search string
	Banned *bool
}

type SetUserBanPayload struct {
	Banned bool `json:"banned"`
}

type RejectBookPayload struct {
	Reason string `json:"reason,omitempty"`
}
