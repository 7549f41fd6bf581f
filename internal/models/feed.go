package models

type FeedItem struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	CoachHandle  string  `json:"coach"`
	Price        float64 `json:"price"`
	DurationDays int     `json:"days"`
	Detail       string  `json:"info"`
	Unlocked     bool    `json:"unlocked"`
}

type CoachListing struct {
	ID          int64  `json:"id"`
	Handle      string `json:"username"`
	IsFollowing bool   `json:"is_following"`
}
