package models

import "time"

type Program struct {
	ID           int64     `json:"id"`
	OwnerID      int64     `json:"owner_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Price        float64   `json:"price"`
	DurationDays int       `json:"duration_days"`
	CreatedAt    time.Time `json:"created_at"`
}

// ProgramWithOwner carries the owner handle resolved by an explicit join,
// so read-side composers never re-fetch the member row per program.
type ProgramWithOwner struct {
	Program
	OwnerHandle string `json:"owner_handle"`
}
