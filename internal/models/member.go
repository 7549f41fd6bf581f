package models

import "time"

const (
	RoleCoach  = "coach"
	RoleClient = "client"
)

type Member struct {
	ID           int64     `json:"id"`
	Handle       string    `json:"handle"`
	ContactEmail string    `json:"contact_email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
