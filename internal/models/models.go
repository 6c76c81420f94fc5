package models

import (
	"time"
)

const (
	RoleOwner  = "owner"
	RoleWalker = "walker"
)

const (
	SizeSmall  = "small"
	SizeMedium = "medium"
	SizeLarge  = "large"
)

// Walk request statuses.
const (
	StatusOpen      = "open"
	StatusAccepted  = "accepted"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Walk application statuses.
const (
	ApplicationPending  = "pending"
	ApplicationAccepted = "accepted"
	ApplicationRejected = "rejected"
)

type User struct {
	UserID       int64     `json:"user_id" db:"user_id"`
	Username     string    `json:"username" db:"username"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         string    `json:"role" db:"role"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

type Dog struct {
	DogID   int64  `json:"dog_id" db:"dog_id"`
	OwnerID int64  `json:"owner_id" db:"owner_id"`
	Name    string `json:"name" db:"name"`
	Size    string `json:"size" db:"size"`
}

// DogWithOwner is a dog joined to its owner's username.
type DogWithOwner struct {
	DogName       string `json:"dog_name" db:"dog_name"`
	Size          string `json:"size" db:"size"`
	OwnerUsername string `json:"owner_username" db:"owner_username"`
}

type WalkRequest struct {
	RequestID       int64     `json:"request_id" db:"request_id"`
	DogID           int64     `json:"dog_id" db:"dog_id"`
	RequestedTime   time.Time `json:"requested_time" db:"requested_time"`
	DurationMinutes int       `json:"duration_minutes" db:"duration_minutes"`
	Location        string    `json:"location" db:"location"`
	Status          string    `json:"status" db:"status"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}

// OpenWalkRequest is an open request joined to its dog and owner.
type OpenWalkRequest struct {
	RequestID       int64     `json:"request_id" db:"request_id"`
	DogName         string    `json:"dog_name" db:"dog_name"`
	RequestedTime   time.Time `json:"requested_time" db:"requested_time"`
	DurationMinutes int       `json:"duration_minutes" db:"duration_minutes"`
	Location        string    `json:"location" db:"location"`
	OwnerUsername   string    `json:"owner_username" db:"owner_username"`
}

type WalkApplication struct {
	ApplicationID int64     `json:"application_id" db:"application_id"`
	RequestID     int64     `json:"request_id" db:"request_id"`
	WalkerID      int64     `json:"walker_id" db:"walker_id"`
	AppliedAt     time.Time `json:"applied_at" db:"applied_at"`
	Status        string    `json:"status" db:"status"`
}

type WalkRating struct {
	RatingID  int64     `json:"rating_id" db:"rating_id"`
	RequestID int64     `json:"request_id" db:"request_id"`
	WalkerID  int64     `json:"walker_id" db:"walker_id"`
	OwnerID   int64     `json:"owner_id" db:"owner_id"`
	Rating    int       `json:"rating" db:"rating"`
	Comments  *string   `json:"comments" db:"comments"`
	RatedAt   time.Time `json:"rated_at" db:"rated_at"`
}

// WalkerSummary aggregates ratings and completed walks for one walker.
// AverageRating is nil for walkers nobody has rated yet.
type WalkerSummary struct {
	WalkerUsername string   `json:"walker_username" db:"walker_username"`
	TotalRatings   int      `json:"total_ratings" db:"total_ratings"`
	AverageRating  *float64 `json:"average_rating" db:"average_rating"`
	CompletedWalks int      `json:"completed_walks" db:"completed_walks"`
}
