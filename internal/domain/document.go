package domain

import (
	"time"

	"github.com/google/uuid"

	"resume-builder/internal/model"
)

// ResumeDocument is the root per-user record. ID and the timestamps are
// assigned by the persistence layer on first save; a draft that has never
// been saved carries the zero UUID.
type ResumeDocument struct {
	ID        uuid.UUID        `json:"id"`
	OwnerID   uuid.UUID        `json:"ownerId"`
	Title     string           `json:"title"`
	Template  string           `json:"template"`
	Data      model.ResumeData `json:"data"`
	IsPublic  bool             `json:"isPublic"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

// User is an account record. Plan gates how many documents the account may
// own; see usecase.DocumentService.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Plan         string    `json:"plan"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

const (
	PlanFree = "free"
	PlanPro  = "pro"
)
