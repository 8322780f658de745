package models

import (
	"time"
)

// ContactForm holds the three fields collected by the website contact form
type ContactForm struct {
	Name    string `form:"name"`
	Email   string `form:"email"`
	Message string `form:"message"`
}

// ContactStatus is the state of the contact form UI
type ContactStatus string

const (
	ContactStatusIdle       ContactStatus = "idle"
	ContactStatusSubmitting ContactStatus = "submitting"
	ContactStatusSuccess    ContactStatus = "success"
	ContactStatusError      ContactStatus = "error"
)

// ContactResult is the outcome of one submission and how long the UI keeps it
type ContactResult struct {
	Status     ContactStatus
	ResetAfter time.Duration
}

// ContactMessage is a message received by the companion API
type ContactMessage struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name" binding:"required,max=100"`
	Email     string    `json:"email" binding:"required,email"`
	Message   string    `json:"message" binding:"required,max=5000"`
	CreatedAt time.Time `json:"createdAt"`
}

// ValidationError describes a single invalid field
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
