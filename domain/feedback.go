package domain

import (
	"time"

	"github.com/google/uuid"
)

// FeedbackRecord is one user feedback submission. Records are append-only:
// once accepted they are never mutated or deleted, and identical
// resubmissions are all accepted as distinct records.
type FeedbackRecord struct {
	ID      uuid.UUID
	At      time.Time
	Name    string `validate:"required,max=120"`
	Email   string `validate:"required,email"`
	Rating  int    `validate:"required,min=1,max=5"`
	Message string `validate:"required,max=4000"`
}

// NewFeedbackRecord stamps identity and submission time on user input.
func NewFeedbackRecord(name, email string, rating int, message string) FeedbackRecord {
	return FeedbackRecord{
		ID:      uuid.New(),
		At:      time.Now().UTC(),
		Name:    name,
		Email:   email,
		Rating:  rating,
		Message: message,
	}
}
