package model

import (
	"context"

	"github.com/google/uuid"
)

// PersonStore defines persistence operations for phonebook entries.
type PersonStore interface {
	Create(ctx context.Context, person Person) (Person, error)
	GetByID(ctx context.Context, id uuid.UUID) (Person, error)
	List(ctx context.Context) ([]Person, error)
	Update(ctx context.Context, person Person) (Person, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int, error)
}

// Person is a phonebook entry.
type Person struct {
	ID     uuid.UUID
	Name   string
	Number string
}
