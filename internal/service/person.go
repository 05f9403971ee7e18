package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	apiErrors "github.com/dtroode/bloglist-server/internal/api/errors"
	"github.com/dtroode/bloglist-server/internal/logger"
	"github.com/dtroode/bloglist-server/internal/model"
)

const (
	minPersonNameLength = 3
	minNumberLength     = 8
)

var numberPattern = regexp.MustCompile(`^\d{2,3}-\d+$`)

type Person struct {
	personStore model.PersonStore
	logger      *logger.Logger
}

func NewPerson(personStore model.PersonStore, logger *logger.Logger) *Person {
	return &Person{personStore: personStore, logger: logger}
}

func (s *Person) ListPersons(ctx context.Context) ([]model.Person, error) {
	persons, err := s.personStore.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list persons: %w", err)
	}
	return persons, nil
}

func (s *Person) GetPerson(ctx context.Context, id uuid.UUID) (model.Person, error) {
	person, err := s.personStore.GetByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.Person{}, apiErrors.NewErrPersonNotFound(id)
	}
	if err != nil {
		return model.Person{}, fmt.Errorf("failed to get person: %w", err)
	}
	return person, nil
}

func (s *Person) CreatePerson(ctx context.Context, name, number string) (model.Person, error) {
	name, number, err := validatePerson(name, number)
	if err != nil {
		return model.Person{}, err
	}

	person, err := s.personStore.Create(ctx, model.Person{
		ID:     uuid.New(),
		Name:   name,
		Number: number,
	})
	if err != nil {
		s.logger.Error("Person service: failed to create person",
			"name", name,
			"error", err.Error())
		return model.Person{}, fmt.Errorf("failed to create person: %w", err)
	}

	return person, nil
}

func (s *Person) UpdatePerson(ctx context.Context, person model.Person) (model.Person, error) {
	name, number, err := validatePerson(person.Name, person.Number)
	if err != nil {
		return model.Person{}, err
	}
	person.Name = name
	person.Number = number

	updated, err := s.personStore.Update(ctx, person)
	if errors.Is(err, model.ErrNotFound) {
		return model.Person{}, apiErrors.NewErrPersonNotFound(person.ID)
	}
	if err != nil {
		s.logger.Error("Person service: failed to update person",
			"person_id", person.ID,
			"error", err.Error())
		return model.Person{}, fmt.Errorf("failed to update person: %w", err)
	}

	return updated, nil
}

// DeletePerson removes a person. Deleting a missing person is not an error.
func (s *Person) DeletePerson(ctx context.Context, id uuid.UUID) error {
	err := s.personStore.Delete(ctx, id)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		s.logger.Error("Person service: failed to delete person",
			"person_id", id,
			"error", err.Error())
		return fmt.Errorf("failed to delete person: %w", err)
	}
	return nil
}

func (s *Person) CountPersons(ctx context.Context) (int, error) {
	n, err := s.personStore.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count persons: %w", err)
	}
	return n, nil
}

func validatePerson(name, number string) (string, string, error) {
	name = strings.TrimSpace(name)
	number = strings.TrimSpace(number)

	switch {
	case name == "":
		return "", "", apiErrors.NewErrValidation("name is required")
	case len([]rune(name)) < minPersonNameLength:
		return "", "", apiErrors.NewErrValidation(fmt.Sprintf("name must be at least %d characters long", minPersonNameLength))
	case number == "":
		return "", "", apiErrors.NewErrValidation("number is required")
	case len(number) < minNumberLength:
		return "", "", apiErrors.NewErrValidation(fmt.Sprintf("number must be at least %d characters long", minNumberLength))
	case !numberPattern.MatchString(number):
		return "", "", apiErrors.NewErrValidation("number must be in the form 09-1234556 or 040-22334455")
	}

	return name, number, nil
}
