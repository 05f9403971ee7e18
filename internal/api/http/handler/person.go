package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dtroode/bloglist-server/internal/logger"
	"github.com/dtroode/bloglist-server/internal/model"
)

// PersonService defines phonebook operations.
type PersonService interface {
	ListPersons(ctx context.Context) ([]model.Person, error)
	GetPerson(ctx context.Context, id uuid.UUID) (model.Person, error)
	CreatePerson(ctx context.Context, name, number string) (model.Person, error)
	UpdatePerson(ctx context.Context, person model.Person) (model.Person, error)
	DeletePerson(ctx context.Context, id uuid.UUID) error
	CountPersons(ctx context.Context) (int, error)
}

// Person handles HTTP endpoints for the phonebook.
type Person struct {
	personService PersonService
	now           func() time.Time
	logger        *logger.Logger
}

// NewPerson creates a new Person handler.
func NewPerson(personService PersonService, logger *logger.Logger) *Person {
	return &Person{
		personService: personService,
		now:           time.Now,
		logger:        logger,
	}
}

func (h *Person) List(c *gin.Context) {
	persons, err := h.personService.ListPersons(c.Request.Context())
	if err != nil {
		h.logger.Error("Person handler: list persons failed",
			"error", err.Error())
		respondError(c, err)
		return
	}

	resp := make([]personResponse, 0, len(persons))
	for _, p := range persons {
		resp = append(resp, newPersonResponse(p))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Person) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	person, err := h.personService.GetPerson(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newPersonResponse(person))
}

func (h *Person) Create(c *gin.Context) {
	var req personRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errInvalidBody(err))
		return
	}

	person, err := h.personService.CreatePerson(c.Request.Context(), req.Name, req.Number)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newPersonResponse(person))
}

func (h *Person) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	var req personRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errInvalidBody(err))
		return
	}

	person, err := h.personService.UpdatePerson(c.Request.Context(), model.Person{
		ID:     id,
		Name:   req.Name,
		Number: req.Number,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newPersonResponse(person))
}

func (h *Person) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.personService.DeletePerson(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Info renders the number of phonebook entries and the time of the request.
func (h *Person) Info(c *gin.Context) {
	n, err := h.personService.CountPersons(c.Request.Context())
	if err != nil {
		h.logger.Error("Person handler: count persons failed",
			"error", err.Error())
		respondError(c, err)
		return
	}

	body := fmt.Sprintf("<p>Phonebook has info for %d people</p><p>%s</p>", n, h.now().Format(time.RFC1123Z))
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(body))
}
