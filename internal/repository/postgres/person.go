package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/bloglist-server/internal/model"
)

var _ model.PersonStore = (*PersonRepository)(nil)

type PersonRepository struct {
	db *Connection
}

func NewPersonRepository(db *Connection) *PersonRepository {
	return &PersonRepository{
		db: db,
	}
}

func (r *PersonRepository) Create(ctx context.Context, person model.Person) (model.Person, error) {
	query := `INSERT INTO persons (id, name, number) VALUES ($1, $2, $3)
			  RETURNING id, name, number`

	var saved model.Person
	err := r.db.QueryRow(ctx, query, person.ID, person.Name, person.Number).
		Scan(&saved.ID, &saved.Name, &saved.Number)
	if err != nil {
		return model.Person{}, fmt.Errorf("failed to create person: %w", err)
	}

	return saved, nil
}

func (r *PersonRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Person, error) {
	var person model.Person
	err := r.db.QueryRow(ctx, `SELECT id, name, number FROM persons WHERE id = $1`, id).
		Scan(&person.ID, &person.Name, &person.Number)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Person{}, model.ErrNotFound
		}
		return model.Person{}, fmt.Errorf("failed to get person by id: %w", err)
	}

	return person, nil
}

func (r *PersonRepository) List(ctx context.Context) ([]model.Person, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, number FROM persons ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to list persons: %w", err)
	}

	persons, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.Person, error) {
		var p model.Person
		err := row.Scan(&p.ID, &p.Name, &p.Number)
		return p, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan persons: %w", err)
	}

	return persons, nil
}

func (r *PersonRepository) Update(ctx context.Context, person model.Person) (model.Person, error) {
	query := `UPDATE persons SET name = $2, number = $3 WHERE id = $1
			  RETURNING id, name, number`

	var updated model.Person
	err := r.db.QueryRow(ctx, query, person.ID, person.Name, person.Number).
		Scan(&updated.ID, &updated.Name, &updated.Number)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Person{}, model.ErrNotFound
		}
		return model.Person{}, fmt.Errorf("failed to update person: %w", err)
	}

	return updated, nil
}

func (r *PersonRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM persons WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete person: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}

func (r *PersonRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM persons`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count persons: %w", err)
	}
	return n, nil
}
