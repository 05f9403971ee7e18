package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/bloglist-server/internal/model"
)

var _ model.BlogStore = (*BlogRepository)(nil)

type BlogRepository struct {
	db *Connection
}

func NewBlogRepository(db *Connection) *BlogRepository {
	return &BlogRepository{
		db: db,
	}
}

func (r *BlogRepository) Create(ctx context.Context, blog model.Blog) (model.Blog, error) {
	query := `INSERT INTO blogs (id, title, url, author, likes, owner_id)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id, title, url, author, likes, owner_id`

	saved, err := scanBlog(r.db.QueryRow(ctx, query,
		blog.ID, blog.Title, blog.URL, blog.Author, blog.Likes, blog.Owner,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return model.Blog{}, model.ErrAlreadyExists
		}
		return model.Blog{}, fmt.Errorf("failed to create blog: %w", err)
	}

	return saved, nil
}

func (r *BlogRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Blog, error) {
	query := `SELECT id, title, url, author, likes, owner_id
			  FROM blogs WHERE id = $1`

	blog, err := scanBlog(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Blog{}, model.ErrNotFound
		}
		return model.Blog{}, fmt.Errorf("failed to get blog by id: %w", err)
	}

	return blog, nil
}

// List returns blogs in insertion order.
func (r *BlogRepository) List(ctx context.Context) ([]model.Blog, error) {
	query := `SELECT id, title, url, author, likes, owner_id
			  FROM blogs ORDER BY position`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list blogs: %w", err)
	}
	defer rows.Close()

	blogs := []model.Blog{}
	for rows.Next() {
		blog, err := scanBlog(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan blog: %w", err)
		}
		blogs = append(blogs, blog)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate blogs: %w", err)
	}

	return blogs, nil
}

func (r *BlogRepository) Update(ctx context.Context, blog model.Blog) (model.Blog, error) {
	query := `UPDATE blogs SET title = $2, url = $3, author = $4, likes = $5
			  WHERE id = $1
			  RETURNING id, title, url, author, likes, owner_id`

	updated, err := scanBlog(r.db.QueryRow(ctx, query,
		blog.ID, blog.Title, blog.URL, blog.Author, blog.Likes,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Blog{}, model.ErrNotFound
		}
		return model.Blog{}, fmt.Errorf("failed to update blog: %w", err)
	}

	return updated, nil
}

func (r *BlogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM blogs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete blog: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}

func scanBlog(row pgx.Row) (model.Blog, error) {
	var blog model.Blog
	err := row.Scan(&blog.ID, &blog.Title, &blog.URL, &blog.Author, &blog.Likes, &blog.Owner)
	return blog, err
}
