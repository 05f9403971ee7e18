package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/bloglist-server/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

type UserRepository struct {
	db *Connection
}

func NewUserRepository(db *Connection) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (model.User, error) {
	query := `SELECT id, username, name, password_hash, blogs
			  FROM users WHERE username = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	return user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	query := `SELECT id, username, name, password_hash, blogs
			  FROM users WHERE id = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

func (r *UserRepository) Create(ctx context.Context, user model.User) (model.User, error) {
	query := `INSERT INTO users (id, username, name, password_hash, blogs)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id, username, name, password_hash, blogs`

	blogs := user.Blogs
	if blogs == nil {
		blogs = []uuid.UUID{}
	}

	saved, err := scanUser(r.db.QueryRow(ctx, query,
		user.ID, user.Username, user.Name, user.PasswordHash, blogs,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return model.User{}, model.ErrAlreadyExists
		}
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return saved, nil
}

func (r *UserRepository) List(ctx context.Context) ([]model.User, error) {
	query := `SELECT id, username, name, password_hash, blogs
			  FROM users ORDER BY position`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}

	return users, nil
}

// AddBlog appends blogID in a single statement so concurrent appends for the
// same user do not overwrite each other.
func (r *UserRepository) AddBlog(ctx context.Context, userID, blogID uuid.UUID) error {
	query := `UPDATE users
			  SET blogs = CASE WHEN $2 = ANY(blogs) THEN blogs ELSE array_append(blogs, $2) END
			  WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, userID, blogID)
	if err != nil {
		return fmt.Errorf("failed to add blog to user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}

func (r *UserRepository) RemoveBlog(ctx context.Context, userID, blogID uuid.UUID) error {
	query := `UPDATE users SET blogs = array_remove(blogs, $2) WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, userID, blogID)
	if err != nil {
		return fmt.Errorf("failed to remove blog from user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}

func scanUser(row pgx.Row) (model.User, error) {
	var user model.User
	err := row.Scan(&user.ID, &user.Username, &user.Name, &user.PasswordHash, &user.Blogs)
	return user, err
}
