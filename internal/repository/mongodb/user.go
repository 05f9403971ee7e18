package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dtroode/bloglist-server/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

type userDocument struct {
	ID           string   `bson:"_id"`
	Username     string   `bson:"username"`
	Name         string   `bson:"name"`
	PasswordHash string   `bson:"passwordHash"`
	Blogs        []string `bson:"blogs"`
}

func newUserDocument(u model.User) userDocument {
	blogs := make([]string, 0, len(u.Blogs))
	for _, id := range u.Blogs {
		blogs = append(blogs, id.String())
	}
	return userDocument{
		ID:           u.ID.String(),
		Username:     u.Username,
		Name:         u.Name,
		PasswordHash: u.PasswordHash,
		Blogs:        blogs,
	}
}

func (d userDocument) toModel() (model.User, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to parse user id: %w", err)
	}
	blogs, err := parseIDs(d.Blogs)
	if err != nil {
		return model.User{}, err
	}
	return model.User{
		ID:           id,
		Username:     d.Username,
		Name:         d.Name,
		PasswordHash: d.PasswordHash,
		Blogs:        blogs,
	}, nil
}

type UserRepository struct {
	users *mongo.Collection
}

func NewUserRepository(conn *Connection) *UserRepository {
	return &UserRepository{users: conn.collection(usersCollection)}
}

func (r *UserRepository) Create(ctx context.Context, user model.User) (model.User, error) {
	doc := newUserDocument(user)
	if _, err := r.users.InsertOne(ctx, doc); err != nil {
		err = mapError(err)
		if errors.Is(err, model.ErrAlreadyExists) {
			return model.User{}, err
		}
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}
	return doc.toModel()
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	return r.findOne(ctx, bson.M{"_id": id.String()})
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (model.User, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (model.User, error) {
	var doc userDocument
	if err := r.users.FindOne(ctx, filter).Decode(&doc); err != nil {
		err = mapError(err)
		if errors.Is(err, model.ErrNotFound) {
			return model.User{}, err
		}
		return model.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return doc.toModel()
}

func (r *UserRepository) List(ctx context.Context) ([]model.User, error) {
	cursor, err := r.users.Find(ctx, bson.D{}, options.Find().SetSort(insertionOrder))
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	var docs []userDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}

	users := make([]model.User, 0, len(docs))
	for _, doc := range docs {
		user, err := doc.toModel()
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func (r *UserRepository) AddBlog(ctx context.Context, userID, blogID uuid.UUID) error {
	return r.updateBlogs(ctx, userID, bson.M{"$addToSet": bson.M{"blogs": blogID.String()}})
}

func (r *UserRepository) RemoveBlog(ctx context.Context, userID, blogID uuid.UUID) error {
	return r.updateBlogs(ctx, userID, bson.M{"$pull": bson.M{"blogs": blogID.String()}})
}

func (r *UserRepository) updateBlogs(ctx context.Context, userID uuid.UUID, update bson.M) error {
	res, err := r.users.UpdateByID(ctx, userID.String(), update)
	if err != nil {
		return fmt.Errorf("failed to update user blogs: %w", err)
	}
	if res.MatchedCount == 0 {
		return model.ErrNotFound
	}
	return nil
}
