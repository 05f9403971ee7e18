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

var _ model.BlogStore = (*BlogRepository)(nil)

type blogDocument struct {
	ID     string `bson:"_id"`
	Title  string `bson:"title"`
	URL    string `bson:"url"`
	Author string `bson:"author"`
	Likes  int    `bson:"likes"`
	User   string `bson:"user"`
}

func newBlogDocument(b model.Blog) blogDocument {
	return blogDocument{
		ID:     b.ID.String(),
		Title:  b.Title,
		URL:    b.URL,
		Author: b.Author,
		Likes:  b.Likes,
		User:   b.Owner.String(),
	}
}

func (d blogDocument) toModel() (model.Blog, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return model.Blog{}, fmt.Errorf("failed to parse blog id: %w", err)
	}
	owner, err := uuid.Parse(d.User)
	if err != nil {
		return model.Blog{}, fmt.Errorf("failed to parse blog owner: %w", err)
	}
	return model.Blog{
		ID:     id,
		Title:  d.Title,
		URL:    d.URL,
		Author: d.Author,
		Likes:  d.Likes,
		Owner:  owner,
	}, nil
}

type BlogRepository struct {
	blogs *mongo.Collection
}

func NewBlogRepository(conn *Connection) *BlogRepository {
	return &BlogRepository{blogs: conn.collection(blogsCollection)}
}

func (r *BlogRepository) Create(ctx context.Context, blog model.Blog) (model.Blog, error) {
	doc := newBlogDocument(blog)
	if _, err := r.blogs.InsertOne(ctx, doc); err != nil {
		err = mapError(err)
		if errors.Is(err, model.ErrAlreadyExists) {
			return model.Blog{}, err
		}
		return model.Blog{}, fmt.Errorf("failed to create blog: %w", err)
	}
	return doc.toModel()
}

func (r *BlogRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Blog, error) {
	var doc blogDocument
	if err := r.blogs.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&doc); err != nil {
		err = mapError(err)
		if errors.Is(err, model.ErrNotFound) {
			return model.Blog{}, err
		}
		return model.Blog{}, fmt.Errorf("failed to get blog: %w", err)
	}
	return doc.toModel()
}

func (r *BlogRepository) List(ctx context.Context) ([]model.Blog, error) {
	cursor, err := r.blogs.Find(ctx, bson.D{}, options.Find().SetSort(insertionOrder))
	if err != nil {
		return nil, fmt.Errorf("failed to list blogs: %w", err)
	}

	var docs []blogDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode blogs: %w", err)
	}

	blogs := make([]model.Blog, 0, len(docs))
	for _, doc := range docs {
		blog, err := doc.toModel()
		if err != nil {
			return nil, err
		}
		blogs = append(blogs, blog)
	}
	return blogs, nil
}

func (r *BlogRepository) Update(ctx context.Context, blog model.Blog) (model.Blog, error) {
	update := bson.M{"$set": bson.M{
		"title":  blog.Title,
		"url":    blog.URL,
		"author": blog.Author,
		"likes":  blog.Likes,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc blogDocument
	if err := r.blogs.FindOneAndUpdate(ctx, bson.M{"_id": blog.ID.String()}, update, opts).Decode(&doc); err != nil {
		err = mapError(err)
		if errors.Is(err, model.ErrNotFound) {
			return model.Blog{}, err
		}
		return model.Blog{}, fmt.Errorf("failed to update blog: %w", err)
	}
	return doc.toModel()
}

func (r *BlogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.blogs.DeleteOne(ctx, bson.M{"_id": id.String()})
	if err != nil {
		return fmt.Errorf("failed to delete blog: %w", err)
	}
	if res.DeletedCount == 0 {
		return model.ErrNotFound
	}
	return nil
}
