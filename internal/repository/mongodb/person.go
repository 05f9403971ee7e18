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

var _ model.PersonStore = (*PersonRepository)(nil)

type personDocument struct {
	ID     string `bson:"_id"`
	Name   string `bson:"name"`
	Number string `bson:"number"`
}

func (d personDocument) toModel() (model.Person, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return model.Person{}, fmt.Errorf("failed to parse person id: %w", err)
	}
	return model.Person{ID: id, Name: d.Name, Number: d.Number}, nil
}

type PersonRepository struct {
	persons *mongo.Collection
}

func NewPersonRepository(conn *Connection) *PersonRepository {
	return &PersonRepository{persons: conn.collection(personsCollection)}
}

func (r *PersonRepository) Create(ctx context.Context, person model.Person) (model.Person, error) {
	doc := personDocument{ID: person.ID.String(), Name: person.Name, Number: person.Number}
	if _, err := r.persons.InsertOne(ctx, doc); err != nil {
		return model.Person{}, fmt.Errorf("failed to create person: %w", err)
	}
	return person, nil
}

func (r *PersonRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Person, error) {
	var doc personDocument
	if err := r.persons.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&doc); err != nil {
		err = mapError(err)
		if errors.Is(err, model.ErrNotFound) {
			return model.Person{}, err
		}
		return model.Person{}, fmt.Errorf("failed to get person: %w", err)
	}
	return doc.toModel()
}

func (r *PersonRepository) List(ctx context.Context) ([]model.Person, error) {
	cursor, err := r.persons.Find(ctx, bson.D{}, options.Find().SetSort(insertionOrder))
	if err != nil {
		return nil, fmt.Errorf("failed to list persons: %w", err)
	}

	var docs []personDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode persons: %w", err)
	}

	persons := make([]model.Person, 0, len(docs))
	for _, doc := range docs {
		p, err := doc.toModel()
		if err != nil {
			return nil, err
		}
		persons = append(persons, p)
	}
	return persons, nil
}

func (r *PersonRepository) Update(ctx context.Context, person model.Person) (model.Person, error) {
	update := bson.M{"$set": bson.M{"name": person.Name, "number": person.Number}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc personDocument
	if err := r.persons.FindOneAndUpdate(ctx, bson.M{"_id": person.ID.String()}, update, opts).Decode(&doc); err != nil {
		err = mapError(err)
		if errors.Is(err, model.ErrNotFound) {
			return model.Person{}, err
		}
		return model.Person{}, fmt.Errorf("failed to update person: %w", err)
	}
	return doc.toModel()
}

func (r *PersonRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.persons.DeleteOne(ctx, bson.M{"_id": id.String()})
	if err != nil {
		return fmt.Errorf("failed to delete person: %w", err)
	}
	if res.DeletedCount == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *PersonRepository) Count(ctx context.Context) (int, error) {
	n, err := r.persons.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("failed to count persons: %w", err)
	}
	return int(n), nil
}
