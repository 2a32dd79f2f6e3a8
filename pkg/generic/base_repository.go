package generic

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrInvalidID reports an identifier that is not a valid ObjectID hex string.
var ErrInvalidID = errors.New("invalid id")

// BaseRepository is the identifier-addressed CRUD contract over a
// document collection. Single-value lookups yield the zero value with a
// nil error when no document matches; callers decide how to surface that.
type BaseRepository[T Entity] interface {
	Save(ctx context.Context, entity T) (T, error)
	FindByID(ctx context.Context, id string) (T, error)
	FindAll(ctx context.Context) ([]T, error)
	DeleteByID(ctx context.Context, id string) error
}

// MongoBaseRepository implements BaseRepository over a mongo collection
type MongoBaseRepository[T Entity] struct {
	Collection *mongo.Collection
}

func NewBaseRepository[T Entity](collection *mongo.Collection) *MongoBaseRepository[T] {
	return &MongoBaseRepository[T]{Collection: collection}
}

// Save inserts the entity when its id is unset, letting the store assign
// one, and otherwise replaces the document with that id (upsert).
func (r *MongoBaseRepository[T]) Save(ctx context.Context, entity T) (T, error) {
	var zero T

	if entity.GetID().IsZero() {
		res, err := r.Collection.InsertOne(ctx, entity)
		if err != nil {
			return zero, err
		}
		if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
			entity.SetID(oid)
		}
		return entity, nil
	}

	opts := options.Replace().SetUpsert(true)
	if _, err := r.Collection.ReplaceOne(ctx, bson.M{"_id": entity.GetID()}, entity, opts); err != nil {
		return zero, err
	}
	return entity, nil
}

// FindByID returns the matching entity, or the zero value with a nil
// error when no document has that id.
func (r *MongoBaseRepository[T]) FindByID(ctx context.Context, id string) (T, error) {
	var zero T

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return zero, ErrInvalidID
	}

	var entity T
	err = r.Collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&entity)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return zero, nil
		}
		return zero, err
	}
	return entity, nil
}

// FindAll walks the collection cursor in store order. An empty
// collection yields an empty slice, not an error.
func (r *MongoBaseRepository[T]) FindAll(ctx context.Context) ([]T, error) {
	cur, err := r.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	entities := make([]T, 0)
	for cur.Next(ctx) {
		var entity T
		if err := cur.Decode(&entity); err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, cur.Err()
}

// DeleteByID removes the document with the given id. Deleting an id
// that matches nothing, or that never could, is not an error.
func (r *MongoBaseRepository[T]) DeleteByID(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}
	_, err = r.Collection.DeleteOne(ctx, bson.M{"_id": objID})
	return err
}
