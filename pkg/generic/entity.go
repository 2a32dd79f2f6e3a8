package generic

import "go.mongodb.org/mongo-driver/bson/primitive"

// Entity is implemented by every model persisted through the base
// repository. A zero ID marks an entity the store has not assigned an
// identity to yet.
type Entity interface {
	GetID() primitive.ObjectID
	SetID(primitive.ObjectID)
}
