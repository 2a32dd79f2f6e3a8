package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Employee is the persisted representation, stored in the "employees"
// collection. The id is assigned by the store on first insert.
type Employee struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FirstName string             `bson:"firstName" json:"firstName"`
	LastName  string             `bson:"lastName" json:"lastName"`
	Email     string             `bson:"email" json:"email"`
}

func (e *Employee) GetID() primitive.ObjectID   { return e.ID }
func (e *Employee) SetID(id primitive.ObjectID) { e.ID = id }

// EmployeeDto is the wire representation. The id is empty on create
// requests and populated on every response.
type EmployeeDto struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// ToDto converts the entity to its wire representation.
func (e *Employee) ToDto() EmployeeDto {
	id := ""
	if !e.ID.IsZero() {
		id = e.ID.Hex()
	}
	return EmployeeDto{
		ID:        id,
		FirstName: e.FirstName,
		LastName:  e.LastName,
		Email:     e.Email,
	}
}

// ToEntity converts the DTO to the persisted representation. An empty
// id maps to the zero ObjectID so the store assigns one on insert; a
// non-empty id must be a valid ObjectID hex string.
func (d EmployeeDto) ToEntity() (*Employee, error) {
	var id primitive.ObjectID
	if d.ID != "" {
		oid, err := primitive.ObjectIDFromHex(d.ID)
		if err != nil {
			return nil, err
		}
		id = oid
	}
	return &Employee{
		ID:        id,
		FirstName: d.FirstName,
		LastName:  d.LastName,
		Email:     d.Email,
	}, nil
}

// ToDtoList converts a slice of entities. The result is never nil so an
// empty list serializes as [] rather than null.
func ToDtoList(employees []*Employee) []EmployeeDto {
	dtos := make([]EmployeeDto, 0, len(employees))
	for _, e := range employees {
		dtos = append(dtos, e.ToDto())
	}
	return dtos
}
