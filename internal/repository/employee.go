package repository

import (
	"context"

	"employees/internal/model"
	"employees/pkg/generic"

	"go.mongodb.org/mongo-driver/mongo"
)

// IEmployeeRepository defines employee persistence
type IEmployeeRepository interface {
	Save(ctx context.Context, employee *model.Employee) (*model.Employee, error)
	FindByID(ctx context.Context, id string) (*model.Employee, error)
	FindAll(ctx context.Context) ([]*model.Employee, error)
	DeleteByID(ctx context.Context, id string) error
}

// EmployeeRepository implements employee persistence over MongoDB
type EmployeeRepository struct {
	*generic.MongoBaseRepository[*model.Employee]
}

func NewEmployeeRepository(db *mongo.Database) IEmployeeRepository {
	return &EmployeeRepository{
		MongoBaseRepository: generic.NewBaseRepository[*model.Employee](db.Collection("employees")),
	}
}
