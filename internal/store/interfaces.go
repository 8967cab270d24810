package store

import (
	"context"

	"github.com/patas-felizes/backend/models"
)

// UserRepository persists registered user accounts for the password-based
// authentication flow.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// EntityRepository provides CRUD access to one shelter entity table. All
// shelter entities share the same access shape: integer surrogate key,
// flat column list, whole-record updates.
type EntityRepository[T any] interface {
	List(ctx context.Context) ([]T, error)
	ListPage(ctx context.Context, page models.PageRequest) ([]T, int64, error)
	Get(ctx context.Context, id int64) (T, error)
	Create(ctx context.Context, entity *T) error
	Update(ctx context.Context, id int64, entity *T) error
	Delete(ctx context.Context, id int64) error
}
