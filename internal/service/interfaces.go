package service

import (
	"context"

	"github.com/patas-felizes/backend/models"
)

// AuthService covers both authentication flows of the service: ad-hoc
// tokens minted from Basic credentials and registered-user tokens backed by
// the credential store, plus verification of either kind.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User, password string) (models.User, error)
	Login(ctx context.Context, email, password string) (models.User, error)
	IssueAdHocToken(ctx context.Context, username string) (models.Token, error)
	IssueSessionToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// EntityService exposes validated CRUD operations for one shelter entity.
type EntityService[T any] interface {
	List(ctx context.Context) ([]T, error)
	ListPage(ctx context.Context, page models.PageRequest) (models.Page[T], error)
	Get(ctx context.Context, id int64) (T, error)
	Create(ctx context.Context, entity *T) error
	Update(ctx context.Context, id int64, entity *T) error
	Delete(ctx context.Context, id int64) error
}
