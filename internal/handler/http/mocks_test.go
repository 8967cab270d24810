package http

import (
	"context"
	"net/http"

	"github.com/patas-felizes/backend/internal/logger"
	"github.com/patas-felizes/backend/internal/service"
	"github.com/patas-felizes/backend/models"
)

// ---- Helpers ----

// mockAuthService is a hand-rolled service.AuthService with pluggable
// behaviour per method.
type mockAuthService struct {
	registerUserFn      func(ctx context.Context, user models.User, password string) (models.User, error)
	loginFn             func(ctx context.Context, email, password string) (models.User, error)
	issueAdHocTokenFn   func(ctx context.Context, username string) (models.Token, error)
	issueSessionTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn        func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, user models.User, password string) (models.User, error) {
	return m.registerUserFn(ctx, user, password)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (models.User, error) {
	return m.loginFn(ctx, email, password)
}

func (m *mockAuthService) IssueAdHocToken(ctx context.Context, username string) (models.Token, error) {
	return m.issueAdHocTokenFn(ctx, username)
}

func (m *mockAuthService) IssueSessionToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.issueSessionTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// stubEntityService is a hand-rolled service.EntityService with pluggable
// behaviour per method.
type stubEntityService[T any] struct {
	listFn     func(ctx context.Context) ([]T, error)
	listPageFn func(ctx context.Context, page models.PageRequest) (models.Page[T], error)
	getFn      func(ctx context.Context, id int64) (T, error)
	createFn   func(ctx context.Context, entity *T) error
	updateFn   func(ctx context.Context, id int64, entity *T) error
	deleteFn   func(ctx context.Context, id int64) error
}

func (s *stubEntityService[T]) List(ctx context.Context) ([]T, error) {
	return s.listFn(ctx)
}

func (s *stubEntityService[T]) ListPage(ctx context.Context, page models.PageRequest) (models.Page[T], error) {
	return s.listPageFn(ctx, page)
}

func (s *stubEntityService[T]) Get(ctx context.Context, id int64) (T, error) {
	return s.getFn(ctx, id)
}

func (s *stubEntityService[T]) Create(ctx context.Context, entity *T) error {
	return s.createFn(ctx, entity)
}

func (s *stubEntityService[T]) Update(ctx context.Context, id int64, entity *T) error {
	return s.updateFn(ctx, id, entity)
}

func (s *stubEntityService[T]) Delete(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

func newHandlerWithAuthService(authSvc service.AuthService) *Handler {
	return &Handler{
		logger: logger.Nop(),
		services: &service.Services{
			AuthService: authSvc,
		},
	}
}

// injectNopLogger puts a nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	ctx := nop.Logger.WithContext(r.Context())
	return r.WithContext(ctx)
}
