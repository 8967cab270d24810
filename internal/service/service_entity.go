package service

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/patas-felizes/backend/internal/logger"
	"github.com/patas-felizes/backend/internal/store"
	"github.com/patas-felizes/backend/models"
)

// entityService is the concrete implementation of EntityService. It wraps
// an entity repository with declarative payload validation and assembles
// pagination envelopes for paged listings.
type entityService[T any] struct {
	repository store.EntityRepository[T]
	validate   *validator.Validate
	logger     *logger.Logger
}

// NewEntityService constructs an EntityService on top of the given
// repository.
func NewEntityService[T any](repository store.EntityRepository[T], logger *logger.Logger) EntityService[T] {
	validate := validator.New()

	// report validation failures by wire name, not Go field name
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &entityService[T]{
		repository: repository,
		validate:   validate,
		logger:     logger,
	}
}

// List returns every stored record.
func (s *entityService[T]) List(ctx context.Context) ([]T, error) {
	return s.repository.List(ctx)
}

// ListPage returns one page of records wrapped in the pagination envelope.
func (s *entityService[T]) ListPage(ctx context.Context, page models.PageRequest) (models.Page[T], error) {
	page = page.Normalize()

	items, totalItems, err := s.repository.ListPage(ctx, page)
	if err != nil {
		return models.Page[T]{}, err
	}

	return models.Page[T]{
		Data:       items,
		Pagination: models.NewPagination(page, totalItems),
	}, nil
}

// Get returns the record with the given id.
func (s *entityService[T]) Get(ctx context.Context, id int64) (T, error) {
	return s.repository.Get(ctx, id)
}

// Create validates the payload and persists a new record, storing the
// server-assigned id on the entity.
//
// Returns a *ValidationError carrying per-field messages when validation
// fails; the repository is not called in that case.
func (s *entityService[T]) Create(ctx context.Context, entity *T) error {
	log := logger.FromContext(ctx)

	if vErr := s.validateEntity(entity); vErr != nil {
		log.Error().Msg("invalid entity data provided")
		return vErr
	}

	if err := s.repository.Create(ctx, entity); err != nil {
		log.Err(err).Msg("entity creation ended with error")
		return fmt.Errorf("entity creation ended with error: %w", err)
	}

	return nil
}

// Update validates the payload and replaces the record with the given id.
func (s *entityService[T]) Update(ctx context.Context, id int64, entity *T) error {
	log := logger.FromContext(ctx)

	if vErr := s.validateEntity(entity); vErr != nil {
		log.Error().Int64("id", id).Msg("invalid entity data provided")
		return vErr
	}

	if err := s.repository.Update(ctx, id, entity); err != nil {
		log.Err(err).Int64("id", id).Msg("entity update ended with error")
		return fmt.Errorf("entity update ended with error: %w", err)
	}

	return nil
}

// Delete removes the record with the given id.
func (s *entityService[T]) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	if err := s.repository.Delete(ctx, id); err != nil {
		log.Err(err).Int64("id", id).Msg("entity deletion ended with error")
		return fmt.Errorf("entity deletion ended with error: %w", err)
	}

	return nil
}

// validateEntity runs declarative validation and collects per-field
// messages keyed by the JSON wire name.
func (s *entityService[T]) validateEntity(entity *T) error {
	err := s.validate.Struct(entity)
	if err == nil {
		return nil
	}

	fields := map[string]string{}
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, fieldError := range validationErrors {
			fields[fieldError.Field()] = "Campo obrigatório"
		}
	} else {
		fields["payload"] = "Dados inválidos"
	}

	return &ValidationError{Fields: fields}
}
