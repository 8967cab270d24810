package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patas-felizes/backend/internal/logger"
	"github.com/patas-felizes/backend/internal/service"
	"github.com/patas-felizes/backend/internal/store"
	"github.com/patas-felizes/backend/models"
)

var animalMessages = resourceMessages{
	Empty:    "Nenhum animal encontrado no banco de dados.",
	NotFound: "Animal não encontrado no banco de dados.",
}

func sampleAnimal(id int64) models.Animal {
	return models.Animal{
		AnimalID:     id,
		Name:         "Thor",
		Age:          "2 anos",
		Photo:        []byte{0x1},
		Description:  "Muito dócil",
		Sex:          "Macho",
		Neutered:     "Sim",
		Status:       "Para adoção",
		Species:      "Cachorro",
		RegisteredAt: "2025-01-15",
	}
}

func newAnimalResource(svc service.EntityService[models.Animal]) *resource[models.Animal] {
	return newResource(svc, animalMessages, logger.Nop())
}

func serveResource(res *resource[models.Animal], method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req = injectNopLogger(req)
	rr := httptest.NewRecorder()
	res.routes().ServeHTTP(rr, req)
	return rr
}

func TestResourceList(t *testing.T) {
	tests := []struct {
		name       string
		listFn     func(ctx context.Context) ([]models.Animal, error)
		wantStatus int
		wantBody   string
	}{
		{
			name: "records found",
			listFn: func(_ context.Context) ([]models.Animal, error) {
				return []models.Animal{sampleAnimal(1)}, nil
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "empty table answers 404 with the entity message",
			listFn: func(_ context.Context) ([]models.Animal, error) {
				return nil, nil
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `{"message":"Nenhum animal encontrado no banco de dados."}`,
		},
		{
			name: "store failure answers 500",
			listFn: func(_ context.Context) ([]models.Animal, error) {
				return nil, fmt.Errorf("%w: boom", store.ErrExecutingQuery)
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"message":"Internal Server Error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := newAnimalResource(&stubEntityService[models.Animal]{listFn: tt.listFn})

			rr := serveResource(res, http.MethodGet, "/", "")

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rr.Body.String())
			}
		})
	}
}

func TestResourceListPaginated_Envelope(t *testing.T) {
	res := newAnimalResource(&stubEntityService[models.Animal]{
		listPageFn: func(_ context.Context, page models.PageRequest) (models.Page[models.Animal], error) {
			assert.Equal(t, models.PageRequest{Page: 2, PerPage: 5}, page)
			return models.Page[models.Animal]{
				Data:       []models.Animal{sampleAnimal(6)},
				Pagination: models.NewPagination(page, 12),
			}, nil
		},
	})

	rr := serveResource(res, http.MethodGet, "/paginated?page=2&per_page=5", "")

	require.Equal(t, http.StatusOK, rr.Code)

	var got models.Page[models.Animal]
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))

	assert.Len(t, got.Data, 1)
	assert.Equal(t, 2, got.Pagination.Page)
	assert.Equal(t, 5, got.Pagination.PerPage)
	assert.Equal(t, int64(12), got.Pagination.TotalItems)
	assert.Equal(t, 3, got.Pagination.TotalPages)
	assert.Equal(t, "http://example.com/paginated?page=3&per_page=5", got.Pagination.NextPage)
	assert.Equal(t, "http://example.com/paginated?page=1&per_page=5", got.Pagination.PrevPage)
}

func TestResourceListPaginated_DefaultsApplied(t *testing.T) {
	res := newAnimalResource(&stubEntityService[models.Animal]{
		listPageFn: func(_ context.Context, page models.PageRequest) (models.Page[models.Animal], error) {
			assert.Equal(t, models.PageRequest{Page: 1, PerPage: 10}, page)
			return models.Page[models.Animal]{
				Data:       []models.Animal{sampleAnimal(1)},
				Pagination: models.NewPagination(page, 1),
			}, nil
		},
	})

	rr := serveResource(res, http.MethodGet, "/paginated?page=abc", "")

	require.Equal(t, http.StatusOK, rr.Code)

	var got models.Page[models.Animal]
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))

	// a single page has no neighbours
	assert.Empty(t, got.Pagination.NextPage)
	assert.Empty(t, got.Pagination.PrevPage)
}

func TestResourceListPaginated_EmptyPage(t *testing.T) {
	res := newAnimalResource(&stubEntityService[models.Animal]{
		listPageFn: func(_ context.Context, page models.PageRequest) (models.Page[models.Animal], error) {
			return models.Page[models.Animal]{Pagination: models.NewPagination(page, 0)}, nil
		},
	})

	rr := serveResource(res, http.MethodGet, "/paginated", "")

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"message":"Nenhum animal encontrado no banco de dados."}`, rr.Body.String())
}

func TestResourceGet(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		getFn      func(ctx context.Context, id int64) (models.Animal, error)
		wantStatus int
		wantBody   string
	}{
		{
			name:   "found",
			target: "/3",
			getFn: func(_ context.Context, id int64) (models.Animal, error) {
				assert.Equal(t, int64(3), id)
				return sampleAnimal(3), nil
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "miss answers 404 with the entity message",
			target: "/99",
			getFn: func(_ context.Context, _ int64) (models.Animal, error) {
				return models.Animal{}, store.ErrEntityNotFound
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `{"message":"Animal não encontrado no banco de dados."}`,
		},
		{
			name:       "non-numeric id answers 400",
			target:     "/abc",
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"message":"Identificador inválido"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := newAnimalResource(&stubEntityService[models.Animal]{getFn: tt.getFn})

			rr := serveResource(res, http.MethodGet, tt.target, "")

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rr.Body.String())
			}
		})
	}
}

func TestResourceCreate_Success(t *testing.T) {
	res := newAnimalResource(&stubEntityService[models.Animal]{
		createFn: func(_ context.Context, entity *models.Animal) error {
			assert.Equal(t, "Thor", entity.Name)
			entity.AnimalID = 42
			return nil
		},
	})

	payload, err := json.Marshal(sampleAnimal(0))
	require.NoError(t, err)

	rr := serveResource(res, http.MethodPost, "/", string(payload))

	require.Equal(t, http.StatusCreated, rr.Code)

	var got models.Animal
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, int64(42), got.AnimalID)
	assert.Equal(t, "Thor", got.Name)
}

func TestResourceCreate_ValidationErrors(t *testing.T) {
	res := newAnimalResource(&stubEntityService[models.Animal]{
		createFn: func(_ context.Context, _ *models.Animal) error {
			return &service.ValidationError{Fields: map[string]string{
				"nome":  "Campo obrigatório",
				"idade": "Campo obrigatório",
			}}
		},
	})

	rr := serveResource(res, http.MethodPost, "/", `{"sexo":"Macho"}`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"message":"Erro de validação","errors":{"nome":"Campo obrigatório","idade":"Campo obrigatório"}}`, rr.Body.String())
}

func TestResourceCreate_InvalidJSON(t *testing.T) {
	res := newAnimalResource(&stubEntityService[models.Animal]{})

	rr := serveResource(res, http.MethodPost, "/", `{broken`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"message":"JSON inválido"}`, rr.Body.String())
}

func TestResourceUpdate(t *testing.T) {
	t.Run("success answers 200 with the updated record", func(t *testing.T) {
		res := newAnimalResource(&stubEntityService[models.Animal]{
			updateFn: func(_ context.Context, id int64, entity *models.Animal) error {
				assert.Equal(t, int64(5), id)
				entity.AnimalID = id
				return nil
			},
		})

		payload, err := json.Marshal(sampleAnimal(0))
		require.NoError(t, err)

		rr := serveResource(res, http.MethodPut, "/5", string(payload))

		require.Equal(t, http.StatusOK, rr.Code)

		var got models.Animal
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, int64(5), got.AnimalID)
	})

	t.Run("miss answers 404 with the entity message", func(t *testing.T) {
		res := newAnimalResource(&stubEntityService[models.Animal]{
			updateFn: func(_ context.Context, _ int64, _ *models.Animal) error {
				return store.ErrEntityNotFound
			},
		})

		payload, err := json.Marshal(sampleAnimal(0))
		require.NoError(t, err)

		rr := serveResource(res, http.MethodPut, "/99", string(payload))

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.JSONEq(t, `{"message":"Animal não encontrado no banco de dados."}`, rr.Body.String())
	})

	t.Run("validation failure answers 400", func(t *testing.T) {
		res := newAnimalResource(&stubEntityService[models.Animal]{
			updateFn: func(_ context.Context, _ int64, _ *models.Animal) error {
				return &service.ValidationError{Fields: map[string]string{"nome": "Campo obrigatório"}}
			},
		})

		rr := serveResource(res, http.MethodPut, "/5", `{}`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"message":"Erro de validação","errors":{"nome":"Campo obrigatório"}}`, rr.Body.String())
	})
}

func TestResourceDelete(t *testing.T) {
	t.Run("success answers 204 with an empty body", func(t *testing.T) {
		res := newAnimalResource(&stubEntityService[models.Animal]{
			deleteFn: func(_ context.Context, id int64) error {
				assert.Equal(t, int64(7), id)
				return nil
			},
		})

		rr := serveResource(res, http.MethodDelete, "/7", "")

		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Empty(t, rr.Body.String())
	})

	t.Run("miss answers 404 with the entity message", func(t *testing.T) {
		res := newAnimalResource(&stubEntityService[models.Animal]{
			deleteFn: func(_ context.Context, _ int64) error {
				return store.ErrEntityNotFound
			},
		})

		rr := serveResource(res, http.MethodDelete, "/99", "")

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.JSONEq(t, `{"message":"Animal não encontrado no banco de dados."}`, rr.Body.String())
	})

	t.Run("unexpected store failure answers 500", func(t *testing.T) {
		res := newAnimalResource(&stubEntityService[models.Animal]{
			deleteFn: func(_ context.Context, _ int64) error {
				return errors.New("connection reset")
			},
		})

		rr := serveResource(res, http.MethodDelete, "/7", "")

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
