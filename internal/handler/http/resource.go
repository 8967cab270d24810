package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/patas-felizes/backend/internal/logger"
	"github.com/patas-felizes/backend/internal/service"
	"github.com/patas-felizes/backend/internal/store"
	"github.com/patas-felizes/backend/internal/utils"
	"github.com/patas-felizes/backend/models"
)

// resourceMessages carries the gender-correct Portuguese strings each
// entity uses in its list-empty and not-found responses.
type resourceMessages struct {
	// Empty is the 404 body message when a listing finds no records,
	// e.g. "Nenhum animal encontrado no banco de dados.".
	Empty string

	// NotFound is the 404 body message when a record lookup misses,
	// e.g. "Animal não encontrado no banco de dados.".
	NotFound string
}

// resource is the HTTP surface of one shelter entity. It mounts the same
// five operations plus the paginated listing for every entity, delegating
// to the entity's service.
type resource[T any] struct {
	service  service.EntityService[T]
	messages resourceMessages
	logger   *logger.Logger
}

// newResource builds the CRUD handler for one entity.
func newResource[T any](svc service.EntityService[T], messages resourceMessages, logger *logger.Logger) *resource[T] {
	return &resource[T]{
		service:  svc,
		messages: messages,
		logger:   logger,
	}
}

// routes returns the chi router for this entity, to be mounted under the
// entity's path prefix.
func (res *resource[T]) routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", res.list)
	r.Get("/paginated", res.listPaginated)
	r.Get("/{id}", res.get)
	r.Post("/", res.create)
	r.Put("/{id}", res.update)
	r.Delete("/{id}", res.delete)

	return r
}

// list handles GET /: every stored record, or 404 with the entity's
// empty-list message when there are none.
func (res *resource[T]) list(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	items, err := res.service.List(ctx)
	if err != nil {
		log.Err(err).Msg("listing entities failed")
		writeResourceError(w, err)
		return
	}

	if len(items) == 0 {
		utils.WriteJSON(w, map[string]string{"message": res.messages.Empty}, http.StatusNotFound)
		return
	}

	utils.WriteJSON(w, items, http.StatusOK)
}

// listPaginated handles GET /paginated: one page of records wrapped in
// the pagination envelope, with absolute next/prev links derived from the
// request URL.
func (res *resource[T]) listPaginated(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	page := pageRequestFromQuery(r.URL.Query())

	result, err := res.service.ListPage(ctx, page)
	if err != nil {
		log.Err(err).Msg("paginated listing failed")
		writeResourceError(w, err)
		return
	}

	if len(result.Data) == 0 {
		utils.WriteJSON(w, map[string]string{"message": res.messages.Empty}, http.StatusNotFound)
		return
	}

	fillPaginationLinks(&result.Pagination, r)

	utils.WriteJSON(w, result, http.StatusOK)
}

// get handles GET /{id}.
func (res *resource[T]) get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := idFromRequest(r)
	if err != nil {
		utils.WriteJSON(w, map[string]string{"message": "Identificador inválido"}, http.StatusBadRequest)
		return
	}

	item, err := res.service.Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrEntityNotFound) {
			utils.WriteJSON(w, map[string]string{"message": res.messages.NotFound}, http.StatusNotFound)
			return
		}

		log.Err(err).Int64("id", id).Msg("entity lookup failed")
		writeResourceError(w, err)
		return
	}

	utils.WriteJSON(w, item, http.StatusOK)
}

// create handles POST /: validates the payload and answers 201 with the
// stored record, including its server-assigned id.
func (res *resource[T]) create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var entity T
	if err := json.NewDecoder(r.Body).Decode(&entity); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, map[string]string{"message": "JSON inválido"}, http.StatusBadRequest)
		return
	}

	if err := res.service.Create(ctx, &entity); err != nil {
		var vErr *service.ValidationError
		if errors.As(err, &vErr) {
			utils.WriteJSON(w, map[string]any{
				"message": "Erro de validação",
				"errors":  vErr.Fields,
			}, http.StatusBadRequest)
			return
		}

		log.Err(err).Msg("entity creation failed")
		writeResourceError(w, err)
		return
	}

	utils.WriteJSON(w, entity, http.StatusCreated)
}

// update handles PUT /{id}: whole-record replacement.
func (res *resource[T]) update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := idFromRequest(r)
	if err != nil {
		utils.WriteJSON(w, map[string]string{"message": "Identificador inválido"}, http.StatusBadRequest)
		return
	}

	var entity T
	if err = json.NewDecoder(r.Body).Decode(&entity); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, map[string]string{"message": "JSON inválido"}, http.StatusBadRequest)
		return
	}

	if err = res.service.Update(ctx, id, &entity); err != nil {
		var vErr *service.ValidationError
		switch {
		case errors.As(err, &vErr):
			utils.WriteJSON(w, map[string]any{
				"message": "Erro de validação",
				"errors":  vErr.Fields,
			}, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrEntityNotFound):
			utils.WriteJSON(w, map[string]string{"message": res.messages.NotFound}, http.StatusNotFound)
			return
		default:
			log.Err(err).Int64("id", id).Msg("entity update failed")
			writeResourceError(w, err)
			return
		}
	}

	utils.WriteJSON(w, entity, http.StatusOK)
}

// delete handles DELETE /{id}: answers 204 with an empty body.
func (res *resource[T]) delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := idFromRequest(r)
	if err != nil {
		utils.WriteJSON(w, map[string]string{"message": "Identificador inválido"}, http.StatusBadRequest)
		return
	}

	if err = res.service.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrEntityNotFound) {
			utils.WriteJSON(w, map[string]string{"message": res.messages.NotFound}, http.StatusNotFound)
			return
		}

		log.Err(err).Int64("id", id).Msg("entity deletion failed")
		writeResourceError(w, err)
		return
	}

	utils.WriteNoContent(w, http.StatusNoContent)
}

// idFromRequest parses the {id} path parameter.
func idFromRequest(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// pageRequestFromQuery reads page and per_page query parameters, falling
// back to the defaults on absent or malformed values.
func pageRequestFromQuery(query url.Values) models.PageRequest {
	page, _ := strconv.Atoi(query.Get("page"))
	perPage, _ := strconv.Atoi(query.Get("per_page"))

	return models.PageRequest{Page: page, PerPage: perPage}.Normalize()
}

// fillPaginationLinks derives absolute next/prev page URLs from the
// request, preserving the route and per_page.
func fillPaginationLinks(p *models.Pagination, r *http.Request) {
	buildLink := func(page int) string {
		link := *r.URL
		query := link.Query()
		query.Set("page", strconv.Itoa(page))
		query.Set("per_page", strconv.Itoa(p.PerPage))
		link.RawQuery = query.Encode()

		scheme := "http"
		if r.TLS != nil {
			scheme = "https"
		}

		return fmt.Sprintf("%s://%s%s", scheme, r.Host, link.RequestURI())
	}

	if p.HasNext() {
		p.NextPage = buildLink(p.Page + 1)
	}
	if p.HasPrev() {
		p.PrevPage = buildLink(p.Page - 1)
	}
}

// writeResourceError maps a service error onto its HTTP status with a
// generic message body, keeping store details out of responses.
func writeResourceError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	utils.WriteJSON(w, map[string]string{"message": http.StatusText(status)}, status)
}
