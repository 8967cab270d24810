package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/patas-felizes/backend/internal/logger"
	"github.com/patas-felizes/backend/models"
)

// EntityMeta describes how one shelter entity maps onto its table: the
// table and key names, the insertable columns and the accessors that bind a
// record's fields to query arguments and scan destinations.
type EntityMeta[T any] struct {
	// Table is the table name, e.g. "tab_animal".
	Table string

	// IDCol is the primary key column, e.g. "animal_id".
	IDCol string

	// Cols are the insertable columns in declaration order, excluding IDCol.
	Cols []string

	// Values returns the entity's field values matching Cols order.
	Values func(*T) []any

	// Scan returns scan destinations for IDCol followed by Cols.
	Scan func(*T) []any

	// SetID stores the server-assigned primary key on the entity.
	SetID func(*T, int64)
}

// entityRepository is the PostgreSQL-backed implementation of
// [EntityRepository]. One instance serves one table, described by its
// [EntityMeta]. Queries are built with squirrel using dollar placeholders.
type entityRepository[T any] struct {
	meta    EntityMeta[T]
	db      *DB
	logger  *logger.Logger
	builder sq.StatementBuilderType
}

// NewEntityRepository constructs an [EntityRepository] for the table
// described by meta, backed by the provided database connection and logger.
func NewEntityRepository[T any](meta EntityMeta[T], db *DB, logger *logger.Logger) EntityRepository[T] {
	logger.Debug().Str("table", meta.Table).Msg("creating entity repository")
	return &entityRepository[T]{
		meta:    meta,
		db:      db,
		logger:  logger,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// selectColumns returns IDCol followed by Cols, the order [EntityMeta.Scan]
// destinations are produced in.
func (r *entityRepository[T]) selectColumns() []string {
	return append([]string{r.meta.IDCol}, r.meta.Cols...)
}

// List returns every record of the table ordered by primary key.
func (r *entityRepository[T]) List(ctx context.Context) ([]T, error) {
	query, args, err := r.builder.
		Select(r.selectColumns()...).
		From(r.meta.Table).
		OrderBy(r.meta.IDCol).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryAll(ctx, query, args)
}

// ListPage returns one page of records ordered by primary key, plus the
// total number of records in the table for pagination metadata.
func (r *entityRepository[T]) ListPage(ctx context.Context, page models.PageRequest) ([]T, int64, error) {
	log := logger.FromContext(ctx)
	page = page.Normalize()

	countQuery, countArgs, err := r.builder.
		Select("COUNT(*)").
		From(r.meta.Table).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var totalItems int64
	if err = r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&totalItems); err != nil {
		log.Err(err).Str("func", "*entityRepository.ListPage").Str("table", r.meta.Table).Msg("error counting rows")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	query, args, err := r.builder.
		Select(r.selectColumns()...).
		From(r.meta.Table).
		OrderBy(r.meta.IDCol).
		Limit(uint64(page.PerPage)).
		Offset(uint64(page.Offset())).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	items, err := r.queryAll(ctx, query, args)
	if err != nil {
		return nil, 0, err
	}

	return items, totalItems, nil
}

// Get returns the record with the given primary key.
// Returns [ErrEntityNotFound] when no such record exists.
func (r *entityRepository[T]) Get(ctx context.Context, id int64) (T, error) {
	log := logger.FromContext(ctx)

	var entity T
	query, args, err := r.builder.
		Select(r.selectColumns()...).
		From(r.meta.Table).
		Where(sq.Eq{r.meta.IDCol: id}).
		ToSql()
	if err != nil {
		return entity, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err = row.Scan(r.meta.Scan(&entity)...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity, ErrEntityNotFound
		}

		log.Err(err).Str("func", "*entityRepository.Get").Str("table", r.meta.Table).Msg("error: scanning error")
		return entity, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return entity, nil
}

// Create persists a new record and stores the server-assigned primary key
// on the entity.
func (r *entityRepository[T]) Create(ctx context.Context, entity *T) error {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Insert(r.meta.Table).
		Columns(r.meta.Cols...).
		Values(r.meta.Values(entity)...).
		Suffix("RETURNING " + r.meta.IDCol).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var id int64
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		log.Err(err).Str("func", "*entityRepository.Create").Str("table", r.meta.Table).Msg("error inserting row")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	r.meta.SetID(entity, id)
	return nil
}

// Update replaces every non-key column of the record with the given primary
// key. Returns [ErrEntityNotFound] when no such record exists.
func (r *entityRepository[T]) Update(ctx context.Context, id int64, entity *T) error {
	log := logger.FromContext(ctx)

	update := r.builder.Update(r.meta.Table)
	values := r.meta.Values(entity)
	for i, col := range r.meta.Cols {
		update = update.Set(col, values[i])
	}

	query, args, err := update.Where(sq.Eq{r.meta.IDCol: id}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*entityRepository.Update").Str("table", r.meta.Table).Msg("error updating row")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrEntityNotFound
	}

	r.meta.SetID(entity, id)
	return nil
}

// Delete removes the record with the given primary key.
// Returns [ErrEntityNotFound] when no such record exists.
func (r *entityRepository[T]) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Delete(r.meta.Table).
		Where(sq.Eq{r.meta.IDCol: id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*entityRepository.Delete").Str("table", r.meta.Table).Msg("error deleting row")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrEntityNotFound
	}

	return nil
}

// queryAll runs a multi-row SELECT and scans every row into a slice.
func (r *entityRepository[T]) queryAll(ctx context.Context, query string, args []any) ([]T, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*entityRepository.queryAll").Str("table", r.meta.Table).Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]T, 0)
	for rows.Next() {
		var entity T
		if err = rows.Scan(r.meta.Scan(&entity)...); err != nil {
			log.Err(err).Str("func", "*entityRepository.queryAll").Str("table", r.meta.Table).Msg("error scanning rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		items = append(items, entity)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}
