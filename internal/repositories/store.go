package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/JaimeStill/codynn/internal/languages"
	"github.com/JaimeStill/codynn/pkg/pagination"
	"github.com/JaimeStill/codynn/pkg/query"
	"github.com/JaimeStill/codynn/pkg/repository"
)

type repo struct {
	languages  languages.System
	db         *sql.DB
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates the repository system. Language references are resolved through langs.
func New(langs languages.System, db *sql.DB, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		languages:  langs,
		db:         db,
		logger:     logger.With("system", "repositories"),
		pagination: pagination,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination)
}

func (r *repo) List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Repository], error) {
	order, ok := sortOptions.Resolve(page.SortBy)
	if !ok {
		return nil, fmt.Errorf("%w: unknown sortBy %q", pagination.ErrInvalidRequest, page.SortBy)
	}
	if filters.Language != nil {
		if err := r.resolveLanguage(ctx, *filters.Language); err != nil {
			return nil, err
		}
	}
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort...).
		WhereSearch(page.Search, "Title").
		OrderByFields(order)

	filters.Apply(qb)

	countSQL, countArgs := qb.BuildCount()
	total, err := repository.QueryCount(ctx, r.db, countSQL, countArgs)
	if err != nil {
		return nil, fmt.Errorf("count repositories: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.Limit)
	repos, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanRepository)
	if err != nil {
		return nil, fmt.Errorf("query repositories: %w", err)
	}

	result := pagination.NewPageResult(repos, total, page.Page, page.Limit)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Repository, error) {
	q, args := query.
		NewBuilder(projection).
		BuildSingle("Id", id)

	rp, err := repository.QueryOne(ctx, r.db, q, args, scanRepository)
	if err != nil {
		return nil, mapError(err)
	}
	return &rp, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Repository, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := r.resolveLanguage(ctx, cmd.Language); err != nil {
		return nil, err
	}

	q := `INSERT INTO repositories(id, title, language, no_of_lessons)
		VALUES($1, $2, $3, $4)
		RETURNING ` + returning

	rp, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Repository, error) {
		return repository.QueryOne(ctx, tx, q, []any{
			uuid.New(), cmd.Title, cmd.Language, *cmd.NoOfLessons,
		}, scanRepository)
	})

	if err != nil {
		return nil, mapError(err)
	}

	r.logger.Info("repository created", "id", rp.ID, "title", rp.Title, "language", rp.Language)
	return &rp, nil
}

func (r *repo) Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Repository, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if cmd.Language != nil {
		if err := r.resolveLanguage(ctx, *cmd.Language); err != nil {
			return nil, err
		}
	}

	q := `UPDATE repositories SET
		title = COALESCE($2, title),
		language = COALESCE($3, language),
		no_of_lessons = COALESCE($4, no_of_lessons),
		updated_at = NOW()
		WHERE id = $1
		RETURNING ` + returning

	rp, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Repository, error) {
		return repository.QueryOne(ctx, tx, q, []any{id, cmd.Title, cmd.Language, cmd.NoOfLessons}, scanRepository)
	})

	if err != nil {
		return nil, mapError(err)
	}

	r.logger.Info("repository updated", "id", rp.ID, "title", rp.Title)
	return &rp, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		return struct{}{}, repository.ExecExpectOne(ctx, tx, `DELETE FROM repositories WHERE id = $1`, id)
	})

	if err != nil {
		return mapError(err)
	}

	r.logger.Info("repository deleted", "id", id)
	return nil
}

func (r *repo) resolveLanguage(ctx context.Context, id uuid.UUID) error {
	ok, err := r.languages.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrInvalidReference, id)
	}
	return nil
}
