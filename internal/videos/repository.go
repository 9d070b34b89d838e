package videos

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

// New creates the video system. Language references are resolved through langs.
func New(langs languages.System, db *sql.DB, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		languages:  langs,
		db:         db,
		logger:     logger.With("system", "videos"),
		pagination: pagination,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination)
}

func (r *repo) List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Video], error) {
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
		return nil, fmt.Errorf("count videos: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.Limit)
	videos, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanVideo)
	if err != nil {
		return nil, fmt.Errorf("query videos: %w", err)
	}

	result := pagination.NewPageResult(videos, total, page.Page, page.Limit)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Video, error) {
	q, args := query.
		NewBuilder(projection).
		BuildSingle("Id", id)

	v, err := repository.QueryOne(ctx, r.db, q, args, scanVideo)
	if err != nil {
		return nil, mapError(err)
	}
	return &v, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Video, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := r.resolveLanguage(ctx, cmd.Language); err != nil {
		return nil, err
	}

	q := `INSERT INTO videos(id, title, duration, level, language, url, image)
		VALUES($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + returning

	v, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Video, error) {
		return repository.QueryOne(ctx, tx, q, []any{
			uuid.New(), cmd.Title, cmd.Duration, string(cmd.Level), cmd.Language, cmd.URL, cmd.Image,
		}, scanVideo)
	})

	if err != nil {
		return nil, mapError(err)
	}

	r.logger.Info("video created", "id", v.ID, "title", v.Title, "language", v.Language)
	return &v, nil
}

func (r *repo) Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Video, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if cmd.Language != nil {
		if err := r.resolveLanguage(ctx, *cmd.Language); err != nil {
			return nil, err
		}
	}

	q := `UPDATE videos SET
		title = COALESCE($2, title),
		duration = COALESCE($3, duration),
		level = COALESCE($4, level),
		language = COALESCE($5, language),
		url = COALESCE($6, url),
		image = COALESCE($7, image),
		updated_at = NOW()
		WHERE id = $1
		RETURNING ` + returning

	v, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Video, error) {
		return repository.QueryOne(ctx, tx, q, []any{
			id, cmd.Title, cmd.Duration, levelArg(cmd.Level), cmd.Language, cmd.URL, cmd.Image,
		}, scanVideo)
	})

	if err != nil {
		return nil, mapError(err)
	}

	r.logger.Info("video updated", "id", v.ID, "title", v.Title)
	return &v, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		return struct{}{}, repository.ExecExpectOne(ctx, tx, `DELETE FROM videos WHERE id = $1`, id)
	})

	if err != nil {
		return mapError(err)
	}

	r.logger.Info("video deleted", "id", id)
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
