package docs

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/JaimeStill/codynn/pkg/pagination"
	"github.com/JaimeStill/codynn/pkg/query"
	"github.com/JaimeStill/codynn/pkg/repository"
)

type repo struct {
	db         *sql.DB
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates the documentation system backed by db.
func New(db *sql.DB, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "documentation"),
		pagination: pagination,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination)
}

func (r *repo) List(ctx context.Context, page pagination.PageRequest) (*pagination.PageResult[Documentation], error) {
	order, ok := sortOptions.Resolve(page.SortBy)
	if !ok {
		return nil, fmt.Errorf("%w: unknown sortBy %q", pagination.ErrInvalidRequest, page.SortBy)
	}
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort...).
		WhereSearch(page.Search, "Title").
		OrderByFields(order)

	countSQL, countArgs := qb.BuildCount()
	total, err := repository.QueryCount(ctx, r.db, countSQL, countArgs)
	if err != nil {
		return nil, fmt.Errorf("count documentation: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.Limit)
	articles, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanDocumentation)
	if err != nil {
		return nil, fmt.Errorf("query documentation: %w", err)
	}

	result := pagination.NewPageResult(articles, total, page.Page, page.Limit)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Documentation, error) {
	q, args := query.
		NewBuilder(projection).
		BuildSingle("Id", id)

	doc, err := repository.QueryOne(ctx, r.db, q, args, scanDocumentation)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &doc, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Documentation, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	q := `INSERT INTO documentation(id, title, content, popularity)
		VALUES($1, $2, $3, $4)
		RETURNING ` + returning

	doc, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Documentation, error) {
		if err := checkTitleAvailable(ctx, tx, cmd.Title, uuid.Nil); err != nil {
			return Documentation{}, err
		}
		return repository.QueryOne(ctx, tx, q, []any{
			uuid.New(), cmd.Title, repository.JSON[[]string]{V: cmd.Content}, cmd.Popularity,
		}, scanDocumentation)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("documentation created", "id", doc.ID, "title", doc.Title)
	return &doc, nil
}

func (r *repo) Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Documentation, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	q := `UPDATE documentation SET
		title = COALESCE($2, title),
		content = COALESCE($3::jsonb, content),
		popularity = COALESCE($4, popularity),
		updated_at = NOW()
		WHERE id = $1
		RETURNING ` + returning

	doc, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Documentation, error) {
		if cmd.Title != nil {
			if err := checkTitleAvailable(ctx, tx, *cmd.Title, id); err != nil {
				return Documentation{}, err
			}
		}
		return repository.QueryOne(ctx, tx, q, []any{
			id, cmd.Title, repository.JSONArg(cmd.Content), cmd.Popularity,
		}, scanDocumentation)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("documentation updated", "id", doc.ID, "title", doc.Title)
	return &doc, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		return struct{}{}, repository.ExecExpectOne(ctx, tx, `DELETE FROM documentation WHERE id = $1`, id)
	})

	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("documentation deleted", "id", id)
	return nil
}

func checkTitleAvailable(ctx context.Context, q repository.Querier, title string, self uuid.UUID) error {
	taken, err := repository.Exists(ctx, q,
		`SELECT EXISTS(SELECT 1 FROM documentation WHERE title = $1 AND id <> $2)`,
		title, self,
	)
	if err != nil {
		return fmt.Errorf("check documentation title: %w", err)
	}
	if taken {
		return fmt.Errorf("%w: %q", ErrDuplicate, title)
	}
	return nil
}
