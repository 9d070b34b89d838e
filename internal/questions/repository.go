package questions

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/JaimeStill/codynn/internal/jobroles"
	"github.com/JaimeStill/codynn/pkg/pagination"
	"github.com/JaimeStill/codynn/pkg/query"
	"github.com/JaimeStill/codynn/pkg/repository"
)

type repo struct {
	roles      jobroles.System
	db         *sql.DB
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates the question system. Job role references are resolved through roles.
func New(roles jobroles.System, db *sql.DB, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		roles:      roles,
		db:         db,
		logger:     logger.With("system", "questions"),
		pagination: pagination,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination)
}

func (r *repo) List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Question], error) {
	order, ok := sortOptions.Resolve(page.SortBy)
	if !ok {
		return nil, fmt.Errorf("%w: unknown sortBy %q", pagination.ErrInvalidRequest, page.SortBy)
	}
	if filters.JobRole != nil {
		if err := r.resolveJobRole(ctx, *filters.JobRole); err != nil {
			return nil, err
		}
	}
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort...).
		WhereSearch(page.Search, searchFields...).
		OrderByFields(order)

	filters.Apply(qb)

	countSQL, countArgs := qb.BuildCount()
	total, err := repository.QueryCount(ctx, r.db, countSQL, countArgs)
	if err != nil {
		return nil, fmt.Errorf("count questions: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.Limit)
	qs, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanQuestion)
	if err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}

	result := pagination.NewPageResult(qs, total, page.Page, page.Limit)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Question, error) {
	q, args := query.
		NewBuilder(projection).
		BuildSingle("Id", id)

	question, err := repository.QueryOne(ctx, r.db, q, args, scanQuestion)
	if err != nil {
		return nil, mapError(err)
	}
	return &question, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Question, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := r.resolveJobRole(ctx, cmd.JobRole); err != nil {
		return nil, err
	}

	q := `INSERT INTO interview_questions(id, question, answer, job_role, level)
		VALUES($1, $2, $3, $4, $5)
		RETURNING ` + returning

	question, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Question, error) {
		return repository.QueryOne(ctx, tx, q, []any{
			uuid.New(), cmd.Question, cmd.Answer, cmd.JobRole, string(cmd.Level),
		}, scanQuestion)
	})

	if err != nil {
		return nil, mapError(err)
	}

	r.logger.Info("question created", "id", question.ID, "job_role", question.JobRole, "level", question.Level)
	return &question, nil
}

func (r *repo) Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Question, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if cmd.JobRole != nil {
		if err := r.resolveJobRole(ctx, *cmd.JobRole); err != nil {
			return nil, err
		}
	}

	q := `UPDATE interview_questions SET
		question = COALESCE($2, question),
		answer = COALESCE($3, answer),
		job_role = COALESCE($4, job_role),
		level = COALESCE($5, level),
		updated_at = NOW()
		WHERE id = $1
		RETURNING ` + returning

	question, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Question, error) {
		return repository.QueryOne(ctx, tx, q, []any{
			id, cmd.Question, cmd.Answer, cmd.JobRole, levelArg(cmd.Level),
		}, scanQuestion)
	})

	if err != nil {
		return nil, mapError(err)
	}

	r.logger.Info("question updated", "id", question.ID)
	return &question, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		return struct{}{}, repository.ExecExpectOne(ctx, tx, `DELETE FROM interview_questions WHERE id = $1`, id)
	})

	if err != nil {
		return mapError(err)
	}

	r.logger.Info("question deleted", "id", id)
	return nil
}

func (r *repo) resolveJobRole(ctx context.Context, id uuid.UUID) error {
	ok, err := r.roles.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrInvalidReference, id)
	}
	return nil
}
