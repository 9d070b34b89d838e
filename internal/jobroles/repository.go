package jobroles

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/JaimeStill/codynn/pkg/pagination"
	"github.com/JaimeStill/codynn/pkg/query"
	"github.com/JaimeStill/codynn/pkg/repository"
)

const blockingQuestion = `SELECT id FROM interview_questions
	WHERE job_role = $1 ORDER BY created_at, id LIMIT 1`

type repo struct {
	db         *sql.DB
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates the job role system backed by db.
func New(db *sql.DB, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "jobroles"),
		pagination: pagination,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination)
}

func (r *repo) List(ctx context.Context, page pagination.PageRequest) (*pagination.PageResult[JobRole], error) {
	order, ok := sortOptions.Resolve(page.SortBy)
	if !ok {
		return nil, fmt.Errorf("%w: unknown sortBy %q", pagination.ErrInvalidRequest, page.SortBy)
	}
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort...).
		WhereSearch(page.Search, "Name").
		OrderByFields(order)

	countSQL, countArgs := qb.BuildCount()
	total, err := repository.QueryCount(ctx, r.db, countSQL, countArgs)
	if err != nil {
		return nil, fmt.Errorf("count job roles: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.Limit)
	roles, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanJobRole)
	if err != nil {
		return nil, fmt.Errorf("query job roles: %w", err)
	}

	result := pagination.NewPageResult(roles, total, page.Page, page.Limit)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*JobRole, error) {
	q, args := query.
		NewBuilder(projection).
		BuildSingle("Id", id)

	role, err := repository.QueryOne(ctx, r.db, q, args, scanJobRole)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &role, nil
}

func (r *repo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	q, args := query.
		NewBuilder(projection).
		BuildExists("Id", id)

	ok, err := repository.Exists(ctx, r.db, q, args...)
	if err != nil {
		return false, fmt.Errorf("check job role: %w", err)
	}
	return ok, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*JobRole, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	q := `INSERT INTO job_roles(id, name) VALUES($1, $2)
		RETURNING id, name, created_at, updated_at`

	role, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (JobRole, error) {
		if err := checkNameAvailable(ctx, tx, cmd.Name, uuid.Nil); err != nil {
			return JobRole{}, err
		}
		return repository.QueryOne(ctx, tx, q, []any{uuid.New(), cmd.Name}, scanJobRole)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("job role created", "id", role.ID, "name", role.Name)
	return &role, nil
}

func (r *repo) Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*JobRole, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	q := `UPDATE job_roles SET name = COALESCE($2, name), updated_at = NOW()
		WHERE id = $1
		RETURNING id, name, created_at, updated_at`

	role, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (JobRole, error) {
		if cmd.Name != nil {
			if err := checkNameAvailable(ctx, tx, *cmd.Name, id); err != nil {
				return JobRole{}, err
			}
		}
		return repository.QueryOne(ctx, tx, q, []any{id, cmd.Name}, scanJobRole)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("job role updated", "id", role.ID, "name", role.Name)
	return &role, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		var blocking uuid.UUID
		err := tx.QueryRowContext(ctx, blockingQuestion, id).Scan(&blocking)
		switch {
		case err == nil:
			return struct{}{}, &InUseError{Kind: "interviewQuestion", ID: blocking}
		case !errors.Is(err, sql.ErrNoRows):
			return struct{}{}, fmt.Errorf("check question references: %w", err)
		}
		return struct{}{}, repository.ExecExpectOne(ctx, tx, `DELETE FROM job_roles WHERE id = $1`, id)
	})

	if err != nil {
		if repository.IsForeignKeyViolation(err) {
			return fmt.Errorf("%w: constraint %s", ErrInUse, repository.ConstraintName(err))
		}
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("job role deleted", "id", id)
	return nil
}

func checkNameAvailable(ctx context.Context, q repository.Querier, name string, self uuid.UUID) error {
	taken, err := repository.Exists(ctx, q,
		`SELECT EXISTS(SELECT 1 FROM job_roles WHERE name = $1 AND id <> $2)`,
		name, self,
	)
	if err != nil {
		return fmt.Errorf("check job role name: %w", err)
	}
	if taken {
		return fmt.Errorf("%w: %q", ErrDuplicate, name)
	}
	return nil
}
