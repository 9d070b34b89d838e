package languages

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

// dependents are checked in order; the first row found blocks a delete.
var dependents = []struct {
	kind  string
	query string
}{
	{"video", `SELECT id FROM videos WHERE language = $1 ORDER BY created_at, id LIMIT 1`},
	{"repository", `SELECT id FROM repositories WHERE language = $1 ORDER BY created_at, id LIMIT 1`},
}

type repo struct {
	db         *sql.DB
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates the language system backed by db.
func New(db *sql.DB, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "languages"),
		pagination: pagination,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination)
}

func (r *repo) List(ctx context.Context, page pagination.PageRequest) (*pagination.PageResult[Language], error) {
	order, ok := sortOptions.Resolve(page.SortBy)
	if !ok {
		return nil, fmt.Errorf("%w: unknown sortBy %q", pagination.ErrInvalidRequest, page.SortBy)
	}
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort...).
		WhereSearch(page.Search, searchFields...).
		OrderByFields(order)

	countSQL, countArgs := qb.BuildCount()
	total, err := repository.QueryCount(ctx, r.db, countSQL, countArgs)
	if err != nil {
		return nil, fmt.Errorf("count languages: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.Limit)
	langs, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanLanguage)
	if err != nil {
		return nil, fmt.Errorf("query languages: %w", err)
	}

	result := pagination.NewPageResult(langs, total, page.Page, page.Limit)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Language, error) {
	q, args := query.
		NewBuilder(projection).
		BuildSingle("Id", id)

	lang, err := repository.QueryOne(ctx, r.db, q, args, scanLanguage)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &lang, nil
}

func (r *repo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	q, args := query.
		NewBuilder(projection).
		BuildExists("Id", id)

	ok, err := repository.Exists(ctx, r.db, q, args...)
	if err != nil {
		return false, fmt.Errorf("check language: %w", err)
	}
	return ok, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Language, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	q := `INSERT INTO languages(id, language_type, language_extension, app_icon, application_name,
		app_store_link, banner_image, description, playstore_link, images, qr_image, features)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + returning

	lang, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Language, error) {
		if err := checkTypeAvailable(ctx, tx, cmd.LanguageType, uuid.Nil); err != nil {
			return Language{}, err
		}
		return repository.QueryOne(ctx, tx, q, []any{
			uuid.New(),
			cmd.LanguageType,
			cmd.LanguageExtension,
			cmd.AppIcon,
			cmd.ApplicationName,
			cmd.AppStoreLink,
			cmd.BannerImage,
			repository.JSON[[]string]{V: cmd.Description},
			cmd.PlaystoreLink,
			repository.JSON[[]string]{V: cmd.Images},
			cmd.QRImage,
			repository.JSON[[]Feature]{V: cmd.Features},
		}, scanLanguage)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("language created", "id", lang.ID, "language_type", lang.LanguageType)
	return &lang, nil
}

func (r *repo) Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Language, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	q := `UPDATE languages SET
		language_type = COALESCE($2, language_type),
		language_extension = COALESCE($3, language_extension),
		app_icon = COALESCE($4, app_icon),
		application_name = COALESCE($5, application_name),
		app_store_link = COALESCE($6, app_store_link),
		banner_image = COALESCE($7, banner_image),
		description = COALESCE($8::jsonb, description),
		playstore_link = COALESCE($9, playstore_link),
		images = COALESCE($10::jsonb, images),
		qr_image = COALESCE($11, qr_image),
		features = COALESCE($12::jsonb, features),
		updated_at = NOW()
		WHERE id = $1
		RETURNING ` + returning

	lang, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Language, error) {
		if cmd.LanguageType != nil {
			if err := checkTypeAvailable(ctx, tx, *cmd.LanguageType, id); err != nil {
				return Language{}, err
			}
		}
		return repository.QueryOne(ctx, tx, q, []any{
			id,
			cmd.LanguageType,
			cmd.LanguageExtension,
			cmd.AppIcon,
			cmd.ApplicationName,
			cmd.AppStoreLink,
			cmd.BannerImage,
			repository.JSONArg(cmd.Description),
			cmd.PlaystoreLink,
			repository.JSONArg(cmd.Images),
			cmd.QRImage,
			repository.JSONArg(cmd.Features),
		}, scanLanguage)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("language updated", "id", lang.ID, "language_type", lang.LanguageType)
	return &lang, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		for _, dep := range dependents {
			var blocking uuid.UUID
			err := tx.QueryRowContext(ctx, dep.query, id).Scan(&blocking)
			switch {
			case err == nil:
				return struct{}{}, &InUseError{Kind: dep.kind, ID: blocking}
			case !errors.Is(err, sql.ErrNoRows):
				return struct{}{}, fmt.Errorf("check %s references: %w", dep.kind, err)
			}
		}
		return struct{}{}, repository.ExecExpectOne(ctx, tx, `DELETE FROM languages WHERE id = $1`, id)
	})

	if err != nil {
		if repository.IsForeignKeyViolation(err) {
			return fmt.Errorf("%w: constraint %s", ErrInUse, repository.ConstraintName(err))
		}
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("language deleted", "id", id)
	return nil
}

// checkTypeAvailable reports ErrDuplicate when another language already
// uses languageType. Pass uuid.Nil as self when creating.
func checkTypeAvailable(ctx context.Context, q repository.Querier, languageType string, self uuid.UUID) error {
	taken, err := repository.Exists(ctx, q,
		`SELECT EXISTS(SELECT 1 FROM languages WHERE language_type = $1 AND id <> $2)`,
		languageType, self,
	)
	if err != nil {
		return fmt.Errorf("check language type: %w", err)
	}
	if taken {
		return fmt.Errorf("%w: %q", ErrDuplicate, languageType)
	}
	return nil
}
