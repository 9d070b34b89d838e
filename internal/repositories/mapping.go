package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"net/url"

	"github.com/google/uuid"

	"github.com/JaimeStill/codynn/pkg/query"
	"github.com/JaimeStill/codynn/pkg/repository"
)

var projection = query.NewProjectionMap("public", "repositories", "r").
	Project("id", "Id").
	Project("title", "Title").
	Project("language", "Language").
	Project("no_of_lessons", "NoOfLessons").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = []query.SortField{
	{Field: "CreatedAt"},
	{Field: "Id"},
}

var sortOptions = query.SortOptions{
	"alphabetical": {{Field: "Title"}},
}

const returning = "id, title, language, no_of_lessons, created_at, updated_at"

func scanRepository(s repository.Scanner) (Repository, error) {
	var r Repository
	err := s.Scan(&r.ID, &r.Title, &r.Language, &r.NoOfLessons, &r.CreatedAt, &r.UpdatedAt)
	return r, err
}

// Filters narrows a repository listing to one language.
type Filters struct {
	Language *uuid.UUID
}

func FiltersFromQuery(values url.Values) (Filters, error) {
	var f Filters
	if raw := values.Get("language"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return f, fmt.Errorf("%w: invalid language id %q", ErrValidation, raw)
		}
		f.Language = &id
	}
	return f, nil
}

// Apply adds the language condition when it is set.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.WhereEquals("Language", f.Language)
}

func mapError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sql.ErrNoRows):
		return ErrNotFound
	case repository.IsForeignKeyViolation(err):
		return fmt.Errorf("%w: %s", ErrInvalidReference, repository.ConstraintName(err))
	default:
		return err
	}
}
