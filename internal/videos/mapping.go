package videos

import (
	"database/sql"
	"errors"
	"fmt"
	"net/url"

	"github.com/google/uuid"

	"github.com/JaimeStill/codynn/pkg/query"
	"github.com/JaimeStill/codynn/pkg/repository"
)

var projection = query.NewProjectionMap("public", "videos", "v").
	Project("id", "Id").
	Project("title", "Title").
	Project("duration", "Duration").
	Project("level", "Level").
	Project("language", "Language").
	Project("url", "URL").
	Project("image", "Image").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = []query.SortField{
	{Field: "CreatedAt"},
	{Field: "Id"},
}

var sortOptions = query.SortOptions{
	"alphabetical": {{Field: "Title"}},
}

const returning = "id, title, duration, level, language, url, image, created_at, updated_at"

func scanVideo(s repository.Scanner) (Video, error) {
	var v Video
	err := s.Scan(
		&v.ID,
		&v.Title,
		&v.Duration,
		&v.Level,
		&v.Language,
		&v.URL,
		&v.Image,
		&v.CreatedAt,
		&v.UpdatedAt,
	)
	return v, err
}

// Filters narrows a video listing.
type Filters struct {
	Language *uuid.UUID
	Level    *Level
}

// FiltersFromQuery parses the language and level query parameters.
// Malformed values are rejected with ErrValidation.
func FiltersFromQuery(values url.Values) (Filters, error) {
	var f Filters

	if raw := values.Get("language"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return f, fmt.Errorf("%w: invalid language id %q", ErrValidation, raw)
		}
		f.Language = &id
	}

	if raw := values.Get("level"); raw != "" {
		level := Level(raw)
		if !level.Valid() {
			return f, fmt.Errorf("%w: %s", ErrValidation, levelProblem(level))
		}
		f.Level = &level
	}

	return f, nil
}

// Apply adds an equality condition for each set filter. Unset filters add nothing.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("Language", f.Language).
		WhereEquals("Level", levelArg(f.Level))
}

// levelArg converts an optional level into a query argument, nil when unset.
func levelArg(l *Level) any {
	if l == nil {
		return nil
	}
	return string(*l)
}

// mapError translates store errors into video domain errors.
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
