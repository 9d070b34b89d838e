package questions

import (
	"database/sql"
	"errors"
	"fmt"
	"net/url"

	"github.com/google/uuid"

	"github.com/JaimeStill/codynn/pkg/query"
	"github.com/JaimeStill/codynn/pkg/repository"
)

var projection = query.NewProjectionMap("public", "interview_questions", "q").
	Project("id", "Id").
	Project("question", "Question").
	Project("answer", "Answer").
	Project("job_role", "JobRole").
	Project("level", "Level").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = []query.SortField{
	{Field: "CreatedAt"},
	{Field: "Id"},
}

var sortOptions = query.SortOptions{
	"alphabetical": {{Field: "Question"}},
}

var searchFields = []string{"Question"}

const returning = "id, question, answer, job_role, level, created_at, updated_at"

func scanQuestion(s repository.Scanner) (Question, error) {
	var q Question
	err := s.Scan(&q.ID, &q.Question, &q.Answer, &q.JobRole, &q.Level, &q.CreatedAt, &q.UpdatedAt)
	return q, err
}

// Filters narrows a question listing by job role and level.
type Filters struct {
	JobRole *uuid.UUID
	Level   *Level
}

func FiltersFromQuery(values url.Values) (Filters, error) {
	var f Filters

	if raw := values.Get("jobRole"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return f, fmt.Errorf("%w: invalid jobRole id %q", ErrValidation, raw)
		}
		f.JobRole = &id
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
		WhereEquals("JobRole", f.JobRole).
		WhereEquals("Level", levelArg(f.Level))
}

// levelArg converts an optional level into a query argument, nil when unset.
func levelArg(l *Level) any {
	if l == nil {
		return nil
	}
	return string(*l)
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
