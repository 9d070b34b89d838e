// Package repositories manages learning repositories: course modules that
// group a number of lessons under a language.
package repositories

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Repository is a course module for a language.
type Repository struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Language    uuid.UUID `json:"language"`
	NoOfLessons int       `json:"noOfLessons"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CreateCommand contains the data required to create a repository.
// NoOfLessons is a pointer so an omitted count can be told apart from zero.
type CreateCommand struct {
	Title       string    `json:"title"`
	Language    uuid.UUID `json:"language"`
	NoOfLessons *int      `json:"noOfLessons"`
}

func (c *CreateCommand) Validate() error {
	var problems []string
	if strings.TrimSpace(c.Title) == "" {
		problems = append(problems, "title is required")
	}
	if c.Language == uuid.Nil {
		problems = append(problems, "language is required")
	}
	switch {
	case c.NoOfLessons == nil:
		problems = append(problems, "noOfLessons is required")
	case *c.NoOfLessons < 0:
		problems = append(problems, "noOfLessons must be >= 0")
	}
	return validationError(problems)
}

// UpdateCommand carries a partial update. Nil fields keep their stored value.
type UpdateCommand struct {
	Title       *string    `json:"title"`
	Language    *uuid.UUID `json:"language"`
	NoOfLessons *int       `json:"noOfLessons"`
}

func (c *UpdateCommand) Validate() error {
	var problems []string
	if c.Title != nil && strings.TrimSpace(*c.Title) == "" {
		problems = append(problems, "title cannot be empty")
	}
	if c.Language != nil && *c.Language == uuid.Nil {
		problems = append(problems, "language cannot be empty")
	}
	if c.NoOfLessons != nil && *c.NoOfLessons < 0 {
		problems = append(problems, "noOfLessons must be >= 0")
	}
	return validationError(problems)
}

func validationError(problems []string) error {
	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrValidation, strings.Join(problems, "; "))
}
