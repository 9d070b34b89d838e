// Package docs stores documentation articles made of ordered content blocks,
// ranked by a popularity counter.
package docs

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Documentation is a titled article.
type Documentation struct {
	ID         uuid.UUID `json:"id"`
	Title      string    `json:"title"`
	Content    []string  `json:"content"`
	Popularity int       `json:"popularity"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// CreateCommand contains the data required to create an article.
// Popularity starts at zero when omitted.
type CreateCommand struct {
	Title      string   `json:"title"`
	Content    []string `json:"content"`
	Popularity int      `json:"popularity"`
}

func (c *CreateCommand) Validate() error {
	var problems []string
	if strings.TrimSpace(c.Title) == "" {
		problems = append(problems, "title is required")
	}
	problems = append(problems, checkContent(c.Content)...)
	if c.Popularity < 0 {
		problems = append(problems, "popularity must be >= 0")
	}
	return validationError(problems)
}

// UpdateCommand carries a partial update. Nil fields keep their stored value.
type UpdateCommand struct {
	Title      *string   `json:"title"`
	Content    *[]string `json:"content"`
	Popularity *int      `json:"popularity"`
}

func (c *UpdateCommand) Validate() error {
	var problems []string
	if c.Title != nil && strings.TrimSpace(*c.Title) == "" {
		problems = append(problems, "title cannot be empty")
	}
	if c.Content != nil {
		problems = append(problems, checkContent(*c.Content)...)
	}
	if c.Popularity != nil && *c.Popularity < 0 {
		problems = append(problems, "popularity must be >= 0")
	}
	return validationError(problems)
}

func checkContent(blocks []string) []string {
	if len(blocks) == 0 {
		return []string{"content requires at least one block"}
	}
	var problems []string
	for i, b := range blocks {
		if strings.TrimSpace(b) == "" {
			problems = append(problems, fmt.Sprintf("content[%d] is empty", i))
		}
	}
	return problems
}

func validationError(problems []string) error {
	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrValidation, strings.Join(problems, "; "))
}
