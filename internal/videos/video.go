// Package videos manages instructional videos. Every video belongs to a
// language, which must exist when the video is written.
package videos

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Level is the difficulty of a video.
type Level string

const (
	Beginner     Level = "beginner"
	Intermediate Level = "intermediate"
	Advanced     Level = "advanced"
)

// Levels lists every accepted level in ascending difficulty.
var Levels = []Level{Beginner, Intermediate, Advanced}

func (l Level) Valid() bool {
	switch l {
	case Beginner, Intermediate, Advanced:
		return true
	}
	return false
}

func levelNames() []string {
	names := make([]string, len(Levels))
	for i, l := range Levels {
		names[i] = string(l)
	}
	return names
}

// Video is a single instructional video.
type Video struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Duration  string    `json:"duration"`
	Level     Level     `json:"level"`
	Language  uuid.UUID `json:"language"`
	URL       string    `json:"url"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateCommand contains the data required to create a video.
type CreateCommand struct {
	Title    string    `json:"title"`
	Duration string    `json:"duration"`
	Level    Level     `json:"level"`
	Language uuid.UUID `json:"language"`
	URL      string    `json:"url"`
	Image    string    `json:"image"`
}

func (c *CreateCommand) Validate() error {
	var problems []string
	if blank(c.Title) {
		problems = append(problems, "title is required")
	}
	if blank(c.Duration) {
		problems = append(problems, "duration is required")
	}
	if !c.Level.Valid() {
		problems = append(problems, levelProblem(c.Level))
	}
	if c.Language == uuid.Nil {
		problems = append(problems, "language is required")
	}
	if blank(c.URL) {
		problems = append(problems, "url is required")
	}
	return validationError(problems)
}

// UpdateCommand carries a partial update. Nil fields keep their stored value.
type UpdateCommand struct {
	Title    *string    `json:"title"`
	Duration *string    `json:"duration"`
	Level    *Level     `json:"level"`
	Language *uuid.UUID `json:"language"`
	URL      *string    `json:"url"`
	Image    *string    `json:"image"`
}

func (c *UpdateCommand) Validate() error {
	var problems []string
	if c.Title != nil && blank(*c.Title) {
		problems = append(problems, "title cannot be empty")
	}
	if c.Duration != nil && blank(*c.Duration) {
		problems = append(problems, "duration cannot be empty")
	}
	if c.Level != nil && !c.Level.Valid() {
		problems = append(problems, levelProblem(*c.Level))
	}
	if c.Language != nil && *c.Language == uuid.Nil {
		problems = append(problems, "language cannot be empty")
	}
	if c.URL != nil && blank(*c.URL) {
		problems = append(problems, "url cannot be empty")
	}
	return validationError(problems)
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func levelProblem(l Level) string {
	return fmt.Sprintf("level %q must be one of %s", l, strings.Join(levelNames(), ", "))
}

func validationError(problems []string) error {
	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrValidation, strings.Join(problems, "; "))
}
