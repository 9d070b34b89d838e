// Package questions manages interview questions filed under a job role.
package questions

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Level is the seniority a question targets.
type Level string

const (
	Internship Level = "Internship"
	Junior     Level = "Junior"
	Mid        Level = "Mid"
	Senior     Level = "Senior"
)

var Levels = []Level{Internship, Junior, Mid, Senior}

func (l Level) Valid() bool {
	switch l {
	case Internship, Junior, Mid, Senior:
		return true
	}
	return false
}

// Question is an interview question with its model answer.
type Question struct {
	ID        uuid.UUID `json:"id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	JobRole   uuid.UUID `json:"jobRole"`
	Level     Level     `json:"level"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateCommand contains the data required to create a question. All fields are required.
type CreateCommand struct {
	Question string    `json:"question"`
	Answer   string    `json:"answer"`
	JobRole  uuid.UUID `json:"jobRole"`
	Level    Level     `json:"level"`
}

func (c *CreateCommand) Validate() error {
	var problems []string
	if blank(c.Question) {
		problems = append(problems, "question is required")
	}
	if blank(c.Answer) {
		problems = append(problems, "answer is required")
	}
	if c.JobRole == uuid.Nil {
		problems = append(problems, "jobRole is required")
	}
	if !c.Level.Valid() {
		problems = append(problems, levelProblem(c.Level))
	}
	return validationError(problems)
}

// UpdateCommand carries a partial update. Nil fields keep their stored value.
type UpdateCommand struct {
	Question *string    `json:"question"`
	Answer   *string    `json:"answer"`
	JobRole  *uuid.UUID `json:"jobRole"`
	Level    *Level     `json:"level"`
}

func (c *UpdateCommand) Validate() error {
	var problems []string
	if c.Question != nil && blank(*c.Question) {
		problems = append(problems, "question cannot be empty")
	}
	if c.Answer != nil && blank(*c.Answer) {
		problems = append(problems, "answer cannot be empty")
	}
	if c.JobRole != nil && *c.JobRole == uuid.Nil {
		problems = append(problems, "jobRole cannot be empty")
	}
	if c.Level != nil && !c.Level.Valid() {
		problems = append(problems, levelProblem(*c.Level))
	}
	return validationError(problems)
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func levelNames() []string {
	names := make([]string, len(Levels))
	for i, l := range Levels {
		names[i] = string(l)
	}
	return names
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
