// Package jobroles manages the job roles interview questions are filed under.
package jobroles

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// JobRole is a named role such as "Backend Engineer".
type JobRole struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateCommand contains the data required to create a job role.
type CreateCommand struct {
	Name string `json:"name"`
}

func (c *CreateCommand) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	return nil
}

// UpdateCommand renames a job role. A nil Name leaves it unchanged.
type UpdateCommand struct {
	Name *string `json:"name"`
}

func (c *UpdateCommand) Validate() error {
	if c.Name != nil && strings.TrimSpace(*c.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrValidation)
	}
	return nil
}
