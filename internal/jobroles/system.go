package jobroles

import (
	"context"

	"github.com/google/uuid"

	"github.com/JaimeStill/codynn/pkg/pagination"
)

// System defines the job role management operations.
type System interface {
	Handler() *Handler
	List(ctx context.Context, page pagination.PageRequest) (*pagination.PageResult[JobRole], error)
	Find(ctx context.Context, id uuid.UUID) (*JobRole, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	Create(ctx context.Context, cmd CreateCommand) (*JobRole, error)
	Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*JobRole, error)

	// Delete fails with an *InUseError while any interview question
	// is filed under the role.
	Delete(ctx context.Context, id uuid.UUID) error
}
