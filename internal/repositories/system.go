package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/JaimeStill/codynn/pkg/pagination"
)

// System defines the learning repository operations.
type System interface {
	Handler() *Handler
	List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Repository], error)
	Find(ctx context.Context, id uuid.UUID) (*Repository, error)
	Create(ctx context.Context, cmd CreateCommand) (*Repository, error)
	Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Repository, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
