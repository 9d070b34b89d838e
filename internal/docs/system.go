package docs

import (
	"context"

	"github.com/google/uuid"

	"github.com/JaimeStill/codynn/pkg/pagination"
)

// System defines the documentation management operations.
type System interface {
	Handler() *Handler
	List(ctx context.Context, page pagination.PageRequest) (*pagination.PageResult[Documentation], error)
	Find(ctx context.Context, id uuid.UUID) (*Documentation, error)
	Create(ctx context.Context, cmd CreateCommand) (*Documentation, error)
	Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Documentation, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
