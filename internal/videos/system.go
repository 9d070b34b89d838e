package videos

import (
	"context"

	"github.com/google/uuid"

	"github.com/JaimeStill/codynn/pkg/pagination"
)

// System defines the video management operations.
type System interface {
	Handler() *Handler

	// List resolves a language filter before querying; an unknown
	// language yields ErrInvalidReference.
	List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Video], error)

	Find(ctx context.Context, id uuid.UUID) (*Video, error)
	Create(ctx context.Context, cmd CreateCommand) (*Video, error)
	Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Video, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
