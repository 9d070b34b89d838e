package languages

import (
	"context"

	"github.com/google/uuid"

	"github.com/JaimeStill/codynn/pkg/pagination"
)

// System defines the language management operations.
type System interface {
	Handler() *Handler
	List(ctx context.Context, page pagination.PageRequest) (*pagination.PageResult[Language], error)
	Find(ctx context.Context, id uuid.UUID) (*Language, error)

	// Exists reports whether a language with id is stored. Dependent
	// domains call it to resolve references before writing.
	Exists(ctx context.Context, id uuid.UUID) (bool, error)

	Create(ctx context.Context, cmd CreateCommand) (*Language, error)
	Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Language, error)

	// Delete removes a language. It returns an *InUseError naming the first
	// video or repository that still references it.
	Delete(ctx context.Context, id uuid.UUID) error
}
