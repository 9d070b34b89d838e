package questions

import (
	"context"

	"github.com/google/uuid"

	"github.com/JaimeStill/codynn/pkg/pagination"
)

// System defines the interview question operations.
type System interface {
	Handler() *Handler
	List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Question], error)
	Find(ctx context.Context, id uuid.UUID) (*Question, error)
	Create(ctx context.Context, cmd CreateCommand) (*Question, error)
	Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Question, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
