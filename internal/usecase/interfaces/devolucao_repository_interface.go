package interfaces

import (
	"context"

	"farmagest/internal/domain/entities"
)

// IDevolucaoRepository abstracts DynamoDB persistence for Devolucao.
//
// Every operation is scoped to the owning user: the caller supplies the
// authenticated user id and the repository can only touch that partition.
//
// Not-found convention: reads return a zero-value entity with a nil error;
// Delete reports absence through its boolean.
type IDevolucaoRepository interface {
	Create(ctx context.Context, d entities.Devolucao) (entities.Devolucao, error)
	GetByID(ctx context.Context, usuarioID, id string) (entities.Devolucao, error)
	List(ctx context.Context, usuarioID string) ([]entities.Devolucao, error)
	Update(ctx context.Context, d entities.Devolucao) (entities.Devolucao, error)
	Delete(ctx context.Context, usuarioID, id string) (bool, error)
}
