package interfaces

import (
	"context"

	"farmagest/internal/domain/entities"
)

// IVencidoRepository abstracts DynamoDB persistence for Vencido.
type IVencidoRepository interface {
	Create(ctx context.Context, v entities.Vencido) (entities.Vencido, error)
	GetByID(ctx context.Context, usuarioID, id string) (entities.Vencido, error)
	List(ctx context.Context, usuarioID string) ([]entities.Vencido, error)
	Update(ctx context.Context, v entities.Vencido) (entities.Vencido, error)
	Delete(ctx context.Context, usuarioID, id string) (bool, error)
}
