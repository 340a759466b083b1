package interfaces

import (
	"context"

	"farmagest/internal/domain/entities"
)

// IDocumentoRenderer converts an assembled document into PDF bytes. The
// implementation talks to an external rendering service and may take
// arbitrary wall-clock time; callers must pass a bounded context.
type IDocumentoRenderer interface {
	Renderizar(ctx context.Context, doc entities.Documento) ([]byte, error)
}
