package interfaces

import (
	"context"
	"errors"

	"farmagest/internal/domain/entities"
)

// ErrCursorInvalido marks a pagination cursor that cannot be decoded. The
// cursor is client-supplied, so implementations return it wrapped instead
// of a bare decode error.
var ErrCursorInvalido = errors.New("invalid pagination cursor")

// PaginaOrcamentos is one page of a budget listing. Cursor is an opaque
// token; an empty cursor means the listing is exhausted.
type PaginaOrcamentos struct {
	Itens  []entities.Orcamento
	Cursor string
}

// IOrcamentoRepository abstracts DynamoDB persistence for Orcamento.
//
// Save has upsert semantics: the dashboard writes the whole document on
// every edit. List pages newest-first by data_criacao.
type IOrcamentoRepository interface {
	Save(ctx context.Context, o entities.Orcamento) (entities.Orcamento, error)
	GetByID(ctx context.Context, usuarioID, id string) (entities.Orcamento, error)
	List(ctx context.Context, usuarioID string, limit int32, cursor string) (PaginaOrcamentos, error)
	Delete(ctx context.Context, usuarioID, id string) (bool, error)
}
