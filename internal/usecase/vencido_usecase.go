package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"farmagest/internal/domain/entities"
	"farmagest/internal/usecase/interfaces"
	"farmagest/pkg"

	"github.com/google/uuid"
)

var (
	ErrVencidoNaoEncontrado = errors.New("vencido not found")
	ErrVencidoIDInvalido    = errors.New("invalid vencido id")
)

// VencidoInput carries the full field set of an expired-item record. Every
// string field is required; the numeric bounds are checked at save time.
type VencidoInput struct {
	Medicamento   string
	Laboratorio   string
	Quantidade    int
	Lote          string
	CodigoBarras  string
	MSRegistro    string
	NCM           string
	CEST          string
	CFOP          string
	PrecoUnitario float64
}

// IVencidoUseCase exposes expired-item (vencido) operations.
type IVencidoUseCase interface {
	Criar(ctx context.Context, usuarioID string, input VencidoInput) (entities.Vencido, error)
	Listar(ctx context.Context, usuarioID string) ([]entities.Vencido, error)
	Atualizar(ctx context.Context, usuarioID, id string, input VencidoInput) (entities.Vencido, error)
	Excluir(ctx context.Context, usuarioID, id string) error
}

type VencidoUseCase struct {
	repo interfaces.IVencidoRepository
}

var _ IVencidoUseCase = (*VencidoUseCase)(nil)

func NewVencidoUseCase(repo interfaces.IVencidoRepository) *VencidoUseCase {
	return &VencidoUseCase{repo: repo}
}

func (u *VencidoUseCase) Criar(ctx context.Context, usuarioID string, input VencidoInput) (entities.Vencido, error) {
	usuarioID = strings.TrimSpace(usuarioID)
	if usuarioID == "" {
		return entities.Vencido{}, ErrUsuarioNaoInformado
	}
	if err := validarVencido(input); err != nil {
		return entities.Vencido{}, err
	}

	now := time.Now().UTC()
	v := montarVencido(input)
	v.ID = uuid.NewString()
	v.UsuarioID = usuarioID
	v.DataCriacao = now
	v.DataUltimaEdicao = now

	return u.repo.Create(ctx, v)
}

func (u *VencidoUseCase) Listar(ctx context.Context, usuarioID string) ([]entities.Vencido, error) {
	usuarioID = strings.TrimSpace(usuarioID)
	if usuarioID == "" {
		return nil, ErrUsuarioNaoInformado
	}
	return u.repo.List(ctx, usuarioID)
}

func (u *VencidoUseCase) Atualizar(ctx context.Context, usuarioID, id string, input VencidoInput) (entities.Vencido, error) {
	usuarioID = strings.TrimSpace(usuarioID)
	if usuarioID == "" {
		return entities.Vencido{}, ErrUsuarioNaoInformado
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Vencido{}, ErrVencidoIDInvalido
	}
	if err := validarVencido(input); err != nil {
		return entities.Vencido{}, err
	}

	atual, err := u.repo.GetByID(ctx, usuarioID, id)
	if err != nil {
		return entities.Vencido{}, err
	}
	if atual.ID == "" {
		return entities.Vencido{}, ErrVencidoNaoEncontrado
	}

	v := montarVencido(input)
	v.ID = atual.ID
	v.UsuarioID = atual.UsuarioID
	v.DataCriacao = atual.DataCriacao
	v.DataUltimaEdicao = time.Now().UTC()

	atualizado, err := u.repo.Update(ctx, v)
	if err != nil {
		return entities.Vencido{}, err
	}
	if atualizado.ID == "" {
		return entities.Vencido{}, ErrVencidoNaoEncontrado
	}
	return atualizado, nil
}

func (u *VencidoUseCase) Excluir(ctx context.Context, usuarioID, id string) error {
	usuarioID = strings.TrimSpace(usuarioID)
	if usuarioID == "" {
		return ErrUsuarioNaoInformado
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrVencidoIDInvalido
	}

	encontrado, err := u.repo.Delete(ctx, usuarioID, id)
	if err != nil {
		return err
	}
	if !encontrado {
		return ErrVencidoNaoEncontrado
	}
	return nil
}

func montarVencido(input VencidoInput) entities.Vencido {
	return entities.Vencido{
		Medicamento:   strings.TrimSpace(input.Medicamento),
		Laboratorio:   strings.TrimSpace(input.Laboratorio),
		Quantidade:    input.Quantidade,
		Lote:          strings.TrimSpace(input.Lote),
		CodigoBarras:  strings.TrimSpace(input.CodigoBarras),
		MSRegistro:    strings.TrimSpace(input.MSRegistro),
		NCM:           strings.TrimSpace(input.NCM),
		CEST:          strings.TrimSpace(input.CEST),
		CFOP:          strings.TrimSpace(input.CFOP),
		PrecoUnitario: input.PrecoUnitario,
	}
}

func validarVencido(input VencidoInput) error {
	var campos []string
	texto := func(campo, valor string) {
		if strings.TrimSpace(valor) == "" {
			campos = append(campos, campo)
		}
	}
	texto("medicamento", input.Medicamento)
	texto("laboratorio", input.Laboratorio)
	texto("lote", input.Lote)
	texto("codigo_barras", input.CodigoBarras)
	texto("ms_registro", input.MSRegistro)
	texto("ncm", input.NCM)
	texto("cest", input.CEST)
	texto("cfop", input.CFOP)
	if input.Quantidade <= 0 {
		campos = append(campos, "quantidade")
	}
	if input.PrecoUnitario <= 0 {
		campos = append(campos, "preco_unitario")
	}
	if len(campos) > 0 {
		return pkg.NewValidationError(campos...)
	}
	return nil
}
