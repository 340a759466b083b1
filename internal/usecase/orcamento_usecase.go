package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"farmagest/internal/domain/entities"
	"farmagest/internal/usecase/interfaces"
	"farmagest/pkg"

	"github.com/google/uuid"
)

var (
	ErrOrcamentoNaoEncontrado = errors.New("orcamento not found")
	ErrOrcamentoIDInvalido    = errors.New("invalid orcamento id")
)

const (
	listaOrcamentosLimitePadrao int32 = 20
	listaOrcamentosLimiteMaximo int32 = 100
)

// SalvarOrcamentoInput carries a whole budget document. An empty ID means a
// new budget; a filled ID overwrites the stored document (the dashboard
// always writes the full record on edit).
type SalvarOrcamentoInput struct {
	ID           string
	Paciente     entities.Paciente
	Medicamentos []entities.Medicamento
}

// IOrcamentoUseCase exposes judicial budget (orçamento judicial) operations.
type IOrcamentoUseCase interface {
	Salvar(ctx context.Context, usuarioID string, input SalvarOrcamentoInput) (entities.Orcamento, error)
	Buscar(ctx context.Context, usuarioID, id string) (entities.Orcamento, error)
	Listar(ctx context.Context, usuarioID string, limite int32, cursor string) (interfaces.PaginaOrcamentos, error)
	Excluir(ctx context.Context, usuarioID, id string) error
	Calcular(ctx context.Context, usuarioID, id string) (entities.CalculoOrcamento, error)
}

type OrcamentoUseCase struct {
	repo interfaces.IOrcamentoRepository
}

var _ IOrcamentoUseCase = (*OrcamentoUseCase)(nil)

func NewOrcamentoUseCase(repo interfaces.IOrcamentoRepository) *OrcamentoUseCase {
	return &OrcamentoUseCase{repo: repo}
}

func (u *OrcamentoUseCase) Salvar(ctx context.Context, usuarioID string, input SalvarOrcamentoInput) (entities.Orcamento, error) {
	usuarioID = strings.TrimSpace(usuarioID)
	if usuarioID == "" {
		return entities.Orcamento{}, ErrUsuarioNaoInformado
	}

	if err := validarOrcamento(input); err != nil {
		return entities.Orcamento{}, err
	}

	now := time.Now().UTC()
	o := entities.Orcamento{
		ID:               strings.TrimSpace(input.ID),
		UsuarioID:        usuarioID,
		Paciente:         input.Paciente,
		Medicamentos:     input.Medicamentos,
		Status:           entities.OrcamentoStatusAtivo,
		DataCriacao:      now,
		DataUltimaEdicao: now,
	}

	if o.ID == "" {
		o.ID = uuid.NewString()
	} else {
		// Overwriting an existing budget keeps its creation date.
		atual, err := u.repo.GetByID(ctx, usuarioID, o.ID)
		if err != nil {
			return entities.Orcamento{}, err
		}
		if atual.ID != "" {
			o.DataCriacao = atual.DataCriacao
			o.Status = atual.Status
		}
	}

	for i := range o.Medicamentos {
		if strings.TrimSpace(o.Medicamentos[i].ID) == "" {
			o.Medicamentos[i].ID = uuid.NewString()
		}
	}

	return u.repo.Save(ctx, o)
}

func validarOrcamento(input SalvarOrcamentoInput) error {
	var campos []string
	if strings.TrimSpace(input.Paciente.Identificador) == "" {
		campos = append(campos, "paciente.identificador")
	}
	if cpf := strings.TrimSpace(input.Paciente.CPF); cpf != "" && !cpfCompleto(cpf) {
		campos = append(campos, "paciente.cpf")
	}
	if len(input.Medicamentos) == 0 {
		campos = append(campos, "medicamentos")
	}
	for i, med := range input.Medicamentos {
		prefixo := fmt.Sprintf("medicamentos[%d].", i)
		if strings.TrimSpace(med.Nome) == "" {
			campos = append(campos, prefixo+"nome")
		}
		if med.QuantidadeMensal < 1 {
			campos = append(campos, prefixo+"quantidade_mensal")
		}
		if med.QuantidadeTratamento < 1 {
			campos = append(campos, prefixo+"quantidade_tratamento")
		}
		if med.ValorUnitario <= 0 {
			campos = append(campos, prefixo+"valor_unitario")
		}
	}
	if len(campos) > 0 {
		return pkg.NewValidationError(campos...)
	}
	return nil
}

func cpfCompleto(cpf string) bool {
	digitos := 0
	for _, r := range cpf {
		if r >= '0' && r <= '9' {
			digitos++
		} else if r != '.' && r != '-' {
			return false
		}
	}
	return digitos == 11
}

func (u *OrcamentoUseCase) Buscar(ctx context.Context, usuarioID, id string) (entities.Orcamento, error) {
	usuarioID = strings.TrimSpace(usuarioID)
	if usuarioID == "" {
		return entities.Orcamento{}, ErrUsuarioNaoInformado
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Orcamento{}, ErrOrcamentoIDInvalido
	}

	o, err := u.repo.GetByID(ctx, usuarioID, id)
	if err != nil {
		return entities.Orcamento{}, err
	}
	if o.ID == "" {
		return entities.Orcamento{}, ErrOrcamentoNaoEncontrado
	}
	return o, nil
}

func (u *OrcamentoUseCase) Listar(ctx context.Context, usuarioID string, limite int32, cursor string) (interfaces.PaginaOrcamentos, error) {
	usuarioID = strings.TrimSpace(usuarioID)
	if usuarioID == "" {
		return interfaces.PaginaOrcamentos{}, ErrUsuarioNaoInformado
	}
	if limite <= 0 {
		limite = listaOrcamentosLimitePadrao
	}
	if limite > listaOrcamentosLimiteMaximo {
		limite = listaOrcamentosLimiteMaximo
	}
	return u.repo.List(ctx, usuarioID, limite, strings.TrimSpace(cursor))
}

func (u *OrcamentoUseCase) Excluir(ctx context.Context, usuarioID, id string) error {
	usuarioID = strings.TrimSpace(usuarioID)
	if usuarioID == "" {
		return ErrUsuarioNaoInformado
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrOrcamentoIDInvalido
	}

	encontrado, err := u.repo.Delete(ctx, usuarioID, id)
	if err != nil {
		return err
	}
	if !encontrado {
		return ErrOrcamentoNaoEncontrado
	}
	return nil
}

func (u *OrcamentoUseCase) Calcular(ctx context.Context, usuarioID, id string) (entities.CalculoOrcamento, error) {
	o, err := u.Buscar(ctx, usuarioID, id)
	if err != nil {
		return entities.CalculoOrcamento{}, err
	}
	return entities.CalcularOrcamento(o.Medicamentos), nil
}
