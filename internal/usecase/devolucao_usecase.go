package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"farmagest/internal/domain/entities"
	"farmagest/internal/usecase/interfaces"
	"farmagest/pkg"

	"github.com/google/uuid"
)

var (
	ErrDevolucaoNaoEncontrada = errors.New("devolucao not found")
	ErrTransicaoInvalida      = errors.New("devolucao already finalized")
	ErrOperacaoEmAndamento    = errors.New("mutation already in flight for this devolucao")
	ErrUsuarioNaoInformado    = errors.New("missing authenticated user")
	ErrDevolucaoIDInvalido    = errors.New("invalid devolucao id")
)

// CriarDevolucaoInput carries the fields required to open a return.
type CriarDevolucaoInput struct {
	NotaFiscalEntrada string
	Distribuidora     string
	Motivo            string
	Protocolo         string
	Produtos          []entities.DevolucaoProduto
}

// AtualizarDevolucaoInput is a partial update. Nil pointers mean "leave as
// is"; a non-nil field must be editable at the record's current status.
type AtualizarDevolucaoInput struct {
	NotaFiscalEntrada *string
	Distribuidora     *string
	Motivo            *string
	Protocolo         *string
	Produtos          []entities.DevolucaoProduto
	NFDNumero         *string
	NFDValor          *float64
	DataColeta        *string
}

// IDevolucaoUseCase exposes the return (devolução) lifecycle.
//
// The lifecycle is strictly forward: Avancar moves one step at a time and
// fails on a finalized record. Field edits are gated by the current status.
type IDevolucaoUseCase interface {
	Criar(ctx context.Context, usuarioID string, input CriarDevolucaoInput) (entities.Devolucao, error)
	Listar(ctx context.Context, usuarioID string) ([]entities.Devolucao, error)
	Atualizar(ctx context.Context, usuarioID, id string, input AtualizarDevolucaoInput) (entities.Devolucao, error)
	Avancar(ctx context.Context, usuarioID, id string) (entities.Devolucao, error)
	Excluir(ctx context.Context, usuarioID, id string) error
	Observar(ctx context.Context, usuarioID string, intervalo time.Duration) (<-chan []entities.Devolucao, func(), error)
}

type DevolucaoUseCase struct {
	repo interfaces.IDevolucaoRepository

	// emVoo tracks mutating calls that are still outstanding, keyed by
	// user+record, so a duplicate Atualizar/Avancar/Excluir fails fast
	// instead of racing the first one.
	mu    sync.Mutex
	emVoo map[string]struct{}
}

var _ IDevolucaoUseCase = (*DevolucaoUseCase)(nil)

func NewDevolucaoUseCase(repo interfaces.IDevolucaoRepository) *DevolucaoUseCase {
	return &DevolucaoUseCase{repo: repo, emVoo: make(map[string]struct{})}
}

func (u *DevolucaoUseCase) Criar(ctx context.Context, usuarioID string, input CriarDevolucaoInput) (entities.Devolucao, error) {
	usuarioID = strings.TrimSpace(usuarioID)
	if usuarioID == "" {
		return entities.Devolucao{}, ErrUsuarioNaoInformado
	}

	var campos []string
	if strings.TrimSpace(input.NotaFiscalEntrada) == "" {
		campos = append(campos, entities.CampoNotaFiscalEntrada)
	}
	if strings.TrimSpace(input.Distribuidora) == "" {
		campos = append(campos, entities.CampoDistribuidora)
	}
	if strings.TrimSpace(input.Motivo) == "" {
		campos = append(campos, entities.CampoMotivo)
	}
	if err := validarProdutos(input.Produtos); err != nil {
		campos = append(campos, entities.CampoProdutos)
	}
	if len(campos) > 0 {
		return entities.Devolucao{}, pkg.NewValidationError(campos...)
	}

	d := entities.Devolucao{
		ID:                uuid.NewString(),
		UsuarioID:         usuarioID,
		NotaFiscalEntrada: strings.TrimSpace(input.NotaFiscalEntrada),
		Distribuidora:     strings.TrimSpace(input.Distribuidora),
		Motivo:            strings.TrimSpace(input.Motivo),
		Protocolo:         strings.TrimSpace(input.Protocolo),
		Produtos:          input.Produtos,
		DataRealizada:     time.Now().UTC(),
		Status:            entities.StatusSolicitacaoNFD,
	}
	return u.repo.Create(ctx, d)
}

func validarProdutos(produtos []entities.DevolucaoProduto) error {
	if len(produtos) == 0 {
		return errors.New("at least one product required")
	}
	for _, p := range produtos {
		if strings.TrimSpace(p.Nome) == "" || p.Quantidade <= 0 {
			return errors.New("invalid product line")
		}
	}
	return nil
}

func (u *DevolucaoUseCase) Listar(ctx context.Context, usuarioID string) ([]entities.Devolucao, error) {
	usuarioID = strings.TrimSpace(usuarioID)
	if usuarioID == "" {
		return nil, ErrUsuarioNaoInformado
	}

	devolucoes, err := u.repo.List(ctx, usuarioID)
	if err != nil {
		return nil, err
	}
	return entities.OrdenarParaExibicao(devolucoes), nil
}

func (u *DevolucaoUseCase) Atualizar(ctx context.Context, usuarioID, id string, input AtualizarDevolucaoInput) (entities.Devolucao, error) {
	liberar, err := u.reservar(usuarioID, id)
	if err != nil {
		return entities.Devolucao{}, err
	}
	defer liberar()

	d, err := u.buscar(ctx, usuarioID, id)
	if err != nil {
		return entities.Devolucao{}, err
	}

	editaveis := d.Status.CamposEditaveis()
	var bloqueados []string
	verificar := func(campo string, presente bool) {
		if presente && !editaveis[campo] {
			bloqueados = append(bloqueados, campo)
		}
	}
	verificar(entities.CampoNotaFiscalEntrada, input.NotaFiscalEntrada != nil)
	verificar(entities.CampoDistribuidora, input.Distribuidora != nil)
	verificar(entities.CampoMotivo, input.Motivo != nil)
	verificar(entities.CampoProtocolo, input.Protocolo != nil)
	verificar(entities.CampoProdutos, input.Produtos != nil)
	verificar(entities.CampoNFDNumero, input.NFDNumero != nil)
	verificar(entities.CampoNFDValor, input.NFDValor != nil)
	verificar(entities.CampoDataColeta, input.DataColeta != nil)
	if len(bloqueados) > 0 {
		return entities.Devolucao{}, pkg.NewValidationError(bloqueados...)
	}

	if input.Produtos != nil {
		if err := validarProdutos(input.Produtos); err != nil {
			return entities.Devolucao{}, pkg.NewValidationError(entities.CampoProdutos)
		}
		d.Produtos = input.Produtos
	}
	if input.NotaFiscalEntrada != nil {
		d.NotaFiscalEntrada = strings.TrimSpace(*input.NotaFiscalEntrada)
	}
	if input.Distribuidora != nil {
		d.Distribuidora = strings.TrimSpace(*input.Distribuidora)
	}
	if input.Motivo != nil {
		d.Motivo = strings.TrimSpace(*input.Motivo)
	}
	if input.Protocolo != nil {
		d.Protocolo = strings.TrimSpace(*input.Protocolo)
	}
	if input.NFDNumero != nil {
		d.NFDNumero = strings.TrimSpace(*input.NFDNumero)
	}
	if input.NFDValor != nil {
		if *input.NFDValor < 0 {
			return entities.Devolucao{}, pkg.NewValidationError(entities.CampoNFDValor)
		}
		d.NFDValor = *input.NFDValor
	}
	if input.DataColeta != nil {
		d.DataColeta = strings.TrimSpace(*input.DataColeta)
	}

	return u.persistir(ctx, d)
}

func (u *DevolucaoUseCase) Avancar(ctx context.Context, usuarioID, id string) (entities.Devolucao, error) {
	liberar, err := u.reservar(usuarioID, id)
	if err != nil {
		return entities.Devolucao{}, err
	}
	defer liberar()

	d, err := u.buscar(ctx, usuarioID, id)
	if err != nil {
		return entities.Devolucao{}, err
	}

	proximo, ok := d.Status.Proximo()
	if !ok {
		return entities.Devolucao{}, ErrTransicaoInvalida
	}
	d.Status = proximo

	return u.persistir(ctx, d)
}

// persistir writes the record back and converts the repository's zero-value
// answer for a failed existence condition into not found, so a record
// deleted since buscar never reads as a successful update.
func (u *DevolucaoUseCase) persistir(ctx context.Context, d entities.Devolucao) (entities.Devolucao, error) {
	atualizada, err := u.repo.Update(ctx, d)
	if err != nil {
		return entities.Devolucao{}, err
	}
	if atualizada.ID == "" {
		return entities.Devolucao{}, ErrDevolucaoNaoEncontrada
	}
	return atualizada, nil
}

func (u *DevolucaoUseCase) Excluir(ctx context.Context, usuarioID, id string) error {
	liberar, err := u.reservar(usuarioID, id)
	if err != nil {
		return err
	}
	defer liberar()

	encontrada, err := u.repo.Delete(ctx, usuarioID, id)
	if err != nil {
		return err
	}
	if !encontrada {
		return ErrDevolucaoNaoEncontrada
	}
	return nil
}

// Observar delivers full list snapshots at the given interval until the
// returned cancel function runs or ctx is done. Snapshots come from a
// single goroutine, so a stale snapshot can never arrive after a newer one.
func (u *DevolucaoUseCase) Observar(ctx context.Context, usuarioID string, intervalo time.Duration) (<-chan []entities.Devolucao, func(), error) {
	usuarioID = strings.TrimSpace(usuarioID)
	if usuarioID == "" {
		return nil, nil, ErrUsuarioNaoInformado
	}
	if intervalo <= 0 {
		intervalo = 5 * time.Second
	}

	ctx, cancelar := context.WithCancel(ctx)
	snapshots := make(chan []entities.Devolucao, 1)

	go func() {
		defer close(snapshots)
		ticker := time.NewTicker(intervalo)
		defer ticker.Stop()

		for {
			devolucoes, err := u.Listar(ctx, usuarioID)
			if err == nil {
				select {
				case snapshots <- devolucoes:
				case <-ctx.Done():
					return
				}
			}
			select {
			case <-ticker.C:
			case <-ctx.Done():
				return
			}
		}
	}()

	return snapshots, cancelar, nil
}

func (u *DevolucaoUseCase) buscar(ctx context.Context, usuarioID, id string) (entities.Devolucao, error) {
	usuarioID = strings.TrimSpace(usuarioID)
	if usuarioID == "" {
		return entities.Devolucao{}, ErrUsuarioNaoInformado
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Devolucao{}, ErrDevolucaoIDInvalido
	}

	d, err := u.repo.GetByID(ctx, usuarioID, id)
	if err != nil {
		return entities.Devolucao{}, err
	}
	if d.ID == "" {
		return entities.Devolucao{}, ErrDevolucaoNaoEncontrada
	}
	return d, nil
}

func (u *DevolucaoUseCase) reservar(usuarioID, id string) (func(), error) {
	usuarioID = strings.TrimSpace(usuarioID)
	if usuarioID == "" {
		return nil, ErrUsuarioNaoInformado
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrDevolucaoIDInvalido
	}

	chave := usuarioID + "/" + id
	u.mu.Lock()
	defer u.mu.Unlock()
	if _, ocupado := u.emVoo[chave]; ocupado {
		return nil, ErrOperacaoEmAndamento
	}
	u.emVoo[chave] = struct{}{}
	return func() {
		u.mu.Lock()
		delete(u.emVoo, chave)
		u.mu.Unlock()
	}, nil
}
