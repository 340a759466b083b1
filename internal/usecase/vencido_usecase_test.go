package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"farmagest/internal/domain/entities"
	mock_interfaces "farmagest/internal/usecase/interfaces/mocks"
	"farmagest/pkg"

	"go.uber.org/mock/gomock"
)

func novoVencidoValido() VencidoInput {
	return VencidoInput{
		Medicamento:   "Dipirona 500mg",
		Laboratorio:   "EMS",
		Quantidade:    3,
		Lote:          "L123",
		CodigoBarras:  "7891234567890",
		MSRegistro:    "1018600360022",
		NCM:           "3004.90.69",
		CEST:          "13.001.00",
		CFOP:          "5927",
		PrecoUnitario: 12.9,
	}
}

func TestVencidoUseCase_Criar(t *testing.T) {
	t.Run("missing user", func(t *testing.T) {
		uc := NewVencidoUseCase(nil)
		_, err := uc.Criar(context.Background(), " ", novoVencidoValido())
		if !errors.Is(err, ErrUsuarioNaoInformado) {
			t.Fatalf("expected ErrUsuarioNaoInformado, got %v", err)
		}
	})

	t.Run("blank fields reported together", func(t *testing.T) {
		uc := NewVencidoUseCase(nil)
		_, err := uc.Criar(context.Background(), "user-1", VencidoInput{})
		var ve *pkg.ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("expected validation error, got %v", err)
		}
		if len(ve.Fields) != 10 {
			t.Fatalf("expected every field reported, got %v", ve.Fields)
		}
	})

	t.Run("create success stamps ids and dates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIVencidoRepository(ctrl)
		uc := NewVencidoUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, v entities.Vencido) (entities.Vencido, error) {
				if v.ID == "" || v.UsuarioID != "user-1" {
					t.Fatalf("expected generated id scoped to user-1, got %+v", v)
				}
				if v.DataCriacao.IsZero() || !v.DataCriacao.Equal(v.DataUltimaEdicao) {
					t.Fatalf("expected matching creation and edit dates")
				}
				return v, nil
			})

		if _, err := uc.Criar(context.Background(), "user-1", novoVencidoValido()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestVencidoUseCase_Atualizar(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIVencidoRepository(ctrl)
		uc := NewVencidoUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "user-1", "ven-1").Return(entities.Vencido{}, nil)

		_, err := uc.Atualizar(context.Background(), "user-1", "ven-1", novoVencidoValido())
		if !errors.Is(err, ErrVencidoNaoEncontrado) {
			t.Fatalf("expected ErrVencidoNaoEncontrado, got %v", err)
		}
	})

	t.Run("preserves identity and creation date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIVencidoRepository(ctrl)
		uc := NewVencidoUseCase(repo)

		criado := time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC)
		repo.EXPECT().GetByID(gomock.Any(), "user-1", "ven-1").Return(entities.Vencido{
			ID: "ven-1", UsuarioID: "user-1", DataCriacao: criado,
		}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, v entities.Vencido) (entities.Vencido, error) {
				if v.ID != "ven-1" || v.UsuarioID != "user-1" {
					t.Fatalf("identity must not change on update, got %+v", v)
				}
				if !v.DataCriacao.Equal(criado) {
					t.Fatalf("expected creation date preserved")
				}
				if !v.DataUltimaEdicao.After(criado) {
					t.Fatalf("expected edit date refreshed")
				}
				return v, nil
			})

		if _, err := uc.Atualizar(context.Background(), "user-1", "ven-1", novoVencidoValido()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("record deleted between read and write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIVencidoRepository(ctrl)
		uc := NewVencidoUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "user-1", "ven-1").Return(entities.Vencido{
			ID: "ven-1", UsuarioID: "user-1",
		}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.Vencido{}, nil)

		_, err := uc.Atualizar(context.Background(), "user-1", "ven-1", novoVencidoValido())
		if !errors.Is(err, ErrVencidoNaoEncontrado) {
			t.Fatalf("expected ErrVencidoNaoEncontrado, got %v", err)
		}
	})
}

func TestVencidoUseCase_Excluir(t *testing.T) {
	t.Run("missing record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIVencidoRepository(ctrl)
		uc := NewVencidoUseCase(repo)

		repo.EXPECT().Delete(gomock.Any(), "user-1", "ven-1").Return(false, nil)

		if err := uc.Excluir(context.Background(), "user-1", "ven-1"); !errors.Is(err, ErrVencidoNaoEncontrado) {
			t.Fatalf("expected ErrVencidoNaoEncontrado, got %v", err)
		}
	})

	t.Run("invalid id", func(t *testing.T) {
		uc := NewVencidoUseCase(nil)
		if err := uc.Excluir(context.Background(), "user-1", ""); !errors.Is(err, ErrVencidoIDInvalido) {
			t.Fatalf("expected ErrVencidoIDInvalido, got %v", err)
		}
	})
}
