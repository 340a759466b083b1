package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"farmagest/internal/domain/entities"
	"farmagest/internal/usecase/interfaces"
	mock_interfaces "farmagest/internal/usecase/interfaces/mocks"
	"farmagest/pkg"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func novoOrcamentoValido() SalvarOrcamentoInput {
	return SalvarOrcamentoInput{
		Paciente: entities.Paciente{Identificador: "Maria da Silva", CPF: "123.456.789-01"},
		Medicamentos: []entities.Medicamento{
			{Nome: "Dipirona", QuantidadeMensal: 2, QuantidadeTratamento: 3, ValorUnitario: 10.5},
		},
	}
}

func TestOrcamentoUseCase_Salvar(t *testing.T) {
	t.Run("missing user", func(t *testing.T) {
		uc := NewOrcamentoUseCase(nil)
		_, err := uc.Salvar(context.Background(), "  ", novoOrcamentoValido())
		if !errors.Is(err, ErrUsuarioNaoInformado) {
			t.Fatalf("expected ErrUsuarioNaoInformado, got %v", err)
		}
	})

	t.Run("validation matrix", func(t *testing.T) {
		casos := []struct {
			nome   string
			mudar  func(*SalvarOrcamentoInput)
			campo  string
		}{
			{"missing identifier", func(in *SalvarOrcamentoInput) { in.Paciente.Identificador = " " }, "paciente.identificador"},
			{"short cpf", func(in *SalvarOrcamentoInput) { in.Paciente.CPF = "1234567890" }, "paciente.cpf"},
			{"cpf with letters", func(in *SalvarOrcamentoInput) { in.Paciente.CPF = "123456789ab" }, "paciente.cpf"},
			{"no medications", func(in *SalvarOrcamentoInput) { in.Medicamentos = nil }, "medicamentos"},
			{"unnamed medication", func(in *SalvarOrcamentoInput) { in.Medicamentos[0].Nome = "" }, "medicamentos[0].nome"},
			{"zero monthly quantity", func(in *SalvarOrcamentoInput) { in.Medicamentos[0].QuantidadeMensal = 0 }, "medicamentos[0].quantidade_mensal"},
			{"zero treatment duration", func(in *SalvarOrcamentoInput) { in.Medicamentos[0].QuantidadeTratamento = 0 }, "medicamentos[0].quantidade_tratamento"},
			{"free medication", func(in *SalvarOrcamentoInput) { in.Medicamentos[0].ValorUnitario = 0 }, "medicamentos[0].valor_unitario"},
		}
		for _, c := range casos {
			t.Run(c.nome, func(t *testing.T) {
				uc := NewOrcamentoUseCase(nil)
				input := novoOrcamentoValido()
				c.mudar(&input)
				_, err := uc.Salvar(context.Background(), "user-1", input)
				var ve *pkg.ValidationError
				if !errors.As(err, &ve) {
					t.Fatalf("expected validation error, got %v", err)
				}
				achou := false
				for _, f := range ve.Fields {
					if f == c.campo {
						achou = true
					}
				}
				if !achou {
					t.Fatalf("expected field %s reported, got %v", c.campo, ve.Fields)
				}
			})
		}
	})

	t.Run("empty cpf is accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrcamentoRepository(ctrl)
		uc := NewOrcamentoUseCase(repo)

		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Orcamento) (entities.Orcamento, error) {
				return o, nil
			})

		input := novoOrcamentoValido()
		input.Paciente.CPF = ""
		if _, err := uc.Salvar(context.Background(), "user-1", input); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("new budget gets ids and active status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrcamentoRepository(ctrl)
		uc := NewOrcamentoUseCase(repo)

		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Orcamento) (entities.Orcamento, error) {
				if o.ID == "" {
					t.Fatalf("expected generated budget id")
				}
				if o.Medicamentos[0].ID == "" {
					t.Fatalf("expected generated medication id")
				}
				if o.Status != entities.OrcamentoStatusAtivo {
					t.Fatalf("expected active status, got %s", o.Status)
				}
				return o, nil
			})

		if _, err := uc.Salvar(context.Background(), "user-1", novoOrcamentoValido()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("overwrite keeps creation date and status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrcamentoRepository(ctrl)
		uc := NewOrcamentoUseCase(repo)

		criado := time.Date(2025, 11, 1, 8, 0, 0, 0, time.UTC)
		repo.EXPECT().GetByID(gomock.Any(), "user-1", "orc-1").Return(entities.Orcamento{
			ID: "orc-1", UsuarioID: "user-1", DataCriacao: criado, Status: entities.OrcamentoStatusArquivado,
		}, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Orcamento) (entities.Orcamento, error) {
				if !o.DataCriacao.Equal(criado) {
					t.Fatalf("expected creation date preserved, got %v", o.DataCriacao)
				}
				if o.Status != entities.OrcamentoStatusArquivado {
					t.Fatalf("expected stored status preserved, got %s", o.Status)
				}
				if !o.DataUltimaEdicao.After(criado) {
					t.Fatalf("expected edit timestamp refreshed")
				}
				return o, nil
			})

		input := novoOrcamentoValido()
		input.ID = "orc-1"
		if _, err := uc.Salvar(context.Background(), "user-1", input); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestOrcamentoUseCase_Buscar(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrcamentoRepository(ctrl)
		uc := NewOrcamentoUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "user-1", "orc-x").Return(entities.Orcamento{}, nil)

		if _, err := uc.Buscar(context.Background(), "user-1", "orc-x"); !errors.Is(err, ErrOrcamentoNaoEncontrado) {
			t.Fatalf("expected ErrOrcamentoNaoEncontrado, got %v", err)
		}
	})

	t.Run("invalid id", func(t *testing.T) {
		uc := NewOrcamentoUseCase(nil)
		if _, err := uc.Buscar(context.Background(), "user-1", " "); !errors.Is(err, ErrOrcamentoIDInvalido) {
			t.Fatalf("expected ErrOrcamentoIDInvalido, got %v", err)
		}
	})
}

func TestOrcamentoUseCase_Listar(t *testing.T) {
	t.Run("clamps the page size", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrcamentoRepository(ctrl)
		uc := NewOrcamentoUseCase(repo)

		repo.EXPECT().List(gomock.Any(), "user-1", int32(20), "").Return(interfaces.PaginaOrcamentos{}, nil)
		repo.EXPECT().List(gomock.Any(), "user-1", int32(100), "").Return(interfaces.PaginaOrcamentos{}, nil)

		if _, err := uc.Listar(context.Background(), "user-1", 0, ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := uc.Listar(context.Background(), "user-1", 500, ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("passes the cursor through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrcamentoRepository(ctrl)
		uc := NewOrcamentoUseCase(repo)

		repo.EXPECT().List(gomock.Any(), "user-1", int32(10), "abc").Return(
			interfaces.PaginaOrcamentos{Cursor: "def"}, nil)

		pagina, err := uc.Listar(context.Background(), "user-1", 10, " abc ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if pagina.Cursor != "def" {
			t.Fatalf("expected next cursor def, got %q", pagina.Cursor)
		}
	})
}

func TestOrcamentoUseCase_Excluir(t *testing.T) {
	t.Run("missing record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrcamentoRepository(ctrl)
		uc := NewOrcamentoUseCase(repo)

		repo.EXPECT().Delete(gomock.Any(), "user-1", "orc-1").Return(false, nil)

		if err := uc.Excluir(context.Background(), "user-1", "orc-1"); !errors.Is(err, ErrOrcamentoNaoEncontrado) {
			t.Fatalf("expected ErrOrcamentoNaoEncontrado, got %v", err)
		}
	})
}

func TestOrcamentoUseCase_Calcular(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIOrcamentoRepository(ctrl)
	uc := NewOrcamentoUseCase(repo)

	repo.EXPECT().GetByID(gomock.Any(), "user-1", "orc-1").Return(entities.Orcamento{
		ID: "orc-1", UsuarioID: "user-1",
		Medicamentos: []entities.Medicamento{
			{Nome: "Dipirona", QuantidadeMensal: 2, QuantidadeTratamento: 3, ValorUnitario: 10.005},
		},
	}, nil)

	calc, err := uc.Calcular(context.Background(), "user-1", "orc-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !calc.TotalMensal.Equal(decimal.RequireFromString("20.01")) {
		t.Fatalf("expected 20.01, got %s", calc.TotalMensal)
	}
	if !calc.TotalTratamento.Equal(decimal.RequireFromString("60.03")) {
		t.Fatalf("expected 60.03, got %s", calc.TotalTratamento)
	}
}
