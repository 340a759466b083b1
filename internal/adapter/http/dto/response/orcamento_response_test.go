package response

import (
	"testing"

	"farmagest/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestFromOrcamento_FormatsCPF(t *testing.T) {
	o := entities.Orcamento{
		ID: "orc-1",
		Paciente: entities.Paciente{
			Identificador: "Maria da Silva",
			CPF:           "12345678901",
		},
		Status: entities.OrcamentoStatusAtivo,
	}

	res := FromOrcamento(o)
	if res.Paciente.CPF != "123.456.789-01" {
		t.Fatalf("expected formatted cpf, got %q", res.Paciente.CPF)
	}
	if res.Status != "ativo" {
		t.Fatalf("unexpected status %q", res.Status)
	}
	if res.Medicamentos == nil || len(res.Medicamentos) != 0 {
		t.Fatalf("expected empty non-nil medicamentos, got %+v", res.Medicamentos)
	}
}

func TestFromCalculoOrcamento(t *testing.T) {
	c := entities.CalculoOrcamento{
		TotalMensal:             decimal.RequireFromString("20.01"),
		TotalTratamento:         decimal.RequireFromString("60.03"),
		TemTratamentoProlongado: true,
		DuracaoUniforme:         true,
		MesesTratamento:         3,
	}

	res := FromCalculoOrcamento(c)
	if res.TotalMensal != 20.01 || res.TotalTratamento != 60.03 {
		t.Fatalf("unexpected rounded totals: %+v", res)
	}
	if res.TotalMensalFormatado != "R$ 20,01" || res.TotalTratamentoFormatado != "R$ 60,03" {
		t.Fatalf("unexpected formatted totals: %+v", res)
	}
	if !res.ExibirTotalTratamento {
		t.Fatal("expected exibir_total_tratamento when treatment exceeds the month")
	}
	if res.MesesTratamento != 3 || !res.DuracaoUniforme {
		t.Fatalf("unexpected duration fields: %+v", res)
	}
}

func TestFromCalculoOrcamento_SingleMonth(t *testing.T) {
	total := decimal.RequireFromString("33")
	res := FromCalculoOrcamento(entities.CalculoOrcamento{
		TotalMensal:     total,
		TotalTratamento: total,
		DuracaoUniforme: true,
		MesesTratamento: 1,
	})
	if res.ExibirTotalTratamento {
		t.Fatal("treatment total equal to the month must stay hidden")
	}
	if res.TotalMensalFormatado != "R$ 33,00" {
		t.Fatalf("unexpected formatted total %q", res.TotalMensalFormatado)
	}
}
