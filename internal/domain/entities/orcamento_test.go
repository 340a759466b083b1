package entities

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestCalcularOrcamento(t *testing.T) {
	t.Run("empty list yields zero totals", func(t *testing.T) {
		calc := CalcularOrcamento(nil)
		if !calc.TotalMensal.IsZero() || !calc.TotalTratamento.IsZero() {
			t.Fatalf("expected zero totals, got %s / %s", calc.TotalMensal, calc.TotalTratamento)
		}
		if calc.TemTratamentoProlongado {
			t.Fatalf("empty budget cannot have prolonged treatment")
		}
		if !calc.DuracaoUniforme || calc.MesesTratamento != 0 {
			t.Fatalf("empty budget: expected uniform duration 0, got %v/%d", calc.DuracaoUniforme, calc.MesesTratamento)
		}
	})

	t.Run("no intermediate rounding", func(t *testing.T) {
		calc := CalcularOrcamento([]Medicamento{
			{Nome: "Dipirona", QuantidadeMensal: 2, QuantidadeTratamento: 3, ValorUnitario: 10.005},
		})
		if !calc.TotalMensal.Equal(decimal.RequireFromString("20.01")) {
			t.Fatalf("expected monthly total 20.01, got %s", calc.TotalMensal)
		}
		if !calc.TotalTratamento.Equal(decimal.RequireFromString("60.03")) {
			t.Fatalf("expected treatment total 60.03, got %s", calc.TotalTratamento)
		}
	})

	t.Run("sums every line", func(t *testing.T) {
		calc := CalcularOrcamento([]Medicamento{
			{QuantidadeMensal: 2, QuantidadeTratamento: 6, ValorUnitario: 1.5},
			{QuantidadeMensal: 1, QuantidadeTratamento: 6, ValorUnitario: 30},
		})
		if !calc.TotalMensal.Equal(decimal.RequireFromString("33")) {
			t.Fatalf("expected monthly total 33, got %s", calc.TotalMensal)
		}
		if !calc.TotalTratamento.Equal(decimal.RequireFromString("198")) {
			t.Fatalf("expected treatment total 198, got %s", calc.TotalTratamento)
		}
		if !calc.TemTratamentoProlongado {
			t.Fatalf("expected prolonged treatment flag")
		}
		if !calc.DuracaoUniforme || calc.MesesTratamento != 6 {
			t.Fatalf("expected uniform 6-month duration, got %v/%d", calc.DuracaoUniforme, calc.MesesTratamento)
		}
	})

	t.Run("mixed durations are not uniform", func(t *testing.T) {
		calc := CalcularOrcamento([]Medicamento{
			{QuantidadeMensal: 1, QuantidadeTratamento: 3, ValorUnitario: 10},
			{QuantidadeMensal: 1, QuantidadeTratamento: 6, ValorUnitario: 10},
		})
		if calc.DuracaoUniforme {
			t.Fatalf("expected mixed durations to break uniformity")
		}
		if calc.MesesTratamento != 0 {
			t.Fatalf("non-uniform budget must not report a shared duration, got %d", calc.MesesTratamento)
		}
	})

	t.Run("single-month lines are not prolonged", func(t *testing.T) {
		calc := CalcularOrcamento([]Medicamento{
			{QuantidadeMensal: 3, QuantidadeTratamento: 1, ValorUnitario: 5},
		})
		if calc.TemTratamentoProlongado {
			t.Fatalf("one-month treatment must not set the prolonged flag")
		}
	})
}

func TestMedicamento_Custos(t *testing.T) {
	m := Medicamento{QuantidadeMensal: 3, QuantidadeTratamento: 4, ValorUnitario: 2.5}
	if !m.CustoMensal().Equal(decimal.RequireFromString("7.5")) {
		t.Fatalf("expected monthly cost 7.5, got %s", m.CustoMensal())
	}
	if !m.CustoTratamento().Equal(decimal.RequireFromString("30")) {
		t.Fatalf("expected treatment cost 30, got %s", m.CustoTratamento())
	}
}
