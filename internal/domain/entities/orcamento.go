package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrcamentoStatus string

const (
	OrcamentoStatusAtivo     OrcamentoStatus = "ativo"
	OrcamentoStatusArquivado OrcamentoStatus = "arquivado"
)

// Medicamento is one medication line of a judicial budget.
type Medicamento struct {
	ID                   string  `json:"id"`
	Nome                 string  `json:"nome"`
	PrincipioAtivo       string  `json:"principio_ativo,omitempty"`
	QuantidadeMensal     int     `json:"quantidade_mensal"`
	QuantidadeTratamento int     `json:"quantidade_tratamento"`
	ValorUnitario        float64 `json:"valor_unitario"`
}

type Paciente struct {
	Identificador string `json:"identificador"`
	CPF           string `json:"cpf,omitempty"`
}

// Orcamento is the judicial budget (orçamento judicial) persisted in
// DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: usuario_id
//   - SK: id
//
// The "arquivado" status is stored but no list operation filters on it.
type Orcamento struct {
	ID               string          `json:"id"`
	UsuarioID        string          `json:"usuario_id"`
	Paciente         Paciente        `json:"paciente"`
	Medicamentos     []Medicamento   `json:"medicamentos"`
	Status           OrcamentoStatus `json:"status"`
	DataCriacao      time.Time       `json:"data_criacao"`
	DataUltimaEdicao time.Time       `json:"data_ultima_edicao"`
}

// CalculoOrcamento carries the derived cost figures of a budget. Totals are
// exact (unrounded) decimals; rounding happens only when formatting.
type CalculoOrcamento struct {
	TotalMensal     decimal.Decimal
	TotalTratamento decimal.Decimal

	// TemTratamentoProlongado is set when any medication is taken for more
	// than one month.
	TemTratamentoProlongado bool

	// DuracaoUniforme is set when every medication shares the same
	// treatment duration; MesesTratamento then holds that shared value.
	DuracaoUniforme bool
	MesesTratamento int
}

// CustoMensal is the monthly cost of the medication line.
func (m Medicamento) CustoMensal() decimal.Decimal {
	return decimal.NewFromFloat(m.ValorUnitario).Mul(decimal.NewFromInt(int64(m.QuantidadeMensal)))
}

// CustoTratamento is the full-treatment cost of the medication line.
func (m Medicamento) CustoTratamento() decimal.Decimal {
	return m.CustoMensal().Mul(decimal.NewFromInt(int64(m.QuantidadeTratamento)))
}

// CalcularOrcamento derives the budget totals and display flags from the
// medication lines. An empty list yields zero totals.
func CalcularOrcamento(medicamentos []Medicamento) CalculoOrcamento {
	calc := CalculoOrcamento{
		TotalMensal:     decimal.Zero,
		TotalTratamento: decimal.Zero,
		DuracaoUniforme: true,
	}

	for i, med := range medicamentos {
		calc.TotalMensal = calc.TotalMensal.Add(med.CustoMensal())
		calc.TotalTratamento = calc.TotalTratamento.Add(med.CustoTratamento())

		if med.QuantidadeTratamento > 1 {
			calc.TemTratamentoProlongado = true
		}
		if i == 0 {
			calc.MesesTratamento = med.QuantidadeTratamento
		} else if med.QuantidadeTratamento != calc.MesesTratamento {
			calc.DuracaoUniforme = false
		}
	}

	if !calc.DuracaoUniforme {
		calc.MesesTratamento = 0
	}
	return calc
}
