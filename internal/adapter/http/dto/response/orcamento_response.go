package response

import (
	"time"

	"farmagest/internal/domain/entities"
	"farmagest/internal/usecase/interfaces"
	"farmagest/pkg"
)

type MedicamentoResponse struct {
	ID                   string  `json:"id"`
	Nome                 string  `json:"nome"`
	PrincipioAtivo       string  `json:"principio_ativo,omitempty"`
	QuantidadeMensal     int     `json:"quantidade_mensal"`
	QuantidadeTratamento int     `json:"quantidade_tratamento,omitempty"`
	ValorUnitario        float64 `json:"valor_unitario"`
}

type PacienteResponse struct {
	Identificador string `json:"identificador"`
	CPF           string `json:"cpf"`
}

type OrcamentoResponse struct {
	ID               string                `json:"id"`
	Paciente         PacienteResponse      `json:"paciente"`
	Medicamentos     []MedicamentoResponse `json:"medicamentos"`
	Status           string                `json:"status"`
	DataCriacao      time.Time             `json:"data_criacao"`
	DataUltimaEdicao time.Time             `json:"data_ultima_edicao"`
}

func FromOrcamento(o entities.Orcamento) OrcamentoResponse {
	medicamentos := make([]MedicamentoResponse, 0, len(o.Medicamentos))
	for _, m := range o.Medicamentos {
		medicamentos = append(medicamentos, MedicamentoResponse{
			ID:                   m.ID,
			Nome:                 m.Nome,
			PrincipioAtivo:       m.PrincipioAtivo,
			QuantidadeMensal:     m.QuantidadeMensal,
			QuantidadeTratamento: m.QuantidadeTratamento,
			ValorUnitario:        m.ValorUnitario,
		})
	}
	return OrcamentoResponse{
		ID: o.ID,
		Paciente: PacienteResponse{
			Identificador: o.Paciente.Identificador,
			CPF:           pkg.FormatarCPF(o.Paciente.CPF),
		},
		Medicamentos:     medicamentos,
		Status:           string(o.Status),
		DataCriacao:      o.DataCriacao,
		DataUltimaEdicao: o.DataUltimaEdicao,
	}
}

type PaginaOrcamentosResponse struct {
	Itens  []OrcamentoResponse `json:"itens"`
	Cursor string              `json:"cursor,omitempty"`
}

func FromPaginaOrcamentos(p interfaces.PaginaOrcamentos) PaginaOrcamentosResponse {
	itens := make([]OrcamentoResponse, 0, len(p.Itens))
	for _, o := range p.Itens {
		itens = append(itens, FromOrcamento(o))
	}
	return PaginaOrcamentosResponse{Itens: itens, Cursor: p.Cursor}
}

// CalculoOrcamentoResponse reports the derived totals already rounded to
// cents, alongside the formatted pt-BR strings the dashboard prints.
type CalculoOrcamentoResponse struct {
	TotalMensal              float64 `json:"total_mensal"`
	TotalTratamento          float64 `json:"total_tratamento"`
	TotalMensalFormatado     string  `json:"total_mensal_formatado"`
	TotalTratamentoFormatado string  `json:"total_tratamento_formatado"`
	TemTratamentoProlongado  bool    `json:"tem_tratamento_prolongado"`
	DuracaoUniforme          bool    `json:"duracao_uniforme"`
	MesesTratamento          int     `json:"meses_tratamento,omitempty"`
	ExibirTotalTratamento    bool    `json:"exibir_total_tratamento"`
}

func FromCalculoOrcamento(c entities.CalculoOrcamento) CalculoOrcamentoResponse {
	return CalculoOrcamentoResponse{
		TotalMensal:              c.TotalMensal.Round(2).InexactFloat64(),
		TotalTratamento:          c.TotalTratamento.Round(2).InexactFloat64(),
		TotalMensalFormatado:     pkg.FormatarMoeda(c.TotalMensal),
		TotalTratamentoFormatado: pkg.FormatarMoeda(c.TotalTratamento),
		TemTratamentoProlongado:  c.TemTratamentoProlongado,
		DuracaoUniforme:          c.DuracaoUniforme,
		MesesTratamento:          c.MesesTratamento,
		ExibirTotalTratamento:    c.TotalTratamento.GreaterThan(c.TotalMensal),
	}
}
