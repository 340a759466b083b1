package request

import (
	"strings"

	"farmagest/internal/domain/entities"
	"farmagest/internal/usecase"
)

type MedicamentoRequest struct {
	ID                   string  `json:"id"`
	Nome                 string  `json:"nome" binding:"required"`
	PrincipioAtivo       string  `json:"principio_ativo"`
	QuantidadeMensal     int     `json:"quantidade_mensal" binding:"required"`
	QuantidadeTratamento int     `json:"quantidade_tratamento"`
	ValorUnitario        float64 `json:"valor_unitario" binding:"required"`
}

type PacienteRequest struct {
	Identificador string `json:"identificador" binding:"required"`
	CPF           string `json:"cpf" binding:"required"`
}

// SalvarOrcamentoRequest creates a budget when id is empty and replaces the
// existing one otherwise.
type SalvarOrcamentoRequest struct {
	ID           string               `json:"id"`
	Paciente     PacienteRequest      `json:"paciente" binding:"required"`
	Medicamentos []MedicamentoRequest `json:"medicamentos" binding:"required"`
}

func (r SalvarOrcamentoRequest) ToInput() usecase.SalvarOrcamentoInput {
	medicamentos := make([]entities.Medicamento, 0, len(r.Medicamentos))
	for _, m := range r.Medicamentos {
		medicamentos = append(medicamentos, entities.Medicamento{
			ID:                   strings.TrimSpace(m.ID),
			Nome:                 strings.TrimSpace(m.Nome),
			PrincipioAtivo:       strings.TrimSpace(m.PrincipioAtivo),
			QuantidadeMensal:     m.QuantidadeMensal,
			QuantidadeTratamento: m.QuantidadeTratamento,
			ValorUnitario:        m.ValorUnitario,
		})
	}
	return usecase.SalvarOrcamentoInput{
		ID: strings.TrimSpace(r.ID),
		Paciente: entities.Paciente{
			Identificador: strings.TrimSpace(r.Paciente.Identificador),
			CPF:           strings.TrimSpace(r.Paciente.CPF),
		},
		Medicamentos: medicamentos,
	}
}
