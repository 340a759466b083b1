package response

import (
	"time"

	"farmagest/internal/domain/entities"
)

type VencidoResponse struct {
	ID               string    `json:"id"`
	Medicamento      string    `json:"medicamento"`
	Laboratorio      string    `json:"laboratorio,omitempty"`
	Quantidade       int       `json:"quantidade"`
	Lote             string    `json:"lote,omitempty"`
	CodigoBarras     string    `json:"codigo_barras,omitempty"`
	MSRegistro       string    `json:"ms_registro,omitempty"`
	NCM              string    `json:"ncm,omitempty"`
	CEST             string    `json:"cest,omitempty"`
	CFOP             string    `json:"cfop,omitempty"`
	PrecoUnitario    float64   `json:"preco_unitario"`
	DataCriacao      time.Time `json:"data_criacao"`
	DataUltimaEdicao time.Time `json:"data_ultima_edicao"`
}

func FromVencido(v entities.Vencido) VencidoResponse {
	return VencidoResponse{
		ID:               v.ID,
		Medicamento:      v.Medicamento,
		Laboratorio:      v.Laboratorio,
		Quantidade:       v.Quantidade,
		Lote:             v.Lote,
		CodigoBarras:     v.CodigoBarras,
		MSRegistro:       v.MSRegistro,
		NCM:              v.NCM,
		CEST:             v.CEST,
		CFOP:             v.CFOP,
		PrecoUnitario:    v.PrecoUnitario,
		DataCriacao:      v.DataCriacao,
		DataUltimaEdicao: v.DataUltimaEdicao,
	}
}

func FromVencidos(vs []entities.Vencido) []VencidoResponse {
	out := make([]VencidoResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, FromVencido(v))
	}
	return out
}
