package response

import (
	"time"

	"farmagest/internal/domain/entities"
)

type DevolucaoProdutoResponse struct {
	Nome       string `json:"nome"`
	Quantidade int    `json:"quantidade"`
}

type DevolucaoResponse struct {
	ID                string                     `json:"id"`
	NotaFiscalEntrada string                     `json:"nota_fiscal_entrada"`
	Distribuidora     string                     `json:"distribuidora"`
	Motivo            string                     `json:"motivo"`
	Produtos          []DevolucaoProdutoResponse `json:"produtos"`
	DataRealizada     time.Time                  `json:"data_realizada"`
	Protocolo         string                     `json:"protocolo,omitempty"`
	NFDNumero         string                     `json:"nfd_numero,omitempty"`
	NFDValor          float64                    `json:"nfd_valor,omitempty"`
	DataColeta        string                     `json:"data_coleta,omitempty"`
	Status            string                     `json:"status"`
	StatusRotulo      string                     `json:"status_rotulo"`
	Etapa             int                        `json:"etapa"`
	Finalizada        bool                       `json:"finalizada"`
}

func FromDevolucao(d entities.Devolucao) DevolucaoResponse {
	produtos := make([]DevolucaoProdutoResponse, 0, len(d.Produtos))
	for _, p := range d.Produtos {
		produtos = append(produtos, DevolucaoProdutoResponse{Nome: p.Nome, Quantidade: p.Quantidade})
	}
	return DevolucaoResponse{
		ID:                d.ID,
		NotaFiscalEntrada: d.NotaFiscalEntrada,
		Distribuidora:     d.Distribuidora,
		Motivo:            d.Motivo,
		Produtos:          produtos,
		DataRealizada:     d.DataRealizada,
		Protocolo:         d.Protocolo,
		NFDNumero:         d.NFDNumero,
		NFDValor:          d.NFDValor,
		DataColeta:        d.DataColeta,
		Status:            string(d.Status),
		StatusRotulo:      d.Status.Rotulo(),
		Etapa:             d.Status.Etapa(),
		Finalizada:        d.Status.Terminal(),
	}
}

func FromDevolucoes(ds []entities.Devolucao) []DevolucaoResponse {
	out := make([]DevolucaoResponse, 0, len(ds))
	for _, d := range ds {
		out = append(out, FromDevolucao(d))
	}
	return out
}
